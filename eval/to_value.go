package eval

import (
	"fmt"
	"math"

	"github.com/signadot/ffl/value"
)

// toValue converts an expression result. Unlike value.FromAny, floats
// always become decimals so that 3.0 stays a decimal.
func toValue(x any) (value.Value, error) {
	switch y := x.(type) {
	case float64:
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return value.Value{}, fmt.Errorf("%w: %v", value.ErrDomain, y)
		}
		return value.FromDecimal(value.DecimalFromFloat(y)), nil
	case float32:
		return toValue(float64(y))
	case []any:
		res := make([]value.Value, len(y))
		for i, e := range y {
			v, err := toValue(e)
			if err != nil {
				return value.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return value.FromList(res...), nil
	case map[string]any:
		res := make([]value.Pair, 0, len(y))
		for k, e := range y {
			v, err := toValue(e)
			if err != nil {
				return value.Value{}, fmt.Errorf("%s: %w", k, err)
			}
			res = append(res, value.Pair{Key: value.FromString(k), Val: v})
		}
		return value.FromPairs(res...), nil
	case map[any]any:
		res := make([]value.Pair, 0, len(y))
		for k, e := range y {
			kv, err := toValue(k)
			if err != nil {
				return value.Value{}, err
			}
			v, err := toValue(e)
			if err != nil {
				return value.Value{}, fmt.Errorf("%v: %w", k, err)
			}
			res = append(res, value.Pair{Key: kv, Val: v})
		}
		return value.FromPairs(res...), nil
	}
	return value.FromAny(x)
}

func toAny(v value.Value) any {
	return value.ToAny(v)
}
