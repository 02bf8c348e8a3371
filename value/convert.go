package value

import (
	"fmt"
	"math"
	"slices"
)

// FromAny converts a Go value as produced by encoding/json, YAML or TOML
// decoders, or expression evaluation, into a Value.
func FromAny(x any) (Value, error) {
	switch y := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return y, nil
	case bool:
		return FromBool(y), nil
	case int:
		return FromInt(int64(y)), nil
	case int8:
		return FromInt(int64(y)), nil
	case int16:
		return FromInt(int64(y)), nil
	case int32:
		return FromInt(int64(y)), nil
	case int64:
		return FromInt(y), nil
	case uint:
		return fromUint(uint64(y))
	case uint8:
		return FromInt(int64(y)), nil
	case uint16:
		return FromInt(int64(y)), nil
	case uint32:
		return FromInt(int64(y)), nil
	case uint64:
		return fromUint(y)
	case float32:
		return fromFloat(float64(y))
	case float64:
		return fromFloat(y)
	case Decimal:
		return FromDecimal(y), nil
	case string:
		return FromString(y), nil
	case []byte:
		return FromString(string(y)), nil
	case []Value:
		return FromList(y...), nil
	case []any:
		res := make([]Value, len(y))
		for i, e := range y {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return Value{kind: ListKind, ref: res}, nil
	case []string:
		res := make([]Value, len(y))
		for i, e := range y {
			res[i] = FromString(e)
		}
		return Value{kind: ListKind, ref: res}, nil
	case map[string]Value:
		return FromMap(y), nil
	case map[string]any:
		res := make([]Pair, 0, len(y))
		for k, e := range y {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			res = append(res, Pair{Key: FromString(k), Val: v})
		}
		slices.SortFunc(res, func(a, b Pair) int { return Compare(a.Key, b.Key) })
		return Value{kind: MapKind, ref: res}, nil
	case map[any]any:
		res := make([]Pair, 0, len(y))
		for k, e := range y {
			kv, err := FromAny(k)
			if err != nil {
				return Value{}, err
			}
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("%v: %w", k, err)
			}
			res = setPair(res, kv, v)
		}
		return Value{kind: MapKind, ref: res}, nil
	case *Function:
		return FromFunction(y), nil
	case Callable:
		return FromCallable(y), nil
	}
	return Value{}, fmt.Errorf("cannot convert %T to a value", x)
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%d overflows int", u)
	}
	return FromInt(int64(u)), nil
}

// fromFloat yields an int when f is integral, as JSON style decoders
// do not distinguish the two.
func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrDomain, f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return FromInt(int64(f)), nil
	}
	return FromDecimal(DecimalFromFloat(f)), nil
}

// ToAny converts v to plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any. Maps with non-string keys become
// map[any]any keyed by scalars, with containers keyed by their String
// form. Objects and functions are returned as is.
func ToAny(v Value) any {
	switch v.kind {
	case NullKind:
		return nil
	case BoolKind:
		return v.n != 0
	case IntKind:
		return v.n
	case DecimalKind:
		return Decimal(v.n).Float64()
	case StringKind:
		return v.str()
	case ListKind:
		l := v.list()
		res := make([]any, len(l))
		for i, e := range l {
			res[i] = ToAny(e)
		}
		return res
	case MapKind:
		ps := v.pairs()
		if allStringKeys(ps) {
			res := make(map[string]any, len(ps))
			for _, p := range ps {
				res[p.Key.str()] = ToAny(p.Val)
			}
			return res
		}
		res := make(map[any]any, len(ps))
		for _, p := range ps {
			var k any
			if p.Key.kind.IsLeaf() && p.Key.kind != CallableKind && p.Key.kind != FunctionKind {
				k = ToAny(p.Key)
			} else {
				k = p.Key.String()
			}
			res[k] = ToAny(p.Val)
		}
		return res
	case CallableKind:
		return v.ref.(*callableRef).c
	case FunctionKind:
		return v.ref.(*Function)
	}
	return nil
}

func allStringKeys(ps []Pair) bool {
	for _, p := range ps {
		if p.Key.kind != StringKind {
			return false
		}
	}
	return true
}
