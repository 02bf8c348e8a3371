package eval

import (
	"fmt"
	"os"

	"github.com/signadot/ffl/value"
)

func builtins() []*Builtin {
	return []*Builtin{
		{
			Name: "decimal",
			Fn: func(params ...any) (any, error) {
				switch x := params[0].(type) {
				case string:
					return value.ParseDecimal(x)
				case int:
					return value.DecimalFromInt(int64(x))
				case int64:
					return value.DecimalFromInt(x)
				case float64:
					return value.DecimalFromFloat(x), nil
				case value.Decimal:
					return x, nil
				}
				return nil, fmt.Errorf("decimal: cannot convert %T", params[0])
			},
			Types: []any{new(func(any) value.Decimal)},
		},
		{
			Name: "getenv",
			Fn: func(params ...any) (any, error) {
				return os.Getenv(params[0].(string)), nil
			},
			Types: []any{new(func(string) string)},
		},
		{
			Name: "field",
			Fn: func(params ...any) (any, error) {
				c, ok := params[0].(value.Callable)
				if !ok {
					return nil, fmt.Errorf("field: expected an object, got %T", params[0])
				}
				return toAny(c.Get(params[1].(string))), nil
			},
			Types: []any{new(func(any, string) any)},
		},
		{
			Name: "is_a",
			Fn: func(params ...any) (any, error) {
				c, ok := params[0].(value.Callable)
				return ok && c.IsA(params[1].(string)), nil
			},
			Types: []any{new(func(any, string) bool)},
		},
	}
}
