package value

import (
	"fmt"
	"math"
)

// Op identifies a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpMod Op = '%'
	OpPow Op = '^'
)

func (o Op) String() string { return string(o) }

// Apply evaluates a op b.
func Apply(op Op, a, b Value) (Value, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	case OpDiv:
		return Div(a, b)
	case OpMod:
		return Mod(a, b)
	case OpPow:
		return Pow(a, b)
	}
	return Value{}, fmt.Errorf("unknown operator %q", byte(op))
}

// Add adds numbers and concatenates strings or lists.
func Add(a, b Value) (Value, error) {
	switch a.kind {
	case StringKind:
		if b.kind != StringKind {
			return Value{}, typeErr("+", StringKind, b.kind)
		}
		return FromString(a.str() + b.str()), nil
	case ListKind:
		if b.kind != ListKind {
			return Value{}, typeErr("+", ListKind, b.kind)
		}
		l, r := a.list(), b.list()
		res := make([]Value, 0, len(l)+len(r))
		res = append(append(res, l...), r...)
		return Value{kind: ListKind, ref: res}, nil
	}
	return numeric(OpAdd, a, b,
		func(x, y int64) (Value, error) { return FromInt(x + y), nil },
		func(x, y Decimal) (Value, error) { return FromDecimal(x.Add(y)), nil })
}

func Sub(a, b Value) (Value, error) {
	return numeric(OpSub, a, b,
		func(x, y int64) (Value, error) { return FromInt(x - y), nil },
		func(x, y Decimal) (Value, error) { return FromDecimal(x.Sub(y)), nil })
}

func Mul(a, b Value) (Value, error) {
	return numeric(OpMul, a, b,
		func(x, y int64) (Value, error) { return FromInt(x * y), nil },
		func(x, y Decimal) (Value, error) { return FromDecimal(x.Mul(y)), nil })
}

// Div divides; int by int truncates toward zero.
func Div(a, b Value) (Value, error) {
	return numeric(OpDiv, a, b,
		func(x, y int64) (Value, error) {
			if y == 0 {
				return Value{}, ErrDivideByZero
			}
			return FromInt(x / y), nil
		},
		func(x, y Decimal) (Value, error) {
			d, err := x.Div(y)
			if err != nil {
				return Value{}, err
			}
			return FromDecimal(d), nil
		})
}

func Mod(a, b Value) (Value, error) {
	return numeric(OpMod, a, b,
		func(x, y int64) (Value, error) {
			if y == 0 {
				return Value{}, ErrDivideByZero
			}
			return FromInt(x % y), nil
		},
		func(x, y Decimal) (Value, error) {
			d, err := x.Mod(y)
			if err != nil {
				return Value{}, err
			}
			return FromDecimal(d), nil
		})
}

// Pow raises a to the power b. An int raised to a non-negative int is
// an int; a negative int exponent yields a decimal.
func Pow(a, b Value) (Value, error) {
	return numeric(OpPow, a, b,
		func(x, y int64) (Value, error) {
			if y >= 0 {
				return FromInt(ipow(x, y)), nil
			}
			if x == 0 {
				return Value{}, ErrDivideByZero
			}
			return FromDecimal(DecimalFromFloat(math.Pow(float64(x), float64(y)))), nil
		},
		func(x, y Decimal) (Value, error) {
			d, err := decimalPow(x, y)
			if err != nil {
				return Value{}, err
			}
			return FromDecimal(d), nil
		})
}

// Neg negates a number.
func Neg(a Value) (Value, error) {
	switch a.kind {
	case IntKind:
		return FromInt(-a.n), nil
	case DecimalKind:
		return FromDecimal(Decimal(a.n).Neg()), nil
	}
	return Value{}, typeErr("-", IntKind, a.kind)
}

func numeric(op Op, a, b Value, fi func(x, y int64) (Value, error), fd func(x, y Decimal) (Value, error)) (Value, error) {
	if !a.kind.IsNumeric() {
		return Value{}, typeErr(op.String(), IntKind, a.kind)
	}
	if !b.kind.IsNumeric() {
		return Value{}, typeErr(op.String(), a.kind, b.kind)
	}
	if a.kind == IntKind && b.kind == IntKind {
		return fi(a.n, b.n)
	}
	x, err := a.AsDecimal()
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", op, err)
	}
	y, err := b.AsDecimal()
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", op, err)
	}
	return fd(x, y)
}

func ipow(x, y int64) int64 {
	res := int64(1)
	for y > 0 {
		if y&1 == 1 {
			res *= x
		}
		x *= x
		y >>= 1
	}
	return res
}

func decimalPow(x, y Decimal) (Decimal, error) {
	if y.IsInteger() && y.Int() >= -64 && y.Int() <= 64 {
		n := y.Int()
		if n < 0 && x == 0 {
			return 0, ErrDivideByZero
		}
		one := DecimalFromRaw(DecimalScale)
		res := one
		for i := int64(0); i < abs(n); i++ {
			res = res.Mul(x)
		}
		if n < 0 {
			return one.Div(res)
		}
		return res, nil
	}
	f := math.Pow(x.Float64(), y.Float64())
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s ^ %s", ErrDomain, x, y)
	}
	if math.IsInf(f, 0) {
		return 0, ErrDivideByZero
	}
	return DecimalFromFloat(f), nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
