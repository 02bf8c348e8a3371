package value

import (
	"errors"
	"testing"
)

func dec(s string) Value {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return FromDecimal(d)
}

func TestArith(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b Value
		want Value
		err  error
	}{
		{"int add", OpAdd, FromInt(2), FromInt(3), FromInt(5), nil},
		{"mixed add promotes", OpAdd, FromInt(2), dec("0.5"), dec("2.5"), nil},
		{"string concat", OpAdd, FromString("ab"), FromString("c"), FromString("abc"), nil},
		{"list concat", OpAdd, FromList(FromInt(1)), FromList(FromInt(2)), FromList(FromInt(1), FromInt(2)), nil},
		{"string plus int", OpAdd, FromString("a"), FromInt(1), Value{}, ErrType},
		{"map plus map", OpAdd, FromPairs(), FromPairs(), Value{}, ErrType},
		{"null plus int", OpAdd, Null(), FromInt(1), Value{}, ErrType},
		{"bool plus int", OpAdd, FromBool(true), FromInt(1), Value{}, ErrType},
		{"sub", OpSub, dec("1.25"), FromInt(2), dec("-0.75"), nil},
		{"mul", OpMul, FromInt(-4), FromInt(3), FromInt(-12), nil},
		{"decimal mul", OpMul, dec("0.5"), dec("0.5"), dec("0.25"), nil},
		{"int div truncates", OpDiv, FromInt(7), FromInt(2), FromInt(3), nil},
		{"negative int div", OpDiv, FromInt(-7), FromInt(2), FromInt(-3), nil},
		{"decimal div", OpDiv, FromInt(7), dec("2.0"), dec("3.5"), nil},
		{"div zero", OpDiv, FromInt(1), FromInt(0), Value{}, ErrDivideByZero},
		{"decimal div zero", OpDiv, dec("1.0"), FromInt(0), Value{}, ErrDivideByZero},
		{"mod", OpMod, FromInt(7), FromInt(3), FromInt(1), nil},
		{"decimal mod", OpMod, dec("7.5"), FromInt(2), dec("1.5"), nil},
		{"mod zero", OpMod, FromInt(7), FromInt(0), Value{}, ErrDivideByZero},
		{"pow", OpPow, FromInt(2), FromInt(10), FromInt(1024), nil},
		{"pow negative", OpPow, FromInt(2), FromInt(-2), dec("0.25"), nil},
		{"pow zero negative", OpPow, FromInt(0), FromInt(-1), Value{}, ErrDivideByZero},
		{"decimal pow", OpPow, dec("1.5"), FromInt(2), dec("2.25"), nil},
		{"sqrt", OpPow, FromInt(4), dec("0.5"), dec("2.0"), nil},
		{"negative sqrt", OpPow, FromInt(-4), dec("0.5"), Value{}, ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.a, tt.b)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("got err %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) || got.Kind() != tt.want.Kind() {
				t.Errorf("got %s (%s), want %s (%s)", got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestNeg(t *testing.T) {
	v, err := Neg(FromInt(3))
	if err != nil || !Equal(v, FromInt(-3)) {
		t.Errorf("got %s %v", v, err)
	}
	v, err = Neg(dec("1.5"))
	if err != nil || v.String() != "-1.5" {
		t.Errorf("got %s %v", v, err)
	}
	var te *TypeError
	if _, err := Neg(FromString("a")); !errors.As(err, &te) || te.Actual != StringKind {
		t.Errorf("got %v", err)
	}
}
