package value

import (
	"errors"
	"math"
	"testing"
)

func TestAccessors(t *testing.T) {
	type result struct {
		i   int64
		err bool
	}
	tests := []struct {
		name string
		v    Value
		want result
	}{
		{"null", Null(), result{i: 0}},
		{"true", FromBool(true), result{i: 1}},
		{"int", FromInt(-7), result{i: -7}},
		{"decimal truncates", FromDecimal(-2750000), result{i: -2}},
		{"string", FromString("1"), result{err: true}},
		{"list", FromList(), result{err: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := tt.v.AsInt()
			if tt.want.err {
				var te *TypeError
				if !errors.As(err, &te) {
					t.Fatalf("expected type error, got %v", err)
				}
				if te.Expected != IntKind || te.Actual != tt.v.Kind() {
					t.Errorf("got %v", te)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if i != tt.want.i {
				t.Errorf("got %d want %d", i, tt.want.i)
			}
		})
	}
}

func TestNoImplicitCoercion(t *testing.T) {
	if _, err := FromInt(1).AsBool(); !errors.Is(err, ErrType) {
		t.Errorf("int as bool: %v", err)
	}
	if _, err := FromInt(1).AsString(); !errors.Is(err, ErrType) {
		t.Errorf("int as string: %v", err)
	}
	if _, err := FromString("x").AsDecimal(); !errors.Is(err, ErrType) {
		t.Errorf("string as decimal: %v", err)
	}
	if _, err := FromPairs().AsList(); !errors.Is(err, ErrType) {
		t.Errorf("map as list: %v", err)
	}
	if s, err := Null().AsString(); err != nil || s != "" {
		t.Errorf("null as string: %q %v", s, err)
	}
	d, err := FromBool(true).AsDecimal()
	if err != nil || d != DecimalFromRaw(DecimalScale) {
		t.Errorf("true as decimal: %s %v", d, err)
	}
}

func TestIntDecimalRoundTrip(t *testing.T) {
	for _, i := range []int64{0, 1, -1, 42, -1000, 1 << 40, -(1 << 40), MaxDecimalInt, -MaxDecimalInt} {
		d, err := FromInt(i).AsDecimal()
		if err != nil {
			t.Fatal(err)
		}
		got, err := FromDecimal(d).AsInt()
		if err != nil {
			t.Fatal(err)
		}
		if got != i {
			t.Errorf("%d -> %s -> %d", i, d, got)
		}
	}
}

func TestIndexing(t *testing.T) {
	l := FromList(FromInt(1), FromString("two"))
	if _, err := l.Index(2); !errors.Is(err, ErrIndex) {
		t.Errorf("index 2: %v", err)
	}
	if _, err := l.Index(-1); !errors.Is(err, ErrIndex) {
		t.Errorf("index -1: %v", err)
	}
	v, err := l.Get(FromInt(1))
	if err != nil || !Equal(v, FromString("two")) {
		t.Errorf("get 1: %v %v", v, err)
	}
	m := FromMap(map[string]Value{"hp": FromInt(10)})
	if _, err := m.Get(FromString("mp")); !errors.Is(err, ErrKey) {
		t.Errorf("missing key: %v", err)
	}
	obj := NewMapCallable("unit").Define("hp", FromInt(5), false)
	v, err = FromCallable(obj).Member("hp")
	if err != nil || !Equal(v, FromInt(5)) {
		t.Errorf("member: %v %v", v, err)
	}
	if _, err := FromInt(1).Index(0); !errors.Is(err, ErrType) {
		t.Errorf("index int: %v", err)
	}
}

func TestSlice(t *testing.T) {
	l := FromList(FromInt(0), FromInt(1), FromInt(2), FromInt(3))
	s, err := l.Slice(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(s, FromList(FromInt(1), FromInt(2))) {
		t.Errorf("got %s", s)
	}
	if err := s.Append(FromInt(9)); err != nil {
		t.Fatal(err)
	}
	if !Equal(l, FromList(FromInt(0), FromInt(1), FromInt(2), FromInt(3))) {
		t.Errorf("append to slice changed source: %s", l)
	}
	if _, err := l.Slice(3, 5); !errors.Is(err, ErrIndex) {
		t.Errorf("got %v", err)
	}
}

func TestCopyOnWrite(t *testing.T) {
	a := FromList(FromInt(1), FromInt(2))
	b := a
	if err := b.SetIndex(0, FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(FromInt(3)); err != nil {
		t.Fatal(err)
	}
	if a.String() != "[1, 2]" {
		t.Errorf("a changed: %s", a)
	}
	if b.String() != "['x', 2, 3]" {
		t.Errorf("b: %s", b)
	}

	m := FromMap(map[string]Value{"a": FromInt(1)})
	n := m
	if err := n.SetKey(FromString("b"), FromInt(2)); err != nil {
		t.Fatal(err)
	}
	ok, err := n.DeleteKey(FromString("a"))
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if m.String() != "{'a': 1}" {
		t.Errorf("m changed: %s", m)
	}
	if n.String() != "{'b': 2}" {
		t.Errorf("n: %s", n)
	}

	// AsList hands out a copy.
	items, _ := a.AsList()
	items[0] = Null()
	if a.String() != "[1, 2]" {
		t.Errorf("AsList aliased payload: %s", a)
	}
}

func TestSetKeyObject(t *testing.T) {
	obj := NewMapCallable("unit").Define("id", FromString("u1"), true)
	obj.Fixed = true
	v := FromCallable(obj)
	if err := v.SetKey(FromString("id"), FromString("u2")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("read only: %v", err)
	}
	if err := v.SetKey(FromString("hp"), FromInt(1)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown: %v", err)
	}
	if !obj.IsA("unit") || obj.IsA("item") {
		t.Errorf("IsA")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Null(), false},
		{FromInt(0), false},
		{FromDecimal(1), true},
		{FromString(""), false},
		{FromString("a"), true},
		{FromList(), false},
		{FromPairs(Pair{Null(), Null()}), true},
	}
	for _, tt := range tests {
		if got := tt.v.Truthy(); got != tt.want {
			t.Errorf("%s: got %v", tt.v, got)
		}
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"n":    nil,
		"i":    3,
		"f":    2.5,
		"fi":   4.0,
		"list": []any{"a", true},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "{'f': 2.5, 'fi': 4, 'i': 3, 'list': ['a', true], 'n': null}"
	if got := v.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error")
	}
}

func TestIntDecimalOverflow(t *testing.T) {
	for _, i := range []int64{MaxDecimalInt + 1, -MaxDecimalInt - 1, 1e13, math.MaxInt64, math.MinInt64} {
		if d, err := FromInt(i).AsDecimal(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%d as decimal: got %s, %v", i, d, err)
		}
	}
	half, err := ParseDecimal("0.5")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := Add(FromInt(1e13), FromDecimal(half)); !errors.Is(err, ErrOverflow) {
		t.Errorf("1e13 + 0.5: got %s, %v", v, err)
	}
	if c := Compare(FromInt(1e13), FromDecimal(DecimalFromRaw(math.MaxInt64))); c != 1 {
		t.Errorf("1e13 vs max decimal: got %d", c)
	}
}
