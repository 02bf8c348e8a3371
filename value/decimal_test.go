package value

import "testing"

func TestDecimalString(t *testing.T) {
	tests := []struct {
		raw  int64
		want string
	}{
		{0, "0.0"},
		{9876000, "9.876"},
		{3000000, "3.0"},
		{-250000, "-0.25"},
		{1, "0.000001"},
		{-1, "-0.000001"},
		{-9223372036854775808, "-9223372036854.775808"},
	}
	for _, tt := range tests {
		if got := DecimalFromRaw(tt.raw).String(); got != tt.want {
			t.Errorf("%d: got %q want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		err  bool
	}{
		{"3.14", 3140000, false},
		{"-0.5", -500000, false},
		{"1e3", 1000000000, false},
		{"0.0000019", 1, false},
		{"-0.0000019", -1, false},
		{"abc", 0, true},
		{"1e20", 0, true},
	}
	for _, tt := range tests {
		d, err := ParseDecimal(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if d.Raw() != tt.want {
			t.Errorf("%s: got %d want %d", tt.in, d.Raw(), tt.want)
		}
	}
}

func TestDecimalMulDiv(t *testing.T) {
	a, _ := ParseDecimal("1.5")
	b, _ := ParseDecimal("-2.25")
	if got := a.Mul(b).String(); got != "-3.375" {
		t.Errorf("mul: %s", got)
	}
	q, err := b.Div(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.String(); got != "-1.5" {
		t.Errorf("div: %s", got)
	}
	third, _ := DecimalFromRaw(DecimalScale).Div(DecimalFromRaw(3 * DecimalScale))
	if got := third.String(); got != "0.333333" {
		t.Errorf("1/3: %s", got)
	}
	if _, err := a.Div(0); err != ErrDivideByZero {
		t.Errorf("div 0: %v", err)
	}
}
