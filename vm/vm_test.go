package vm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ffl/value"
)

var valueComparer = cmp.Comparer(value.Equal)

func dec(s string) value.Value {
	d, err := value.ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return value.FromDecimal(d)
}

func run(t *testing.T, code []byte, opts ...RunOption) value.Value {
	t.Helper()
	p, err := Load(code, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Run(nil, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestResultSlot(t *testing.T) {
	// the result is the bottom of the stack, not the top
	got := run(t, []byte{PUSH_INT_3, PUSH_INT_2, OP_UNARY_NEGATIVE})
	if diff := cmp.Diff(value.FromInt(3), got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	p, err := Load([]byte{PUSH_INT_3, PUSH_INT_2, OP_UNARY_NEGATIVE}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(nil, Strict()); !errors.Is(err, ErrResidual) {
		t.Errorf("got %v, want ErrResidual", err)
	}
}

func TestPush(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want value.Value
	}{
		{"empty", nil, value.Null()},
		{"null", []byte{PUSH_NULL}, value.Null()},
		{"0", []byte{PUSH_INT_0}, value.FromInt(0)},
		{"5", []byte{PUSH_INT_5}, value.FromInt(5)},
		{"100", []byte{PUSH_INT_100}, value.FromInt(100)},
		{"1000", []byte{PUSH_INT_1000}, value.FromInt(1000)},
		{"1B", []byte{PUSH_INT_1B, 200}, value.FromInt(200)},
		{"negative 1B", []byte{PUSH_INT_NEGATIVE_1B, 200}, value.FromInt(-200)},
		{"3B", []byte{PUSH_INT_3B, 0x01, 0x02, 0x03}, value.FromInt(0x010203)},
		{"3B max", []byte{PUSH_INT_3B, 0xff, 0xff, 0xff}, value.FromInt(1<<24 - 1)},
		{"negate", []byte{PUSH_INT_4, OP_UNARY_NEGATIVE}, value.FromInt(-4)},
		{"true", []byte{PUSH_TRUE}, value.True},
		{"false", []byte{PUSH_FALSE}, value.False},
		{"add", []byte{PUSH_INT_2, PUSH_INT_3, OP_ADD}, value.FromInt(5)},
		{"sub", []byte{PUSH_INT_2, PUSH_INT_3, OP_SUB}, value.FromInt(-1)},
		{"mul", []byte{PUSH_INT_100, PUSH_INT_3, OP_MUL}, value.FromInt(300)},
		{"div", []byte{PUSH_INT_100, PUSH_INT_5, OP_DIV}, value.FromInt(20)},
		{"mod", []byte{PUSH_INT_100, PUSH_INT_3, OP_MOD}, value.FromInt(1)},
		{"pow", []byte{PUSH_INT_2, PUSH_INT_5, OP_POW}, value.FromInt(32)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, tc.code, Strict())
			if diff := cmp.Diff(tc.want, got, valueComparer); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got.Kind() != tc.want.Kind() {
				t.Errorf("got kind %s, want %s", got.Kind(), tc.want.Kind())
			}
		})
	}
}

func TestLoadFaults(t *testing.T) {
	tests := []struct {
		name   string
		code   []byte
		offset int
		err    error
	}{
		{"unknown", []byte{PUSH_INT_1, 0xfe}, 1, ErrBadOpcode},
		{"truncated 1B", []byte{PUSH_INT_1B}, 0, ErrTruncated},
		{"truncated 3B", []byte{PUSH_INT_0, PUSH_INT_3B, 1, 2}, 1, ErrTruncated},
		{"negate empty", []byte{OP_UNARY_NEGATIVE}, 0, ErrUnderflow},
		{"add one", []byte{PUSH_INT_1, OP_ADD}, 1, ErrUnderflow},
		{"const", []byte{PUSH_CONST, 0, 0}, 0, ErrBadConstant},
		{"name", []byte{LOOKUP, 0, 1}, 0, ErrBadName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.code, nil, nil)
			var f *StackFault
			if !errors.As(err, &f) {
				t.Fatalf("got %v, want a stack fault", err)
			}
			if f.Offset != tc.offset {
				t.Errorf("got offset %d, want %d", f.Offset, tc.offset)
			}
			if !errors.Is(err, tc.err) || !errors.Is(err, ErrStackFault) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestOverflow(t *testing.T) {
	code := make([]byte, StackSize+1)
	for i := range code {
		code[i] = PUSH_NULL
	}
	if _, err := Load(code, nil, nil); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	p, err := Load(code[:StackSize], nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Depth() != StackSize {
		t.Errorf("got depth %d", p.Depth())
	}
}

func TestLookup(t *testing.T) {
	env := value.NewMapCallable().
		Define("hp", value.FromInt(40), false).
		Define("bonus", dec("1.5"), false)
	p, err := NewBuilder().Lookup("hp").Lookup("bonus").Op(OP_MUL).Program()
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Run(env, Strict())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(dec("60"), got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = p.Run(nil)
	if err == nil {
		t.Errorf("null * null gave %s", got)
	}
}

func TestRuntimeError(t *testing.T) {
	p, err := NewBuilder().Int(1).Int(0).Op(OP_DIV).Program()
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Run(nil)
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("got %v", err)
	}
	if re.Op != OP_DIV || re.Offset != 2 {
		t.Errorf("got %s at %d", OpName(re.Op), re.Offset)
	}
	if !errors.Is(err, value.ErrDivideByZero) {
		t.Errorf("got %v, want divide by zero", err)
	}
}

func TestFunction(t *testing.T) {
	p, err := NewBuilder().Lookup("x").Lookup("y").Op(OP_ADD).Program()
	if err != nil {
		t.Fatal(err)
	}
	f := &value.Function{Code: p, Params: []string{"x", "y"}}
	got, err := f.Call(value.FromInt(2), value.FromInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.FromInt(5)) {
		t.Errorf("got %s, want 5", got)
	}
}

func TestTrace(t *testing.T) {
	var ips []int
	run(t, []byte{PUSH_INT_1B, 7, PUSH_INT_1, OP_ADD}, Trace(func(ti TraceInfo) {
		ips = append(ips, ti.IP)
	}))
	if diff := cmp.Diff([]int{0, 2, 3}, ips); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
