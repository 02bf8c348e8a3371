package vm

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ffl/value"
)

func TestBuilderInt(t *testing.T) {
	tests := []struct {
		n    int64
		code []byte
	}{
		{0, []byte{PUSH_INT_0}},
		{5, []byte{PUSH_INT_5}},
		{6, []byte{PUSH_INT_1B, 6}},
		{100, []byte{PUSH_INT_100}},
		{255, []byte{PUSH_INT_1B, 255}},
		{256, []byte{PUSH_INT_3B, 0, 1, 0}},
		{1000, []byte{PUSH_INT_1000}},
		{-1, []byte{PUSH_INT_NEGATIVE_1B, 1}},
		{-255, []byte{PUSH_INT_NEGATIVE_1B, 255}},
		{-256, []byte{PUSH_INT_3B, 0, 1, 0, OP_UNARY_NEGATIVE}},
		{1 << 24, []byte{PUSH_CONST, 0, 0}},
	}
	for _, tc := range tests {
		p, err := NewBuilder().Int(tc.n).Program()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.code, p.Code()); diff != "" {
			t.Errorf("%d (-want +got):\n%s", tc.n, diff)
		}
		got, err := p.Run(nil, Strict())
		if err != nil {
			t.Fatal(err)
		}
		if !value.Equal(got, value.FromInt(tc.n)) {
			t.Errorf("%d ran to %s", tc.n, got)
		}
	}
}

func TestBuilderConsts(t *testing.T) {
	p, err := NewBuilder().
		Value(value.FromString("a")).
		Value(value.FromString("a")).
		Value(value.FromInt(math.MaxInt64)).
		Op(OP_POW).
		Program()
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Consts()) != 2 {
		t.Errorf("got %d constants, want 2", len(p.Consts()))
	}
	if _, err := NewBuilder().Const(value.FromCallable(value.NewMapCallable())).Program(); !errors.Is(err, ErrNotEncodable) {
		t.Errorf("got %v, want ErrNotEncodable", err)
	}
}

func TestAssemble(t *testing.T) {
	src := `
# hit points with a bonus
LOOKUP hp
PUSH 1.5
OP_MUL
PUSH_INT_1B 20
OP_SUB
PUSH_CONST "unused"
`
	p, err := Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	env := value.NewMapCallable().Define("hp", value.FromInt(40), false)
	got, err := p.Run(env)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(dec("40"), got, valueComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	want := `0000 LOOKUP               hp
0003 PUSH_CONST           1.5
0006 OP_MUL
0007 PUSH_INT_1B          20
0009 OP_SUB
0010 PUSH_CONST           "unused"
`
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("disassembly (-want +got):\n%s", diff)
	}
	again, err := Assemble(p.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p.Code(), again.Code()); diff != "" {
		t.Errorf("reassembly (-want +got):\n%s", diff)
	}
}

func TestAssembleErrors(t *testing.T) {
	for _, src := range []string{
		"PUSH_INT_7",
		"PUSH_INT_1B 256",
		"PUSH_INT_1B",
		"OP_ADD 1",
		"LOOKUP",
		"PUSH {",
		"PUSH_INT_1\nOP_ADD",
	} {
		_, err := Assemble(src)
		if err == nil {
			t.Errorf("%q assembled", src)
			continue
		}
		if strings.Contains(src, "\n") {
			if !errors.Is(err, ErrStackFault) {
				t.Errorf("%q: got %v, want a stack fault", src, err)
			}
			continue
		}
		if !errors.Is(err, ErrAssemble) {
			t.Errorf("%q: got %v, want ErrAssemble", src, err)
		}
	}
}

func TestOpName(t *testing.T) {
	for op := range ops {
		got, ok := OpByName(OpName(op))
		if !ok || got != op {
			t.Errorf("%s does not round trip", OpName(op))
		}
	}
	if OpName(0xfe) != "OP_0xFE" {
		t.Errorf("got %s", OpName(0xfe))
	}
}
