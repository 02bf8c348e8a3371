package schema

import (
	"testing"

	"github.com/signadot/ffl/value"
)

type testCommand struct {
	*value.MapCallable
}

func (testCommand) Execute(value.Callable) error { return nil }

func TestMatch(t *testing.T) {
	ctx := testContext(t)
	archer, err := ctx.NewObject("archer")
	if err != nil {
		t.Fatal(err)
	}
	unit, err := ctx.NewObject("unit")
	if err != nil {
		t.Fatal(err)
	}
	ints := value.FromList(value.FromInt(1), value.FromInt(2))
	mixed := value.FromList(value.FromInt(1), value.FromString("a"))
	counts := value.FromMap(map[string]value.Value{"a": value.FromInt(1)})
	half := value.FromDecimal(value.DecimalFromRaw(500000))
	cmd := value.FromCallable(testCommand{value.NewMapCallable("command")})
	inc := &value.Function{
		Code:   value.CodeFunc(func(value.Callable) (value.Value, error) { return value.Null(), nil }),
		Params: []string{"x"},
	}
	typed := &value.Function{
		Code:      inc.Code,
		Params:    []string{"x", "y"},
		Signature: mustParse(t, ctx, "def(int, int) -> int"),
	}

	tests := []struct {
		typ  string
		v    value.Value
		want bool
	}{
		{"int", value.FromInt(1), true},
		{"int", half, false},
		{"decimal", value.FromInt(1), true},
		{"decimal", half, true},
		{"bool", value.FromInt(1), false},
		{"null", value.Null(), true},
		{"int|bool", value.True, true},
		{"int|bool", value.FromString("x"), false},
		{"any", value.FromString("x"), true},
		{"[int]", ints, true},
		{"[int]", mixed, false},
		{"[int|string]", mixed, true},
		{"[int]", value.FromList(), true},
		{"list", mixed, true},
		{"[int]", counts, false},
		{"{string -> int}", counts, true},
		{"{int -> int}", counts, false},
		{"map", counts, true},
		{"class unit", value.FromCallable(archer), true},
		{"class archer", value.FromCallable(unit), false},
		{"class mage", value.FromCallable(archer), false},
		{"object", value.FromCallable(archer), true},
		{"class unit", counts, false},
		{"def(any) -> any", value.FromFunction(inc), true},
		{"def(int) -> any", value.FromFunction(inc), false},
		{"def(any, any) -> any", value.FromFunction(inc), false},
		{"function", value.FromFunction(inc), true},
		{"def(int, int) -> int", value.FromFunction(typed), true},
		{"def(int, int) -> bool", value.FromFunction(typed), false},
		{"commands", value.Null(), true},
		{"commands", cmd, true},
		{"commands", value.FromList(cmd, cmd), true},
		{"commands", value.FromCallable(archer), false},
		{"commands", value.FromInt(1), false},
	}
	for _, tc := range tests {
		t.Run(tc.typ+" "+tc.v.String(), func(t *testing.T) {
			d := mustParse(t, ctx, tc.typ)
			if got := d.Match(tc.v); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestMatchBoundSignature(t *testing.T) {
	ctx := testContext(t)
	f := &value.Function{
		Code:      value.CodeFunc(func(value.Callable) (value.Value, error) { return value.Null(), nil }),
		Params:    []string{"x", "y"},
		Signature: mustParse(t, ctx, "def(int, string) -> int"),
	}
	g, err := f.Bind(value.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if !mustParse(t, ctx, "def(string) -> int").Match(value.FromFunction(g)) {
		t.Errorf("bound function does not match its remaining signature")
	}
	if got := Signature(g).String(); got != "def(string) -> int" {
		t.Errorf("got %s", got)
	}
}

func TestEmptyUnion(t *testing.T) {
	d := Union()
	for _, v := range []value.Value{value.Null(), value.FromInt(1)} {
		if d.Match(v) {
			t.Errorf("empty union matches %s", v)
		}
	}
}
