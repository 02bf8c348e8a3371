package eval

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

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		vars map[string]value.Value
		want value.Value
	}{
		{src: "1", want: value.FromInt(1)},
		{src: "1 + 2", want: value.FromInt(3)},
		{src: "3.0", want: dec("3.0")},
		{src: "1.5 * 2", want: dec("3")},
		{src: "'ab' + 'c'", want: value.FromString("abc")},
		{src: "null", want: value.Null()},
		{src: "true and false", want: value.False},
		{src: "[1, 2]", want: value.FromList(value.FromInt(1), value.FromInt(2))},
		{src: "{'a': 1}", want: value.FromMap(map[string]value.Value{"a": value.FromInt(1)})},
		{src: "x * 2", vars: map[string]value.Value{"x": value.FromInt(21)}, want: value.FromInt(42)},
		{src: "decimal('1.25')", want: dec("1.25")},
		{src: "1 + #two# 2", want: value.FromInt(3)},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(tc.src, tc.vars)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, valueComparer); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval("1 +", nil); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v, want compile error", err)
	}
	if _, err := Eval("decimal(true)", nil); !errors.Is(err, ErrRun) {
		t.Errorf("got %v, want run error", err)
	}
}

func TestExecute(t *testing.T) {
	p, err := Compile("a + b")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, p.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	f := &value.Function{
		Code:     p,
		Params:   []string{"a", "b"},
		Defaults: []value.Value{value.FromInt(10)},
	}
	got, err := f.Call(value.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.FromInt(11)) {
		t.Errorf("got %s, want 11", got)
	}
}

func TestObjectBuiltins(t *testing.T) {
	obj := value.NewMapCallable("point", "base").
		Define("x", value.FromInt(4), false)
	vars := map[string]value.Value{"p": value.FromCallable(obj)}
	got, err := Eval("field(p, 'x')", vars)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.FromInt(4)) {
		t.Errorf("got %s, want 4", got)
	}
	got, err = Eval("is_a(p, 'base')", vars)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.True) {
		t.Errorf("got %s, want true", got)
	}
}

func TestBuiltins(t *testing.T) {
	var names []string
	for _, b := range Builtins() {
		names = append(names, b.Name)
	}
	if diff := cmp.Diff([]string{"decimal", "field", "getenv", "is_a"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Register(&Builtin{Name: "decimal"}); !errors.Is(err, ErrBuiltinExists) {
		t.Errorf("got %v, want ErrBuiltinExists", err)
	}
	if Lookup("getenv") == nil {
		t.Error("getenv not found")
	}
}
