package ffl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/schema"
	"github.com/signadot/ffl/value"
	"github.com/signadot/ffl/vm"
)

func testRuntime(t *testing.T) *Runtime {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.toml")
	err := os.WriteFile(path, []byte("[[classes]]\nname = \"unit\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(WithClassFile(path), WithClasses(schema.ClassSpec{Name: "archer", Parent: "unit"}))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRuntimeMatch(t *testing.T) {
	r := testRuntime(t)
	if !r.Context().Classes.Frozen() {
		t.Error("registry not frozen")
	}
	archer, err := r.NewObject("archer", map[string]value.Value{"hp": value.FromInt(3)})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := r.Match(value.FromCallable(archer), "class unit")
	if err != nil || !ok {
		t.Errorf("archer is not a unit: %v", err)
	}
	if _, err := r.Match(value.Null(), "class knight"); !errors.Is(err, schema.ErrClassNotFound) {
		t.Errorf("got %v", err)
	}
	err = r.Check("hp", value.FromString("x"), "int|decimal")
	var me *MismatchError
	if !errors.As(err, &me) || !errors.Is(err, value.ErrType) {
		t.Errorf("got %v", err)
	}
	d1, _ := r.Type("[int]")
	d2, _ := r.Type("[int]")
	if d1 != d2 {
		t.Error("type not cached")
	}
	ok, err = r.Compatible("[decimal]", "[int]")
	if err != nil || !ok {
		t.Errorf("got %t, %v", ok, err)
	}
}

func TestRuntimeCall(t *testing.T) {
	r := testRuntime(t)
	code, err := eval.Compile("a * b")
	if err != nil {
		t.Fatal(err)
	}
	f, err := r.Function("def(int, int=2) -> int", []string{"a", "b"}, code)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Call(f, value.FromInt(21))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.FromInt(42)) {
		t.Errorf("got %s", got)
	}
	if _, err := r.Call(f, value.FromString("x")); !errors.Is(err, value.ErrType) {
		t.Errorf("got %v", err)
	}
	if _, err := r.Function("int", nil, code); !errors.Is(err, value.ErrType) {
		t.Errorf("got %v", err)
	}
	if _, err := r.Function("def(int)", nil, code); !errors.Is(err, value.ErrArity) {
		t.Errorf("got %v", err)
	}
}

func TestRuntimeRun(t *testing.T) {
	r := testRuntime(t)
	p, err := vm.NewBuilder().Int(300).Lookup("bonus").Op(vm.OP_ADD).Program()
	if err != nil {
		t.Fatal(err)
	}
	env := value.NewMapCallable().Define("bonus", value.FromInt(12), true)
	got, err := r.Run(p, env, "int", vm.Strict())
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.FromInt(312)) {
		t.Errorf("got %s", got)
	}
	if _, err := r.Run(p, env, "string"); !errors.Is(err, value.ErrType) {
		t.Errorf("got %v", err)
	}
}
