package schema

import (
	"testing"
)

// testContext returns a context with the classes
//
//	unit
//	archer < unit
//	mage < unit
func testContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext()
	err := ctx.Classes.Load([]ClassSpec{
		{Name: "archer", Parent: "unit"},
		{Name: "unit"},
		{Name: "mage", Parent: "unit"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func mustParse(t *testing.T, ctx *Context, s string) *Descriptor {
	t.Helper()
	d, err := Parse(ctx, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}
