package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
)

func TestParseString(t *testing.T) {
	ctx := testContext(t)
	tests := []struct {
		in, out string
	}{
		{"int", "int"},
		{"any", "any"},
		{"commands", "commands"},
		{"int|bool", "int|bool"},
		{"int | int", "int"},
		{"int|any", "any"},
		{"[int]", "[int]"},
		{"[[string]]", "[[string]]"},
		{"{string -> int|null}", "{string -> int|null}"},
		{"class archer", "class archer"},
		{"object", "object"},
		{"def()", "def() -> any"},
		{"def(int, string) -> bool", "def(int, string) -> bool"},
		{"def(int, decimal=1.5) -> [int]", "def(int, decimal=1.5) -> [int]"},
		{"def(def(int) -> int) -> int", "def(def(int) -> int) -> int"},
		{"  [ int ]  ", "[int]"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d := mustParse(t, ctx, tc.in)
			if got := d.String(); got != tc.out {
				t.Errorf("got %q, want %q", got, tc.out)
			}
			again := mustParse(t, ctx, d.String())
			if !IsEqual(d, again) {
				t.Errorf("%s does not round trip", d)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	ctx := testContext(t)
	d := mustParse(t, ctx, "def(int, decimal=1.5, string='x') -> bool")
	if d.Kind() != FunctionKind {
		t.Fatalf("got kind %s", d.Kind())
	}
	if len(d.Args()) != 3 {
		t.Errorf("got %d args, want 3", len(d.Args()))
	}
	if d.MinArgs() != 1 {
		t.Errorf("got min args %d, want 1", d.MinArgs())
	}
	want := []value.Value{value.FromDecimal(value.DecimalFromRaw(1500000)), value.FromString("x")}
	if diff := cmp.Diff(want, d.Defaults(), cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("defaults (-want +got):\n%s", diff)
	}
	if !IsEqual(d.Return(), Simple(value.BoolKind)) {
		t.Errorf("got return %s", d.Return())
	}

	d = mustParse(t, ctx, "def(decimal=3.0)")
	v := d.Defaults()[0]
	if v.Kind() != value.DecimalKind {
		t.Errorf("default 3.0 has kind %s, want decimal", v.Kind())
	}
}

func TestParseErrors(t *testing.T) {
	ctx := testContext(t)
	tests := []struct {
		in        string
		line, col int
	}{
		{"", 1, 1},
		{"[int", 1, 5},
		{"{int}", 1, 5},
		{"int |\n  strin", 2, 3},
		{"int int", 1, 5},
		{"def(int=1, int)", 1, 15},
		{"def(int='x')", 1, 9},
		{"def(int=)", 1, 9},
		{"'abc", 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(ctx, tc.in)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("got %v, want a parse error", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("got %T", err)
			}
			if pe.Line != tc.line || pe.Col != tc.col {
				t.Errorf("got %d:%d, want %d:%d (%v)", pe.Line, pe.Col, tc.line, tc.col, err)
			}
		})
	}
}

func TestParseUnknownClass(t *testing.T) {
	ctx := testContext(t)
	_, err := Parse(ctx, "[class knight]")
	var cnf *ClassNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("got %v, want ClassNotFoundError", err)
	}
	if cnf.Name != "knight" {
		t.Errorf("got %q", cnf.Name)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("%v is not a parse error", err)
	}
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile(NewContext(), "types.ffl", []byte("[int"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.File != "types.ffl" {
		t.Fatalf("got %v", err)
	}
}

func TestTryParseTokens(t *testing.T) {
	ctx := testContext(t)
	src := []byte("x: [int] = 3")
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	toks = token.Significant(toks)
	d, j, ok := TryParseTokens(ctx, src, toks, 2)
	if !ok {
		t.Fatal("expected a type at 2")
	}
	if d.String() != "[int]" || j != 5 {
		t.Errorf("got %s, %d", d, j)
	}
	_, j, ok = TryParseTokens(ctx, src, toks, 0)
	if ok || j != 0 {
		t.Errorf("x parsed as a type")
	}
}

func TestParseFileLexPosition(t *testing.T) {
	_, err := ParseFile(NewContext(), "types.ffl", []byte("[int,\n  'str"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Line != 2 || pe.Col != 3 {
		t.Errorf("got %d:%d, want 2:3", pe.Line, pe.Col)
	}
	msg := err.Error()
	for _, want := range []string{"types.ffl:2:3:", "(line=2, col=3)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}
}
