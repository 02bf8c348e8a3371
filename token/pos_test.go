package token

import (
	"errors"
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncd\n\nx"))
	tests := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
	}
	for _, tc := range tests {
		l, c := d.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", tc.off, l, c, tc.line, tc.col)
		}
		if off := d.Offset(l, c); off != tc.off {
			t.Errorf("Offset(%d, %d) = %d want %d", l, c, off, tc.off)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Tokenize(nil, []byte("x\n  'abc"))
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %v", err)
	}
	if te.Pos.Line() != 1 || te.Pos.Col() != 2 {
		t.Errorf("got line %d col %d", te.Pos.Line(), te.Pos.Col())
	}
	if msg := err.Error(); !strings.Contains(msg, "(line=2, col=3)") {
		t.Errorf("message %q does not report 1-based line 2 col 3", msg)
	}
}

func TestUnexpectedByteMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "é", want: "unexpected byte 0xc3"},
		{in: "a\xffb", want: "unexpected byte 0xff"},
		{in: "a @ b", want: "unexpected '@'"},
	}
	for _, tc := range tests {
		_, err := Tokenize(nil, []byte(tc.in))
		if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%q: message %q does not contain %q", tc.in, err.Error(), tc.want)
		}
	}
}
