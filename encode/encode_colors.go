package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	CommentColor
	KeywordColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range value.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
		able.Attr = KeywordColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = value.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = value.DecimalKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Kind = value.IntKind
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Kind = value.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = value.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = value.CallableKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Kind = value.FunctionKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Kind = value.MapKind
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = value.StringKind
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// TokenColorable classifies t by what it denotes. Whitespace has no
// class.
func TokenColorable(t *token.Token) (Colorable, bool) {
	switch t.Type {
	case token.TString:
		return Colorable{Kind: value.StringKind, Attr: ValueColor}, true
	case token.TInteger:
		return Colorable{Kind: value.IntKind, Attr: ValueColor}, true
	case token.TDecimal:
		return Colorable{Kind: value.DecimalKind, Attr: ValueColor}, true
	case token.TConstIdent:
		return Colorable{Kind: value.IntKind, Attr: FieldColor}, true
	case token.TIdent:
		return Colorable{Kind: value.StringKind, Attr: FieldColor}, true
	case token.TKeyword:
		switch string(t.Bytes) {
		case "null":
			return Colorable{Kind: value.NullKind, Attr: ValueColor}, true
		case "true", "false":
			return Colorable{Kind: value.BoolKind, Attr: ValueColor}, true
		}
		return Colorable{Kind: value.FunctionKind, Attr: KeywordColor}, true
	case token.TComment:
		return Colorable{Kind: value.NullKind, Attr: CommentColor}, true
	case token.TWhitespace:
		return Colorable{}, false
	}
	return Colorable{Kind: value.MapKind, Attr: SepColor}, true
}

// Token colors the text of t by what it denotes.
func (c *Colors) Token(t *token.Token) string {
	able, ok := TokenColorable(t)
	if !ok {
		return string(t.Bytes)
	}
	return c.Color(able.Kind, able.Attr, string(t.Bytes))
}

// Tokens writes toks colored, reproducing their source text.
func (c *Colors) Tokens(toks []token.Token) string {
	var buf strings.Builder
	for i := range toks {
		buf.WriteString(c.Token(&toks[i]))
	}
	return buf.String()
}
