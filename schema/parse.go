package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
)

type parser struct {
	ctx  *Context
	file string
	src  []byte
	pd   *token.PosDoc
	toks []token.Token
	i    int
}

// Parse parses a type annotation.
func Parse(ctx *Context, text string) (*Descriptor, error) {
	return ParseFile(ctx, "", []byte(text))
}

// ParseFile parses a type annotation, reporting errors against file.
func ParseFile(ctx *Context, file string, src []byte) (*Descriptor, error) {
	p := &parser{ctx: ctx, file: file, src: src, pd: token.NewPosDoc(src)}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, p.errAt(te.Pos.I, "", err)
		}
		return nil, err
	}
	p.toks = token.Significant(toks)
	d, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		return nil, p.errf("unexpected %q after type", p.toks[p.i].Bytes)
	}
	if debug.Schema() {
		debug.Logf("parsed %q as %s\n", src, d)
	}
	return d, nil
}

// ParseTokens parses a descriptor from toks starting at index i and
// returns the index after it. toks must be free of whitespace and
// comments (see token.Significant) and refer to src.
func ParseTokens(ctx *Context, src []byte, toks []token.Token, i int) (*Descriptor, int, error) {
	p := &parser{ctx: ctx, src: src, pd: token.NewPosDoc(src), toks: toks, i: i}
	d, err := p.union()
	if err != nil {
		return nil, i, err
	}
	return d, p.i, nil
}

// TryParseTokens is ParseTokens for lookahead: on failure it reports
// false and leaves i as is.
func TryParseTokens(ctx *Context, src []byte, toks []token.Token, i int) (*Descriptor, int, bool) {
	d, j, err := ParseTokens(ctx, src, toks, i)
	if err != nil {
		if debug.Schema() {
			debug.Logf("speculative parse at %d failed: %v\n", i, err)
		}
		return nil, i, false
	}
	return d, j, true
}

func (p *parser) peek() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) errAt(off int, text string, err error) error {
	line, col := p.pd.LineCol(off)
	return &ParseError{
		File: p.file,
		Line: line + 1,
		Col:  col + 1,
		Text: text,
		Err:  err,
	}
}

// errf reports an error at the current token.
func (p *parser) errf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if tok := p.peek(); tok != nil {
		return p.errAt(tok.Off, tok.String(), err)
	}
	return p.errAt(len(p.src), "", err)
}

func (p *parser) expect(t token.TokenType, text string) error {
	tok := p.peek()
	if tok == nil || tok.Type != t {
		return p.errf("expected %q", text)
	}
	p.i++
	return nil
}

func (p *parser) union() (*Descriptor, error) {
	first, err := p.primary()
	if err != nil {
		return nil, err
	}
	members := []*Descriptor{first}
	for tok := p.peek(); tok != nil && tok.Type == token.TPipe; tok = p.peek() {
		p.i++
		m, err := p.primary()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if len(members) == 1 {
		return first, nil
	}
	return Union(members...), nil
}

func (p *parser) primary() (*Descriptor, error) {
	tok := p.peek()
	if tok == nil {
		return nil, p.errf("expected type")
	}
	switch tok.Type {
	case token.TLSquare:
		p.i++
		elem, err := p.union()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.TRSquare, "]"); err != nil {
			return nil, err
		}
		return List(elem), nil
	case token.TLCurl:
		p.i++
		key, err := p.union()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.TPointer, "->"); err != nil {
			return nil, err
		}
		val, err := p.union()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.TRCurl, "}"); err != nil {
			return nil, err
		}
		return Map(key, val), nil
	case token.TIdent, token.TConstIdent, token.TKeyword:
		switch name := tok.String(); name {
		case "any":
			p.i++
			return Any(), nil
		case "commands":
			p.i++
			return Commands(), nil
		case "class":
			p.i++
			return p.class()
		case "def":
			p.i++
			return p.function()
		default:
			if k, ok := value.ParseKind(name); ok {
				p.i++
				return Simple(k), nil
			}
		}
	}
	return nil, p.errf("expected type")
}

func isName(tok *token.Token) bool {
	return tok != nil && (tok.Type == token.TIdent || tok.Type == token.TConstIdent)
}

// class parses Id ("." Id)* after the class keyword.
func (p *parser) class() (*Descriptor, error) {
	tok := p.peek()
	if !isName(tok) {
		return nil, p.errf("expected class name")
	}
	start := tok.Off
	parts := []string{tok.String()}
	p.i++
	for {
		dot := p.peek()
		if dot == nil || !dot.Is(".") || p.i+1 >= len(p.toks) || !isName(&p.toks[p.i+1]) {
			break
		}
		parts = append(parts, p.toks[p.i+1].String())
		p.i += 2
	}
	name := strings.Join(parts, ".")
	cls, err := p.ctx.Classes.Resolve(name)
	if err != nil {
		return nil, p.errAt(start, name, err)
	}
	return classOf(cls), nil
}

var paramEnd = token.NewMatcher().Add(token.TComma).Add(token.TRParen)

// function parses the remainder of def(...) [-> ret].
func (p *parser) function() (*Descriptor, error) {
	if err := p.expect(token.TLParen, "("); err != nil {
		return nil, err
	}
	var (
		args     []*Descriptor
		defaults []value.Value
	)
	if tok := p.peek(); tok != nil && tok.Type == token.TRParen {
		p.i++
	} else {
		for {
			arg, err := p.union()
			if err != nil {
				return nil, err
			}
			if tok := p.peek(); tok != nil && tok.Is("=") {
				p.i++
				v, err := p.defaultValue(arg)
				if err != nil {
					return nil, err
				}
				defaults = append(defaults, v)
			} else if len(defaults) > 0 {
				return nil, p.errf("argument without default after one with a default")
			}
			args = append(args, arg)
			tok := p.peek()
			if tok != nil && tok.Type == token.TComma {
				p.i++
				continue
			}
			if err := p.expect(token.TRParen, ")"); err != nil {
				return nil, err
			}
			break
		}
	}
	ret := Any()
	if tok := p.peek(); tok != nil && tok.Type == token.TPointer {
		p.i++
		var err error
		if ret, err = p.union(); err != nil {
			return nil, err
		}
	}
	return FunctionWithDefaults(args, ret, defaults), nil
}

func (p *parser) defaultValue(arg *Descriptor) (value.Value, error) {
	end, ok := paramEnd.FindMatch(p.toks, p.i)
	if !ok || end == p.i {
		return value.Value{}, p.errf("expected default value")
	}
	start := p.toks[p.i].Off
	src := string(p.src[start:p.toks[end-1].End()])
	if p.ctx.EvalDefault == nil {
		return value.Value{}, p.errAt(start, src, errors.New("default values are not supported"))
	}
	v, err := p.ctx.EvalDefault(src)
	if err != nil {
		return value.Value{}, p.errAt(start, src, err)
	}
	if !arg.Match(v) {
		return value.Value{}, p.errAt(start, src, fmt.Errorf("default %s does not match %s", v, arg))
	}
	p.i = end
	return v, nil
}
