package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/schema"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	i := doc.tokenAt(int(params.Position.Line), int(params.Position.Character))
	if i == -1 {
		return nil, nil
	}
	hoverText := s.buildHoverText(doc, i)
	if hoverText == "" {
		return nil, nil
	}
	tok := &doc.toks[i]
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: &protocol.Range{
			Start: doc.position(tok.Off),
			End:   doc.position(tok.End()),
		},
	}, nil
}

func (s *Server) buildHoverText(doc *document, i int) string {
	tok := &doc.toks[i]
	if tok.Type == token.TWhitespace {
		return ""
	}
	var parts []string
	parts = append(parts, fmt.Sprintf("**Token:** %s", tok.Type))

	if d := s.annotationAt(doc, i); d != nil {
		parts = append(parts, fmt.Sprintf("**Type:** `%s`", d))
	}
	if v, ok := literal(tok); ok {
		parts = append(parts, fmt.Sprintf("**Kind:** %s", v.Kind()))
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", abbrev(v.String())))
	}
	if tok.Type == token.TIdent || tok.Type == token.TConstIdent {
		if b := eval.Lookup(tok.String()); b != nil {
			parts = append(parts, fmt.Sprintf("**Builtin:** `%s`", b))
		}
	}
	return strings.Join(parts, "\n\n")
}

// annotationAt parses the type annotation starting at toks[i], if any.
func (s *Server) annotationAt(doc *document, i int) *schema.Descriptor {
	tok := &doc.toks[i]
	if !isTypeWord(tok.String()) && !tok.Is("def") {
		return nil
	}
	sig := token.Significant(append([]token.Token(nil), doc.toks...))
	for k := range sig {
		if sig[k].Off != tok.Off {
			continue
		}
		d, _, ok := schema.TryParseTokens(s.rt.Context(), []byte(doc.content), sig, k)
		if !ok {
			return nil
		}
		return d
	}
	return nil
}

func literal(tok *token.Token) (value.Value, bool) {
	switch tok.Type {
	case token.TString:
		return value.FromString(tok.Unquote()), true
	case token.TInteger, token.TDecimal:
		v, err := eval.Eval(tok.String(), nil)
		if err != nil {
			return value.Value{}, false
		}
		return v, true
	case token.TKeyword:
		switch tok.String() {
		case "null":
			return value.Null(), true
		case "true":
			return value.FromBool(true), true
		case "false":
			return value.FromBool(false), true
		}
	}
	return value.Value{}, false
}

func abbrev(s string) string {
	if len(s) > 50 {
		return s[:50] + "..."
	}
	return s
}
