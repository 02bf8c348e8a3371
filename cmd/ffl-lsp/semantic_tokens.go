package main

import (
	"bytes"
	"context"

	"github.com/signadot/ffl/encode"
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
	"go.lsp.dev/protocol"
)

// These must match the legend in main.go
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenType,
		protocol.SemanticTokenFunction,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierDefaultLibrary,
	}
)

func mapColorToSemanticTokenType(able encode.Colorable) protocol.SemanticTokenTypes {
	switch able.Attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment
	case encode.KeywordColor:
		return protocol.SemanticTokenKeyword
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	case encode.ValueColor:
		switch able.Kind {
		case value.IntKind, value.DecimalKind:
			return protocol.SemanticTokenNumber
		case value.BoolKind, value.NullKind:
			return protocol.SemanticTokenKeyword
		}
	}
	return protocol.SemanticTokenString
}

// isTypeWord reports whether s names a type in annotations.
func isTypeWord(s string) bool {
	switch s {
	case "any", "commands", "class":
		return true
	}
	_, ok := value.ParseKind(s)
	return ok
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// classify refines the color class of toks[i] with what follows it.
func classify(toks []token.Token, i int) (protocol.SemanticTokenTypes, []protocol.SemanticTokenModifiers, bool) {
	tok := &toks[i]
	able, ok := encode.TokenColorable(tok)
	if !ok {
		return "", nil, false
	}
	tt := mapColorToSemanticTokenType(able)
	if tok.Type != token.TIdent && tok.Type != token.TConstIdent {
		return tt, nil, true
	}
	name := tok.String()
	j := i + 1
	for j < len(toks) && toks[j].Type == token.TWhitespace {
		j++
	}
	switch {
	case j < len(toks) && toks[j].Is("("):
		if eval.Lookup(name) != nil {
			return protocol.SemanticTokenFunction, []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefaultLibrary}, true
		}
		return protocol.SemanticTokenFunction, nil, true
	case isTypeWord(name):
		return protocol.SemanticTokenType, nil, true
	}
	return tt, nil, true
}

// collectSemanticTokens encodes the tokens overlapping [start, end).
// Tokens spanning lines are split per line.
func (s *Server) collectSemanticTokens(doc *document, start, end int) []uint32 {
	var tokenList []tokenInfo
	for i := range doc.toks {
		tok := &doc.toks[i]
		if tok.End() <= start || tok.Off >= end {
			continue
		}
		tt, mods, ok := classify(doc.toks, i)
		if !ok {
			continue
		}
		off := tok.Off
		for _, seg := range bytes.Split(tok.Bytes, []byte("\n")) {
			if len(seg) > 0 {
				line, col := doc.pd.LineCol(off)
				tokenList = append(tokenList, tokenInfo{
					line:      uint32(line),
					character: uint32(col),
					length:    uint32(len(seg)),
					tokenType: tt,
					modifiers: mods,
				})
			}
			off += len(seg) + 1
		}
	}

	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	// tokens come in source order so only the delta encoding remains
	tokens := make([]uint32, 0, 5*len(tokenList))
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		bits := uint32(0)
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, 0, len(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	r := params.Range
	start := doc.pd.Offset(int(r.Start.Line), int(r.Start.Character))
	end := doc.pd.Offset(int(r.End.Line), int(r.End.Character))
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, start, end),
	}, nil
}
