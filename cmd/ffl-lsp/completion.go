package main

import (
	"context"
	"strings"

	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/token"
	"github.com/signadot/ffl/value"
	"go.lsp.dev/protocol"
)

var typeWords = []string{"any", "commands", "class"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	pos := params.Position
	line := int(pos.Line)
	off := doc.pd.Offset(line, int(pos.Character))
	lineStart := doc.pd.Offset(line, 0)
	prefix := wordBefore(doc.content[lineStart:off])

	completions := []protocol.CompletionItem{}
	add := func(label string, kind protocol.CompletionItemKind, detail string) {
		if !strings.HasPrefix(label, prefix) {
			return
		}
		completions = append(completions, protocol.CompletionItem{
			Label:      label,
			Kind:       kind,
			Detail:     detail,
			InsertText: label,
		})
	}
	for _, kw := range token.Keywords() {
		add(kw, protocol.CompletionItemKindKeyword, "keyword")
	}
	for k := value.NullKind; k <= value.FunctionKind; k++ {
		add(k.String(), protocol.CompletionItemKindTypeParameter, "kind")
	}
	for _, w := range typeWords {
		add(w, protocol.CompletionItemKindTypeParameter, "type")
	}
	for _, b := range eval.Builtins() {
		add(b.Name, protocol.CompletionItemKindFunction, "builtin")
	}
	for _, c := range s.rt.Context().Classes.All() {
		add(c.Name, protocol.CompletionItemKindClass, "class")
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}

// wordBefore returns the trailing identifier characters of s.
func wordBefore(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c == '_' || c == '.' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			i--
			continue
		}
		break
	}
	return s[i:]
}
