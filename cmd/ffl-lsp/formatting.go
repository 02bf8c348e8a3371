package main

import (
	"context"
	"strings"

	"github.com/signadot/ffl/token"
	"go.lsp.dev/protocol"
)

// Formatting trims trailing blanks from each line and ends the document
// with a single newline. Only whitespace between tokens changes.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	formatted := format(doc)
	if formatted == doc.content {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   doc.position(len(doc.content)),
		},
		NewText: formatted,
	}}, nil
}

// format rewrites the whitespace tokens of doc only, so newlines inside
// strings and comments are kept.
func format(doc *document) string {
	var buf strings.Builder
	for i := range doc.toks {
		tok := &doc.toks[i]
		text := tok.String()
		if tok.Type == token.TWhitespace && strings.Contains(text, "\n") {
			lines := strings.Split(text, "\n")
			for j := 0; j < len(lines)-1; j++ {
				lines[j] = ""
			}
			text = strings.Join(lines, "\n")
		}
		buf.WriteString(text)
	}
	res := strings.TrimRight(buf.String(), " \t\r\n")
	if res == "" {
		return ""
	}
	return res + "\n"
}
