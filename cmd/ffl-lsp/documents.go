package main

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/expr-lang/expr/file"
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/token"
	"go.lsp.dev/protocol"
)

type document struct {
	uri     string
	content string
	pd      *token.PosDoc
	// toks holds the tokens lexed before err, if any.
	toks []token.Token
	err  error
}

type documentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func (s *documentStore) get(uri string) *document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

func (s *documentStore) set(doc *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.uri] = doc
}

func (s *documentStore) remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func newDocument(uri, content string) *document {
	src := []byte(content)
	tz := token.NewTokenizer(src)
	doc := &document{uri: uri, content: content, pd: tz.PosDoc()}
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			doc.err = err
			break
		}
		doc.toks = append(doc.toks, tok)
	}
	return doc
}

// tokenAt returns the index of the token covering the 0-based line and
// column, or -1.
func (d *document) tokenAt(line, col int) int {
	off := d.pd.Offset(line, col)
	for i := range d.toks {
		tok := &d.toks[i]
		if tok.Off <= off && off < tok.End() {
			return i
		}
	}
	return -1
}

func (d *document) blank() bool {
	for i := range d.toks {
		switch d.toks[i].Type {
		case token.TWhitespace, token.TComment:
		default:
			return false
		}
	}
	return true
}

func (d *document) position(off int) protocol.Position {
	line, col := d.pd.LineCol(off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func (d *document) diagnostics() []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if d.err != nil {
		off := len(d.content)
		var te *token.TokenizeErr
		if errors.As(d.err, &te) {
			off = te.Pos.I
		}
		p := d.position(off)
		diags = append(diags, protocol.Diagnostic{
			Range:    protocol.Range{Start: p, End: p},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  d.err.Error(),
		})
		return diags
	}
	if d.blank() {
		return diags
	}
	if _, err := eval.Compile(d.content); err != nil {
		var p protocol.Position
		var fe *file.Error
		if errors.As(err, &fe) {
			p = protocol.Position{Line: uint32(max(fe.Line-1, 0)), Character: uint32(max(fe.Column, 0))}
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    protocol.Range{Start: p, End: p},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  err.Error(),
		})
	}
	return diags
}

func (s *Server) publish(ctx context.Context, uri protocol.DocumentURI, diags []protocol.Diagnostic) error {
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := newDocument(string(params.TextDocument.URI), params.TextDocument.Text)
	s.docs.set(doc)
	return s.publish(ctx, params.TextDocument.URI, doc.diagnostics())
}

// DidChange expects full document sync, so the last change holds the
// whole text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := newDocument(string(params.TextDocument.URI), text)
	s.docs.set(doc)
	return s.publish(ctx, params.TextDocument.URI, doc.diagnostics())
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return s.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
}
