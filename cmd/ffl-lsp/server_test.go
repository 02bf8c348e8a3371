package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ffl"
	"go.lsp.dev/protocol"
)

const testURI = "file:///test.ffl"

func testServer(t *testing.T, content string) (*Server, *document) {
	t.Helper()
	rt, err := ffl.New()
	if err != nil {
		t.Fatal(err)
	}
	s := &Server{rt: rt}
	s.setupHandlers(context.Background())
	doc := newDocument(testURI, content)
	s.docs.set(doc)
	return s, doc
}

func TestSemanticTokens(t *testing.T) {
	tests := []struct {
		content string
		want    []uint32
	}{
		{
			content: "x + 1",
			want:    []uint32{0, 0, 1, 5, 0, 0, 2, 1, 4, 0, 0, 2, 1, 3, 0},
		},
		{
			content: "decimal(x)",
			want:    []uint32{0, 0, 7, 7, 2, 0, 7, 1, 4, 0, 0, 1, 1, 5, 0, 0, 1, 1, 4, 0},
		},
		{
			content: "#a\nb#",
			want:    []uint32{0, 0, 2, 0, 0, 1, 0, 2, 0, 0},
		},
		{
			content: "[int]",
			want:    []uint32{0, 0, 1, 4, 0, 0, 1, 3, 6, 0, 0, 3, 1, 4, 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.content, func(t *testing.T) {
			s, _ := testServer(t, tc.content)
			res, err := s.SemanticTokensFull(context.Background(), &protocol.SemanticTokensParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, res.Data); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestHover(t *testing.T) {
	tests := []struct {
		content string
		line    uint32
		char    uint32
		want    []string
	}{
		{content: "[int]", char: 2, want: []string{"**Type:** `int`"}},
		{content: "x + 42", char: 5, want: []string{"**Kind:** int", "**Value:** `42`"}},
		{content: "x * 1.5", char: 4, want: []string{"**Kind:** decimal"}},
		{content: "1 +\n  getenv('HOME')", line: 1, char: 3, want: []string{"**Builtin:** `getenv`"}},
	}
	for _, tc := range tests {
		t.Run(tc.content, func(t *testing.T) {
			s, _ := testServer(t, tc.content)
			h, err := s.Hover(context.Background(), &protocol.HoverParams{
				TextDocumentPositionParams: protocol.TextDocumentPositionParams{
					TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
					Position:     protocol.Position{Line: tc.line, Character: tc.char},
				},
			})
			if err != nil {
				t.Fatal(err)
			}
			if h == nil {
				t.Fatal("no hover")
			}
			for _, w := range tc.want {
				if !strings.Contains(h.Contents.Value, w) {
					t.Errorf("hover %q does not contain %q", h.Contents.Value, w)
				}
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		content string
		want    []protocol.Position
	}{
		{content: "", want: nil},
		{content: "# only a comment #", want: nil},
		{content: "1 + 2", want: nil},
		{content: "1 +\n  'ab", want: []protocol.Position{{Line: 1, Character: 2}}},
		{content: "1 + )", want: []protocol.Position{{}}},
	}
	for _, tc := range tests {
		t.Run(tc.content, func(t *testing.T) {
			doc := newDocument(testURI, tc.content)
			var got []protocol.Position
			for _, d := range doc.diagnostics() {
				got = append(got, d.Range.Start)
			}
			if len(tc.want) == 1 && tc.want[0] == (protocol.Position{}) {
				if len(got) != 1 {
					t.Fatalf("got %d diagnostics, want 1", len(got))
				}
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	s, _ := testServer(t, "1 + dec")
	res, err := s.Completion(context.Background(), &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Character: 7},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, item := range res.Items {
		labels = append(labels, item.Label)
	}
	if diff := cmp.Diff([]string{"decimal", "decimal"}, labels); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{content: "1 +  \n 2  \n\n", want: "1 +\n 2\n"},
		{content: "'a  \n b'   ", want: "'a  \n b'\n"},
		{content: "x\n", want: "x\n"},
	}
	for _, tc := range tests {
		t.Run(tc.content, func(t *testing.T) {
			_, doc := testServer(t, tc.content)
			if got := format(doc); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}
