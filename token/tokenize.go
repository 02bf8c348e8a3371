package token

import (
	"io"

	"github.com/signadot/ffl/debug"
)

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	t := NewTokenizer(src)
	start := len(dst)
	for {
		tok, err := t.Next()
		if err == io.EOF {
			if debug.Lex() {
				PrintTokens(dst[start:], "source")
			}
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
	}
}

// Tokenizer produces the tokens of a source buffer one at a time.
type Tokenizer struct {
	src []byte
	off int
	pd  *PosDoc
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, pd: NewPosDoc(src)}
}

// PosDoc returns the position index of the source.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.pd
}

// Offset is the offset of the next token.
func (t *Tokenizer) Offset() int {
	return t.off
}

// Next returns the next token, or io.EOF at the end of the source.
func (t *Tokenizer) Next() (Token, error) {
	if t.off >= len(t.src) {
		return Token{}, io.EOF
	}
	tok, err := tokenizeOne(t.src, t.off, t.pd)
	if err != nil {
		if debug.Lex() {
			debug.Logf("lex error: %v\n", err)
		}
		return Token{}, err
	}
	t.off = tok.End()
	return tok, nil
}

// Significant filters out whitespace and comments in place.
func Significant(toks []Token) []Token {
	res := toks[:0]
	for _, tok := range toks {
		if tok.Type == TWhitespace || tok.Type == TComment {
			continue
		}
		res = append(res, tok)
	}
	return res
}
