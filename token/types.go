package token

import (
	"fmt"
)

type TokenType int

const (
	TOperator TokenType = iota
	TString
	TConstIdent
	TIdent
	TInteger
	TDecimal
	TLParen
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TComma
	TSemicolon
	TColon
	TWhitespace
	TKeyword
	TComment
	TPointer
	TPipe
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TOperator:   "TOperator",
		TString:     "TString",
		TConstIdent: "TConstIdent",
		TIdent:      "TIdent",
		TInteger:    "TInteger",
		TDecimal:    "TDecimal",
		TLParen:     "TLParen",
		TRParen:     "TRParen",
		TLSquare:    "TLSquare",
		TRSquare:    "TRSquare",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
		TComma:      "TComma",
		TSemicolon:  "TSemicolon",
		TColon:      "TColon",
		TWhitespace: "TWhitespace",
		TKeyword:    "TKeyword",
		TComment:    "TComment",
		TPointer:    "TPointer",
		TPipe:       "TPipe",
	}[t]
}

// IsOpen reports whether t opens a bracketed region.
func (t TokenType) IsOpen() bool {
	return t == TLParen || t == TLSquare || t == TLCurl
}

// IsClose reports whether t closes a bracketed region.
func (t TokenType) IsClose() bool {
	return t == TRParen || t == TRSquare || t == TRCurl
}

// Token is a classified span of the source. Bytes aliases the source.
type Token struct {
	Type  TokenType
	Off   int
	Bytes []byte
}

func (t *Token) End() int {
	return t.Off + len(t.Bytes)
}

func (t *Token) Is(text string) bool {
	return string(t.Bytes) == text
}

func (t *Token) Pos(d *PosDoc) *Pos {
	return d.Pos(t.Off)
}

func (t *Token) Info(d *PosDoc) string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos(d).String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Unquote returns the contents of a string literal without its
// delimiters. Other tokens are returned as is.
func (t *Token) Unquote() string {
	b := t.Bytes
	if t.Type != TString || len(b) < 2 {
		return string(b)
	}
	if b[0] == 'q' {
		return string(b[2 : len(b)-1])
	}
	return string(b[1 : len(b)-1])
}

// TokenizeErr is a lexing error at a source position.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrLex, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", ErrLex, what), p)
}
