package token

import "sort"

var keywords = map[string]bool{
	"functions": true,
	"def":       true,
	"null":      true,
	"true":      true,
	"false":     true,
	"base":      true,
	"recursive": true,
}

var operatorWords = map[string]bool{
	"and":   true,
	"or":    true,
	"not":   true,
	"where": true,
	"in":    true,
}

func IsKeyword(s string) bool {
	return keywords[s]
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	res := make([]string, 0, len(keywords))
	for k := range keywords {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// identType classifies an identifier run.
func identType(b []byte) TokenType {
	if keywords[string(b)] {
		return TKeyword
	}
	if operatorWords[string(b)] {
		return TOperator
	}
	for _, c := range b {
		if 'a' <= c && c <= 'z' {
			return TIdent
		}
	}
	return TConstIdent
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
