package token

import (
	"fmt"
	"unicode/utf8"
)

// tokenizeOne scans the token starting at d[i]. d is never empty at i.
func tokenizeOne(d []byte, i int, pd *PosDoc) (Token, error) {
	n := len(d)
	c := d[i]
	tok := func(t TokenType, end int) (Token, error) {
		return Token{Type: t, Off: i, Bytes: d[i:end]}, nil
	}
	next := byte(0)
	if i+1 < n {
		next = d[i+1]
	}

	switch c {
	case ' ', '\t', '\r', '\n':
		j := i + 1
		for j < n && isSpace(d[j]) {
			j++
		}
		return tok(TWhitespace, j)
	case '(':
		return tok(TLParen, i+1)
	case ')':
		return tok(TRParen, i+1)
	case '[':
		return tok(TLSquare, i+1)
	case ']':
		return tok(TRSquare, i+1)
	case '{':
		return tok(TLCurl, i+1)
	case '}':
		return tok(TRCurl, i+1)
	case ',':
		return tok(TComma, i+1)
	case ';':
		return tok(TSemicolon, i+1)
	case ':':
		return tok(TColon, i+1)
	case '|':
		return tok(TPipe, i+1)
	case '+', '*', '/', '%', '^', '.', '=':
		return tok(TOperator, i+1)
	case '-':
		if next == '>' {
			return tok(TPointer, i+2)
		}
		return tok(TOperator, i+1)
	case '<', '>':
		if next == '=' {
			return tok(TOperator, i+2)
		}
		return tok(TOperator, i+1)
	case '!':
		if next == '=' {
			return tok(TOperator, i+2)
		}
		return Token{}, ExpectedErr("'=' after '!'", pd.Pos(i))
	case '\'', '~':
		end, err := scanRun(d, i, i+1, c, pd)
		if err != nil {
			return Token{}, err
		}
		return tok(TString, end)
	case '#':
		end, err := scanRun(d, i, i+1, c, pd)
		if err != nil {
			return Token{}, err
		}
		return tok(TComment, end)
	case 'q':
		switch next {
		case '~', '#', '^':
			end, err := scanRun(d, i, i+2, next, pd)
			if err != nil {
				return Token{}, err
			}
			return tok(TString, end)
		case '(', '[', '{':
			end, err := scanNested(d, i, pd)
			if err != nil {
				return Token{}, err
			}
			return tok(TString, end)
		}
		return scanIdent(d, i)
	case 'd':
		if !isAlpha(next) {
			return tok(TOperator, i+1)
		}
		return scanIdent(d, i)
	case '0':
		if next == 'x' && i+2 < n && isHex(d[i+2]) {
			j := i + 2
			for j < n && isHex(d[j]) {
				j++
			}
			return tok(TInteger, j)
		}
		return scanNumber(d, i)
	}
	switch {
	case isDigit(c):
		return scanNumber(d, i)
	case isIdentStart(c):
		return scanIdent(d, i)
	}
	what := fmt.Sprintf("%q", c)
	if c >= utf8.RuneSelf {
		what = fmt.Sprintf("byte %#x", c)
	}
	return Token{}, UnexpectedErr(what, pd.Pos(i))
}

// scanRun scans from j to the next term, returning the offset after it.
func scanRun(d []byte, start, j int, term byte, pd *PosDoc) (int, error) {
	for ; j < len(d); j++ {
		if d[j] == term {
			return j + 1, nil
		}
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w: %w %q run", ErrLex, ErrUnterminated, term), pd.Pos(start))
}

// scanNested scans a q-string opened by d[start+1], tracking nested
// brackets of the same kind.
func scanNested(d []byte, start int, pd *PosDoc) (int, error) {
	open := d[start+1]
	var closer byte
	switch open {
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	default:
		closer = '}'
	}
	depth := 1
	for j := start + 2; j < len(d); j++ {
		switch d[j] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		}
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w: %w q%c string", ErrLex, ErrUnterminated, open), pd.Pos(start))
}

func scanNumber(d []byte, i int) (Token, error) {
	n := len(d)
	j := i
	for j < n && isDigit(d[j]) {
		j++
	}
	if j+1 < n && d[j] == '.' && isDigit(d[j+1]) {
		j += 2
		for j < n && isDigit(d[j]) {
			j++
		}
		return Token{Type: TDecimal, Off: i, Bytes: d[i:j]}, nil
	}
	return Token{Type: TInteger, Off: i, Bytes: d[i:j]}, nil
}

func scanIdent(d []byte, i int) (Token, error) {
	j := i + 1
	for j < len(d) && isIdent(d[j]) {
		j++
	}
	return Token{Type: identType(d[i:j]), Off: i, Bytes: d[i:j]}, nil
}
