package token

import (
	"errors"
)

var (
	ErrLex          = errors.New("lex error")
	ErrUnterminated = errors.New("unterminated")
)
