package eval

import "errors"

var (
	ErrCompile = errors.New("compile error")
	ErrRun     = errors.New("evaluation error")
)
