package schema

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrClassNotFound = errors.New("class not found")
	ErrFrozen        = errors.New("class registry is frozen")
)

// ClassNotFoundError reports a reference to an unregistered class.
type ClassNotFoundError struct {
	Name string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrClassNotFound, e.Name)
}

func (e *ClassNotFoundError) Unwrap() error { return ErrClassNotFound }

// ParseError reports a malformed type annotation. Line and Col are
// 1-based.
type ParseError struct {
	File      string
	Line, Col int
	Text      string
	Err       error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Text == "" {
		return fmt.Sprintf("%s:%d:%d: %s: %v at end of input", file, e.Line, e.Col, ErrParse, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %v near %q", file, e.Line, e.Col, ErrParse, e.Err, e.Text)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
