package value

import (
	"errors"
	"fmt"
)

var (
	ErrType            = errors.New("type error")
	ErrIndex           = errors.New("index error")
	ErrKey             = errors.New("key error")
	ErrDivideByZero    = errors.New("divide by zero")
	ErrArity           = errors.New("wrong number of arguments")
	ErrNotSerializable = errors.New("not serializable")
	ErrReadOnly        = errors.New("read only")
	ErrUnknownKey      = errors.New("unknown key")
	ErrDomain          = errors.New("domain error")
	ErrOverflow        = errors.New("overflow")
	ErrParse           = errors.New("parse error")
)

// TypeError reports a wrong-kind access or incompatible operands.
type TypeError struct {
	Op       string
	Expected Kind
	Actual   Kind
}

func (e *TypeError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: expected %s, got %s", ErrType, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: %s expected %s, got %s", ErrType, e.Op, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error { return ErrType }

func typeErr(op string, expected, actual Kind) error {
	return &TypeError{Op: op, Expected: expected, Actual: actual}
}

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", ErrIndex, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

type KeyError struct {
	Key Value
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s not found", ErrKey, e.Key.String())
}

func (e *KeyError) Unwrap() error { return ErrKey }

type ArityError struct {
	Min, Max int
	Got      int
}

func (e *ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s: expected %d, got %d", ErrArity, e.Min, e.Got)
	}
	return fmt.Sprintf("%s: expected %d to %d, got %d", ErrArity, e.Min, e.Max, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }
