package vm

import (
	"errors"
	"fmt"
)

var (
	ErrStackFault   = errors.New("stack fault")
	ErrBadOpcode    = errors.New("unknown opcode")
	ErrTruncated    = errors.New("truncated immediate")
	ErrUnderflow    = errors.New("stack underflow")
	ErrOverflow     = errors.New("stack overflow")
	ErrBadConstant  = errors.New("constant index out of range")
	ErrBadName      = errors.New("name index out of range")
	ErrResidual     = errors.New("residual values on stack")
	ErrAssemble     = errors.New("assembly error")
	ErrNotEncodable = errors.New("value cannot be a constant")
)

// StackFault reports a code stream which cannot run safely. Load
// reports it before anything executes.
type StackFault struct {
	Offset int
	Op     byte
	Err    error
}

func (f *StackFault) Error() string {
	return fmt.Sprintf("%s at %04d (%s): %v", ErrStackFault, f.Offset, OpName(f.Op), f.Err)
}

func (f *StackFault) Unwrap() []error { return []error{ErrStackFault, f.Err} }

// RuntimeError reports a failing instruction, such as adding a string
// to a map.
type RuntimeError struct {
	Offset int
	Op     byte
	Err    error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%04d %s: %v", e.Offset, OpName(e.Op), e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
