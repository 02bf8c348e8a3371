package value

import (
	"slices"
	"sync/atomic"
)

// Code is compiled or parsed code executed by a Function. env exposes
// the arguments by parameter name and falls back to the function's
// environment.
type Code interface {
	Execute(env Callable) (Value, error)
}

// CodeFunc adapts a Go function to Code.
type CodeFunc func(env Callable) (Value, error)

func (f CodeFunc) Execute(env Callable) (Value, error) { return f(env) }

// Function is a closure over Code.
type Function struct {
	Code   Code
	Params []string
	// Defaults holds values for the trailing len(Defaults) parameters.
	Defaults []Value
	// Bound holds captured arguments for the leading parameters.
	Bound []Value
	Env   Callable
	// Signature is the function's type descriptor, if any. It is
	// opaque to this package.
	Signature any

	id atomic.Uint64
}

// Arity is the number of parameters not yet bound.
func (f *Function) Arity() int {
	return len(f.Params) - len(f.Bound)
}

// MinArgs is the number of arguments a call must supply.
func (f *Function) MinArgs() int {
	return max(0, len(f.Params)-len(f.Defaults)-len(f.Bound))
}

// Bind returns a new function with args appended to the bound
// arguments.
func (f *Function) Bind(args ...Value) (*Function, error) {
	if len(args) > f.Arity() {
		return nil, &ArityError{Min: 0, Max: f.Arity(), Got: len(args)}
	}
	return &Function{
		Code:      f.Code,
		Params:    f.Params,
		Defaults:  f.Defaults,
		Bound:     append(slices.Clone(f.Bound), args...),
		Env:       f.Env,
		Signature: f.Signature,
	}, nil
}

// Call executes f with args.
func (f *Function) Call(args ...Value) (Value, error) {
	if len(args) < f.MinArgs() || len(args) > f.Arity() {
		return Value{}, &ArityError{Min: f.MinArgs(), Max: f.Arity(), Got: len(args)}
	}
	vals := make([]Value, len(f.Params))
	n := copy(vals, f.Bound)
	n += copy(vals[n:], args)
	first := len(f.Params) - len(f.Defaults)
	for i := n; i < len(vals); i++ {
		vals[i] = f.Defaults[i-first]
	}
	return f.Code.Execute(&argScope{names: f.Params, vals: vals, parent: f.Env})
}

type argScope struct {
	names  []string
	vals   []Value
	parent Callable
}

func (s *argScope) Get(key string) Value {
	if i := slices.Index(s.names, key); i != -1 {
		return s.vals[i]
	}
	if s.parent == nil {
		return Value{}
	}
	return s.parent.Get(key)
}

func (s *argScope) Set(key string, v Value) error {
	if i := slices.Index(s.names, key); i != -1 {
		s.vals[i] = v
		return nil
	}
	if s.parent == nil {
		return ErrUnknownKey
	}
	return s.parent.Set(key, v)
}

func (s *argScope) IsA(class string) bool {
	return s.parent != nil && s.parent.IsA(class)
}
