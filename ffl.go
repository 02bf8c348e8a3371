// Package ffl ties the formula runtime together: a class registry and
// type context, value matching against type annotations, and execution
// of bytecode programs.
package ffl

import (
	"fmt"
	"sync"

	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/schema"
	"github.com/signadot/ffl/value"
	"github.com/signadot/ffl/vm"
)

type Config struct {
	ClassFiles []string
	Classes    []schema.ClassSpec
}

type Option func(*Config)

// WithClassFile loads classes from a YAML, JSON or TOML file.
func WithClassFile(path string) Option {
	return func(c *Config) { c.ClassFiles = append(c.ClassFiles, path) }
}

func WithClasses(specs ...schema.ClassSpec) Option {
	return func(c *Config) { c.Classes = append(c.Classes, specs...) }
}

// Runtime resolves type annotations against a frozen class registry.
// It is safe for concurrent use.
type Runtime struct {
	ctx   *schema.Context
	types sync.Map
}

func New(opts ...Option) (*Runtime, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	ctx := schema.NewContext()
	for _, f := range cfg.ClassFiles {
		if err := ctx.Classes.LoadFile(f); err != nil {
			return nil, err
		}
	}
	if err := ctx.Classes.Load(cfg.Classes); err != nil {
		return nil, err
	}
	ctx.Classes.Freeze()
	return &Runtime{ctx: ctx}, nil
}

func (r *Runtime) Context() *schema.Context {
	return r.ctx
}

// Type parses annotation, caching the result.
func (r *Runtime) Type(annotation string) (*schema.Descriptor, error) {
	if d, ok := r.types.Load(annotation); ok {
		return d.(*schema.Descriptor), nil
	}
	d, err := schema.Parse(r.ctx, annotation)
	if err != nil {
		return nil, err
	}
	r.types.Store(annotation, d)
	return d, nil
}

// Match reports whether v is described by annotation.
func (r *Runtime) Match(v value.Value, annotation string) (bool, error) {
	d, err := r.Type(annotation)
	if err != nil {
		return false, err
	}
	return d.Match(v), nil
}

// Check is Match reporting a mismatch as a *MismatchError.
func (r *Runtime) Check(op string, v value.Value, annotation string) error {
	d, err := r.Type(annotation)
	if err != nil {
		return err
	}
	return check(op, d, v)
}

func check(op string, d *schema.Descriptor, v value.Value) error {
	if d.Match(v) {
		return nil
	}
	return &MismatchError{Op: op, Type: d, Value: v}
}

// MismatchError reports a value not matching a type.
type MismatchError struct {
	Op    string
	Type  *schema.Descriptor
	Value value.Value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s expected %s, got %s", value.ErrType, e.Op, e.Type, e.Value)
}

func (e *MismatchError) Unwrap() error { return value.ErrType }

// Compatible reports whether a value of type from may be used where to
// is expected.
func (r *Runtime) Compatible(to, from string) (bool, error) {
	dt, err := r.Type(to)
	if err != nil {
		return false, err
	}
	df, err := r.Type(from)
	if err != nil {
		return false, err
	}
	return schema.IsCompatible(dt, df), nil
}

// NewObject returns an object of class with fields defined.
func (r *Runtime) NewObject(class string, fields map[string]value.Value) (*value.MapCallable, error) {
	obj, err := r.ctx.NewObject(class)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		obj.Define(k, v, false)
	}
	return obj, nil
}

// Function returns a function running code with the parameters and
// defaults of the function type sig.
func (r *Runtime) Function(sig string, params []string, code value.Code) (*value.Function, error) {
	d, err := r.Type(sig)
	if err != nil {
		return nil, err
	}
	if d.Kind() != schema.FunctionKind {
		return nil, fmt.Errorf("%w: %s is not a function type", value.ErrType, d)
	}
	if len(params) != len(d.Args()) {
		return nil, &value.ArityError{Min: len(d.Args()), Max: len(d.Args()), Got: len(params)}
	}
	return &value.Function{
		Code:      code,
		Params:    params,
		Defaults:  d.Defaults(),
		Signature: d,
	}, nil
}

// Call calls f, checking arguments and the result against its
// signature.
func (r *Runtime) Call(f *value.Function, args ...value.Value) (value.Value, error) {
	sig := schema.Signature(f)
	for i, a := range args {
		if i >= len(sig.Args()) {
			break
		}
		if err := check(fmt.Sprintf("argument %d", i+1), sig.Args()[i], a); err != nil {
			return value.Value{}, err
		}
	}
	res, err := f.Call(args...)
	if err != nil {
		return value.Value{}, err
	}
	if err := check("return", sig.Return(), res); err != nil {
		return value.Value{}, err
	}
	return res, nil
}

// Run runs p against env, checking the result against annotation
// unless it is empty.
func (r *Runtime) Run(p *vm.Program, env value.Callable, annotation string, opts ...vm.RunOption) (value.Value, error) {
	res, err := p.Run(env, opts...)
	if err != nil {
		return value.Value{}, err
	}
	if debug.VM() {
		debug.Logf("program result %s\n", res)
	}
	if annotation == "" {
		return res, nil
	}
	if err := r.Check("result", res, annotation); err != nil {
		return value.Value{}, err
	}
	return res, nil
}
