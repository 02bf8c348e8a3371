package schema

import (
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/value"
)

// Context holds what type annotations are resolved against.
type Context struct {
	Classes *ClassRegistry
	// EvalDefault evaluates the source of a default argument value.
	EvalDefault func(src string) (value.Value, error)
}

// NewContext returns a Context with an empty class registry.
func NewContext() *Context {
	return &Context{
		Classes: NewClassRegistry(),
		EvalDefault: func(src string) (value.Value, error) {
			return eval.Eval(src, nil)
		},
	}
}

// Class returns the descriptor of the named class.
func (c *Context) Class(name string) (*Descriptor, error) {
	cls, err := c.Classes.Resolve(name)
	if err != nil {
		return nil, err
	}
	return classOf(cls), nil
}

// NewObject returns an empty object of the named class.
func (c *Context) NewObject(class string) (*value.MapCallable, error) {
	lineage, err := c.Classes.Lineage(class)
	if err != nil {
		return nil, err
	}
	return value.NewMapCallable(lineage...), nil
}
