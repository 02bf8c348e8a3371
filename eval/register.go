package eval

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
)

// Builtin is a function available to expressions.
type Builtin struct {
	Name string
	Fn   func(params ...any) (any, error)
	// Types are the signatures of Fn, as in expr.Function.
	Types []any
}

func (b *Builtin) String() string {
	return b.Name
}

func (b *Builtin) option() expr.Option {
	return expr.Function(b.Name, b.Fn, b.Types...)
}

var (
	mu sync.RWMutex
	d  = map[string]*Builtin{}
)

var ErrBuiltinExists = errors.New("builtin exists")

func Register(b *Builtin) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[b.Name]
	if present {
		return fmt.Errorf("%s: %w", b, ErrBuiltinExists)
	}
	d[b.Name] = b
	return nil
}

func init() {
	for _, b := range builtins() {
		if err := Register(b); err != nil {
			panic(err)
		}
	}
}

func Lookup(s string) *Builtin {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Builtins returns the registered builtins sorted by name.
func Builtins() []*Builtin {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]*Builtin, 0, len(d))
	for _, b := range d {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func exprOpts() []expr.Option {
	bs := Builtins()
	res := make([]expr.Option, 0, len(bs))
	for _, b := range bs {
		res = append(res, b.option())
	}
	return res
}
