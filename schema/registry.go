package schema

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Class is a nominal class known to a ClassRegistry.
type Class struct {
	Name   string
	Parent *Class
}

// Derives reports whether c is base or has base as an ancestor.
func (c *Class) Derives(base *Class) bool {
	for x := c; x != nil; x = x.Parent {
		if x == base || x.Name == base.Name {
			return true
		}
	}
	return false
}

// Lineage returns the names of c and its ancestors, most derived first.
func (c *Class) Lineage() []string {
	var res []string
	for x := c; x != nil; x = x.Parent {
		res = append(res, x.Name)
	}
	return res
}

// ClassRegistry holds the classes type annotations may refer to. It is
// populated and then frozen, after which it is read only.
type ClassRegistry struct {
	mu      sync.RWMutex
	classes map[string]*Class
	frozen  bool
}

func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{classes: make(map[string]*Class)}
}

// RegisterClass registers name, deriving from parent when parent is
// not empty. The parent must already be registered.
func (r *ClassRegistry) RegisterClass(name, parent string) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("class name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return nil, fmt.Errorf("%w: cannot register class %q", ErrFrozen, name)
	}
	if _, exists := r.classes[name]; exists {
		return nil, fmt.Errorf("class %q already registered", name)
	}
	c := &Class{Name: name}
	if parent != "" {
		p, exists := r.classes[parent]
		if !exists {
			return nil, &ClassNotFoundError{Name: parent}
		}
		c.Parent = p
	}
	r.classes[name] = c
	return c, nil
}

// Freeze makes the registry read only.
func (r *ClassRegistry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

func (r *ClassRegistry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Resolve looks up a class by name.
func (r *ClassRegistry) Resolve(name string) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, exists := r.classes[name]
	if !exists {
		return nil, &ClassNotFoundError{Name: name}
	}
	return c, nil
}

// Lineage returns the lineage of the named class.
func (r *ClassRegistry) Lineage(name string) ([]string, error) {
	c, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return c.Lineage(), nil
}

// All returns all registered classes sorted by name.
func (r *ClassRegistry) All() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ClassSpec declares a class in a class file.
type ClassSpec struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent"`
}

// Load registers specs, in any order as long as every parent is
// either registered already or declared in specs.
func (r *ClassRegistry) Load(specs []ClassSpec) error {
	pending := slices.Clone(specs)
	for len(pending) > 0 {
		var next []ClassSpec
		for _, s := range pending {
			_, err := r.RegisterClass(s.Name, s.Parent)
			var cnf *ClassNotFoundError
			if errors.As(err, &cnf) && slices.ContainsFunc(pending, func(p ClassSpec) bool { return p.Name == cnf.Name }) {
				next = append(next, s)
				continue
			}
			if err != nil {
				return err
			}
		}
		if len(next) == len(pending) {
			return fmt.Errorf("class hierarchy cycle among %q", next[0].Name)
		}
		pending = next
	}
	return nil
}
