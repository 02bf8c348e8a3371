package value

import (
	"fmt"
	"slices"
)

// Callable is the capability a host object exposes to the formula
// language.
type Callable interface {
	// Get returns the value of key, or null when there is none.
	Get(key string) Value
	// Set assigns key. It fails on unknown or read only keys.
	Set(key string, v Value) error
	// IsA reports whether the object's class is class or derives
	// from it.
	IsA(class string) bool
}

// MapCallable is a Callable backed by a map of fields. The zero value
// is an empty object with no class.
type MapCallable struct {
	// Lineage lists the object's class followed by its ancestors.
	Lineage []string
	// Fixed prevents adding keys with Set.
	Fixed bool

	fields   map[string]Value
	readOnly map[string]bool
}

func NewMapCallable(lineage ...string) *MapCallable {
	return &MapCallable{
		Lineage:  lineage,
		fields:   map[string]Value{},
		readOnly: map[string]bool{},
	}
}

// Define adds or replaces a field, bypassing read only checks.
func (m *MapCallable) Define(key string, v Value, readOnly bool) *MapCallable {
	m.init()
	m.fields[key] = v
	if readOnly {
		m.readOnly[key] = true
	} else {
		delete(m.readOnly, key)
	}
	return m
}

func (m *MapCallable) init() {
	if m.fields == nil {
		m.fields = map[string]Value{}
	}
	if m.readOnly == nil {
		m.readOnly = map[string]bool{}
	}
}

func (m *MapCallable) Get(key string) Value {
	return m.fields[key]
}

func (m *MapCallable) Set(key string, v Value) error {
	if m.readOnly[key] {
		return fmt.Errorf("%w: %q", ErrReadOnly, key)
	}
	if _, ok := m.fields[key]; !ok && m.Fixed {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	m.init()
	m.fields[key] = v
	return nil
}

func (m *MapCallable) IsA(class string) bool {
	return slices.Contains(m.Lineage, class)
}

// Keys returns the field names in sorted order.
func (m *MapCallable) Keys() []string {
	res := make([]string, 0, len(m.fields))
	for k := range m.fields {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// ToMap returns the fields as a map value.
func (m *MapCallable) ToMap() Value {
	return FromMap(m.fields)
}
