package schema

import (
	"slices"

	"github.com/signadot/ffl/value"
)

// Kind is the variant of a Descriptor.
type Kind int

const (
	SimpleKind Kind = iota
	AnyKind
	ClassKind
	UnionKind
	ListKind
	MapKind
	FunctionKind
	CommandsKind
)

func (k Kind) String() string {
	return map[Kind]string{
		SimpleKind:   "simple",
		AnyKind:      "any",
		ClassKind:    "class",
		UnionKind:    "union",
		ListKind:     "list",
		MapKind:      "map",
		FunctionKind: "function",
		CommandsKind: "commands",
	}[k]
}

// Descriptor describes the set of values allowed at some position.
// Descriptors are immutable once constructed.
type Descriptor struct {
	kind Kind

	simple value.Kind
	class  *Class
	// members of a union, arguments of a function
	members []*Descriptor
	// list element, map key, function return
	elem *Descriptor
	// map value
	val *Descriptor

	minArgs  int
	defaults []value.Value
}

var simples = func() map[value.Kind]*Descriptor {
	res := map[value.Kind]*Descriptor{}
	for _, k := range value.Kinds() {
		res[k] = &Descriptor{kind: SimpleKind, simple: k}
	}
	return res
}()

var (
	anyDesc      = &Descriptor{kind: AnyKind}
	commandsDesc = &Descriptor{kind: CommandsKind}
)

// Simple returns the descriptor matching values of kind k.
func Simple(k value.Kind) *Descriptor {
	return simples[k]
}

func Any() *Descriptor {
	return anyDesc
}

// Commands describes null, a command object or a list of them.
func Commands() *Descriptor {
	return commandsDesc
}

// classOf describes objects which are instances of c. Callers outside
// the package go through Context.Class so that c is registered.
func classOf(c *Class) *Descriptor {
	return &Descriptor{kind: ClassKind, class: c}
}

// List describes lists of elem. A nil elem means Any.
func List(elem *Descriptor) *Descriptor {
	elem = orAny(elem)
	return &Descriptor{kind: ListKind, elem: elem}
}

func Map(key, val *Descriptor) *Descriptor {
	key, val = orAny(key), orAny(val)
	return &Descriptor{kind: MapKind, elem: key, val: val}
}

// Function describes functions taking args and returning ret, of
// which the first minArgs are required.
func Function(args []*Descriptor, ret *Descriptor, minArgs int) *Descriptor {
	return &Descriptor{
		kind:    FunctionKind,
		members: slices.Clone(args),
		elem:    orAny(ret),
		minArgs: max(0, min(minArgs, len(args))),
	}
}

// FunctionWithDefaults describes a function whose trailing
// len(defaults) arguments have default values.
func FunctionWithDefaults(args []*Descriptor, ret *Descriptor, defaults []value.Value) *Descriptor {
	d := Function(args, ret, len(args)-len(defaults))
	d.defaults = slices.Clone(defaults)
	return d
}

func (d *Descriptor) Kind() Kind { return d.kind }

// SimpleKind returns the value kind of a Simple descriptor.
func (d *Descriptor) SimpleKind() value.Kind { return d.simple }

func (d *Descriptor) Class() *Class { return d.class }

// Members returns the members of a union.
func (d *Descriptor) Members() []*Descriptor {
	if d.kind != UnionKind {
		return nil
	}
	return slices.Clone(d.members)
}

// Elem returns the element of a list.
func (d *Descriptor) Elem() *Descriptor {
	if d.kind != ListKind {
		return nil
	}
	return d.elem
}

func (d *Descriptor) Key() *Descriptor {
	if d.kind != MapKind {
		return nil
	}
	return d.elem
}

func (d *Descriptor) Value() *Descriptor {
	return d.val
}

// Args returns the argument descriptors of a function.
func (d *Descriptor) Args() []*Descriptor {
	if d.kind != FunctionKind {
		return nil
	}
	return slices.Clone(d.members)
}

func (d *Descriptor) Return() *Descriptor {
	if d.kind != FunctionKind {
		return nil
	}
	return d.elem
}

func (d *Descriptor) MinArgs() int { return d.minArgs }

func (d *Descriptor) Defaults() []value.Value {
	return slices.Clone(d.defaults)
}

// isBare reports whether d is the unparameterized Simple descriptor of
// kind k.
func (d *Descriptor) isBare(k value.Kind) bool {
	return d.kind == SimpleKind && d.simple == k
}

func orAny(d *Descriptor) *Descriptor {
	if d == nil {
		return anyDesc
	}
	return d
}
