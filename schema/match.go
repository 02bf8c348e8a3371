package schema

import (
	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/value"
)

// Command is implemented by host objects which represent deferred
// actions, as accepted by the commands type.
type Command interface {
	value.Callable
	Execute(env value.Callable) error
}

// Match reports whether v is in the set of values d describes.
func (d *Descriptor) Match(v value.Value) bool {
	res := d.match(v)
	if debug.Match() {
		debug.Logf("match %s against %s: %t\n", v, d, res)
	}
	return res
}

func (d *Descriptor) match(v value.Value) bool {
	switch d.kind {
	case SimpleKind:
		k := v.Kind()
		return k == d.simple || (d.simple == value.DecimalKind && k == value.IntKind)
	case AnyKind:
		return true
	case ClassKind:
		c, err := v.AsCallable()
		return err == nil && c != nil && c.IsA(d.class.Name)
	case UnionKind:
		for _, m := range d.members {
			if m.match(v) {
				return true
			}
		}
		return false
	case ListKind:
		if v.Kind() != value.ListKind {
			return false
		}
		ok := true
		v.Each(func(_, e value.Value) bool {
			ok = d.elem.match(e)
			return ok
		})
		return ok
	case MapKind:
		if v.Kind() != value.MapKind {
			return false
		}
		ok := true
		v.Each(func(k, e value.Value) bool {
			ok = d.elem.match(k) && d.val.match(e)
			return ok
		})
		return ok
	case FunctionKind:
		f, err := v.AsFunction()
		if err != nil || f == nil {
			return false
		}
		return matchSignature(d, Signature(f))
	case CommandsKind:
		return matchCommands(v)
	}
	return false
}

// matchSignature requires the same arity and equal argument and return
// descriptors.
func matchSignature(d, sig *Descriptor) bool {
	if len(d.members) != len(sig.members) {
		return false
	}
	for i := range d.members {
		if !IsEqual(d.members[i], sig.members[i]) {
			return false
		}
	}
	return IsEqual(d.elem, sig.elem)
}

func matchCommands(v value.Value) bool {
	switch v.Kind() {
	case value.NullKind:
		return true
	case value.CallableKind:
		c, _ := v.AsCallable()
		_, ok := c.(Command)
		return ok
	case value.ListKind:
		ok := true
		v.Each(func(_, e value.Value) bool {
			ok = matchCommands(e)
			return ok
		})
		return ok
	}
	return false
}

// Signature returns the descriptor of f for the arguments it has not
// bound. Functions without a descriptor signature take and return any.
func Signature(f *value.Function) *Descriptor {
	if sig, ok := f.Signature.(*Descriptor); ok && sig.kind == FunctionKind {
		bound := min(len(f.Bound), len(sig.members))
		if bound == 0 {
			return sig
		}
		return Function(sig.members[bound:], sig.elem, sig.minArgs-bound)
	}
	args := make([]*Descriptor, f.Arity())
	for i := range args {
		args[i] = anyDesc
	}
	return Function(args, anyDesc, f.MinArgs())
}
