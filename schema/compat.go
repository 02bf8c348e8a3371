package schema

import (
	"github.com/signadot/ffl/value"
)

// IsCompatible reports whether a value described by from may be used
// where to is expected.
func IsCompatible(to, from *Descriptor) bool {
	if to.kind == SimpleKind && from.kind == SimpleKind {
		if to.simple == from.simple {
			return true
		}
		if to.simple == value.DecimalKind && from.simple == value.IntKind {
			return true
		}
	}
	if to.kind == AnyKind {
		return true
	}
	if from.kind == AnyKind {
		return false
	}
	if from.kind == UnionKind {
		for _, m := range from.members {
			if !IsCompatible(to, m) {
				return false
			}
		}
		return true
	}
	if to.kind == UnionKind {
		for _, m := range to.members {
			if IsCompatible(m, from) {
				return true
			}
		}
		return false
	}

	switch to.kind {
	case SimpleKind:
		// bare container and object kinds accept their whole family
		switch to.simple {
		case value.ListKind:
			return from.kind == ListKind
		case value.MapKind:
			return from.kind == MapKind
		case value.CallableKind:
			return from.kind == ClassKind
		case value.FunctionKind:
			return from.kind == FunctionKind
		}
		return false
	case ListKind:
		switch {
		case from.kind == ListKind:
			return IsCompatible(to.elem, from.elem)
		case from.isBare(value.ListKind):
			return IsCompatible(to.elem, anyDesc)
		}
		return false
	case MapKind:
		switch {
		case from.kind == MapKind:
			return IsCompatible(to.elem, from.elem) && IsCompatible(to.val, from.val)
		case from.isBare(value.MapKind):
			return IsCompatible(to.elem, anyDesc) && IsCompatible(to.val, anyDesc)
		}
		return false
	case ClassKind:
		switch {
		case from.kind == ClassKind:
			return from.class.Derives(to.class)
		case from.isBare(value.MapKind):
			return true
		}
		return false
	case FunctionKind:
		if from.kind != FunctionKind || len(to.members) != len(from.members) {
			return false
		}
		if !IsCompatible(to.elem, from.elem) {
			return false
		}
		for i := range to.members {
			a, b := to.members[i], from.members[i]
			if !IsCompatible(a, b) || !IsCompatible(b, a) {
				return false
			}
		}
		return true
	case CommandsKind:
		return from.kind == CommandsKind || from.isBare(value.NullKind)
	}
	return false
}
