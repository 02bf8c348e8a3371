package schema

import "slices"

// IsEqual reports whether a and b are structurally equal. Union members
// are compared as sets. Default argument values are not compared.
func IsEqual(a, b *Descriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case SimpleKind:
		return a.simple == b.simple
	case AnyKind, CommandsKind:
		return true
	case ClassKind:
		return a.class.Name == b.class.Name
	case UnionKind:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			if !slices.ContainsFunc(b.members, func(x *Descriptor) bool { return IsEqual(m, x) }) {
				return false
			}
		}
		return true
	case ListKind:
		return IsEqual(a.elem, b.elem)
	case MapKind:
		return IsEqual(a.elem, b.elem) && IsEqual(a.val, b.val)
	case FunctionKind:
		if len(a.members) != len(b.members) || a.minArgs != b.minArgs {
			return false
		}
		for i := range a.members {
			if !IsEqual(a.members[i], b.members[i]) {
				return false
			}
		}
		return IsEqual(a.elem, b.elem)
	}
	return false
}
