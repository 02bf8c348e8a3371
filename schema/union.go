package schema

import "slices"

// Union returns a descriptor matching any of members. Nested unions are
// flattened and duplicates removed. A union containing Any is Any, and
// a union of a single member is that member. A union of no members
// matches nothing.
func Union(members ...*Descriptor) *Descriptor {
	var flat []*Descriptor
	add := func(m *Descriptor) {
		if slices.ContainsFunc(flat, func(x *Descriptor) bool { return IsEqual(x, m) }) {
			return
		}
		flat = append(flat, m)
	}
	for _, m := range members {
		if m == nil {
			continue
		}
		switch m.kind {
		case AnyKind:
			return anyDesc
		case UnionKind:
			for _, mm := range m.members {
				add(mm)
			}
		default:
			add(m)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Descriptor{kind: UnionKind, members: flat}
}
