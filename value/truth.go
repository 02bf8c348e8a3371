package value

// Truthy reports the boolean sense of v as used by conditionals. Unlike
// AsBool it never fails.
func (v Value) Truthy() bool {
	switch v.kind {
	case NullKind:
		return false
	case BoolKind, IntKind, DecimalKind:
		return v.n != 0
	case StringKind:
		return v.str() != ""
	case ListKind:
		return len(v.list()) != 0
	case MapKind:
		return len(v.pairs()) != 0
	case CallableKind, FunctionKind:
		return true
	default:
		panic("kind")
	}
}
