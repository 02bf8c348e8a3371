package value

import "fmt"

// Kind is the discriminant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	DecimalKind
	StringKind
	ListKind
	MapKind
	CallableKind
	FunctionKind
)

var kindNames = map[Kind]string{
	NullKind:     "null",
	BoolKind:     "bool",
	IntKind:      "int",
	DecimalKind:  "decimal",
	StringKind:   "string",
	ListKind:     "list",
	MapKind:      "map",
	CallableKind: "object",
	FunctionKind: "function",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := ParseKind(string(d))
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// ParseKind maps a kind name as written in type annotations
// to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return NullKind, false
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		DecimalKind,
		StringKind,
		ListKind,
		MapKind,
		CallableKind,
		FunctionKind,
	}
}

// IsNumeric reports whether k is Int or Decimal.
func (k Kind) IsNumeric() bool {
	return k == IntKind || k == DecimalKind
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, MapKind:
		return false
	default:
		return true
	}
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < Int,Decimal < String < List < Map < Callable < Function
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case IntKind, DecimalKind:
		return 2
	case StringKind:
		return 3
	case ListKind:
		return 4
	case MapKind:
		return 5
	case CallableKind:
		return 6
	case FunctionKind:
		return 7
	}
	return 100
}
