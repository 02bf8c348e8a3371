package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	rankA := rank(a.kind)
	rankB := rank(b.kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.kind {
	case NullKind:
		return 0
	case BoolKind:
		return cmp.Compare(a.n, b.n)
	case IntKind, DecimalKind:
		return compareNumbers(a, b)
	case StringKind:
		return strings.Compare(a.str(), b.str())
	case ListKind:
		return compareLists(a.list(), b.list())
	case MapKind:
		return compareMaps(a.pairs(), b.pairs())
	case CallableKind:
		ra, rb := a.ref.(*callableRef), b.ref.(*callableRef)
		if c := cmp.Compare(ra.ptr, rb.ptr); c != 0 {
			return c
		}
		return cmp.Compare(ra.seq, rb.seq)
	case FunctionKind:
		return cmp.Compare(a.ref.(*Function).id.Load(), b.ref.(*Function).id.Load())
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareNumbers(a, b Value) int {
	switch {
	case a.kind == IntKind && b.kind == IntKind:
		return cmp.Compare(a.n, b.n)
	case a.kind == DecimalKind && b.kind == DecimalKind:
		return cmp.Compare(a.n, b.n)
	case a.kind == IntKind:
		return cmpIntDecimal(a.n, Decimal(b.n))
	default:
		return -cmpIntDecimal(b.n, Decimal(a.n))
	}
}

func compareLists(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMaps(a, b []Pair) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Val, b[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
