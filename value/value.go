package value

import (
	"reflect"
	"slices"
	"sync/atomic"
)

// Value is a formula language runtime value. The zero Value is null.
type Value struct {
	kind Kind
	// n holds Bool (0 or 1), Int and the raw Decimal.
	n int64
	// ref holds string, []Value, []Pair, *callableRef or *Function.
	ref any
}

// Pair is a map entry.
type Pair struct {
	Key Value
	Val Value
}

type callableRef struct {
	c   Callable
	ptr uintptr
	seq uint64
}

var nextID atomic.Uint64

var (
	True  = Value{kind: BoolKind, n: 1}
	False = Value{kind: BoolKind}
)

func Null() Value { return Value{} }

func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

func FromInt(i int64) Value {
	return Value{kind: IntKind, n: i}
}

func FromDecimal(d Decimal) Value {
	return Value{kind: DecimalKind, n: int64(d)}
}

func FromString(s string) Value {
	return Value{kind: StringKind, ref: s}
}

// FromList creates a list holding a copy of items.
func FromList(items ...Value) Value {
	return Value{kind: ListKind, ref: slices.Clone(items)}
}

// FromPairs creates a map. When keys repeat, the last pair wins.
func FromPairs(pairs ...Pair) Value {
	res := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		res = setPair(res, p.Key, p.Val)
	}
	return Value{kind: MapKind, ref: res}
}

// FromMap creates a map with string keys.
func FromMap(m map[string]Value) Value {
	res := make([]Pair, 0, len(m))
	for k, v := range m {
		res = append(res, Pair{Key: FromString(k), Val: v})
	}
	slices.SortFunc(res, func(a, b Pair) int { return Compare(a.Key, b.Key) })
	return Value{kind: MapKind, ref: res}
}

// FromCallable wraps a host object. A nil c yields null.
func FromCallable(c Callable) Value {
	if c == nil {
		return Value{}
	}
	ref := &callableRef{c: c}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		ref.ptr = rv.Pointer()
	default:
		ref.seq = nextID.Add(1)
	}
	return Value{kind: CallableKind, ref: ref}
}

// FromFunction wraps f. A nil f yields null.
func FromFunction(f *Function) Value {
	if f == nil {
		return Value{}
	}
	f.id.CompareAndSwap(0, nextID.Add(1))
	return Value{kind: FunctionKind, ref: f}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) IsNumeric() bool { return v.kind.IsNumeric() }

// AsInt returns v as an int, converting null, bool and decimal.
func (v Value) AsInt() (int64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind, IntKind:
		return v.n, nil
	case DecimalKind:
		return Decimal(v.n).Int(), nil
	}
	return 0, typeErr("", IntKind, v.kind)
}

// AsDecimal returns v as a decimal, converting null, bool and int.
func (v Value) AsDecimal() (Decimal, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind, IntKind:
		return DecimalFromInt(v.n)
	case DecimalKind:
		return Decimal(v.n), nil
	}
	return 0, typeErr("", DecimalKind, v.kind)
}

func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case NullKind:
		return false, nil
	case BoolKind:
		return v.n != 0, nil
	}
	return false, typeErr("", BoolKind, v.kind)
}

func (v Value) AsString() (string, error) {
	switch v.kind {
	case NullKind:
		return "", nil
	case StringKind:
		return v.ref.(string), nil
	}
	return "", typeErr("", StringKind, v.kind)
}

// AsList returns a copy of the elements of a list.
func (v Value) AsList() ([]Value, error) {
	switch v.kind {
	case NullKind:
		return nil, nil
	case ListKind:
		return slices.Clone(v.list()), nil
	}
	return nil, typeErr("", ListKind, v.kind)
}

// AsMap returns a copy of the pairs of a map, in key order.
func (v Value) AsMap() ([]Pair, error) {
	switch v.kind {
	case NullKind:
		return nil, nil
	case MapKind:
		return slices.Clone(v.pairs()), nil
	}
	return nil, typeErr("", MapKind, v.kind)
}

func (v Value) AsCallable() (Callable, error) {
	switch v.kind {
	case NullKind:
		return nil, nil
	case CallableKind:
		return v.ref.(*callableRef).c, nil
	}
	return nil, typeErr("", CallableKind, v.kind)
}

func (v Value) AsFunction() (*Function, error) {
	switch v.kind {
	case NullKind:
		return nil, nil
	case FunctionKind:
		return v.ref.(*Function), nil
	}
	return nil, typeErr("", FunctionKind, v.kind)
}

func (v Value) list() []Value {
	if v.kind != ListKind {
		return nil
	}
	return v.ref.([]Value)
}

func (v Value) pairs() []Pair {
	if v.kind != MapKind {
		return nil
	}
	return v.ref.([]Pair)
}

func (v Value) str() string {
	if v.kind != StringKind {
		return ""
	}
	return v.ref.(string)
}
