package value

import (
	"slices"
	"sort"

	"github.com/signadot/ffl/debug"
)

// Len returns the number of elements of a list or map, the byte length
// of a string and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case ListKind:
		return len(v.list())
	case MapKind:
		return len(v.pairs())
	case StringKind:
		return len(v.str())
	}
	return 0
}

// Index returns element i of a list.
func (v Value) Index(i int) (Value, error) {
	if v.kind != ListKind {
		return Value{}, typeErr("index", ListKind, v.kind)
	}
	l := v.list()
	if i < 0 || i >= len(l) {
		return Value{}, &IndexError{Index: i, Len: len(l)}
	}
	return l[i], nil
}

// Slice returns the sub-list [begin, end) of a list.
func (v Value) Slice(begin, end int) (Value, error) {
	if v.kind != ListKind {
		return Value{}, typeErr("slice", ListKind, v.kind)
	}
	l := v.list()
	if begin < 0 || begin > len(l) {
		return Value{}, &IndexError{Index: begin, Len: len(l)}
	}
	if end < begin || end > len(l) {
		return Value{}, &IndexError{Index: end, Len: len(l)}
	}
	// sub-slices share the payload, which is never written in place.
	return Value{kind: ListKind, ref: l[begin:end:end]}, nil
}

// Get looks up key in v. Maps accept any key, lists accept a number and
// objects accept a string, which is passed to the host's Get.
func (v Value) Get(key Value) (Value, error) {
	switch v.kind {
	case MapKind:
		ps := v.pairs()
		i, ok := findPair(ps, key)
		if !ok {
			return Value{}, &KeyError{Key: key}
		}
		return ps[i].Val, nil
	case ListKind:
		if !key.kind.IsNumeric() {
			return Value{}, typeErr("index", IntKind, key.kind)
		}
		i, _ := key.AsInt()
		return v.Index(int(i))
	case CallableKind:
		if key.kind != StringKind {
			return Value{}, typeErr("member", StringKind, key.kind)
		}
		return v.ref.(*callableRef).c.Get(key.str()), nil
	}
	return Value{}, typeErr("get", MapKind, v.kind)
}

// Member is Get with a string key.
func (v Value) Member(name string) (Value, error) {
	return v.Get(FromString(name))
}

// Has reports whether a map contains key.
func (v Value) Has(key Value) bool {
	_, ok := findPair(v.pairs(), key)
	return ok
}

// Keys returns the keys of a map as a list, in order.
func (v Value) Keys() Value {
	ps := v.pairs()
	res := make([]Value, len(ps))
	for i := range ps {
		res[i] = ps[i].Key
	}
	return Value{kind: ListKind, ref: res}
}

// Values returns the values of a map as a list, in key order.
func (v Value) Values() Value {
	ps := v.pairs()
	res := make([]Value, len(ps))
	for i := range ps {
		res[i] = ps[i].Val
	}
	return Value{kind: ListKind, ref: res}
}

// Each calls fn for each element of a list, or each pair of a map
// with the key as the first argument. Iteration stops when fn
// returns false.
func (v Value) Each(fn func(k, v Value) bool) {
	switch v.kind {
	case ListKind:
		for i, e := range v.list() {
			if !fn(FromInt(int64(i)), e) {
				return
			}
		}
	case MapKind:
		for _, p := range v.pairs() {
			if !fn(p.Key, p.Val) {
				return
			}
		}
	}
}

// SetIndex replaces element i of the list held by v. Other holders of
// the list are unaffected.
func (v *Value) SetIndex(i int, x Value) error {
	if v.kind != ListKind {
		return typeErr("index", ListKind, v.kind)
	}
	l := v.list()
	if i < 0 || i >= len(l) {
		return &IndexError{Index: i, Len: len(l)}
	}
	logCopy("set index", len(l))
	l = slices.Clone(l)
	l[i] = x
	v.ref = l
	return nil
}

// Append appends xs to the list held by v.
func (v *Value) Append(xs ...Value) error {
	if v.kind != ListKind {
		return typeErr("append", ListKind, v.kind)
	}
	l := v.list()
	logCopy("append", len(l))
	res := make([]Value, len(l), len(l)+len(xs))
	copy(res, l)
	v.ref = append(res, xs...)
	return nil
}

// SetKey sets key to x in the map held by v. On an object, key must be
// a string and the assignment goes to the host's Set.
func (v *Value) SetKey(key, x Value) error {
	switch v.kind {
	case MapKind:
		logCopy("set key", v.Len())
		v.ref = setPair(slices.Clone(v.pairs()), key, x)
		return nil
	case CallableKind:
		if key.kind != StringKind {
			return typeErr("member", StringKind, key.kind)
		}
		return v.ref.(*callableRef).c.Set(key.str(), x)
	}
	return typeErr("set", MapKind, v.kind)
}

// DeleteKey removes key from the map held by v, reporting whether it
// was present.
func (v *Value) DeleteKey(key Value) (bool, error) {
	if v.kind != MapKind {
		return false, typeErr("delete", MapKind, v.kind)
	}
	ps := v.pairs()
	i, ok := findPair(ps, key)
	if !ok {
		return false, nil
	}
	logCopy("delete key", len(ps))
	v.ref = slices.Delete(slices.Clone(ps), i, i+1)
	return true, nil
}

func findPair(ps []Pair, key Value) (int, bool) {
	i := sort.Search(len(ps), func(i int) bool {
		return Compare(ps[i].Key, key) >= 0
	})
	return i, i < len(ps) && Compare(ps[i].Key, key) == 0
}

// setPair sets key in ps, which must be owned by the caller.
func setPair(ps []Pair, key, val Value) []Pair {
	i, ok := findPair(ps, key)
	if ok {
		ps[i].Val = val
		return ps
	}
	return slices.Insert(ps, i, Pair{Key: key, Val: val})
}

func logCopy(op string, n int) {
	if debug.Value() {
		debug.Logf("value: %s copies payload of %d\n", op, n)
	}
}
