package vm

import (
	"fmt"
	"slices"

	"github.com/signadot/ffl/value"
)

// Builder encodes programs, choosing the shortest form of each push.
type Builder struct {
	code   []byte
	consts []value.Value
	names  []string
	err    error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Op appends an instruction without immediates.
func (b *Builder) Op(op byte) *Builder {
	b.code = append(b.code, op)
	return b
}

func (b *Builder) Null() *Builder {
	return b.Op(PUSH_NULL)
}

func (b *Builder) Bool(t bool) *Builder {
	if t {
		return b.Op(PUSH_TRUE)
	}
	return b.Op(PUSH_FALSE)
}

const max3B = 1<<24 - 1

// Int pushes n.
func (b *Builder) Int(n int64) *Builder {
	switch {
	case 0 <= n && n <= 5:
		return b.Op(PUSH_INT_0 + byte(n))
	case n == 100:
		return b.Op(PUSH_INT_100)
	case n == 1000:
		return b.Op(PUSH_INT_1000)
	case 0 < n && n <= 0xff:
		b.code = append(b.code, PUSH_INT_1B, byte(n))
	case -0xff <= n && n < 0:
		b.code = append(b.code, PUSH_INT_NEGATIVE_1B, byte(-n))
	case 0 < n && n <= max3B:
		b.code = append(b.code, PUSH_INT_3B, byte(n>>16), byte(n>>8), byte(n))
	case -max3B <= n && n < 0:
		b.Int(-n)
		b.Op(OP_UNARY_NEGATIVE)
	default:
		return b.Const(value.FromInt(n))
	}
	return b
}

// Value pushes v using an immediate form when there is one.
func (b *Builder) Value(v value.Value) *Builder {
	switch v.Kind() {
	case value.NullKind:
		return b.Null()
	case value.BoolKind:
		t, _ := v.AsBool()
		return b.Bool(t)
	case value.IntKind:
		n, _ := v.AsInt()
		return b.Int(n)
	}
	return b.Const(v)
}

// Const pushes v from the constant pool.
func (b *Builder) Const(v value.Value) *Builder {
	switch v.Kind() {
	case value.CallableKind, value.FunctionKind:
		b.fail(fmt.Errorf("%w: %s", ErrNotEncodable, v.Kind()))
		return b
	}
	i := slices.IndexFunc(b.consts, func(c value.Value) bool {
		return c.Kind() == v.Kind() && value.Equal(c, v)
	})
	if i == -1 {
		i = len(b.consts)
		b.consts = append(b.consts, v)
	}
	return b.u16(PUSH_CONST, i)
}

// Lookup pushes the value of name in the run's environment.
func (b *Builder) Lookup(name string) *Builder {
	i := slices.Index(b.names, name)
	if i == -1 {
		i = len(b.names)
		b.names = append(b.names, name)
	}
	return b.u16(LOOKUP, i)
}

func (b *Builder) u16(op byte, i int) *Builder {
	if i > 0xffff {
		b.fail(fmt.Errorf("%s: pool index %d overflows", OpName(op), i))
		return b
	}
	b.code = append(b.code, op, byte(i>>8), byte(i))
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Program validates and returns the built program.
func (b *Builder) Program() (*Program, error) {
	if b.err != nil {
		return nil, b.err
	}
	return Load(b.code, b.consts, b.names)
}
