package vm

import (
	"slices"

	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/value"
)

// StackSize bounds the operand stack depth of any program.
const StackSize = 1 << 16

// Env is what LOOKUP reads names from.
type Env = value.Callable

// Program is a validated code stream with its constant and name pools.
type Program struct {
	code   []byte
	consts []value.Value
	names  []string
	depth  int
}

// Load validates code against consts and names. Validation simulates
// the stack, so a loaded program cannot underflow or overflow when run.
func Load(code []byte, consts []value.Value, names []string) (*Program, error) {
	p := &Program{
		code:   slices.Clone(code),
		consts: slices.Clone(consts),
		names:  slices.Clone(names),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if debug.VM() {
		debug.Logf("loaded %d bytes, max depth %d\n", len(p.code), p.depth)
	}
	return p, nil
}

func (p *Program) validate() error {
	sp := 0
	for ip := 0; ip < len(p.code); {
		op := p.code[ip]
		info, ok := ops[op]
		fault := func(err error) error {
			return &StackFault{Offset: ip, Op: op, Err: err}
		}
		if !ok {
			return fault(ErrBadOpcode)
		}
		if ip+1+info.width > len(p.code) {
			return fault(ErrTruncated)
		}
		switch op {
		case PUSH_CONST:
			if immediate(p.code, ip+1, 2) >= len(p.consts) {
				return fault(ErrBadConstant)
			}
		case LOOKUP:
			if immediate(p.code, ip+1, 2) >= len(p.names) {
				return fault(ErrBadName)
			}
		}
		if sp < info.pops {
			return fault(ErrUnderflow)
		}
		// every instruction leaves one value
		sp += 1 - info.pops
		if sp > StackSize {
			return fault(ErrOverflow)
		}
		p.depth = max(p.depth, sp)
		ip += 1 + info.width
	}
	return nil
}

// Code returns the code stream.
func (p *Program) Code() []byte { return p.code }

// Consts returns the constant pool.
func (p *Program) Consts() []value.Value { return p.consts }

// Names returns the names LOOKUP refers to.
func (p *Program) Names() []string { return p.names }

// Depth is the maximum stack depth p reaches.
func (p *Program) Depth() int { return p.depth }
