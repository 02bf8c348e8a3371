package vm

import (
	"fmt"

	"github.com/signadot/ffl/debug"
	"github.com/signadot/ffl/value"
)

// TraceInfo describes a single instruction dispatch.
type TraceInfo struct {
	Op    byte
	IP    int
	Depth int
}

// TraceHook observes instruction dispatch.
type TraceHook func(TraceInfo)

type runOpts struct {
	strict bool
	trace  TraceHook
}

// RunOption configures Run.
type RunOption func(*runOpts)

// Strict requires exactly one value on the stack when the program ends.
// Without it, the result is the bottom of the stack whatever else is
// left above it.
func Strict() RunOption {
	return func(o *runOpts) { o.strict = true }
}

// Trace calls h before each instruction.
func Trace(h TraceHook) RunOption {
	return func(o *runOpts) { o.trace = h }
}

var binops = map[byte]value.Op{
	OP_ADD: value.OpAdd,
	OP_SUB: value.OpSub,
	OP_MUL: value.OpMul,
	OP_DIV: value.OpDiv,
	OP_MOD: value.OpMod,
	OP_POW: value.OpPow,
}

// Run executes p. Names are read from env; a nil env reads every name
// as null. The result is stack slot 0, or null for an empty program.
func (p *Program) Run(env Env, opts ...RunOption) (value.Value, error) {
	o := &runOpts{}
	for _, opt := range opts {
		opt(o)
	}
	stack := make([]value.Value, p.depth)
	sp := 0
	code := p.code
	for ip := 0; ip < len(code); {
		op := code[ip]
		if o.trace != nil {
			o.trace(TraceInfo{Op: op, IP: ip, Depth: sp})
		}
		at := ip
		ip++
		switch op {
		case PUSH_NULL:
			stack[sp] = value.Null()
		case PUSH_INT_0, PUSH_INT_1, PUSH_INT_2, PUSH_INT_3, PUSH_INT_4, PUSH_INT_5:
			stack[sp] = value.FromInt(int64(op - PUSH_INT_0))
		case PUSH_INT_100:
			stack[sp] = value.FromInt(100)
		case PUSH_INT_1000:
			stack[sp] = value.FromInt(1000)
		case PUSH_INT_1B:
			stack[sp] = value.FromInt(int64(code[ip]))
			ip++
		case PUSH_INT_NEGATIVE_1B:
			stack[sp] = value.FromInt(-int64(code[ip]))
			ip++
		case PUSH_INT_3B:
			stack[sp] = value.FromInt(int64(immediate(code, ip, 3)))
			ip += 3
		case PUSH_TRUE:
			stack[sp] = value.True
		case PUSH_FALSE:
			stack[sp] = value.False
		case PUSH_CONST:
			stack[sp] = p.consts[immediate(code, ip, 2)]
			ip += 2
		case LOOKUP:
			name := p.names[immediate(code, ip, 2)]
			ip += 2
			if env != nil {
				stack[sp] = env.Get(name)
			} else {
				stack[sp] = value.Null()
			}
		case OP_UNARY_NEGATIVE:
			v, err := value.Neg(stack[sp-1])
			if err != nil {
				return value.Value{}, &RuntimeError{Offset: at, Op: op, Err: err}
			}
			stack[sp-1] = v
			continue
		case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_POW:
			v, err := value.Apply(binops[op], stack[sp-2], stack[sp-1])
			if err != nil {
				return value.Value{}, &RuntimeError{Offset: at, Op: op, Err: err}
			}
			sp--
			stack[sp-1] = v
			stack[sp] = value.Value{}
			continue
		default:
			panic(fmt.Sprintf("vm: unvalidated opcode 0x%02x at %d", op, at))
		}
		sp++
	}
	if debug.VM() {
		debug.Logf("halted with %d values on the stack\n", sp)
	}
	if o.strict && sp != 1 {
		return value.Value{}, fmt.Errorf("%w: %d values", ErrResidual, sp)
	}
	if sp == 0 {
		return value.Null(), nil
	}
	return stack[0], nil
}

// Execute runs p against env, making Program a value.Code.
func (p *Program) Execute(env value.Callable) (value.Value, error) {
	return p.Run(env)
}
