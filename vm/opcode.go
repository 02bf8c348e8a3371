package vm

import "fmt"

// Opcodes. Immediates follow the opcode byte, big-endian.
const (
	PUSH_NULL byte = iota
	PUSH_INT_0
	PUSH_INT_1
	PUSH_INT_2
	PUSH_INT_3
	PUSH_INT_4
	PUSH_INT_5
	PUSH_INT_100
	PUSH_INT_1000
	PUSH_INT_1B          // u8
	PUSH_INT_NEGATIVE_1B // u8, negated
	PUSH_INT_3B          // u24
	OP_UNARY_NEGATIVE
	_ // reserved
	_ // reserved
	_ // reserved

	PUSH_TRUE
	PUSH_FALSE
	PUSH_CONST // u16 constant index
	LOOKUP     // u16 name index
	_          // reserved
	_          // reserved
	_          // reserved
	_          // reserved

	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD
	OP_POW
)

type opInfo struct {
	name string
	// width of the immediate in bytes
	width int
	pops  int
}

var ops = map[byte]opInfo{
	PUSH_NULL:            {name: "PUSH_NULL"},
	PUSH_INT_0:           {name: "PUSH_INT_0"},
	PUSH_INT_1:           {name: "PUSH_INT_1"},
	PUSH_INT_2:           {name: "PUSH_INT_2"},
	PUSH_INT_3:           {name: "PUSH_INT_3"},
	PUSH_INT_4:           {name: "PUSH_INT_4"},
	PUSH_INT_5:           {name: "PUSH_INT_5"},
	PUSH_INT_100:         {name: "PUSH_INT_100"},
	PUSH_INT_1000:        {name: "PUSH_INT_1000"},
	PUSH_INT_1B:          {name: "PUSH_INT_1B", width: 1},
	PUSH_INT_NEGATIVE_1B: {name: "PUSH_INT_NEGATIVE_1B", width: 1},
	PUSH_INT_3B:          {name: "PUSH_INT_3B", width: 3},
	OP_UNARY_NEGATIVE:    {name: "OP_UNARY_NEGATIVE", pops: 1},
	PUSH_TRUE:            {name: "PUSH_TRUE"},
	PUSH_FALSE:           {name: "PUSH_FALSE"},
	PUSH_CONST:           {name: "PUSH_CONST", width: 2},
	LOOKUP:               {name: "LOOKUP", width: 2},
	OP_ADD:               {name: "OP_ADD", pops: 2},
	OP_SUB:               {name: "OP_SUB", pops: 2},
	OP_MUL:               {name: "OP_MUL", pops: 2},
	OP_DIV:               {name: "OP_DIV", pops: 2},
	OP_MOD:               {name: "OP_MOD", pops: 2},
	OP_POW:               {name: "OP_POW", pops: 2},
}

var opsByName = func() map[string]byte {
	res := make(map[string]byte, len(ops))
	for op, info := range ops {
		res[info.name] = op
	}
	return res
}()

// OpName returns the mnemonic of op.
func OpName(op byte) string {
	if info, ok := ops[op]; ok {
		return info.name
	}
	return fmt.Sprintf("OP_0x%02X", op)
}

// OpByName returns the opcode with mnemonic name.
func OpByName(name string) (byte, bool) {
	op, ok := opsByName[name]
	return op, ok
}

func immediate(code []byte, at, width int) int {
	n := 0
	for i := range width {
		n = n<<8 | int(code[at+i])
	}
	return n
}
