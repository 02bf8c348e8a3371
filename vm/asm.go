package vm

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/ffl/value"
)

// Assemble encodes the text form of a program, one instruction per
// line:
//
//	# comment
//	PUSH_INT_1B 200
//	PUSH_CONST "abc"
//	LOOKUP hp
//	PUSH 1.5
//	OP_ADD
//
// PUSH_CONST and PUSH take a JSON value. PUSH chooses the shortest
// encoding. A leading offset column, as written by Disassemble, is
// ignored.
func Assemble(src string) (*Program, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(nil, 1<<20)
	for n := 1; sc.Scan(); n++ {
		if err := assembleLine(b, sc.Text()); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrAssemble, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b.Program()
}

func assembleLine(b *Builder, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return nil
	}
	mnemonic, arg, _ := strings.Cut(line, " ")
	if isOffset(mnemonic) {
		line = strings.TrimSpace(arg)
		mnemonic, arg, _ = strings.Cut(line, " ")
	}
	arg = strings.TrimSpace(arg)
	if mnemonic == "PUSH" {
		v, err := value.Deserialize([]byte(arg))
		if err != nil {
			return err
		}
		b.Value(v)
		return b.err
	}
	op, ok := OpByName(mnemonic)
	if !ok {
		return fmt.Errorf("unknown instruction %q", mnemonic)
	}
	info := ops[op]
	switch op {
	case PUSH_CONST:
		v, err := value.Deserialize([]byte(arg))
		if err != nil {
			return err
		}
		b.Const(v)
		return b.err
	case LOOKUP:
		if arg == "" {
			return fmt.Errorf("LOOKUP needs a name")
		}
		b.Lookup(arg)
		return b.err
	}
	if info.width == 0 {
		if arg != "" {
			return fmt.Errorf("%s takes no operand", mnemonic)
		}
		b.Op(op)
		return nil
	}
	n, err := strconv.ParseUint(arg, 0, 8*info.width)
	if err != nil {
		return fmt.Errorf("%s operand: %w", mnemonic, err)
	}
	b.code = append(b.code, op)
	for i := info.width - 1; i >= 0; i-- {
		b.code = append(b.code, byte(n>>(8*i)))
	}
	return nil
}

func isOffset(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
