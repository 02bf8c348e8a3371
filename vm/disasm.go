package vm

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/ffl/value"
)

// Disassemble writes p in the form Assemble reads.
func Disassemble(w io.Writer, p *Program) error {
	code := p.code
	for ip := 0; ip < len(code); {
		op := code[ip]
		info := ops[op]
		operand := ""
		switch op {
		case PUSH_CONST:
			d, err := value.Serialize(p.consts[immediate(code, ip+1, 2)])
			if err != nil {
				return err
			}
			operand = string(d)
		case LOOKUP:
			operand = p.names[immediate(code, ip+1, 2)]
		default:
			if info.width != 0 {
				operand = fmt.Sprint(immediate(code, ip+1, info.width))
			}
		}
		line := fmt.Sprintf("%04d %-20s %s", ip, info.name, operand)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
		ip += 1 + info.width
	}
	return nil
}

// String returns the disassembly of p.
func (p *Program) String() string {
	var buf strings.Builder
	if err := Disassemble(&buf, p); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return buf.String()
}
