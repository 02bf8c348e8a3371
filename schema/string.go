package schema

import (
	"strings"
)

// String renders d in type annotation syntax.
func (d *Descriptor) String() string {
	var buf strings.Builder
	d.write(&buf)
	return buf.String()
}

func (d *Descriptor) write(buf *strings.Builder) {
	switch d.kind {
	case SimpleKind:
		buf.WriteString(d.simple.String())
	case AnyKind:
		buf.WriteString("any")
	case CommandsKind:
		buf.WriteString("commands")
	case ClassKind:
		buf.WriteString("class " + d.class.Name)
	case UnionKind:
		for i, m := range d.members {
			if i > 0 {
				buf.WriteByte('|')
			}
			m.write(buf)
		}
	case ListKind:
		buf.WriteByte('[')
		d.elem.write(buf)
		buf.WriteByte(']')
	case MapKind:
		buf.WriteByte('{')
		d.elem.write(buf)
		buf.WriteString(" -> ")
		d.val.write(buf)
		buf.WriteByte('}')
	case FunctionKind:
		buf.WriteString("def(")
		first := len(d.members) - len(d.defaults)
		for i, a := range d.members {
			if i > 0 {
				buf.WriteString(", ")
			}
			a.write(buf)
			if i >= first && len(d.defaults) != 0 {
				buf.WriteString("=" + d.defaults[i-first].String())
			}
		}
		buf.WriteString(") -> ")
		d.elem.write(buf)
	}
}
