package value

import (
	"strconv"
	"strings"
)

// String renders v in formula language literal syntax.
func (v Value) String() string {
	var buf strings.Builder
	v.write(&buf)
	return buf.String()
}

func (v Value) write(buf *strings.Builder) {
	switch v.kind {
	case NullKind:
		buf.WriteString("null")
	case BoolKind:
		buf.WriteString(strconv.FormatBool(v.n != 0))
	case IntKind:
		buf.WriteString(strconv.FormatInt(v.n, 10))
	case DecimalKind:
		buf.WriteString(Decimal(v.n).String())
	case StringKind:
		s := v.str()
		if !strings.Contains(s, "'") {
			buf.WriteString("'" + s + "'")
		} else if !strings.Contains(s, "~") {
			buf.WriteString("~" + s + "~")
		} else {
			buf.WriteString("q(" + s + ")")
		}
	case ListKind:
		buf.WriteByte('[')
		for i, e := range v.list() {
			if i > 0 {
				buf.WriteString(", ")
			}
			e.write(buf)
		}
		buf.WriteByte(']')
	case MapKind:
		buf.WriteByte('{')
		for i, p := range v.pairs() {
			if i > 0 {
				buf.WriteString(", ")
			}
			p.Key.write(buf)
			buf.WriteString(": ")
			p.Val.write(buf)
		}
		buf.WriteByte('}')
	case CallableKind:
		ref := v.ref.(*callableRef)
		if mc, ok := ref.c.(*MapCallable); ok && len(mc.Lineage) != 0 {
			buf.WriteString("(object " + mc.Lineage[0] + ")")
			return
		}
		buf.WriteString("(object)")
	case FunctionKind:
		f := v.ref.(*Function)
		buf.WriteString("def(" + strings.Join(f.Params[len(f.Bound):], ", ") + ")")
	}
}
