package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path selects a part of a Value, eg $.units[0].hp
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		is := frag[1 : i+1]
		if is == "*" {
			parent.IndexAll = true
		} else {
			index, err := strconv.Atoi(is)
			if err != nil {
				return err
			}
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	parent.Next = &Path{}
	return parseFrag(rest, parent.Next)
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the single value selected by path.
func (v Value) GetPath(path string) (Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Value{}, err
	}
	res := v
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return Value{}, fmt.Errorf("any index in get")
		case x.Index != nil:
			res, err = res.Index(*x.Index)
		case x.Field != nil:
			res, err = res.Member(*x.Field)
		}
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return res, nil
}

// ListPath appends the values selected by path to dst. Missing fields
// and indices select nothing.
func (v Value) ListPath(dst []Value, path string) ([]Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.listPath(dst, p), nil
}

func (v Value) listPath(dst []Value, p *Path) []Value {
	if p == nil {
		return append(dst, v)
	}
	switch {
	case p.IndexAll:
		for _, e := range v.list() {
			dst = e.listPath(dst, p.Next)
		}
		return dst
	case p.Index != nil:
		e, err := v.Index(*p.Index)
		if err != nil {
			return dst
		}
		return e.listPath(dst, p.Next)
	case p.Field != nil:
		if v.kind != MapKind && v.kind != CallableKind {
			return dst
		}
		e, err := v.Member(*p.Field)
		if err != nil {
			return dst
		}
		return e.listPath(dst, p.Next)
	}
	return v.listPath(dst, p.Next)
}

// FieldPath extends the path text parent with field f.
func FieldPath(parent, f string) string {
	return parent + "." + pathString(f)
}

// IndexPath extends the path text parent with index i.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
