package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ffl/value"
)

type EncState struct {
	depth, indent int
	format        Format
	wire          bool

	Color func(value.Kind, ColorAttr, string) string
}

// Encode writes v to w followed by a newline.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case JSONFormat:
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	case YAMLFormat:
		return encodeYAML(v, w)
	default:
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, k value.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func encode(v value.Value, w io.Writer, es *EncState) error {
	switch v.Kind() {
	case value.ListKind:
		return encodeList(v, w, es)
	case value.MapKind:
		return encodeMap(v, w, es)
	default:
		return writeString(w, applyColor(es, v.Kind(), ValueColor, v.String()))
	}
}

func writeSep(w io.Writer, es *EncState, k value.Kind, sep string) error {
	return writeString(w, applyColor(es, k, SepColor, sep))
}

func encodeList(v value.Value, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, value.ListKind, "["); err != nil {
		return err
	}
	n := v.Len()
	if n == 0 {
		return writeSep(w, es, value.ListKind, "]")
	}
	es.depth++
	for i := range n {
		if i > 0 {
			sep := ","
			if es.wire {
				sep = ", "
			}
			if err := writeSep(w, es, value.ListKind, sep); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		e, err := v.Index(i)
		if err != nil {
			return err
		}
		if err := encode(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.ListKind, "]")
}

func encodeMap(v value.Value, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, value.MapKind, "{"); err != nil {
		return err
	}
	if v.Len() == 0 {
		return writeSep(w, es, value.MapKind, "}")
	}
	es.depth++
	var (
		i   int
		err error
	)
	v.Each(func(k, e value.Value) bool {
		if i > 0 {
			sep := ","
			if es.wire {
				sep = ", "
			}
			if err = writeSep(w, es, value.MapKind, sep); err != nil {
				return false
			}
		}
		i++
		if err = writeNL(w, es); err != nil {
			return false
		}
		if err = writeString(w, applyColor(es, k.Kind(), FieldColor, k.String())); err != nil {
			return false
		}
		if err = writeSep(w, es, value.MapKind, ": "); err != nil {
			return false
		}
		err = encode(e, w, es)
		return err == nil
	})
	if err != nil {
		return err
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.MapKind, "}")
}

func encodeJSON(v value.Value, w io.Writer, es *EncState) error {
	d, err := value.Serialize(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.wire {
		return writeString(w, string(d))
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// encodeYAML writes the plain form of v. Decimals become floats and
// maps with non-string keys are keyed by their literal text.
func encodeYAML(v value.Value, w io.Writer) error {
	switch v.Kind() {
	case value.CallableKind, value.FunctionKind:
		return fmt.Errorf("%w: %s in yaml", ErrEncoding, v.Kind())
	}
	d, err := yaml.Marshal(value.ToAny(v))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}
