package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// pairsKey marks a map with non-string keys in the JSON form.
const pairsKey = "@pairs"

// Serialize writes v in canonical JSON form.
func Serialize(v Value) ([]byte, error) {
	return AppendJSON(nil, v)
}

// AppendJSON appends the canonical JSON form of v to dst.
func AppendJSON(dst []byte, v Value) ([]byte, error) {
	var err error
	switch v.kind {
	case NullKind:
		return append(dst, "null"...), nil
	case BoolKind:
		return strconv.AppendBool(dst, v.n != 0), nil
	case IntKind:
		return strconv.AppendInt(dst, v.n, 10), nil
	case DecimalKind:
		return Decimal(v.n).AppendText(dst), nil
	case StringKind:
		return appendJSONString(dst, v.str())
	case ListKind:
		dst = append(dst, '[')
		for i, e := range v.list() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst, err = AppendJSON(dst, e)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case MapKind:
		ps := v.pairs()
		if !allStringKeys(ps) {
			return appendPairs(dst, ps)
		}
		dst = append(dst, '{')
		for i, p := range ps {
			if i > 0 {
				dst = append(dst, ',')
			}
			k := p.Key.str()
			if strings.HasPrefix(k, "@") {
				k = "@" + k
			}
			dst, err = appendJSONString(dst, k)
			if err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			dst, err = AppendJSON(dst, p.Val)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotSerializable, v.kind)
}

func appendPairs(dst []byte, ps []Pair) ([]byte, error) {
	var err error
	dst = append(dst, `{"`+pairsKey+`":[`...)
	for i, p := range ps {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '[')
		dst, err = AppendJSON(dst, p.Key)
		if err != nil {
			return nil, err
		}
		dst = append(dst, ',')
		dst, err = AppendJSON(dst, p.Val)
		if err != nil {
			return nil, err
		}
		dst = append(dst, ']')
	}
	return append(dst, "]}"...), nil
}

// appendJSONString fails on invalid UTF-8, which JSON text cannot carry.
func appendJSONString(dst []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: string %q is not valid UTF-8", ErrNotSerializable, s)
	}
	buf := bytes.NewBuffer(dst)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode.
	_ = enc.Encode(s)
	res := buf.Bytes()
	return res[:len(res)-1], nil
}

// Deserialize parses the canonical JSON form produced by Serialize.
// Any JSON document is accepted: numbers with a fraction or exponent
// become decimals, others ints.
func Deserialize(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after value", ErrParse)
	}
	return v, nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return Serialize(v)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	res, err := Deserialize(data)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return decodeNumber(string(t))
	case json.Delim:
		switch t {
		case '[':
			return decodeList(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return Value{}, fmt.Errorf("%w: unexpected %v", ErrParse, tok)
}

func decodeNumber(s string) (Value, error) {
	if strings.ContainsAny(s, ".eE") {
		d, err := ParseDecimal(s)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return FromDecimal(d), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromInt(i), nil
}

func decodeList(dec *json.Decoder) (Value, error) {
	res := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		res = append(res, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Value{kind: ListKind, ref: res}, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	res := []Pair{}
	first := true
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		k := tok.(string)
		if first && k == pairsKey {
			return decodePairs(dec)
		}
		first = false
		if strings.HasPrefix(k, "@") {
			if !strings.HasPrefix(k, "@@") {
				return Value{}, fmt.Errorf("%w: reserved key %q", ErrParse, k)
			}
			k = k[1:]
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		res = setPair(res, FromString(k), v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Value{kind: MapKind, ref: res}, nil
}

func decodePairs(dec *json.Decoder) (Value, error) {
	lst, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if lst.kind != ListKind {
		return Value{}, fmt.Errorf("%w: %s expects a list, got %s", ErrParse, pairsKey, lst.kind)
	}
	res := []Pair{}
	for _, e := range lst.list() {
		kv := e.list()
		if e.kind != ListKind || len(kv) != 2 {
			return Value{}, fmt.Errorf("%w: %s entries must be [key, value]", ErrParse, pairsKey)
		}
		res = setPair(res, kv[0], kv[1])
	}
	if dec.More() {
		return Value{}, fmt.Errorf("%w: %s must be the only key", ErrParse, pairsKey)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Value{kind: MapKind, ref: res}, nil
}
