package value

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

// tagDecimalFraction is the CBOR tag for [exponent, mantissa].
const tagDecimalFraction = 4

const (
	majorArray = 4
	majorMap   = 5
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("value: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// EncodeCBOR writes v as CBOR. Decimals are tagged decimal fractions
// with exponent -DecimalDigits and maps keep Value key order.
func EncodeCBOR(v Value) ([]byte, error) {
	return appendCBOR(nil, v)
}

func appendCBOR(dst []byte, v Value) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch v.kind {
	case NullKind:
		b, err = cborEncMode.Marshal(nil)
	case BoolKind:
		b, err = cborEncMode.Marshal(v.n != 0)
	case IntKind:
		b, err = cborEncMode.Marshal(v.n)
	case DecimalKind:
		b, err = cborEncMode.Marshal(cbor.Tag{
			Number:  tagDecimalFraction,
			Content: []int64{-DecimalDigits, v.n},
		})
	case StringKind:
		if !utf8.ValidString(v.str()) {
			return nil, fmt.Errorf("%w: string %q is not valid UTF-8", ErrNotSerializable, v.str())
		}
		b, err = cborEncMode.Marshal(v.str())
	case ListKind:
		l := v.list()
		dst = appendHead(dst, majorArray, uint64(len(l)))
		for _, e := range l {
			if dst, err = appendCBOR(dst, e); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case MapKind:
		ps := v.pairs()
		dst = appendHead(dst, majorMap, uint64(len(ps)))
		for _, p := range ps {
			if dst, err = appendCBOR(dst, p.Key); err != nil {
				return nil, err
			}
			if dst, err = appendCBOR(dst, p.Val); err != nil {
				return nil, err
			}
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSerializable, v.kind)
	}
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

func appendHead(dst []byte, major byte, n uint64) []byte {
	m := major << 5
	switch {
	case n < 24:
		return append(dst, m|byte(n))
	case n <= 0xff:
		return append(dst, m|24, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(dst, m|25), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(dst, m|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(dst, m|27), n)
	}
}

// readHead returns the argument of a definite length head and its size.
func readHead(b []byte) (n uint64, size int, err error) {
	if len(b) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	ai := b[0] & 0x1f
	switch {
	case ai < 24:
		return uint64(ai), 1, nil
	case ai == 24 && len(b) >= 2:
		return uint64(b[1]), 2, nil
	case ai == 25 && len(b) >= 3:
		return uint64(binary.BigEndian.Uint16(b[1:])), 3, nil
	case ai == 26 && len(b) >= 5:
		return uint64(binary.BigEndian.Uint32(b[1:])), 5, nil
	case ai == 27 && len(b) >= 9:
		return binary.BigEndian.Uint64(b[1:]), 9, nil
	case ai == 31:
		return 0, 0, errors.New("indefinite length not supported")
	}
	return 0, 0, io.ErrUnexpectedEOF
}

// DecodeCBOR parses one CBOR data item into a Value.
func DecodeCBOR(data []byte) (Value, error) {
	v, err := decodeCBOR(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: cbor: %w", ErrParse, err)
	}
	return v, nil
}

func decodeCBOR(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, io.ErrUnexpectedEOF
	}
	switch data[0] >> 5 {
	case 0, 1:
		var i int64
		if err := cbor.Unmarshal(data, &i); err != nil {
			return Value{}, err
		}
		return FromInt(i), nil
	case 3:
		var s string
		if err := cbor.Unmarshal(data, &s); err != nil {
			return Value{}, err
		}
		return FromString(s), nil
	case majorArray:
		items, err := cborItems(data, 1)
		if err != nil {
			return Value{}, err
		}
		res := make([]Value, len(items))
		for i, item := range items {
			if res[i], err = decodeCBOR(item); err != nil {
				return Value{}, err
			}
		}
		return Value{kind: ListKind, ref: res}, nil
	case majorMap:
		items, err := cborItems(data, 2)
		if err != nil {
			return Value{}, err
		}
		res := make([]Pair, 0, len(items)/2)
		for i := 0; i < len(items); i += 2 {
			k, err := decodeCBOR(items[i])
			if err != nil {
				return Value{}, err
			}
			v, err := decodeCBOR(items[i+1])
			if err != nil {
				return Value{}, err
			}
			res = setPair(res, k, v)
		}
		return Value{kind: MapKind, ref: res}, nil
	case 6:
		return decodeCBORTag(data)
	case 7:
		var x any
		if err := cbor.Unmarshal(data, &x); err != nil {
			return Value{}, err
		}
		return FromAny(x)
	}
	return Value{}, fmt.Errorf("unsupported major type %d", data[0]>>5)
}

func decodeCBORTag(data []byte) (Value, error) {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return Value{}, err
	}
	if tag.Number != tagDecimalFraction {
		return Value{}, fmt.Errorf("unsupported tag %d", tag.Number)
	}
	var frac []int64
	if err := cbor.Unmarshal(tag.Content, &frac); err != nil {
		return Value{}, err
	}
	if len(frac) != 2 {
		return Value{}, errors.New("decimal fraction must be [exponent, mantissa]")
	}
	exp, mant := frac[0], frac[1]
	if exp < -DecimalDigits-18 || exp > 18 {
		return Value{}, fmt.Errorf("decimal fraction exponent %d out of range", exp)
	}
	for ; exp > -DecimalDigits; exp-- {
		if mant > math.MaxInt64/10 || mant < math.MinInt64/10 {
			return Value{}, fmt.Errorf("%w: decimal fraction [%d, %d]", ErrOverflow, frac[0], frac[1])
		}
		mant *= 10
	}
	for ; exp < -DecimalDigits; exp++ {
		mant /= 10
	}
	return FromDecimal(Decimal(mant)), nil
}

// cborItems splits the content of an array or map into raw items.
func cborItems(data []byte, per uint64) ([]cbor.RawMessage, error) {
	n, size, err := readHead(data)
	if err != nil {
		return nil, err
	}
	// every item takes at least one byte
	if n > uint64(len(data)-size)/per {
		return nil, fmt.Errorf("%w: %d items announced in %d bytes", io.ErrUnexpectedEOF, n, len(data)-size)
	}
	dec := cbor.NewDecoder(bytes.NewReader(data[size:]))
	res := make([]cbor.RawMessage, 0, n*per)
	for i := uint64(0); i < n*per; i++ {
		var item cbor.RawMessage
		if err := dec.Decode(&item); err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func (v Value) MarshalCBOR() ([]byte, error) {
	return EncodeCBOR(v)
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	res, err := DecodeCBOR(data)
	if err != nil {
		return err
	}
	*v = res
	return nil
}
