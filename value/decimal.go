package value

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// DecimalScale is the fixed-point scale: a Decimal with raw
	// value r represents r / DecimalScale.
	DecimalScale = 1000000
	// DecimalDigits is log10(DecimalScale).
	DecimalDigits = 6
	// MaxDecimalInt is the largest magnitude of an integer a Decimal
	// can hold.
	MaxDecimalInt = math.MaxInt64 / DecimalScale
)

// Decimal is a fixed-point number stored as a scaled int64.
// Arithmetic wraps on int64 overflow, like Int.
type Decimal int64

var bigScale = big.NewInt(DecimalScale)

func DecimalFromRaw(raw int64) Decimal { return Decimal(raw) }

// DecimalFromInt converts i exactly. It fails with ErrOverflow when
// |i| exceeds MaxDecimalInt.
func DecimalFromInt(i int64) (Decimal, error) {
	if i > MaxDecimalInt || i < -MaxDecimalInt {
		return 0, fmt.Errorf("%w: %d as decimal", ErrOverflow, i)
	}
	return Decimal(i * DecimalScale), nil
}

// DecimalFromFloat rounds f to the nearest representable Decimal.
func DecimalFromFloat(f float64) Decimal {
	return Decimal(math.Round(f * DecimalScale))
}

// ParseDecimal parses s exactly. Digits beyond the scale are truncated
// toward zero.
func ParseDecimal(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	n := new(big.Int).Mul(r.Num(), bigScale)
	n.Quo(n, r.Denom())
	if !n.IsInt64() {
		return 0, fmt.Errorf("decimal %q out of range", s)
	}
	return Decimal(n.Int64()), nil
}

func (d Decimal) Raw() int64 { return int64(d) }

// Int truncates d toward zero.
func (d Decimal) Int() int64 { return int64(d) / DecimalScale }

// Frac returns the raw fractional remainder, with the sign of d.
func (d Decimal) Frac() int64 { return int64(d) % DecimalScale }

func (d Decimal) IsInteger() bool { return d.Frac() == 0 }

func (d Decimal) Float64() float64 {
	return float64(d.Int()) + float64(d.Frac())/DecimalScale
}

// String renders d with at least one fractional digit, eg 3.0, -0.25.
func (d Decimal) String() string {
	return string(d.AppendText(nil))
}

func (d Decimal) AppendText(dst []byte) []byte {
	var u uint64
	if d < 0 {
		dst = append(dst, '-')
		u = uint64(-(d + 1)) + 1
	} else {
		u = uint64(d)
	}
	dst = strconv.AppendUint(dst, u/DecimalScale, 10)
	dst = append(dst, '.')
	frac := strconv.FormatUint(u%DecimalScale, 10)
	frac = strings.Repeat("0", DecimalDigits-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}
	return append(dst, frac...)
}

func (d Decimal) Cmp(e Decimal) int { return cmp.Compare(d, e) }

func (d Decimal) Neg() Decimal { return -d }

func (d Decimal) Add(e Decimal) Decimal { return d + e }

func (d Decimal) Sub(e Decimal) Decimal { return d - e }

func (d Decimal) Mul(e Decimal) Decimal {
	n := new(big.Int).Mul(big.NewInt(int64(d)), big.NewInt(int64(e)))
	n.Quo(n, bigScale)
	return Decimal(n.Int64())
}

func (d Decimal) Div(e Decimal) (Decimal, error) {
	if e == 0 {
		return 0, ErrDivideByZero
	}
	n := new(big.Int).Mul(big.NewInt(int64(d)), bigScale)
	n.Quo(n, big.NewInt(int64(e)))
	return Decimal(n.Int64()), nil
}

func (d Decimal) Mod(e Decimal) (Decimal, error) {
	if e == 0 {
		return 0, ErrDivideByZero
	}
	return d % e, nil
}

// cmpIntDecimal compares an Int with a Decimal without scaling i,
// which could overflow.
func cmpIntDecimal(i int64, d Decimal) int {
	if c := cmp.Compare(i, d.Int()); c != 0 {
		return c
	}
	return cmp.Compare(0, d.Frac())
}
