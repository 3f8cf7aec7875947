package read

import (
	"math/big"

	"github.com/ian-shakespeare/r7rs/pkg/array"
)

// Magnitude is an unbounded non-negative integer. The zero value is 0.
type Magnitude struct {
	n *big.Int
}

func NewMagnitude(x uint64) Magnitude {
	return Magnitude{new(big.Int).SetUint64(x)}
}

func (m Magnitude) raw() *big.Int {
	if m.n == nil {
		return new(big.Int)
	}
	return m.n
}

// BigInt returns a copy of the magnitude.
func (m Magnitude) BigInt() *big.Int {
	return new(big.Int).Set(m.raw())
}

func (m Magnitude) Cmp(other Magnitude) int {
	return m.raw().Cmp(other.raw())
}

func (m Magnitude) IsZero() bool {
	return m.raw().Sign() == 0
}

func (m Magnitude) String() string {
	return m.raw().String()
}

func digitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// isDigit reports whether c belongs to the alphabet of r. Unsupported radices
// have an empty alphabet.
func (r Radix) isDigit(c byte) bool {
	d, ok := digitValue(c)
	return ok && r.valid() && d < int(r)
}

// AccumulateDigits consumes the longest non-empty run of digits of radix and
// folds it, most significant digit first, into a Magnitude.
func AccumulateDigits(input []byte, radix Radix) (Magnitude, []byte, error) {
	n := array.Span(input, radix.isDigit)
	if n == 0 {
		if len(input) == 0 {
			return Magnitude{}, input, newParseErrorf(ErrNoDigits, 0, "expected base-%d digit, found end of input", int(radix))
		}
		return Magnitude{}, input, newParseErrorf(ErrNoDigits, 0, "expected base-%d digit, found %q", int(radix), input[0])
	}

	acc := new(big.Int)
	base := big.NewInt(int64(radix))
	digit := new(big.Int)
	for _, c := range input[:n] {
		d, _ := digitValue(c)
		acc.Mul(acc, base)
		acc.Add(acc, digit.SetInt64(int64(d)))
	}

	return Magnitude{acc}, input[n:], nil
}

// Digits adapts AccumulateDigits to a Parser for a fixed radix.
func Digits(radix Radix) Parser[Magnitude] {
	return func(input []byte) (Magnitude, []byte, error) {
		return AccumulateDigits(input, radix)
	}
}
