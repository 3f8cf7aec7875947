package read

import "math/big"

// Number is an integer literal. The sign is kept apart from the magnitude and
// only applied by Int.
type Number struct {
	Sign      Sign
	Exactness Exactness
	Magnitude Magnitude
}

func NewNumber(sign Sign, exactness Exactness, magnitude Magnitude) Number {
	return Number{
		Sign:      sign,
		Exactness: exactness,
		Magnitude: magnitude,
	}
}

// String renders the sign, the exactness prefix and the decimal magnitude
// with no separators, e.g. "-#e255". The result reads back as an equal
// Number.
func (n Number) String() string {
	return n.Sign.String() + n.Exactness.String() + n.Magnitude.String()
}

// Int returns the signed value as a new big.Int.
func (n Number) Int() *big.Int {
	v := n.Magnitude.BigInt()
	if n.Sign == Negative {
		v.Neg(v)
	}
	return v
}

func (n Number) Equal(other Number) bool {
	return n.Sign == other.Sign &&
		n.Exactness == other.Exactness &&
		n.Magnitude.Cmp(other.Magnitude) == 0
}

// assembleNumber reads [sign] [radix] [exactness] digits, where the radix and
// exactness prefixes may come in either order. An accepted prefix is never
// given back.
func assembleNumber(input []byte) (Number, []byte, error) {
	var (
		n     Number
		radix = Decimal
	)

	sign, rest, _, err := optional(ParseSign, input)
	if err != nil {
		return Number{}, input, err
	}
	n.Sign = sign

	var sawRadix, sawExactness bool
	for !sawRadix || !sawExactness {
		if !sawRadix {
			r, next, ok, err := optional(ParseRadix, rest)
			if err != nil {
				return Number{}, input, shift(err, len(input)-len(rest))
			}
			if ok {
				radix, rest, sawRadix = r, next, true
				continue
			}
		}
		if !sawExactness {
			e, next, ok, err := optional(ParseExactness, rest)
			if err != nil {
				return Number{}, input, shift(err, len(input)-len(rest))
			}
			if ok {
				n.Exactness, rest, sawExactness = e, next, true
				continue
			}
		}
		break
	}

	consumed := len(input) - len(rest)
	if len(skipWhitespace(rest)) == 0 {
		return Number{}, input, newParseError(ErrIncomplete, consumed, "input ended before the digits of a number")
	}

	magnitude, rest, err := AccumulateDigits(rest, radix)
	if err != nil {
		return Number{}, input, shift(err, consumed)
	}
	n.Magnitude = magnitude

	return n, rest, nil
}

var parseNumber = terminated[Number](assembleNumber)

// ParseNumber reads one integer literal surrounded by optional whitespace.
// A missing sign reads as Positive, a missing radix as 10 and a missing
// exactness as Exact.
var ParseNumber = Trim(parseNumber)
