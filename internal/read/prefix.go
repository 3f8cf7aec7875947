package read

import "fmt"

type Sign int

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

type Exactness int

const (
	Exact Exactness = iota
	Inexact
)

func (e Exactness) String() string {
	if e == Inexact {
		return "#i"
	}
	return "#e"
}

// Radix selects the digit alphabet of a numeral. It is not kept in the Number
// that is read.
type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

func (r Radix) valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	default:
		return false
	}
}

func (r Radix) String() string {
	switch r {
	case Binary:
		return "#b"
	case Octal:
		return "#o"
	case Decimal:
		return "#d"
	case Hexadecimal:
		return "#x"
	default:
		return fmt.Sprintf("radix(%d)", int(r))
	}
}

// ParseSign reads a single "+" or "-". It never supplies a default.
var ParseSign Parser[Sign] = alt(`sign "+" or "-"`,
	value("+", Positive),
	value("-", Negative),
)

// ParseRadix reads one of the prefixes #b, #o, #d or #x. The implicit radix
// of an unprefixed numeral is left to the caller.
var ParseRadix Parser[Radix] = alt("radix prefix #b, #o, #d or #x",
	value("#b", Binary),
	value("#o", Octal),
	value("#d", Decimal),
	value("#x", Hexadecimal),
)

// ParseExactness reads #e or #i.
var ParseExactness Parser[Exactness] = alt("exactness prefix #e or #i",
	value("#e", Exact),
	value("#i", Inexact),
)
