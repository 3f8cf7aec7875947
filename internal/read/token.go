package read

import "strconv"

type TokenType int

const (
	UNKNOWN_TOKEN TokenType = 0
	BOOLEAN_TOKEN TokenType = 1
	NUMBER_TOKEN  TokenType = 2
)

func (t TokenType) String() string {
	switch t {
	case BOOLEAN_TOKEN:
		return "boolean"
	case NUMBER_TOKEN:
		return "number"
	default:
		return "unknown"
	}
}

// Token is one literal read from the input. Only the payload matching Type is
// meaningful.
type Token struct {
	Type    TokenType
	Boolean bool
	Number  Number
}

func BooleanToken(b bool) Token {
	return Token{Type: BOOLEAN_TOKEN, Boolean: b}
}

func NumberToken(n Number) Token {
	return Token{Type: NUMBER_TOKEN, Number: n}
}

// String renders booleans as "true"/"false" whatever spelling was read, and
// numbers as sign, exactness and magnitude with no separators.
func (t Token) String() string {
	switch t.Type {
	case BOOLEAN_TOKEN:
		return strconv.FormatBool(t.Boolean)
	case NUMBER_TOKEN:
		return t.Number.String()
	default:
		return "<unknown>"
	}
}
