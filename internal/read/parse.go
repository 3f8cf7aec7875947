package read

import "github.com/ian-shakespeare/r7rs/pkg/array"

// readLiteral tries the boolean grammar, then the numeric one. Both run on
// the same input, so a partial boolean match never leaks into the number.
func readLiteral(input []byte) (Token, []byte, error) {
	if len(input) == 0 {
		return Token{}, input, newParseError(ErrIncomplete, 0, "input ended before a literal")
	}

	if b, rest, err := parseBoolean(input); err == nil {
		return BooleanToken(b), rest, nil
	}

	n, rest, err := parseNumber(input)
	if err == nil {
		return NumberToken(n), rest, nil
	}
	if IsIncomplete(err) {
		return Token{}, input, err
	}

	return Token{}, input, newParseErrorf(ErrUnrecognizedLiteral, 0, "%q is neither a boolean nor a number", word(input))
}

// word returns input up to its first delimiter.
func word(input []byte) []byte {
	if i := array.Some(input, isDelimiter); i > -1 {
		return input[:i]
	}
	return input
}

var readToken = Trim[Token](readLiteral)

// Parse reads one literal from the start of input, ignoring whitespace around
// it, and returns it with the rest of the input.
func Parse(input []byte) (Token, []byte, error) {
	return readToken(input)
}
