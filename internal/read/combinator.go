package read

import (
	"errors"

	"github.com/ian-shakespeare/r7rs/pkg/array"
)

// Parser recognizes a T at the start of input and returns it with the
// unconsumed remainder. A parser that fails hands back its input untouched.
type Parser[T any] func(input []byte) (T, []byte, error)

var (
	whitespace = []byte{' ', '\t', '\r', '\n'}
	delimiters = []byte{' ', '\t', '\r', '\n', '(', ')', '"', ';', '|'}
)

func isWhitespace(b byte) bool {
	return array.Contains(whitespace, b)
}

func isDelimiter(b byte) bool {
	return array.Contains(delimiters, b)
}

func skipWhitespace(input []byte) []byte {
	return input[array.Span(input, isWhitespace):]
}

func tag(lit string) Parser[string] {
	want := []byte(lit)
	return func(input []byte) (string, []byte, error) {
		if !array.HasPrefix(input, want) {
			return "", input, newParseErrorf(ErrNoMatch, 0, "expected %q", lit)
		}
		return lit, input[len(want):], nil
	}
}

func mapTo[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input []byte) (U, []byte, error) {
		v, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return f(v), rest, nil
	}
}

// value maps the literal lit to v.
func value[T any](lit string, v T) Parser[T] {
	return mapTo(tag(lit), func(string) T { return v })
}

// alt tries each alternative in order against the same input and returns the
// first success. When all fail, an incomplete failure wins over a definite
// one; otherwise the failure names what was expected.
func alt[T any](expected string, alternatives ...Parser[T]) Parser[T] {
	return func(input []byte) (T, []byte, error) {
		var incomplete error
		for _, p := range alternatives {
			v, rest, err := p(input)
			if err == nil {
				return v, rest, nil
			}
			if incomplete == nil && IsIncomplete(err) {
				incomplete = err
			}
		}
		var zero T
		if incomplete != nil {
			return zero, input, incomplete
		}
		return zero, input, newParseErrorf(ErrNoMatch, 0, "expected %s", expected)
	}
}

// terminated requires p to be followed by a delimiter or the end of input, so
// a literal is never matched as the prefix of a longer word.
func terminated[T any](p Parser[T]) Parser[T] {
	return func(input []byte) (T, []byte, error) {
		v, rest, err := p(input)
		if err != nil {
			return v, input, err
		}
		if len(rest) > 0 && !isDelimiter(rest[0]) {
			var zero T
			return zero, input, newParseErrorf(ErrNoMatch, len(input)-len(rest), "unexpected %q after literal", rest[0])
		}
		return v, rest, nil
	}
}

// Trim makes whitespace before and after whatever p recognizes insignificant.
// The trailing whitespace is consumed along with the value.
func Trim[T any](p Parser[T]) Parser[T] {
	return func(input []byte) (T, []byte, error) {
		start := skipWhitespace(input)
		v, rest, err := p(start)
		if err != nil {
			var zero T
			return zero, input, shift(err, len(input)-len(start))
		}
		return v, skipWhitespace(rest), nil
	}
}

// optional runs p and reports a plain ErrNoMatch as absence rather than
// failure.
func optional[T any](p Parser[T], input []byte) (T, []byte, bool, error) {
	v, rest, err := p(input)
	switch {
	case err == nil:
		return v, rest, true, nil
	case errors.Is(err, ErrNoMatch):
		var zero T
		return zero, input, false, nil
	default:
		var zero T
		return zero, input, false, err
	}
}
