package read

import (
	"errors"
	"io"
	"iter"
)

type scanner struct {
	input  []byte
	offset int
}

// NewScanner reads successive literals out of input.
func NewScanner(input []byte) *scanner {
	return &scanner{
		input: input,
	}
}

// NextToken returns the next literal, or io.EOF once only whitespace is left.
// Error offsets are relative to the start of the scanner's input. After an
// error the scanner is exhausted.
func (s *scanner) NextToken() (Token, error) {
	if len(skipWhitespace(s.input)) == 0 {
		s.input = nil
		return Token{}, io.EOF
	}

	token, rest, err := Parse(s.input)
	if err != nil {
		s.input = nil
		return Token{}, shift(err, s.offset)
	}

	s.offset += len(s.input) - len(rest)
	s.input = rest
	return token, nil
}

// Remaining returns the input that has not been read yet.
func (s *scanner) Remaining() []byte {
	return s.input
}

func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}
