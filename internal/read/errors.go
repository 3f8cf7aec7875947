package read

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch             = errors.New("no match")
	ErrNoDigits            = errors.New("no digits")
	ErrIncomplete          = errors.New("incomplete input")
	ErrUnrecognizedLiteral = errors.New("unrecognized literal")
)

// ParseError reports why a recognizer rejected its input. Kind is one of the
// Err* sentinels above; Offset is relative to the slice the failing stage was
// handed.
type ParseError struct {
	Kind    error
	Message string
	Offset  int
}

func newParseError(kind error, offset int, message string) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Offset:  offset,
	}
}

func newParseErrorf(kind error, offset int, format string, a ...any) *ParseError {
	return newParseError(kind, offset, fmt.Sprintf(format, a...))
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", p.Kind, p.Offset, p.Message)
}

func (p *ParseError) Unwrap() error {
	return p.Kind
}

// at shifts the offset of a stage error so it is relative to an enclosing
// input that started consumed bytes earlier.
func (p *ParseError) at(consumed int) *ParseError {
	return &ParseError{
		Kind:    p.Kind,
		Message: p.Message,
		Offset:  p.Offset + consumed,
	}
}

// IsIncomplete reports whether err means the input ended before a literal
// could be decided, as opposed to a definite failure.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

func shift(err error, consumed int) error {
	var p *ParseError
	if errors.As(err, &p) {
		return p.at(consumed)
	}
	return err
}
