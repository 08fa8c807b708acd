package token

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding      = errors.New("utf8 encoding failed")
	ErrEmptyInput    = errors.New("stream has no content")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrPrematureEnd  = errors.New("premature end of document")

	ErrFormat         = errors.New("wbxml format error")
	ErrStringTable    = fmt.Errorf("%w: string table unsupported", ErrFormat)
	ErrUnknownPage    = fmt.Errorf("%w: unknown code page", ErrFormat)
	ErrGlobalToken    = fmt.Errorf("%w: unhandled global token", ErrFormat)
	ErrAttributes     = fmt.Errorf("%w: attributes unsupported", ErrFormat)
	ErrIntegerTooLong = fmt.Errorf("%w: integer encoding, too many bytes", ErrFormat)
	ErrExpectedText   = fmt.Errorf("%w: expected text", ErrFormat)
	ErrExpectedOpaque = fmt.Errorf("%w: expected opaque or text", ErrFormat)
	ErrMissingEnd     = fmt.Errorf("%w: missing closing tag", ErrFormat)
	ErrInvalidNumber  = fmt.Errorf("%w: invalid number", ErrFormat)
	ErrNoElement      = fmt.Errorf("%w: no open element", ErrFormat)
	ErrUnbalanced     = fmt.Errorf("%w: unbalanced start/end", ErrFormat)
	ErrNegativeLength = fmt.Errorf("%w: negative opaque length", ErrFormat)
)

// DecodeErr attaches the input offset at which decoding failed.
type DecodeErr struct {
	Err    error
	Offset int
}

func NewDecodeErr(e error, off int) *DecodeErr {
	return &DecodeErr{Err: e, Offset: off}
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}
