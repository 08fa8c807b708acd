package wire

import (
	"bytes"
	"unicode/utf8"

	"github.com/signadot/go-wbxml/token"
)

// Sink accumulates encoded bytes.
type Sink struct {
	buf bytes.Buffer
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) WriteByte(b byte) error {
	return s.buf.WriteByte(b)
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Bytes returns a copy of everything written so far.
func (s *Sink) Bytes() []byte {
	return bytes.Clone(s.buf.Bytes())
}

// Text returns the accumulated bytes as a string, provided they are valid
// UTF-8. It is meant for diagnostics.
func (s *Sink) Text() (string, error) {
	if !utf8.Valid(s.buf.Bytes()) {
		return "", token.ErrEncoding
	}
	return s.buf.String(), nil
}

func (s *Sink) Len() int {
	return s.buf.Len()
}
