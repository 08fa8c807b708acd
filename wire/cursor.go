package wire

import "github.com/signadot/go-wbxml/token"

// EOF is returned by Cursor.Read once the input is exhausted.
const EOF = -1

// Cursor reads forward over an immutable buffer. Two decoders may share one
// Cursor sequentially; neither may use it concurrently.
type Cursor struct {
	data []byte
	off  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Read returns the next byte in 0-255, or EOF.
func (c *Cursor) Read() int {
	if c.off >= len(c.data) {
		return EOF
	}
	b := c.data[c.off]
	c.off++
	return int(b)
}

// ReadByte is like Read but reports exhaustion as token.ErrUnexpectedEOF.
func (c *Cursor) ReadByte() (byte, error) {
	i := c.Read()
	if i == EOF {
		return 0, token.ErrUnexpectedEOF
	}
	return byte(i), nil
}

// Next returns a copy of the next n bytes. If fewer than n remain, the
// cursor is moved to the end and token.ErrUnexpectedEOF is returned.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n > len(c.data)-c.off {
		c.off = len(c.data)
		return nil, token.ErrUnexpectedEOF
	}
	res := make([]byte, n)
	copy(res, c.data[c.off:c.off+n])
	c.off += n
	return res, nil
}

// Offset is the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Len is the number of bytes remaining.
func (c *Cursor) Len() int {
	return len(c.data) - c.off
}

func (c *Cursor) Size() int {
	return len(c.data)
}
