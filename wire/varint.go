package wire

import (
	"io"

	"github.com/signadot/go-wbxml/token"
)

// MaxVarintLen is the longest accepted encoding. Five groups of seven bits
// hold any 32 bit value.
const MaxVarintLen = 5

// ReadUint decodes a base-128 integer, most significant group first, with
// the top bit of each byte marking continuation.
func ReadUint(c *Cursor) (uint64, error) {
	var res uint64
	for n := 1; ; n++ {
		if n > MaxVarintLen {
			return 0, token.ErrIntegerTooLong
		}
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		res = res<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return res, nil
		}
	}
}

// AppendUint appends the encoding of v to dst. Zero encodes as one zero
// byte.
func AppendUint(dst []byte, v uint64) []byte {
	var buf [10]byte
	i := len(buf) - 1
	buf[i] = byte(v & 0x7F)
	v >>= 7
	for v != 0 {
		i--
		buf[i] = byte(v&0x7F) | 0x80
		v >>= 7
	}
	return append(dst, buf[i:]...)
}

// WriteUint writes the encoding of v to w.
func WriteUint(w io.Writer, v uint64) error {
	var buf [10]byte
	_, err := w.Write(AppendUint(buf[:0], v))
	return err
}
