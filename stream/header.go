package stream

import (
	"fmt"

	"github.com/signadot/go-wbxml/token"
	"github.com/signadot/go-wbxml/wire"
)

// Header is the document preamble. String tables are not supported, so
// their length is not represented.
type Header struct {
	Version  byte   `yaml:"version" json:"version" toml:"version" cbor:"version"`
	PublicID uint64 `yaml:"publicID" json:"publicID" toml:"publicID" cbor:"publicID"`
	Charset  uint64 `yaml:"charset" json:"charset" toml:"charset" cbor:"charset"`
}

// DefaultHeader is WBXML 1.3, unknown public identifier, UTF-8.
func DefaultHeader() Header {
	return Header{
		Version:  token.DefaultVersion,
		PublicID: token.UnknownPublic,
		Charset:  token.CharsetUTF8,
	}
}

func (h Header) String() string {
	return fmt.Sprintf("version 0x%02X public 0x%X charset %d", h.Version, h.PublicID, h.Charset)
}

func readHeader(c *wire.Cursor) (Header, error) {
	var h Header
	v := c.Read()
	if v == wire.EOF {
		return h, token.ErrEmptyInput
	}
	h.Version = byte(v)
	var err error
	if h.PublicID, err = wire.ReadUint(c); err != nil {
		return h, err
	}
	if h.Charset, err = wire.ReadUint(c); err != nil {
		return h, err
	}
	n, err := wire.ReadUint(c)
	if err != nil {
		return h, err
	}
	if n != token.NoStringTable {
		return h, fmt.Errorf("%w: length %d", token.ErrStringTable, n)
	}
	return h, nil
}

func appendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.Version)
	dst = wire.AppendUint(dst, h.PublicID)
	dst = wire.AppendUint(dst, h.Charset)
	return wire.AppendUint(dst, token.NoStringTable)
}
