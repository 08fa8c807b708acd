package token

import "fmt"

// Tag identifies an element type: the code page shifted left by PageShift
// bits, or'd with the id within that page. Global ids are never combined
// with a page.
type Tag int

// Sentinel values returned by stream.Decoder.NextTag. None of them can be a
// real element tag since all are below TagBase.
const (
	StartDocument Tag = 0
	EndDocument   Tag = 1
	EndTag        Tag = 2

	// NoTag labels an END that closed no open element.
	NoTag Tag = -1
)

// MakeTag combines page and id.
func MakeTag(page, id int) Tag {
	id &= IDMask
	if IsGlobalID(id) {
		return Tag(id)
	}
	return Tag(page<<PageShift | id)
}

// IsGlobalID reports whether id is reserved for global tokens.
func IsGlobalID(id int) bool {
	return id >= 0 && id < TagBase
}

func (t Tag) Page() int {
	return int(t) >> PageShift
}

func (t Tag) ID() int {
	return int(t) & IDMask
}

func (t Tag) String() string {
	switch t {
	case NoTag:
		return "NoTag"
	}
	return fmt.Sprintf("%d:0x%02X", t.Page(), t.ID())
}

// TagByte is a raw element token as read from the stream.
type TagByte byte

func (b TagByte) Attr() bool {
	return b&WithAttributes != 0
}

func (b TagByte) Content() bool {
	return b&WithContent != 0
}

func (b TagByte) ID() int {
	return int(b & IDMask)
}
