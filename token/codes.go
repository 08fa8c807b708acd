package token

// Global token codes. These are shared by every code page.
const (
	SwitchPage = 0x00 // followed by a single page number byte
	End        = 0x01
	Entity     = 0x02
	StrI       = 0x03 // inline string, NUL terminated
	Literal    = 0x04
	ExtI0      = 0x40
	ExtI1      = 0x41
	ExtI2      = 0x42
	PI         = 0x43
	LiteralC   = 0x44
	ExtT0      = 0x80
	ExtT1      = 0x81
	ExtT2      = 0x82
	StrT       = 0x83
	LiteralA   = 0x84
	Ext0       = 0xC0
	Ext1       = 0xC1
	Ext2       = 0xC2
	Opaque     = 0xC3 // followed by a varint length and that many bytes
	LiteralAC  = 0xC4
)

// Tag byte layout.
const (
	WithAttributes = 0x80
	WithContent    = 0x40

	PageShift = 6
	IDMask    = 0x3F

	// TagBase is the first id available to a code page. Ids below it are
	// global.
	TagBase = 5
)

// Header defaults written by encoders.
const (
	Version13      = 0x03
	UnknownPublic  = 0x01
	CharsetUTF8    = 106
	NoStringTable  = 0
	DefaultVersion = Version13
)
