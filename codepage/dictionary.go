package codepage

import (
	"fmt"

	"github.com/signadot/go-wbxml/token"
)

// Unknown labels a structurally legal tag the dictionary does not know.
const Unknown = "unknown"

// Dictionary describes the code pages of one application protocol.
type Dictionary interface {
	IsValidPage(page int) bool
	IsValidTag(page, id int) bool
	NameOf(page, id int) string
	IsGlobalID(id int) bool
}

// Globals provides the standard IsGlobalID for embedding in dictionaries.
type Globals struct{}

func (Globals) IsGlobalID(id int) bool {
	return token.IsGlobalID(id)
}

// ValidTag reports whether the combined tag t is known to d.
func ValidTag(d Dictionary, t token.Tag) bool {
	return d.IsValidTag(t.Page(), t.ID())
}

// Name returns the display name of t, or Unknown.
func Name(d Dictionary, t token.Tag) string {
	if !d.IsValidPage(t.Page()) || !d.IsValidTag(t.Page(), t.ID()) {
		return Unknown
	}
	return d.NameOf(t.Page(), t.ID())
}

// Any accepts pages 0 through MaxPage and every non-global id on them.
type Any struct {
	Globals
	MaxPage int
}

func (a Any) IsValidPage(page int) bool {
	return page >= 0 && page <= a.MaxPage
}

func (a Any) IsValidTag(page, id int) bool {
	return a.IsValidPage(page) && id >= token.TagBase && id <= token.IDMask
}

func (a Any) NameOf(page, id int) string {
	return fmt.Sprintf("T%d_%02X", page, id)
}
