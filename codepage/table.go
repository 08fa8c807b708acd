package codepage

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/signadot/go-wbxml/token"
)

var ErrTable = errors.New("code page table")

// Page is one code page of a Table. Tags maps element names to in-page ids.
type Page struct {
	Page int            `yaml:"page" toml:"page" json:"page"`
	Name string         `yaml:"name" toml:"name" json:"name"`
	Tags map[string]int `yaml:"tags" toml:"tags" json:"tags"`

	names map[int]string
}

// Table is a Dictionary built from page descriptions.
type Table struct {
	Globals `yaml:"-" toml:"-" json:"-"`
	Pages   []*Page `yaml:"pages" toml:"pages" json:"pages"`

	byNum map[int]*Page
}

// NewTable indexes pages, rejecting duplicate pages, duplicate ids and ids
// outside the page range.
func NewTable(pages ...*Page) (*Table, error) {
	t := &Table{Pages: pages}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) index() error {
	t.byNum = make(map[int]*Page, len(t.Pages))
	for _, p := range t.Pages {
		if p == nil {
			return fmt.Errorf("%w: nil page", ErrTable)
		}
		if p.Page < 0 || p.Page > 0xFF {
			return fmt.Errorf("%w: page %d out of range", ErrTable, p.Page)
		}
		if _, dup := t.byNum[p.Page]; dup {
			return fmt.Errorf("%w: duplicate page %d", ErrTable, p.Page)
		}
		p.names = make(map[int]string, len(p.Tags))
		for name, id := range p.Tags {
			if id < token.TagBase || id > token.IDMask {
				return fmt.Errorf("%w: page %d: tag %s id 0x%02X out of range", ErrTable, p.Page, name, id)
			}
			if other, dup := p.names[id]; dup {
				return fmt.Errorf("%w: page %d: id 0x%02X used by %s and %s", ErrTable, p.Page, id, other, name)
			}
			p.names[id] = name
		}
		t.byNum[p.Page] = p
	}
	sort.SliceStable(t.Pages, func(i, j int) bool {
		return t.Pages[i].Page < t.Pages[j].Page
	})
	return nil
}

func (t *Table) IsValidPage(page int) bool {
	_, ok := t.byNum[page]
	return ok
}

func (t *Table) IsValidTag(page, id int) bool {
	p := t.byNum[page]
	if p == nil {
		return false
	}
	_, ok := p.names[id]
	return ok
}

func (t *Table) NameOf(page, id int) string {
	p := t.byNum[page]
	if p == nil {
		return Unknown
	}
	name, ok := p.names[id]
	if !ok {
		return Unknown
	}
	return name
}

// PageName returns the name of a page, or Unknown.
func (t *Table) PageName(page int) string {
	p := t.byNum[page]
	if p == nil || p.Name == "" {
		return Unknown
	}
	return p.Name
}

// Lookup resolves an element name to its tag. A name may be qualified by
// its page name, as in "AirSyncBase:Type"; an unqualified name resolves to
// the lowest numbered page defining it.
func (t *Table) Lookup(name string) (token.Tag, bool) {
	pageName, tagName, qualified := strings.Cut(name, ":")
	if !qualified {
		tagName = pageName
	}
	for _, p := range t.Pages {
		if qualified && p.Name != pageName {
			continue
		}
		if id, ok := p.Tags[tagName]; ok {
			return token.MakeTag(p.Page, id), true
		}
	}
	return 0, false
}
