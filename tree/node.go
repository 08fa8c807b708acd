package tree

import (
	"encoding/base64"
	"errors"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/stream"
	"github.com/signadot/go-wbxml/token"
)

var (
	ErrMixedContent = errors.New("element has both children and a value")
	ErrUnknownName  = errors.New("unknown element name")
)

// Document is a decoded WBXML document. A well formed document has a
// single root, but Root holds every top level element found.
type Document struct {
	Header stream.Header `yaml:"header" json:"header" cbor:"header"`
	Root   []*Node       `yaml:"root" json:"root" cbor:"root"`
}

// Node is one element. A nil Text is no value, while an empty Text is an
// empty inline string.
//
// Decode concatenates every inline string of an element into Text and every
// opaque chunk into Opaque. Encode writes Text, then Opaque, as separate
// tokens, so a node holding both does not read back with
// stream.Decoder.ReadText or ReadOpaque, which expect a single value.
type Node struct {
	Name     string  `yaml:"name,omitempty" json:"name,omitempty" cbor:"name,omitempty"`
	Page     int     `yaml:"page" json:"page" cbor:"page"`
	ID       int     `yaml:"id,omitempty" json:"id,omitempty" cbor:"id,omitempty"`
	Text     *string `yaml:"text,omitempty" json:"text,omitempty" cbor:"text,omitempty"`
	Opaque   Bytes   `yaml:"opaque,omitempty" json:"opaque,omitempty" cbor:"opaque,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty" cbor:"children,omitempty"`
}

// Bytes is opaque data. It is base64 text in YAML and JSON.
type Bytes []byte

func (b Bytes) MarshalText() ([]byte, error) {
	res := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(res, b)
	return res, nil
}

func (b *Bytes) UnmarshalText(d []byte) error {
	res := make([]byte, base64.StdEncoding.DecodedLen(len(d)))
	n, err := base64.StdEncoding.Decode(res, d)
	if err != nil {
		return err
	}
	*b = res[:n]
	return nil
}

// Element creates a node for tag with the given children.
func Element(tag token.Tag, children ...*Node) *Node {
	return &Node{Page: tag.Page(), ID: tag.ID(), Children: children}
}

// TextElement creates a node for tag holding s.
func TextElement(tag token.Tag, s string) *Node {
	return &Node{Page: tag.Page(), ID: tag.ID(), Text: &s}
}

// OpaqueElement creates a node for tag holding d.
func OpaqueElement(tag token.Tag, d []byte) *Node {
	return &Node{Page: tag.Page(), ID: tag.ID(), Opaque: d}
}

func (n *Node) Tag() token.Tag {
	return token.MakeTag(n.Page, n.ID)
}

// HasValue reports whether n holds text or opaque data.
func (n *Node) HasValue() bool {
	return n.Text != nil || n.Opaque != nil
}

// Value returns the text of n, or "" if it has none.
func (n *Node) Value() string {
	if n.Text == nil {
		return ""
	}
	return *n.Text
}

// Label is the name of n, or its page and id when it has no known name.
func (n *Node) Label() string {
	if n.Name == "" || n.Name == codepage.Unknown {
		return n.Tag().String()
	}
	return n.Name
}

// Walk calls f on n and its descendants in document order, with the path
// of labels leading to each node. Walk stops when f returns false. The
// path is reused between calls.
func (n *Node) Walk(f func(path []string, n *Node) bool) bool {
	return n.walk(nil, f)
}

func (n *Node) walk(path []string, f func([]string, *Node) bool) bool {
	path = append(path, n.Label())
	if !f(path, n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(path, f) {
			return false
		}
	}
	return true
}

// Walk walks every root of d.
func (d *Document) Walk(f func(path []string, n *Node) bool) {
	for _, r := range d.Root {
		if !r.Walk(f) {
			return
		}
	}
}
