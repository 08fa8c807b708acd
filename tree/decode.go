package tree

import (
	"fmt"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/stream"
	"github.com/signadot/go-wbxml/token"
)

// Decode reads the rest of the document from dec.
//
// An END with no open element is ignored. Input ending inside an element
// is reported as token.ErrPrematureEnd.
func Decode(dec *stream.Decoder) (*Document, error) {
	doc := &Document{Header: dec.Header()}
	var stack []*Node
	for {
		typ, err := dec.Next()
		if err != nil {
			return nil, err
		}
		switch typ {
		case token.TDone:
			if len(stack) != 0 {
				return nil, token.NewDecodeErr(fmt.Errorf("%w: %d unclosed elements", token.ErrPrematureEnd, len(stack)), dec.Offset())
			}
			return doc, nil
		case token.TStart:
			f := dec.Element()
			n := &Node{Name: f.Name, Page: f.Tag.Page(), ID: f.Tag.ID()}
			if len(stack) == 0 {
				doc.Root = append(doc.Root, n)
			} else {
				p := stack[len(stack)-1]
				if p.HasValue() {
					return nil, token.NewDecodeErr(fmt.Errorf("%w: %s", ErrMixedContent, dec.Path()), dec.Offset())
				}
				p.Children = append(p.Children, n)
			}
			stack = append(stack, n)
		case token.TEnd:
			if len(stack) != 0 {
				stack = stack[:len(stack)-1]
			}
		case token.TText, token.TOpaque:
			if len(stack) == 0 {
				return nil, token.NewDecodeErr(fmt.Errorf("%w: value at top level", token.ErrNoElement), dec.Offset())
			}
			n := stack[len(stack)-1]
			if len(n.Children) != 0 {
				return nil, token.NewDecodeErr(fmt.Errorf("%w: %s", ErrMixedContent, dec.Path()), dec.Offset())
			}
			if typ == token.TOpaque {
				n.Opaque = append(n.Opaque, dec.Opaque()...)
				continue
			}
			s := dec.Text()
			if n.Text != nil {
				s = *n.Text + s
			}
			n.Text = &s
		}
	}
}

// DecodeBytes decodes a whole document.
func DecodeBytes(data []byte, dict codepage.Dictionary, opts ...stream.StreamOption) (*Document, error) {
	dec, err := stream.NewDecoder(data, dict, opts...)
	if err != nil {
		return nil, err
	}
	return Decode(dec)
}
