package tree

import (
	"fmt"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/stream"
)

// Encode writes the roots of doc to enc and finishes it. The header of doc
// is not written; pass it to the encoder with stream.WithHeader.
func Encode(doc *Document, enc *stream.Encoder) error {
	for _, n := range doc.Root {
		if err := encodeNode(n, enc); err != nil {
			return err
		}
	}
	return enc.Finish()
}

func encodeNode(n *Node, enc *stream.Encoder) error {
	if len(n.Children) != 0 && n.HasValue() {
		return fmt.Errorf("%w: %s", ErrMixedContent, n.Label())
	}
	enc.Start(n.Tag())
	if n.Text != nil {
		enc.Text(*n.Text)
	}
	if len(n.Opaque) != 0 {
		enc.Opaque(n.Opaque)
	}
	for _, c := range n.Children {
		if err := encodeNode(c, enc); err != nil {
			return err
		}
	}
	enc.End()
	return nil
}

// EncodeBytes encodes doc, header included, with a new Encoder. A zero
// header is replaced by stream.DefaultHeader.
func EncodeBytes(doc *Document, dict codepage.Dictionary, opts ...stream.StreamOption) ([]byte, error) {
	h := doc.Header
	if h == (stream.Header{}) {
		h = stream.DefaultHeader()
	}
	opts = append([]stream.StreamOption{stream.WithHeader(h)}, opts...)
	enc, err := stream.NewEncoder(dict, opts...)
	if err != nil {
		return nil, err
	}
	if err := Encode(doc, enc); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Resolve fills in the page and id of every node that has a name but no id,
// and the name of every node that has an id but no name.
func Resolve(doc *Document, table *codepage.Table) error {
	var err error
	doc.Walk(func(path []string, n *Node) bool {
		if n.ID != 0 {
			if n.Name == "" {
				n.Name = codepage.Name(table, n.Tag())
			}
			return true
		}
		tag, ok := table.Lookup(n.Name)
		if !ok {
			err = fmt.Errorf("%w %q", ErrUnknownName, n.Name)
			return false
		}
		n.Page, n.ID = tag.Page(), tag.ID()
		return true
	})
	return err
}
