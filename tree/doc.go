// Package tree holds a decoded WBXML document in memory.
//
// A [Document] is built from a [stream.Decoder] with [Decode] and written
// back through a [stream.Encoder] with [Encode]. Documents convert to and
// from YAML, JSON and CBOR with [Marshal] and [Unmarshal], and print as
// indented XML-like text with [Render].
//
// # Usage
//
//	dec, err := stream.NewDecoder(data, table)
//	if err != nil {
//		return err
//	}
//	doc, err := tree.Decode(dec)
//	if err != nil {
//		return err
//	}
//	return tree.Render(doc, os.Stdout, tree.RenderColors(tree.NewColors()))
//
// Elements hold either child elements or a value. A value is the
// concatenation of the inline strings, and of the opaque chunks, found in
// the element.
//
// # Related Packages
//
//   - github.com/signadot/go-wbxml/stream - streaming decoder and encoder
//   - github.com/signadot/go-wbxml/codepage - tag dictionaries
package tree
