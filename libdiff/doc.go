// Package libdiff compares WBXML documents.
//
// # Usage
//
//	lines := libdiff.Documents(oldDoc, newDoc)
//	if libdiff.Changed(lines) {
//		libdiff.Write(os.Stdout, lines, nil)
//	}
//
// Documents are compared on their rendered form, one element or value per
// line, so the result reads like a diff of the XML text.
//
// # Related Packages
//
//   - github.com/signadot/go-wbxml/tree - in memory documents and rendering
package libdiff
