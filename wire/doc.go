// Package wire provides the byte level primitives of the WBXML codec: a
// forward [Cursor] over a fully buffered document, a growable [Sink], and
// the multi-byte unsigned integer (mb_u_int32) codec used for opaque
// lengths and header fields.
package wire
