// Package token defines the WBXML vocabulary shared by decoders and encoders:
// global token codes, the element tag byte layout, combined [Tag] identities,
// decoder step [Type]s and the error values reported for malformed input.
//
// Only the subset used by sync protocols is supported. Attributes, entities,
// string tables, processing instructions and extension tokens are reported
// as errors rather than skipped.
package token
