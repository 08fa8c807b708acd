// Package codepage provides tag dictionaries: the mapping from a code page
// and an in-page id to validity and a display name.
//
// Decoders and encoders only use a [Dictionary] to validate SWITCH_PAGE
// targets and to label elements; an unknown tag on a known page is tolerated.
// [Table] is a dictionary loaded from a YAML or TOML description:
//
//	pages:
//	  - page: 0
//	    name: AirSync
//	    tags:
//	      Sync: 0x05
//	      Responses: 0x06
//
// [Any] accepts every tag on a fixed range of pages.
package codepage
