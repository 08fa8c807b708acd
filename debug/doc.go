// Package debug holds switches read once from the environment that turn on
// codec tracing:
//
//	WBXML_DEBUG_DECODE        element level decoder trace
//	WBXML_DEBUG_DECODE_BYTES  decoder trace of every byte read
//	WBXML_DEBUG_ENCODE        element level encoder trace
//
// Trace lines go to stderr through log/slog.
package debug
