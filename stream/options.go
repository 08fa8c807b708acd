package stream

import (
	"log/slog"

	"github.com/signadot/go-wbxml/debug"
)

// StreamOption configures Encoder/Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	trace    func(string) // element level trace
	verbose  func(string) // byte level trace, decoder only
	noHeader bool
	header   Header
}

func decoderOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{header: DefaultHeader()}
	if debug.Decode() || debug.DecodeBytes() {
		res.trace = debug.Tracer("decoder")
	}
	if debug.DecodeBytes() {
		res.verbose = debug.Tracer("decoder")
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func encoderOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{header: DefaultHeader()}
	if debug.Encode() {
		res.trace = debug.Tracer("encoder")
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// WithTrace installs a hook receiving one line per element level event.
// A nil hook disables tracing.
func WithTrace(f func(string)) StreamOption {
	return func(opts *streamOpts) {
		opts.trace = f
	}
}

// WithVerboseTrace installs a hook receiving one line per byte read by a
// decoder. Encoders ignore it.
func WithVerboseTrace(f func(string)) StreamOption {
	return func(opts *streamOpts) {
		opts.verbose = f
	}
}

// WithLogger traces element level events at debug level on l.
func WithLogger(l *slog.Logger) StreamOption {
	return func(opts *streamOpts) {
		if l == nil {
			l = slog.Default()
		}
		opts.trace = func(msg string) {
			l.Debug(msg)
		}
	}
}

// WithoutHeader makes a decoder start at the first token of its input, and
// an encoder write tokens only.
func WithoutHeader() StreamOption {
	return func(opts *streamOpts) {
		opts.noHeader = true
	}
}

// WithHeader sets the header written by an encoder. The string table is
// always empty.
func WithHeader(h Header) StreamOption {
	return func(opts *streamOpts) {
		opts.header = h
	}
}
