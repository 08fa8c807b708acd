package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Decode      bool
	DecodeBytes bool
	Encode      bool
}

var (
	d   *debug
	log *slog.Logger
)

func init() {
	d = &debug{}
	d.Decode = boolEnv("WBXML_DEBUG_DECODE")
	d.DecodeBytes = boolEnv("WBXML_DEBUG_DECODE_BYTES")
	d.Encode = boolEnv("WBXML_DEBUG_ENCODE")
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}

// DecodeBytes enables per-byte decoder tracing. It implies Decode.
func DecodeBytes() bool {
	return d.DecodeBytes
}

func Encode() bool {
	return d.Encode
}

// Logger is the stderr logger used by default trace hooks.
func Logger() *slog.Logger {
	return log
}

// Tracer returns a trace hook logging to Logger under component.
func Tracer(component string) func(string) {
	l := log.With("component", component)
	return func(msg string) {
		l.Debug(msg)
	}
}
