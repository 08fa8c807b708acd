package stream

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/token"
	"github.com/signadot/go-wbxml/wire"
)

// Encoder builds a WBXML document.
//
// An element start is held back until the next call shows whether the
// element has content: Start, Text or Opaque write it with the content bit
// set, End writes it as a self closing element with no END token.
//
// Methods return the Encoder so calls can be chained. Errors are latched and
// reported by Finish; the Encoder keeps accepting calls after an error.
type Encoder struct {
	dict  codepage.Dictionary
	out   *wire.Sink
	state *State
	opts  *streamOpts

	pending    token.Tag
	hasPending bool
	// owed is the number of opaque payload bytes announced by OpaqueHeader
	// and not yet written.
	owed int
	err  error
}

// NewEncoder creates an Encoder writing to a new Sink.
func NewEncoder(dict codepage.Dictionary, opts ...StreamOption) (*Encoder, error) {
	return NewSinkEncoder(wire.NewSink(), dict, opts...)
}

// NewSinkEncoder creates an Encoder appending to out. Unless WithoutHeader
// is given, the document header is written first.
func NewSinkEncoder(out *wire.Sink, dict codepage.Dictionary, opts ...StreamOption) (*Encoder, error) {
	if dict == nil {
		return nil, &Error{Msg: "stream encoder requires a code page dictionary"}
	}
	if out == nil {
		return nil, &Error{Msg: "stream encoder requires a sink"}
	}
	e := &Encoder{
		dict:  dict,
		out:   out,
		state: NewState(),
		opts:  encoderOpts(opts),
	}
	if !e.opts.noHeader {
		out.Write(appendHeader(nil, e.opts.header))
	}
	return e, nil
}

// Depth returns the number of open elements, not counting a pending one.
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// Path returns the names of the open elements joined by "/".
func (e *Encoder) Path() string {
	return e.state.Path()
}

// Err returns the latched error, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Bytes returns the document written so far.
func (e *Encoder) Bytes() []byte {
	return e.out.Bytes()
}

// UTF8 returns the document written so far as text, for diagnostics.
func (e *Encoder) UTF8() (string, error) {
	return e.out.Text()
}

// Start begins an element.
func (e *Encoder) Start(tag token.Tag) *Encoder {
	e.checkOwed()
	e.flush(false)
	page, id := tag.Page(), tag.ID()
	switch {
	case tag < 0 || page > 0xFF:
		e.latch(fmt.Errorf("%w %d", token.ErrUnknownPage, page))
		return e
	case e.dict.IsGlobalID(id):
		e.latch(fmt.Errorf("%w 0x%02X", token.ErrGlobalToken, id))
		return e
	}
	e.pending = tag
	e.hasPending = true
	return e
}

// End closes the innermost element.
func (e *Encoder) End() *Encoder {
	e.checkOwed()
	if e.hasPending {
		e.flush(true)
		return e
	}
	f, ok := e.state.Pop()
	if !ok {
		e.latch(fmt.Errorf("%w: end with no open element", token.ErrUnbalanced))
		return e
	}
	e.out.WriteByte(token.End)
	e.tracef("</%s>", f.Name)
	return e
}

// Tag writes an element without content.
func (e *Encoder) Tag(tag token.Tag) *Encoder {
	return e.Start(tag).End()
}

// Data writes an element holding value, or an element without content if
// value is empty.
func (e *Encoder) Data(tag token.Tag, value string) *Encoder {
	if value == "" {
		return e.Tag(tag)
	}
	return e.Start(tag).Text(value).End()
}

// Text writes an inline string in the innermost element.
func (e *Encoder) Text(value string) *Encoder {
	e.checkOwed()
	e.flush(false)
	switch {
	case !utf8.ValidString(value):
		e.latch(token.ErrEncoding)
		return e
	case strings.IndexByte(value, 0) >= 0:
		e.latch(fmt.Errorf("%w: NUL in inline string", token.ErrEncoding))
		return e
	case e.state.Depth() == 0:
		e.latch(fmt.Errorf("%w: text outside element", token.ErrNoElement))
		return e
	}
	e.out.WriteByte(token.StrI)
	e.out.Write([]byte(value))
	e.out.WriteByte(0)
	e.tracef("%s", value)
	return e
}

// Opaque writes raw bytes in the innermost element. An empty payload
// writes nothing, which decodes as an element without a value.
func (e *Encoder) Opaque(data []byte) *Encoder {
	if !e.OpaqueHeader(len(data)) {
		return e
	}
	e.Write(data)
	return e
}

// OpaqueHeader writes the opaque token and length for n bytes that the
// caller then writes with Write. It reports whether the caller should
// write the payload. The next call other than Write latches
// token.ErrUnbalanced if fewer than n bytes were written.
func (e *Encoder) OpaqueHeader(n int) bool {
	e.checkOwed()
	if n < 0 {
		e.latch(fmt.Errorf("%w %d", token.ErrNegativeLength, n))
		return false
	}
	e.flush(false)
	if e.state.Depth() == 0 {
		e.latch(fmt.Errorf("%w: opaque data outside element", token.ErrNoElement))
		return false
	}
	if n == 0 {
		return false
	}
	e.out.WriteByte(token.Opaque)
	wire.WriteUint(e.out, uint64(n))
	e.owed = n
	e.tracef("opaque: %d", n)
	return true
}

// Write appends payload bytes announced by OpaqueHeader. Writing more than
// was announced, or writing without a header, writes nothing and latches
// token.ErrUnbalanced.
func (e *Encoder) Write(p []byte) (int, error) {
	if len(p) > e.owed {
		err := fmt.Errorf("%w: %d opaque bytes written, %d announced", token.ErrUnbalanced, len(p), e.owed)
		e.owed = 0
		e.latch(err)
		return 0, err
	}
	e.owed -= len(p)
	return e.out.Write(p)
}

// Finish checks that every element was closed and that no error was
// latched.
func (e *Encoder) Finish() error {
	e.checkOwed()
	if e.state.Depth() != 0 || e.hasPending {
		e.latch(fmt.Errorf("%w: finish received with unclosed tags", token.ErrUnbalanced))
	}
	return e.err
}

// Build runs f and then Finish.
func (e *Encoder) Build(f func(*Encoder)) error {
	f(e)
	return e.Finish()
}

func (e *Encoder) checkOwed() {
	if e.owed == 0 {
		return
	}
	e.latch(fmt.Errorf("%w: %d opaque bytes missing", token.ErrUnbalanced, e.owed))
	e.owed = 0
}

func (e *Encoder) latch(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) flush(degenerate bool) {
	if !e.hasPending {
		return
	}
	e.hasPending = false
	tag := e.pending
	page, id := tag.Page(), tag.ID()

	if page != e.state.page {
		e.state.page = page
		e.out.WriteByte(token.SwitchPage)
		e.out.WriteByte(byte(page))
	}
	if degenerate {
		e.out.WriteByte(byte(id))
	} else {
		e.out.WriteByte(byte(id | token.WithContent))
	}

	name := codepage.Unknown
	switch {
	case !e.dict.IsValidPage(page):
		e.tracef("Unrecognized page %d", page)
	case !e.dict.IsValidTag(page, id):
		e.tracef("Unknown tag 0x%02X on page %d", id, page)
	default:
		name = e.dict.NameOf(page, id)
	}
	if degenerate {
		e.tracef("<%s/>", name)
		return
	}
	e.tracef("<%s>", name)
	e.state.Push(Frame{Tag: tag, Name: name})
}

func (e *Encoder) tracef(format string, args ...any) {
	if e.opts.trace == nil {
		return
	}
	e.opts.trace(indent(e.state.Depth(), fmt.Sprintf(format, args...)))
}
