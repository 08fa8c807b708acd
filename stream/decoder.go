package stream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-wbxml/codepage"
	"github.com/signadot/go-wbxml/token"
	"github.com/signadot/go-wbxml/wire"
)

// Decoder is a pull parser over one buffered WBXML document.
//
// The first error is latched: every later call returns it. A Decoder is not
// safe for concurrent use.
type Decoder struct {
	dict   codepage.Dictionary
	cur    *wire.Cursor
	state  *State
	header Header
	opts   *streamOpts

	// elem is the element most recently started or ended.
	elem Frame
	typ  token.Type
	tag  token.Tag
	text string
	data []byte
	err  error
}

// NewDecoder creates a Decoder over data and reads the document header.
// A zero length document fails with token.ErrEmptyInput.
func NewDecoder(data []byte, dict codepage.Dictionary, opts ...StreamOption) (*Decoder, error) {
	return NewCursorDecoder(wire.NewCursor(data), dict, opts...)
}

// NewCursorDecoder creates a Decoder reading from cur. Unless WithoutHeader
// is given, the document header is read first.
func NewCursorDecoder(cur *wire.Cursor, dict codepage.Dictionary, opts ...StreamOption) (*Decoder, error) {
	return newDecoder(cur, NewState(), dict, decoderOpts(opts))
}

func newDecoder(cur *wire.Cursor, state *State, dict codepage.Dictionary, opts *streamOpts) (*Decoder, error) {
	if dict == nil {
		return nil, &Error{Msg: "stream decoder requires a code page dictionary"}
	}
	if cur == nil {
		return nil, &Error{Msg: "stream decoder requires input"}
	}
	d := &Decoder{
		dict:  dict,
		cur:   cur,
		state: state,
		opts:  opts,
		elem:  Frame{Tag: token.NoTag},
	}
	if opts.noHeader {
		return d, nil
	}
	h, err := readHeader(cur)
	if err != nil {
		return nil, token.NewDecodeErr(err, cur.Offset())
	}
	d.header = h
	d.verbosef("Header: %s", h)
	return d, nil
}

// Chain returns a decoder that continues from d's position using dict.
// The header is not read again. Besides the input, the chained decoder
// shares d's open element stack, current page and pending END, so an END
// it consumes is seen by d as well. d must not be used until the chained
// decoder is done with its region.
func (d *Decoder) Chain(dict codepage.Dictionary, opts ...StreamOption) (*Decoder, error) {
	if d.err != nil {
		return nil, d.err
	}
	dOpts := decoderOpts(opts)
	dOpts.noHeader = true
	c, err := newDecoder(d.cur, d.state, dict, dOpts)
	if err != nil {
		return nil, err
	}
	c.header = d.header
	c.elem = d.elem
	return c, nil
}

// Header returns the document header. It is the zero Header if the decoder
// was created WithoutHeader.
func (d *Decoder) Header() Header {
	return d.header
}

// Depth returns the number of open elements.
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// Page returns the code page in effect.
func (d *Decoder) Page() int {
	return d.state.Page()
}

// Offset returns the number of input bytes consumed.
func (d *Decoder) Offset() int {
	return d.cur.Offset()
}

// Path returns the names of the open elements joined by "/".
func (d *Decoder) Path() string {
	return d.state.Path()
}

// Type returns the class of the last step.
func (d *Decoder) Type() token.Type {
	return d.typ
}

// Tag returns the tag most recently returned by NextTag.
func (d *Decoder) Tag() token.Tag {
	return d.tag
}

// Element returns the element most recently started or ended.
func (d *Decoder) Element() Frame {
	return d.elem
}

// Text returns the inline string of the last step, if it was TText.
func (d *Decoder) Text() string {
	return d.text
}

// Opaque returns the payload of the last step, if it was TOpaque.
func (d *Decoder) Opaque() []byte {
	return d.data
}

// Err returns the latched error, if any.
func (d *Decoder) Err() error {
	return d.err
}

// Next performs one decoder step: TStart, TEnd, TText, TOpaque, or TDone
// once the input is exhausted.
func (d *Decoder) Next() (token.Type, error) {
	if d.err != nil {
		return token.TNone, d.err
	}
	typ, err := d.next()
	if err != nil {
		return token.TNone, d.fail(err)
	}
	return typ, nil
}

func (d *Decoder) fail(err error) error {
	var de *token.DecodeErr
	if !errors.As(err, &de) {
		err = token.NewDecodeErr(err, d.cur.Offset())
	}
	d.err = err
	d.typ = token.TNone
	d.text, d.data = "", nil
	return err
}

func (d *Decoder) next() (token.Type, error) {
	d.text, d.data = "", nil

	if d.state.closePending {
		d.state.closePending = false
		d.typ = token.TEnd
		d.pop()
		return d.typ, nil
	}

	tok := d.read()
	for tok == token.SwitchPage {
		b, err := d.cur.ReadByte()
		if err != nil {
			return token.TNone, err
		}
		page := int(b)
		if !d.dict.IsValidPage(page) {
			return token.TNone, fmt.Errorf("%w %d", token.ErrUnknownPage, page)
		}
		d.state.page = page
		d.verbosef("Page: %d", page)
		tok = d.read()
	}

	switch tok {
	case wire.EOF:
		d.typ = token.TDone
	case token.End:
		d.typ = token.TEnd
		d.pop()
	case token.StrI:
		s, err := d.readInlineString()
		if err != nil {
			return token.TNone, err
		}
		d.typ = token.TText
		d.text = s
		d.tracef("%s : %s", d.elem.Name, s)
	case token.Opaque:
		n, err := wire.ReadUint(d.cur)
		if err != nil {
			return token.TNone, err
		}
		if n > uint64(d.cur.Len()) {
			return token.TNone, fmt.Errorf("%w: opaque length %d, %d bytes left", token.ErrUnexpectedEOF, n, d.cur.Len())
		}
		data, err := d.cur.Next(int(n))
		if err != nil {
			return token.TNone, err
		}
		d.typ = token.TOpaque
		d.data = data
		d.tracef("%s : (opaque: %d)", d.elem.Name, n)
	default:
		b := token.TagByte(tok)
		if d.dict.IsGlobalID(b.ID()) {
			return token.TNone, fmt.Errorf("%w 0x%02X", token.ErrGlobalToken, tok)
		}
		if b.Attr() {
			return token.TNone, fmt.Errorf("%w, token 0x%02X", token.ErrAttributes, tok)
		}
		d.typ = token.TStart
		d.push(b)
	}
	return d.typ, nil
}

func (d *Decoder) push(b token.TagByte) {
	page := d.state.page
	f := Frame{
		Tag:       token.MakeTag(page, b.ID()),
		Name:      codepage.Unknown,
		NoContent: !b.Content(),
	}
	if d.dict.IsValidTag(page, b.ID()) {
		f.Name = d.dict.NameOf(page, b.ID())
	}
	if f.NoContent {
		d.tracef("<%s/>", f.Name)
	} else {
		d.tracef("<%s>", f.Name)
	}
	d.state.Push(f)
	d.state.closePending = f.NoContent
	d.elem = f
}

func (d *Decoder) pop() {
	f, ok := d.state.Pop()
	if !ok {
		// an END with nothing open closes nothing
		d.elem = Frame{Tag: token.NoTag}
		d.tracef("</>")
		return
	}
	d.elem = f
	if !f.NoContent {
		d.tracef("</%s>", f.Name)
	}
}

func (d *Decoder) read() int {
	i := d.cur.Read()
	if i == wire.EOF {
		d.verbosef("Byte: EOF")
	} else {
		d.verbosef("Byte: %02x", i)
	}
	return i
}

func (d *Decoder) readInlineString() (string, error) {
	var buf []byte
	for {
		i := d.read()
		switch i {
		case 0:
			if !utf8.Valid(buf) {
				return "", token.ErrEncoding
			}
			return string(buf), nil
		case wire.EOF:
			return "", fmt.Errorf("%w: unterminated inline string", token.ErrUnexpectedEOF)
		}
		buf = append(buf, byte(i))
	}
}

// NextTag returns the tag of the next element start, skipping values.
// It returns token.EndTag when the element tagged stop ends. When the input
// is exhausted it returns token.EndDocument if stop is token.StartDocument,
// and fails with token.ErrPrematureEnd otherwise.
func (d *Decoder) NextTag(stop token.Tag) (token.Tag, error) {
	for {
		typ, err := d.Next()
		if err != nil {
			return 0, err
		}
		switch typ {
		case token.TStart:
			d.tag = d.elem.Tag
			return d.tag, nil
		case token.TEnd:
			if d.elem.Tag == stop {
				return token.EndTag, nil
			}
		case token.TDone:
			if stop == token.StartDocument {
				return token.EndDocument, nil
			}
			return 0, d.fail(fmt.Errorf("%w: looking for end of %s", token.ErrPrematureEnd, stop))
		}
	}
}

// SkipElement discards everything up to and including the end of the
// innermost open element.
func (d *Decoder) SkipElement() error {
	if d.err != nil {
		return d.err
	}
	top, ok := d.state.Top()
	if !ok {
		return d.fail(token.ErrNoElement)
	}
	depth := d.state.Depth()
	for {
		typ, err := d.Next()
		if err != nil {
			return err
		}
		switch typ {
		case token.TEnd:
			if d.state.Depth() < depth && d.elem.Tag == top.Tag {
				return nil
			}
		case token.TDone:
			return d.fail(fmt.Errorf("%w: skipping %s", token.ErrUnexpectedEOF, top.Name))
		}
	}
}

// ReadText returns the inline string value of the innermost open element
// and consumes its end. An element without a value yields "".
func (d *Decoder) ReadText() (string, error) {
	top, err := d.valueStart()
	if err != nil {
		return "", err
	}
	switch d.typ {
	case token.TEnd:
		d.tracef("No value for tag: %s", top.Name)
		return "", nil
	case token.TText:
	default:
		return "", d.fail(fmt.Errorf("%w for tag %s, got %s", token.ErrExpectedText, top.Name, d.typ))
	}
	res := d.text
	if err := d.valueEnd(top); err != nil {
		return "", err
	}
	return res, nil
}

// ReadOpaque returns the opaque value of the innermost open element and
// consumes its end. Inline text is accepted as its UTF-8 bytes. An element
// without a value yields an empty slice.
func (d *Decoder) ReadOpaque() ([]byte, error) {
	top, err := d.valueStart()
	if err != nil {
		return nil, err
	}
	var res []byte
	switch d.typ {
	case token.TEnd:
		d.tracef("No value for tag: %s", top.Name)
		return []byte{}, nil
	case token.TOpaque:
		res = d.data
	case token.TText:
		res = []byte(d.text)
	default:
		return nil, d.fail(fmt.Errorf("%w for tag %s, got %s", token.ErrExpectedOpaque, top.Name, d.typ))
	}
	if err := d.valueEnd(top); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadInt parses the text value of the innermost open element as a base 10
// integer. An element without a value yields 0.
func (d *Decoder) ReadInt() (int64, error) {
	s, err := d.ReadText()
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, d.fail(fmt.Errorf("%w %q for tag %s", token.ErrInvalidNumber, s, d.elem.Name))
	}
	return i, nil
}

func (d *Decoder) valueStart() (Frame, error) {
	if d.err != nil {
		return Frame{}, d.err
	}
	top, ok := d.state.Top()
	if !ok {
		return Frame{}, d.fail(token.ErrNoElement)
	}
	if _, err := d.Next(); err != nil {
		return Frame{}, err
	}
	return top, nil
}

func (d *Decoder) valueEnd(top Frame) error {
	typ, err := d.Next()
	if err != nil {
		return err
	}
	if typ != token.TEnd {
		return d.fail(fmt.Errorf("%w for tag %s, got %s", token.ErrMissingEnd, top.Name, typ))
	}
	return nil
}

func (d *Decoder) tracef(format string, args ...any) {
	if d.opts.trace == nil {
		return
	}
	d.opts.trace(indent(d.state.Depth(), fmt.Sprintf(format, args...)))
}

func (d *Decoder) verbosef(format string, args ...any) {
	if d.opts.verbose == nil {
		return
	}
	d.opts.verbose(indent(d.state.Depth(), fmt.Sprintf(format, args...)))
}

// indent keeps the first line of msg, indented two spaces per level.
func indent(depth int, msg string) string {
	if i := strings.IndexAny(msg, "\r\n"); i >= 0 {
		msg = msg[:i]
	}
	return strings.Repeat("  ", depth) + msg
}
