package tree

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

type RenderOption func(*renderState)

type renderState struct {
	w       *bufio.Writer
	colors  *Colors
	indent  int
	header  bool
	tagInfo bool
}

// RenderColors colors the output with c.
func RenderColors(c *Colors) RenderOption {
	return func(rs *renderState) { rs.colors = c }
}

// RenderIndent sets the indentation per level, 2 by default.
func RenderIndent(n int) RenderOption {
	return func(rs *renderState) { rs.indent = n }
}

// RenderHeader prints the document header as a leading comment.
func RenderHeader(v bool) RenderOption {
	return func(rs *renderState) { rs.header = v }
}

// RenderTagInfo annotates every start tag with its page and id.
func RenderTagInfo(v bool) RenderOption {
	return func(rs *renderState) { rs.tagInfo = v }
}

// Render writes doc as indented XML-like text. Text values are escaped,
// opaque values are written as hex in a CDATA-like section.
func Render(doc *Document, w io.Writer, opts ...RenderOption) error {
	rs := &renderState{w: bufio.NewWriter(w), indent: 2}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.header {
		rs.line(0, rs.color(CommentColor, "<!-- "+doc.Header.String()+" -->"))
	}
	for _, n := range doc.Root {
		rs.node(0, n)
	}
	return rs.w.Flush()
}

// RenderString renders doc without colors.
func RenderString(doc *Document, opts ...RenderOption) string {
	buf := &strings.Builder{}
	_ = Render(doc, buf, opts...)
	return buf.String()
}

func (rs *renderState) color(a ColorAttr, s string) string {
	return rs.colors.Get(a)(s)
}

func (rs *renderState) line(depth int, s string) {
	rs.w.WriteString(strings.Repeat(" ", depth*rs.indent))
	rs.w.WriteString(s)
	rs.w.WriteByte('\n')
}

func (rs *renderState) open(n *Node) string {
	s := rs.color(SepColor, "<") + rs.name(n)
	if rs.tagInfo {
		s += rs.color(CommentColor, fmt.Sprintf(" page=%d id=0x%02X", n.Page, n.ID))
	}
	return s
}

func (rs *renderState) name(n *Node) string {
	if n.Label() != n.Name {
		return rs.color(UnknownTagColor, n.Label())
	}
	return rs.color(TagColor, n.Name)
}

func (rs *renderState) close(n *Node) string {
	return rs.color(SepColor, "</") + rs.name(n) + rs.color(SepColor, ">")
}

func (rs *renderState) node(depth int, n *Node) {
	switch {
	case len(n.Children) != 0:
		rs.line(depth, rs.open(n)+rs.color(SepColor, ">"))
		for _, c := range n.Children {
			rs.node(depth+1, c)
		}
		rs.line(depth, rs.close(n))
	case n.HasValue():
		rs.line(depth, rs.open(n)+rs.color(SepColor, ">")+rs.value(n)+rs.close(n))
	default:
		rs.line(depth, rs.open(n)+rs.color(SepColor, "/>"))
	}
}

func (rs *renderState) value(n *Node) string {
	var s string
	if n.Text != nil {
		s = rs.color(TextColor, escape(*n.Text))
	}
	if n.Opaque != nil {
		s += rs.color(OpaqueColor, "<![OPAQUE["+hex.EncodeToString(n.Opaque)+"]]>")
	}
	return s
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}
