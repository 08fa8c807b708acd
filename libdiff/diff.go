package libdiff

import (
	"bufio"
	"io"
	"strings"

	"github.com/signadot/go-wbxml/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// Lines diffs two texts line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Documents diffs the rendered forms of two documents. Elements are
// annotated with their page and id so that elements with the same name on
// different pages differ.
func Documents(from, to *tree.Document) []Line {
	opts := []tree.RenderOption{tree.RenderHeader(true), tree.RenderTagInfo(true)}
	return Lines(tree.RenderString(from, opts...), tree.RenderString(to, opts...))
}

// Changed reports whether lines hold any insertion or deletion.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Write prints lines, coloring insertions and deletions when colors is
// not nil.
func Write(w io.Writer, lines []Line, colors *Colors) error {
	bw := bufio.NewWriter(w)
	for _, ln := range lines {
		bw.WriteString(colors.get(ln.Op)(ln.String()))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
