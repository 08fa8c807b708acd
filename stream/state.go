package stream

import (
	"strings"

	"github.com/signadot/go-wbxml/token"
)

// Frame is an open element.
type Frame struct {
	Tag  token.Tag
	Name string
	// NoContent marks a self closing element, which is closed by the next
	// decoder step without reading input.
	NoContent bool
}

// State tracks the open elements and the current code page of one
// document traversal.
type State struct {
	stack []Frame
	page  int
	// closePending is set when the element on top of the stack has no
	// content, so the next decoder step synthesizes its END.
	closePending bool
}

// NewState creates a new State at the top level, on page 0.
func NewState() *State {
	return &State{}
}

func (s *State) Push(f Frame) {
	s.stack = append(s.stack, f)
}

// Pop removes the top frame. It reports false if nothing is open.
func (s *State) Pop() (Frame, bool) {
	n := len(s.stack)
	if n == 0 {
		return Frame{}, false
	}
	f := s.stack[n-1]
	s.stack = s.stack[:n-1]
	return f, true
}

func (s *State) Top() (Frame, bool) {
	n := len(s.stack)
	if n == 0 {
		return Frame{}, false
	}
	return s.stack[n-1], true
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Page returns the code page in effect.
func (s *State) Page() int {
	return s.page
}

// Path returns the names of the open elements joined by "/".
func (s *State) Path() string {
	names := make([]string, len(s.stack))
	for i := range s.stack {
		names[i] = s.stack[i].Name
	}
	return strings.Join(names, "/")
}
