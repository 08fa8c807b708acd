package stream

import (
	"testing"

	"github.com/signadot/go-wbxml/token"
)

func TestStateStack(t *testing.T) {
	s := NewState()
	if _, ok := s.Pop(); ok {
		t.Fatal("pop on empty state succeeded")
	}
	if _, ok := s.Top(); ok {
		t.Fatal("top on empty state succeeded")
	}
	s.Push(Frame{Tag: token.MakeTag(0, 0x05), Name: "Sync"})
	s.Push(Frame{Tag: token.MakeTag(0, 0x1C), Name: "Collections"})
	if got := s.Depth(); got != 2 {
		t.Errorf("depth %d, want 2", got)
	}
	if got := s.Path(); got != "Sync/Collections" {
		t.Errorf("path %q", got)
	}
	f, ok := s.Top()
	if !ok || f.Name != "Collections" {
		t.Errorf("top %+v %t", f, ok)
	}
	f, ok = s.Pop()
	if !ok || f.Tag != token.MakeTag(0, 0x1C) {
		t.Errorf("pop %+v %t", f, ok)
	}
	if got := s.Path(); got != "Sync" {
		t.Errorf("path %q", got)
	}
	if s.Page() != 0 {
		t.Errorf("page %d", s.Page())
	}
}
