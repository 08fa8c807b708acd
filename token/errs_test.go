package token

import (
	"errors"
	"testing"
)

func TestDecodeErr(t *testing.T) {
	err := error(NewDecodeErr(ErrAttributes, 4))
	if !errors.Is(err, ErrAttributes) {
		t.Error("expected ErrAttributes in chain")
	}
	if !errors.Is(err, ErrFormat) {
		t.Error("expected ErrFormat in chain")
	}
	if errors.Is(err, ErrUnexpectedEOF) {
		t.Error("unexpected ErrUnexpectedEOF in chain")
	}
	want := "wbxml format error: attributes unsupported at offset 4"
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}
