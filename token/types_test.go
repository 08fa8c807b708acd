package token

import (
	"testing"
)

func TestTypesText(t *testing.T) {
	for _, typ := range []Type{TNone, TDone, TStart, TEnd, TText, TOpaque} {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("%s: got %s", d, got)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("TAttr")); err == nil {
		t.Error("expected error for unknown type")
	}
	if got := TStart.String(); got != "TStart" {
		t.Errorf("got %q", got)
	}
}
