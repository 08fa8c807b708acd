package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	t.Setenv("WBXML_TEST_FLAG", "true")
	if !boolEnv("WBXML_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("WBXML_TEST_FLAG", "nope")
	if boolEnv("WBXML_TEST_FLAG") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("WBXML_TEST_FLAG_UNSET") {
		t.Error("expected false for unset")
	}
}

func TestTracer(t *testing.T) {
	if Tracer("test") == nil {
		t.Fatal("nil tracer")
	}
	if Logger() == nil {
		t.Fatal("nil logger")
	}
}
