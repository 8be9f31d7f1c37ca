package debug

import (
	"bytes"
	"strings"
	"testing"
)

type marshaler struct{}

func (marshaler) MarshalJSON() ([]byte, error) {
	return []byte(`{"k":1}`), nil
}

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("value %s at %s\n", marshaler{}, "$.a")
	got := buf.String()
	if !strings.Contains(got, `"k": 1`) {
		t.Errorf("expected indented json in %q", got)
	}
	if !strings.HasSuffix(got, "at $.a\n") {
		t.Errorf("unexpected tail in %q", got)
	}
}

func TestLogAny(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	LogAny([]any{1, "a"})
	if got, want := buf.String(), "[1,\"a\"]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("KEYED_DEBUG_TEST", "true")
	if !boolEnv("KEYED_DEBUG_TEST") {
		t.Error("expected true")
	}
	t.Setenv("KEYED_DEBUG_TEST", "nope")
	if boolEnv("KEYED_DEBUG_TEST") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("KEYED_DEBUG_UNSET_FOR_TEST") {
		t.Error("expected false for unset")
	}
}
