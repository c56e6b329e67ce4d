package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestForComponentMemoizes(t *testing.T) {
	a := ForComponent("memo")
	b := ForComponent("memo")
	if a != b {
		t.Error("expected the same logger instance for the same component")
	}
}

func TestPrefixAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil) // nil is ignored; subsequent tests replace output anyway

	l := ForComponent("prefix-test")
	l.Infof("hello %d", 42)
	l.Warnf("careful")
	l.Errorf("broken: %v", "cause")

	out := buf.String()
	for _, want := range []string{
		"INFO [prefix-test] hello 42",
		"WARN [prefix-test] careful",
		"ERROR [prefix-test] broken: cause",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	l := ForComponent("debug-test")
	l.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged while debug disabled")
	}

	EnableDebugFor("debug-test")
	l.Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG [debug-test] visible") {
		t.Error("debug message not logged after EnableDebugFor")
	}

	if DebugEnabledFor("other-component") {
		t.Error("debug unexpectedly enabled for unrelated component")
	}

	SetGlobalDebug(true)
	if !DebugEnabledFor("other-component") {
		t.Error("global debug did not apply to unrelated component")
	}
	SetGlobalDebug(false)
}
