package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false)
	l.Debug("hidden")
	l.Info("shown")
	if err := Sync(l); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry logged at info level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "INFO") {
		t.Fatalf("info entry missing:\n%s", out)
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, true)
	l.Debug("tone")
	if !strings.Contains(buf.String(), "DEBUG") {
		t.Fatalf("debug entry missing:\n%s", buf.String())
	}
}
