package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Output: &buf, Prefix: "robbo"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	l.Info("hidden")
	l.Warn("shown", "cell", "(1,2)")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "robbo") {
		t.Errorf("unexpected output %q", out)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() without a file = %v", err)
	}
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "robbo.log")
	l, err := New(Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	l.Debug("tick", "n", 1)
	if err := l.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "tick") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
