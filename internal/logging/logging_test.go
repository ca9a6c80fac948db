package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "pong", "warn")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "side", "top")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "side=top") || !strings.Contains(out, "pong") {
		t.Errorf("warn message missing fields:\n%s", out)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "", "loud"); err == nil {
		t.Error("New() with unknown level should fail")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pong.log")

	logger, closer, err := OpenFile(path, "pong", "")
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("match started", "ruleset", "classic")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "ruleset=classic") {
		t.Errorf("log file missing entry:\n%s", data)
	}
}
