package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"invalid", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoggerWritesThresholdedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acap.log")

	l, err := New(LevelInfo, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Debug("below threshold %d", 1)
	l.Info("parsed %q", "2 pc")
	l.Error("boom")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "below threshold") {
		t.Error("debug line should have been filtered at info level")
	}
	if !strings.Contains(content, `[INFO] parsed "2 pc"`) {
		t.Errorf("missing info line, got: %s", content)
	}
	if !strings.Contains(content, "[ERROR] boom") {
		t.Errorf("missing error line, got: %s", content)
	}
}

func TestLoggerTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acap.log")

	l, err := New(LevelDebug, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.WithTag("web").Info("listening")
	l.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "[web] listening") {
		t.Errorf("missing tagged line, got: %s", data)
	}
}

func TestSilentLogger(t *testing.T) {
	l, err := New(LevelNone, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Must not panic or write anywhere.
	l.Info("nothing")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestGlobalBeforeInit(t *testing.T) {
	// The uninitialized global logger is silent but safe to use.
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

func TestLoggerCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "logs", "acap.log")

	l, err := New(LevelInfo, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("hello")
	l.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
