package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	level.Set(slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "method", "initialize")
	level.Set(slog.LevelInfo)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "method=initialize") {
		t.Errorf("expected warn message with attributes, got %q", out)
	}
}

func TestInit_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "lspcheck.log")
	closer, err := Init("debug", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slog.Debug("Checked value", "index", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "index=3") {
		t.Errorf("expected log line in file, got %q", data)
	}

	if _, err := Init("info", filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("expected error for unwritable log file")
	}
}
