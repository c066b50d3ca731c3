package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("LSPCHECK_STATE", "/var/state")
	path := writeConfig(t, `
log_level = "debug"
log_file = "$LSPCHECK_STATE/lspcheck.log"
color = "never"
jobs = 4

[check]
drift = false
ignore_methods = ["telemetry/event"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		LogLevel:    "debug",
		LogFile:     "/var/state/lspcheck.log",
		Color:       "never",
		Jobs:        4,
		ExcludeDirs: []string{".git", ".venv", "node_modules"},
		Check: Check{
			Drift:         false,
			IgnoreMethods: []string{"telemetry/event"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `jobs = 2`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.LogLevel != def.LogLevel || cfg.Color != def.Color || !cfg.Check.Drift {
		t.Errorf("expected defaults to survive, got %+v", cfg)
	}
	if cfg.Jobs != 2 {
		t.Errorf("expected jobs 2, got %d", cfg.Jobs)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", `colour = "never"`, "unknown keys: colour"},
		{"unknown nested key", "[check]\nstrict = true", "unknown keys: check.strict"},
		{"bad log level", `log_level = "trace"`, "log_level must be one of"},
		{"bad color", `color = "rainbow"`, "color must be one of"},
		{"negative jobs", `jobs = -1`, "jobs must not be negative"},
		{"bad toml", `jobs = `, "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFind(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if _, err := Find(dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Find(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected '%s', got '%s'", path, got)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("LSPCHECK_DIR", "/opt/traces")
	tests := []struct {
		input string
		want  string
	}{
		{"~", "/home/tester"},
		{"~/logs/check.log", "/home/tester/logs/check.log"},
		{"$LSPCHECK_DIR/a.json", "/opt/traces/a.json"},
		{"${LSPCHECK_DIR}/b.json", "/opt/traces/b.json"},
		{"/plain/path", "/plain/path"},
		{"a~b", "a~b"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.input)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected '%s', got '%s'", tt.input, tt.want, got)
		}
	}
}
