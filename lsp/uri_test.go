package lsp

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDocumentURI_Path(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	tests := []struct {
		uri  DocumentURI
		want string
	}{
		{"file:///home/user/script.sh", "/home/user/script.sh"},
		{"file:///tmp/with%20space.json", "/tmp/with space.json"},
	}
	for _, tt := range tests {
		got, err := tt.uri.Path()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("expected '%s', got '%s'", tt.want, got)
		}
	}

	if _, err := DocumentURI("untitled:Untitled-1").Path(); err == nil {
		t.Error("expected error for non-file scheme")
	}
}

func TestPathToURI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	uri := PathToURI(path)
	got, err := uri.Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected '%s', got '%s'", path, got)
	}
}
