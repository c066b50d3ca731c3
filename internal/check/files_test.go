package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{}`)
	writeFile(t, filepath.Join(dir, "traces", "b.jsonl"), `{}`)
	writeFile(t, filepath.Join(dir, "traces", "c.ndjson"), `{}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `ignored`)
	writeFile(t, filepath.Join(dir, "node_modules", "d.json"), `{}`)
	explicit := filepath.Join(dir, "notes.txt")

	files, err := CollectFiles([]string{dir, explicit}, []string{"node_modules"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "traces", "b.jsonl"),
		filepath.Join(dir, "traces", "c.ndjson"),
		explicit,
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	if _, err := CollectFiles([]string{filepath.Join(dir, "missing")}, nil); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestCheckFiles_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"1.json", "2.json", "3.json", "4.json"} {
		path := filepath.Join(dir, name)
		writeFile(t, path, `{"jsonrpc":"2.0","method":"exit"}`+"\n"+`{"jsonrpc":"2.0","id":1,"method":"shutdown"}`)
		files = append(files, path)
	}
	c, err := New(Options{Drift: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := c.CheckFiles(context.Background(), files, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 8 {
		t.Fatalf("expected 8 results, got %d", len(results))
	}
	for i, r := range results {
		if r.File != files[i/2] || r.Index != i%2 {
			t.Errorf("result %d: expected %s:%d, got %s:%d", i, files[i/2], i%2, r.File, r.Index)
		}
		if r.Status != StatusOK {
			t.Errorf("result %d: expected ok, got %v (%v)", i, r.Status, r.Err)
		}
	}
}

func TestCheckFiles_MissingFile(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.CheckFiles(context.Background(), []string{filepath.Join(t.TempDir(), "gone.json")}, 0); err == nil {
		t.Error("expected error for missing file")
	}
}
