package lsp

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWorkDoneProgress(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`{"kind":"begin","title":"Indexing"}`, WorkDoneProgressBegin{Kind: "begin", Title: "Indexing"}},
		{`{"kind":"end"}`, WorkDoneProgressEnd{Kind: "end"}},
	}
	for _, tt := range tests {
		var got WorkDoneProgress
		if err := Unmarshal([]byte(tt.input), &got); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.input, err)
		}
		if diff := cmp.Diff(tt.want, got.Value); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.input, diff)
		}
	}

	var got WorkDoneProgress
	if err := Unmarshal([]byte(`{"kind":"pause"}`), &got); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum for unknown kind, got %v", err)
	}
	if err := Unmarshal([]byte(`{"title":"x"}`), &got); !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey without kind, got %v", err)
	}
	if err := Unmarshal([]byte(`{"kind":"begin"}`), &got); !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey for begin without title, got %v", err)
	}
}

func TestWorkDoneProgress_Encode(t *testing.T) {
	data, err := Marshal(NewProgressReport("half", 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"kind":"report","message":"half","percentage":50}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	_, err = Marshal(WorkDoneProgress{Value: WorkDoneProgressEnd{Kind: "begin"}})
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Errorf("expected *EncodeError for mismatched kind, got %v", err)
	}
}

func TestProgressParams_WorkDone(t *testing.T) {
	var params ProgressParams
	if err := Unmarshal([]byte(`{"token":"t1","value":{"kind":"report","percentage":10}}`), &params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	progress, err := params.WorkDone()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, ok := progress.Report()
	if !ok {
		t.Fatalf("expected report, got %T", progress.Value)
	}
	if report.Percentage == nil || *report.Percentage != 10 {
		t.Errorf("expected percentage 10, got %v", report.Percentage)
	}
}

func TestDocumentChange(t *testing.T) {
	input := `{"documentChanges":[
		{"textDocument":{"uri":"file:///a.go","version":null},"edits":[]},
		{"kind":"create","uri":"file:///b.go"},
		{"kind":"rename","oldUri":"file:///b.go","newUri":"file:///c.go"},
		{"kind":"delete","uri":"file:///c.go","options":{"recursive":true}}
	]}`
	var edit WorkspaceEdit
	if err := Unmarshal([]byte(input), &edit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edit.DocumentChanges) != 4 {
		t.Fatalf("expected 4 document changes, got %d", len(edit.DocumentChanges))
	}
	if _, ok := edit.DocumentChanges[0].TextDocumentEdit(); !ok {
		t.Errorf("expected TextDocumentEdit, got %T", edit.DocumentChanges[0].Value)
	}
	wantTypes := []string{"lsp.CreateFile", "lsp.RenameFile", "lsp.DeleteFile"}
	for i, want := range wantTypes {
		got := fmt.Sprintf("%T", edit.DocumentChanges[i+1].Value)
		if got != want {
			t.Errorf("change %d: expected %s, got %s", i+1, want, got)
		}
	}

	var change DocumentChange
	if err := Unmarshal([]byte(`{"kind":"move","uri":"file:///a.go"}`), &change); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum for unknown kind, got %v", err)
	}
}

func TestDocumentDiagnosticReport(t *testing.T) {
	var report DocumentDiagnosticReport
	if err := Unmarshal([]byte(`{"kind":"unchanged","resultId":"r1"}`), &report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unchanged, ok := report.Unchanged()
	if !ok {
		t.Fatalf("expected unchanged report, got %T", report.Value)
	}
	if unchanged.ResultID != "r1" {
		t.Errorf("expected result id 'r1', got '%s'", unchanged.ResultID)
	}
	if err := Unmarshal([]byte(`{"kind":"unchanged"}`), &report); !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey for unchanged report without resultId, got %v", err)
	}
}

type numericKind struct {
	Kind int `json:"kind"`
}

type noKind struct {
	Name string `json:"name"`
}

func TestTagged_EncodeDiscriminant(t *testing.T) {
	u := tagged{key: "kind", variants: map[string]shape{
		"one":  shapeOf[numericKind]("numericKind"),
		"none": shapeOf[noKind]("noKind"),
	}}

	_, err := u.encode("Numbered", numericKind{Kind: 1})
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EncodeError, got %v", err)
	}
	if ee.Err == nil {
		t.Error("expected the unmarshal error to be kept")
	}
	if !strings.Contains(ee.Error(), "kind is not a string") {
		t.Errorf("expected message about a non-string kind, got %q", ee.Error())
	}

	_, err = u.encode("Numbered", noKind{Name: "x"})
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EncodeError, got %v", err)
	}
	if !strings.Contains(ee.Error(), "has none") {
		t.Errorf("expected message about a missing kind, got %q", ee.Error())
	}
}
