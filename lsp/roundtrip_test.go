package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func roundTrip[T any](t *testing.T, v T) {
	t.Helper()
	data, err := Marshal(v)
	if err != nil {
		t.Fatalf("%T: unexpected encode error: %v", v, err)
	}
	var got T
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("%T: unexpected decode error for %s: %v", v, data, err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("%T: round trip mismatch (-want +got):\n%s", v, diff)
	}
}

func TestRoundTrip(t *testing.T) {
	r := NewRange(0, 0, 0, 4)
	kind := CompletionFunction
	version := int32(3)

	roundTrip(t, Hover{Contents: NewHoverMarkdown("**echo**"), Range: &r})
	roundTrip(t, Hover{Contents: HoverContents{Value: []MarkedString{{Value: "a"}}}})
	roundTrip(t, ParameterInformation{Label: ParameterLabel{Value: [2]uint32{4, 9}}})
	roundTrip(t, CompletionItem{Label: "echo", Kind: &kind, Documentation: NewMarkdown("prints")})
	roundTrip(t, NewProgressBegin("Indexing"))
	roundTrip(t, NewProgressEnd(""))
	roundTrip(t, NewFullReport("r1", nil))
	roundTrip(t, NewUnchangedReport("r2"))
	roundTrip(t, NewLocationResult(Location{URI: "file:///a.sh", Range: r}))
	roundTrip(t, WorkspaceEdit{
		DocumentChanges: []DocumentChange{
			{Value: TextDocumentEdit{
				TextDocument: OptionalVersionedTextDocumentIdentifier{URI: "file:///a.sh", Version: &version},
				Edits:        []TextOrAnnotatedEdit{{Value: TextEdit{Range: r, NewText: "printf"}}},
			}},
			{Value: NewRenameFile("file:///a.sh", "file:///b.sh")},
		},
	})
}

func TestMinimalPayload(t *testing.T) {
	var item CompletionItem
	if err := Unmarshal([]byte(`{"label":"echo"}`), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(CompletionItem{Label: "echo"}, item); diff != "" {
		t.Errorf("expected every optional field unset (-want +got):\n%s", diff)
	}

	var diag Diagnostic
	if err := Unmarshal([]byte(`{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"message":"m"}`), &diag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag.Severity != nil || diag.Code != nil || diag.Source != nil || diag.Tags != nil {
		t.Errorf("expected optional diagnostic fields unset, got %+v", diag)
	}
}
