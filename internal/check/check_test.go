package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matkrin/lspwire/lsp"
)

const trace = `
{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a.sh"},"position":{"line":0,"character":4}}}
{"jsonrpc":"2.0","method":"textDocument/didClose","params":{"textDocument":{"uri":"file:///a.sh"}}}
{"jsonrpc":"2.0","id":1,"result":{"contents":"echo"}}
{"jsonrpc":"2.0","id":2,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a.sh"},"position":{"line":-1,"character":4}}}
{"jsonrpc":"2.0","method":"bashd/custom","params":{}}
`

func statuses(results []Result) []Status {
	out := make([]Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func TestCheck_Stream(t *testing.T) {
	c, err := New(Options{Drift: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := c.Check("trace.jsonl", strings.NewReader(trace))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Status{StatusOK, StatusOK, StatusSkipped, StatusFailed, StatusFailed}
	if diff := cmp.Diff(want, statuses(results)); diff != "" {
		t.Fatalf("statuses mismatch (-want +got):\n%s", diff)
	}
	for i, r := range results {
		if r.File != "trace.jsonl" || r.Index != i {
			t.Errorf("result %d: expected trace.jsonl:%d, got %s:%d", i, i, r.File, r.Index)
		}
	}
	if !errors.Is(results[3].Err, lsp.ErrTypeMismatch) {
		t.Errorf("expected type mismatch for negative line, got %v", results[3].Err)
	}
	if !errors.Is(results[4].Err, lsp.ErrUnknownMethod) {
		t.Errorf("expected unknown method, got %v", results[4].Err)
	}
	if _, ok := results[0].Decoded.(lsp.HoverParams); !ok {
		t.Errorf("expected decoded HoverParams, got %T", results[0].Decoded)
	}

	summary := Summarize(results)
	if summary != (Summary{OK: 2, Failed: 2, Skipped: 1}) {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Total() != 5 {
		t.Errorf("expected total 5, got %d", summary.Total())
	}
}

func TestCheck_SyntaxErrorStopsStream(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input := `{"jsonrpc":"2.0","method":"exit"} {"jsonrpc": ]` + "\n" + `{"jsonrpc":"2.0","method":"exit"}`
	results, err := c.Check("broken.json", strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Status != StatusFailed || !errors.Is(results[1].Err, lsp.ErrSyntax) {
		t.Errorf("expected syntax failure, got %v %v", results[1].Status, results[1].Err)
	}
}

func TestCheck_ForcedMethod(t *testing.T) {
	c, err := New(Options{Method: "textDocument/definition", Result: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input := `[{"targetUri":"file:///a.sh","targetRange":{"start":{"line":0,"character":0},"end":{"line":1,"character":0}},"targetSelectionRange":{"start":{"line":0,"character":0},"end":{"line":0,"character":3}}}]
{"jsonrpc":"2.0","id":7,"result":null}
{"jsonrpc":"2.0","id":8,"error":{"code":-32601,"message":"not found"}}`
	results, err := c.Check("definition.json", strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Status{StatusOK, StatusOK, StatusSkipped}
	if diff := cmp.Diff(want, statuses(results)); diff != "" {
		t.Fatalf("statuses mismatch (-want +got):\n%s", diff)
	}
	if results[0].Payload != "result" || results[0].Method != "textDocument/definition" {
		t.Errorf("expected definition result, got %s %s", results[0].Method, results[0].Payload)
	}
}

func TestCheck_BarePayloadWithoutMethod(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := c.CheckValue([]byte(`{"line":1,"character":2}`))
	if res.Status != StatusFailed {
		t.Errorf("expected failure, got %v", res.Status)
	}
}

func TestCheck_Ignore(t *testing.T) {
	c, err := New(Options{IgnoreMethods: []string{"textDocument/hover"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := c.CheckValue([]byte(`{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{}}`))
	if res.Status != StatusSkipped || res.Reason != "ignored" {
		t.Errorf("expected ignored skip, got %v %q", res.Status, res.Reason)
	}
}

func TestNew_UnknownForcedMethod(t *testing.T) {
	if _, err := New(Options{Method: "textDocument/nothing"}); !errors.Is(err, ErrUnknownForcedMethod) {
		t.Errorf("expected ErrUnknownForcedMethod, got %v", err)
	}
}

func TestCheck_Drift(t *testing.T) {
	c, err := New(Options{Drift: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "future" is not part of HoverParams and is lost on re-encoding.
	res := c.CheckValue([]byte(`{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a.sh"},"position":{"line":0,"character":0},"future":1}}`))
	if res.Status != StatusDrift {
		t.Fatalf("expected drift, got %v (%v)", res.Status, res.Err)
	}
	if diff := cmp.Diff([]string{"future"}, res.Drift); diff != "" {
		t.Errorf("drift mismatch (-want +got):\n%s", diff)
	}

	c, err = New(Options{Drift: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res = c.CheckValue([]byte(`{"jsonrpc":"2.0","id":1,"method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a.sh"},"position":{"line":0,"character":0},"future":1}}`))
	if res.Status != StatusOK {
		t.Errorf("expected ok without drift checking, got %v", res.Status)
	}
}

func TestDrift(t *testing.T) {
	tests := []struct {
		name string
		want string
		got  string
		diff []string
	}{
		{"equal", `{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, nil},
		{"null is absent", `{"a":1,"b":null}`, `{"a":1}`, nil},
		{"empty array is absent", `{"a":[]}`, `{}`, nil},
		{"number forms", `{"a":1.0}`, `{"a":1}`, nil},
		{"empty payload is null", ``, `null`, nil},
		{"nested change", `{"a":{"b":[{"c":1}]}}`, `{"a":{"b":[{"c":2}]}}`, []string{"a.b[0].c"}},
		{"added key", `{"a":1}`, `{"a":1,"b":true}`, []string{"b"}},
		{"array length", `[1,2]`, `[1]`, []string{"$"}},
		{"type change", `{"a":"1"}`, `{"a":1}`, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Drift([]byte(tt.want), []byte(tt.got))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.diff, got); diff != "" {
				t.Errorf("drift mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
