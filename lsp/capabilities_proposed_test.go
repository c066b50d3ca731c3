//go:build lsp_proposed

package lsp

import (
	"errors"
	"testing"
)

func TestProposed_InlineCompletion(t *testing.T) {
	m, ok := LookupMethod("textDocument/inlineCompletion")
	if !ok {
		t.Fatal("expected textDocument/inlineCompletion to be known")
	}
	if m.Since != "3.18.0" {
		t.Errorf("expected since 3.18.0, got %s", m.Since)
	}

	v, err := DecodeResult("textDocument/inlineCompletion", []byte(`[{"insertText":"echo"},{"insertText":{"kind":"snippet","value":"echo ${1}"}}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := v.(InlineCompletionResult)
	if !ok {
		t.Fatalf("expected InlineCompletionResult, got %T", v)
	}
	items := result.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if _, ok := items[1].InsertText.Value.(StringValue); !ok {
		t.Errorf("expected snippet insert text, got %T", items[1].InsertText.Value)
	}
}

func TestProposed_Capabilities(t *testing.T) {
	var caps ServerCapabilities
	input := `{"inlineCompletionProvider":true,"documentRangeFormattingProvider":{"rangesSupport":true}}`
	if err := Unmarshal([]byte(input), &caps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caps.InlineCompletionProvider.Enabled() {
		t.Error("expected inline completion provider")
	}
	opts, ok := caps.DocumentRangeFormattingProvider.Options()
	if !ok || opts.RangesSupport == nil || !*opts.RangesSupport {
		t.Errorf("expected rangesSupport, got %+v", caps.DocumentRangeFormattingProvider.Value)
	}
}

func TestProposed_RangesFormatting(t *testing.T) {
	_, err := DecodeParams("textDocument/rangesFormatting", []byte(`{"textDocument":{"uri":"file:///a.sh"},"options":{"tabSize":2,"insertSpaces":true}}`))
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey without ranges, got %v", err)
	}
}
