package lsp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormattingOptions_Extra(t *testing.T) {
	input := `{"tabSize":4,"insertSpaces":true,"trimFinalNewlines":false,"shfmt.binaryNextLine":true,"shfmt.indent":2}`
	var opts FormattingOptions
	if err := Unmarshal([]byte(input), &opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.TabSize != 4 || !opts.InsertSpaces {
		t.Errorf("expected tabSize 4 with spaces, got %+v", opts)
	}
	if opts.TrimFinalNewlines == nil || *opts.TrimFinalNewlines {
		t.Errorf("expected trimFinalNewlines false, got %v", opts.TrimFinalNewlines)
	}
	want := map[string]json.RawMessage{
		"shfmt.binaryNextLine": json.RawMessage(`true`),
		"shfmt.indent":         json.RawMessage(`2`),
	}
	if diff := cmp.Diff(want, opts.Extra); diff != "" {
		t.Errorf("extra mismatch (-want +got):\n%s", diff)
	}

	data, err := Marshal(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var roundTrip FormattingOptions
	if err := Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(opts, roundTrip); diff != "" {
		t.Errorf("re-encoded options differ (-want +got):\n%s", diff)
	}
}

func TestFormattingOptions_Invalid(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`{"insertSpaces":true}`, ErrMissingKey},
		{`{"tabSize":4,"insertSpaces":true,"custom":{"a":1}}`, ErrTypeMismatch},
		{`{"tabSize":4,"insertSpaces":true,"custom":null}`, ErrTypeMismatch},
		{`{"tabSize":"4","insertSpaces":true}`, ErrTypeMismatch},
	}
	for _, tt := range tests {
		var opts FormattingOptions
		if err := Unmarshal([]byte(tt.input), &opts); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.input, tt.want, err)
		}
	}
}
