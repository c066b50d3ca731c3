package lsp

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

const hoverParams = `{"textDocument":{"uri":"file:///a.sh"},"position":{"line":1,"character":2}}`

func TestLookupMethod(t *testing.T) {
	m, ok := LookupMethod("textDocument/hover")
	if !ok {
		t.Fatal("expected textDocument/hover to be known")
	}
	if m.Kind != RequestMessage {
		t.Errorf("expected request, got %v", m.Kind)
	}
	if m.Direction != ClientToServer {
		t.Errorf("expected clientToServer, got %v", m.Direction)
	}
	if !m.HasParams() {
		t.Error("expected hover to have params")
	}

	exit, ok := LookupMethod("exit")
	if !ok {
		t.Fatal("expected exit to be known")
	}
	if exit.Kind != NotificationMessage || exit.HasParams() {
		t.Errorf("expected exit to be a notification without params, got %v params=%t", exit.Kind, exit.HasParams())
	}

	if _, ok := LookupMethod("textDocument/unknown"); ok {
		t.Error("expected textDocument/unknown to be unknown")
	}
}

func TestMethods_Sorted(t *testing.T) {
	methods := Methods()
	if len(methods) != len(baseMethods)+len(proposedMethods) {
		t.Errorf("expected %d methods, got %d", len(baseMethods)+len(proposedMethods), len(methods))
	}
	if !slices.IsSortedFunc(methods, func(a, b Method) int { return strings.Compare(a.Name, b.Name) }) {
		t.Error("expected methods to be sorted by name")
	}
}

func TestDecodeParams(t *testing.T) {
	v, err := DecodeParams("textDocument/hover", []byte(hoverParams))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params, ok := v.(HoverParams)
	if !ok {
		t.Fatalf("expected HoverParams, got %T", v)
	}
	if params.Position != (Position{Line: 1, Character: 2}) {
		t.Errorf("expected position 1:2, got %+v", params.Position)
	}

	tests := []struct {
		name   string
		method string
		raw    string
		want   error
	}{
		{"unknown method", "foo/bar", `{}`, ErrUnknownMethod},
		{"missing params", "textDocument/hover", ``, ErrMissingKey},
		{"params on shutdown", "shutdown", `{}`, ErrTypeMismatch},
		{"bad position", "textDocument/hover", `{"textDocument":{"uri":"file:///a.sh"},"position":{"line":-1,"character":0}}`, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeParams(tt.method, []byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeParams_NoParams(t *testing.T) {
	for _, raw := range []string{``, `null`} {
		v, err := DecodeParams("shutdown", []byte(raw))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", raw, err)
		}
		if v != nil {
			t.Errorf("%q: expected nil, got %v", raw, v)
		}
	}

	_, err := DecodeParams("shutdown", []byte(`[]`))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if de.Type != "shutdown" {
		t.Errorf("expected type 'shutdown', got '%s'", de.Type)
	}
}

func TestDecodeResult(t *testing.T) {
	v, err := DecodeResult("textDocument/hover", []byte(`null`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil hover, got %v", v)
	}

	v, err = DecodeResult("textDocument/definition", []byte(`[{"uri":"file:///a.sh","range":{"start":{"line":0,"character":0},"end":{"line":0,"character":3}}}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := v.(LocationResult)
	if !ok {
		t.Fatalf("expected LocationResult, got %T", v)
	}
	if locs := result.Locations(); len(locs) != 1 || locs[0].URI != "file:///a.sh" {
		t.Errorf("expected one location in file:///a.sh, got %+v", locs)
	}

	tests := []struct {
		name   string
		method string
		raw    string
		want   error
	}{
		{"notification", "initialized", `{}`, ErrTypeMismatch},
		{"missing result", "textDocument/hover", ``, ErrMissingKey},
		{"non-null void", "shutdown", `{}`, ErrTypeMismatch},
		{"not nullable", "textDocument/diagnostic", `null`, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResult(tt.method, []byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
