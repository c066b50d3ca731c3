package lsp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHoverContents_Priority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{
			name:  "plain string",
			input: `"hello"`,
			want:  MarkedString{Value: "hello"},
		},
		{
			name:  "markup content",
			input: `{"kind":"markdown","value":"# Title"}`,
			want:  MarkupContent{Kind: MarkupKindMarkdown, Value: "# Title"},
		},
		{
			name:  "marked string object",
			input: `{"language":"go","value":"func main()"}`,
			want:  MarkedString{Value: MarkedStringObject{Language: "go", Value: "func main()"}},
		},
		{
			name:  "marked string array",
			input: `["a",{"language":"sh","value":"echo"}]`,
			want: []MarkedString{
				{Value: "a"},
				{Value: MarkedStringObject{Language: "sh", Value: "echo"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got HoverContents
			if err := Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Value); diff != "" {
				t.Errorf("HoverContents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHoverContents_NoMatch(t *testing.T) {
	var got HoverContents
	err := Unmarshal([]byte(`42`), &got)
	if !errors.Is(err, ErrNoMatchingCandidate) {
		t.Fatalf("expected ErrNoMatchingCandidate, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	var shapes []string
	for _, c := range de.Candidates {
		shapes = append(shapes, c.Shape)
	}
	want := []string{"MarkupContent", "MarkedString", "MarkedString[]"}
	if diff := cmp.Diff(want, shapes); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion_LenientSecondPass(t *testing.T) {
	// An unknown key rules out the exact pass but still decodes leniently.
	var got TextOrAnnotatedEdit
	input := `{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"newText":"x","future":true}`
	if err := Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.Value.(TextEdit); !ok {
		t.Errorf("expected TextEdit, got %T", got.Value)
	}

	input = `{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"newText":"x","annotationId":"a"}`
	if err := Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	edit, ok := got.Value.(AnnotatedTextEdit)
	if !ok {
		t.Fatalf("expected AnnotatedTextEdit, got %T", got.Value)
	}
	if edit.AnnotationID != "a" {
		t.Errorf("expected annotation id 'a', got '%s'", edit.AnnotationID)
	}
}

func TestUnion_EncodeRejectsForeignType(t *testing.T) {
	_, err := Marshal(HoverContents{Value: 3})
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EncodeError, got %v", err)
	}

	data, err := Marshal(HoverContents{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}
}

func TestIntegerOrString(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`7`, int32(7)},
		{`"abc"`, "abc"},
	}
	for _, tt := range tests {
		var got IntegerOrString
		if err := Unmarshal([]byte(tt.input), &got); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.input, err)
		}
		if got.Value != tt.want {
			t.Errorf("%s: expected %v (%T), got %v (%T)", tt.input, tt.want, tt.want, got.Value, got.Value)
		}
	}

	var got IntegerOrString
	if err := Unmarshal([]byte(`1.5`), &got); !errors.Is(err, ErrNoMatchingCandidate) {
		t.Errorf("expected ErrNoMatchingCandidate for 1.5, got %v", err)
	}
}

func TestBoolOr(t *testing.T) {
	var caps ServerCapabilities
	input := `{"hoverProvider":true,"definitionProvider":{"workDoneProgress":true},"referencesProvider":false}`
	if err := Unmarshal([]byte(input), &caps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !caps.HoverProvider.Enabled() {
		t.Error("expected hover provider to be enabled")
	}
	if _, ok := caps.HoverProvider.Options(); ok {
		t.Error("expected hover provider to be a plain boolean")
	}
	opts, ok := caps.DefinitionProvider.Options()
	if !ok {
		t.Fatalf("expected definition provider options, got %T", caps.DefinitionProvider.Value)
	}
	if opts.WorkDoneProgress == nil || !*opts.WorkDoneProgress {
		t.Error("expected workDoneProgress to be true")
	}
	if caps.ReferencesProvider.Enabled() {
		t.Error("expected references provider to be disabled")
	}
	if caps.RenameProvider.Enabled() {
		t.Error("expected absent rename provider to be disabled")
	}
}

func TestProvider(t *testing.T) {
	tests := []struct {
		input        string
		options      bool
		registration bool
	}{
		{`true`, false, false},
		{`{"workDoneProgress":true}`, true, false},
		{`{"documentSelector":[{"language":"go"}],"id":"decl"}`, false, true},
		{`{"documentSelector":null}`, false, true},
	}
	for _, tt := range tests {
		var got Provider[DeclarationOptions, DeclarationRegistrationOptions]
		if err := Unmarshal([]byte(tt.input), &got); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.input, err)
		}
		if !got.Enabled() {
			t.Errorf("%s: expected provider to be enabled", tt.input)
		}
		if _, ok := got.Options(); ok != tt.options {
			t.Errorf("%s: expected options %t, got %t", tt.input, tt.options, ok)
		}
		if _, ok := got.RegistrationOptions(); ok != tt.registration {
			t.Errorf("%s: expected registration options %t, got %t", tt.input, tt.registration, ok)
		}
	}
}

func TestWorkspaceSymbolResult_ElementKeys(t *testing.T) {
	input := `[{"name":"main","kind":12,"location":{"uri":"file:///main.go","range":{"start":{"line":2,"character":5},"end":{"line":2,"character":9}}},"data":{"id":7}}]`
	v, err := DecodeResult("workspace/symbol", []byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := v.(WorkspaceSymbolResult)
	if !ok {
		t.Fatalf("expected WorkspaceSymbolResult, got %T", v)
	}
	symbols, ok := result.Value.([]WorkspaceSymbol)
	if !ok {
		t.Fatalf("expected []WorkspaceSymbol, got %T", result.Value)
	}
	if len(symbols) != 1 || string(symbols[0].Data) != `{"id":7}` {
		t.Errorf("expected data to be kept, got %+v", symbols)
	}

	data, err := Marshal(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var want, got any
	if err := json.Unmarshal([]byte(input), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	v, err = DecodeResult("workspace/symbol", []byte(`[{"name":"old","kind":12,"deprecated":true,"location":{"uri":"file:///main.go","range":{"start":{"line":0,"character":0},"end":{"line":0,"character":3}}}}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(WorkspaceSymbolResult).Value.([]SymbolInformation); !ok {
		t.Errorf("expected []SymbolInformation, got %T", v.(WorkspaceSymbolResult).Value)
	}
}

func TestShape_ExactElementField(t *testing.T) {
	s := shapeOf[[]SymbolInformation]("SymbolInformation[]")
	err := s.exact([]byte(`[{"name":"a","kind":1,"location":{}},{"name":"b","kind":1,"data":1}]`))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if de.Field != "[1].data" {
		t.Errorf("expected field '[1].data', got '%s'", de.Field)
	}
	if err := shapeOf[[]MarkedString]("MarkedString[]").exact([]byte(`[{"language":"go","value":"x","extra":1}]`)); err != nil {
		t.Errorf("expected self-decoding elements to be skipped, got %v", err)
	}
}
