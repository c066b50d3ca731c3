package lsp

import (
	"encoding/json"

	"fortio.org/safecast"
)

type (
	DocumentURI string
	URI         string
)

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#position
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// NewPosition builds a position from editor offsets, rejecting values that do
// not fit a uinteger.
func NewPosition(line, character int) (Position, error) {
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		return Position{}, &EncodeError{Type: "Position", Detail: "line out of range", Err: err}
	}
	c, err := safecast.Conv[uint32](character)
	if err != nil {
		return Position{}, &EncodeError{Type: "Position", Detail: "character out of range", Err: err}
	}
	return Position{Line: l, Character: c}, nil
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Character < o.Character)
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func NewRange(startLine, startChar, endLine, endChar uint32) Range {
	return Range{
		Start: Position{
			Line:      startLine,
			Character: startChar,
		},
		End: Position{
			Line:      endLine,
			Character: endChar,
		},
	}
}

// Contains reports whether pos lies within r, end exclusive.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}

type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

type LocationLink struct {
	OriginSelectionRange *Range      `json:"originSelectionRange,omitempty"`
	TargetURI            DocumentURI `json:"targetUri"`
	TargetRange          Range       `json:"targetRange"`
	TargetSelectionRange Range       `json:"targetSelectionRange"`
}

type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// AnnotatedTextEdit is a TextEdit that refers to a change annotation.
type AnnotatedTextEdit struct {
	Range        Range  `json:"range"`
	NewText      string `json:"newText"`
	AnnotationID string `json:"annotationId"`
}

type ChangeAnnotation struct {
	Label             string  `json:"label"`
	NeedsConfirmation *bool   `json:"needsConfirmation,omitempty"`
	Description       *string `json:"description,omitempty"`
}

type Command struct {
	Title     string            `json:"title"`
	Tooltip   *string           `json:"tooltip,omitempty"`
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int32       `json:"version"`
	Text       string      `json:"text"`
}

type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

type VersionedTextDocumentIdentifier struct {
	URI     DocumentURI `json:"uri"`
	Version int32       `json:"version"`
}

// OptionalVersionedTextDocumentIdentifier carries a null version when the
// document is not open.
type OptionalVersionedTextDocumentIdentifier struct {
	URI     DocumentURI `json:"uri"`
	Version *int32      `json:"version"`
}

type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

type WorkDoneProgressParams struct {
	WorkDoneToken *ProgressToken `json:"workDoneToken,omitempty"`
}

type PartialResultParams struct {
	PartialResultToken *ProgressToken `json:"partialResultToken,omitempty"`
}

type WorkDoneProgressOptions struct {
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`
}

type TextDocumentRegistrationOptions struct {
	DocumentSelector DocumentSelector `json:"documentSelector,nullable"`
}

type StaticRegistrationOptions struct {
	ID *string `json:"id,omitempty"`
}

type MarkupKind string

const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

func (k *MarkupKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("MarkupKind", data, []MarkupKind{MarkupKindPlainText, MarkupKindMarkdown})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// MarkedStringObject is the code block form of a MarkedString.
type MarkedStringObject struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// MarkedString is string | { language, value }. Deprecated in the protocol in
// favour of MarkupContent, still sent by older servers.
type MarkedString struct {
	Value any
}

var markedStringShapes = union(
	shapeOf[string]("string"),
	shapeOf[MarkedStringObject]("MarkedStringObject"),
)

func (m *MarkedString) UnmarshalJSON(data []byte) error {
	v, err := markedStringShapes.decode("MarkedString", data)
	if err != nil {
		return err
	}
	m.Value = v
	return nil
}

func (m MarkedString) MarshalJSON() ([]byte, error) {
	return markedStringShapes.encode("MarkedString", m.Value)
}

func (m MarkedString) Plain() (string, bool) { return variant[string](m.Value) }

func (m MarkedString) Code() (MarkedStringObject, bool) {
	return variant[MarkedStringObject](m.Value)
}

// StringOrMarkupContent is used for documentation and tooltips.
type StringOrMarkupContent struct {
	Value any
}

var stringOrMarkupShapes = union(
	shapeOf[string]("string"),
	shapeOf[MarkupContent]("MarkupContent"),
)

func NewMarkdown(text string) *StringOrMarkupContent {
	return &StringOrMarkupContent{Value: MarkupContent{Kind: MarkupKindMarkdown, Value: text}}
}

func (s *StringOrMarkupContent) UnmarshalJSON(data []byte) error {
	v, err := stringOrMarkupShapes.decode("string | MarkupContent", data)
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

func (s StringOrMarkupContent) MarshalJSON() ([]byte, error) {
	return stringOrMarkupShapes.encode("string | MarkupContent", s.Value)
}

func (s StringOrMarkupContent) AsString() (string, bool) { return variant[string](s.Value) }

func (s StringOrMarkupContent) MarkupContent() (MarkupContent, bool) {
	return variant[MarkupContent](s.Value)
}

// IntegerOrString backs progress tokens, diagnostic codes and request ids.
type IntegerOrString struct {
	Value any
}

type ProgressToken = IntegerOrString

var integerOrStringShapes = union(
	shapeOf[int32]("integer"),
	shapeOf[string]("string"),
)

func NewInteger(n int32) IntegerOrString { return IntegerOrString{Value: n} }

func NewString(s string) IntegerOrString { return IntegerOrString{Value: s} }

func (v *IntegerOrString) UnmarshalJSON(data []byte) error {
	x, err := integerOrStringShapes.decode("integer | string", data)
	if err != nil {
		return err
	}
	v.Value = x
	return nil
}

func (v IntegerOrString) MarshalJSON() ([]byte, error) {
	return integerOrStringShapes.encode("integer | string", v.Value)
}

func (v IntegerOrString) Integer() (int32, bool) { return variant[int32](v.Value) }

func (v IntegerOrString) AsString() (string, bool) { return variant[string](v.Value) }
