package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_inlayHint
type InlayHintParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

type InlayHintKind uint32

const (
	InlayHintType InlayHintKind = iota + 1
	InlayHintParameter
)

var inlayHintKindNames = map[InlayHintKind]string{
	InlayHintType:      "Type",
	InlayHintParameter: "Parameter",
}

func (k InlayHintKind) String() string {
	return enumString("InlayHintKind", k, inlayHintKindNames)
}

func (k *InlayHintKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("InlayHintKind", data, inlayHintKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type InlayHintLabelPart struct {
	Value    string                 `json:"value"`
	Tooltip  *StringOrMarkupContent `json:"tooltip,omitempty"`
	Location *Location              `json:"location,omitempty"`
	Command  *Command               `json:"command,omitempty"`
}

// InlayHintLabel is string | InlayHintLabelPart[].
type InlayHintLabel struct {
	Value any
}

var inlayHintLabelShapes = union(
	shapeOf[string]("string"),
	shapeOf[[]InlayHintLabelPart]("InlayHintLabelPart[]"),
)

func NewInlayHintLabel(s string) InlayHintLabel { return InlayHintLabel{Value: s} }

func (l *InlayHintLabel) UnmarshalJSON(data []byte) error {
	v, err := inlayHintLabelShapes.decode("InlayHintLabel", data)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

func (l InlayHintLabel) MarshalJSON() ([]byte, error) {
	return inlayHintLabelShapes.encode("InlayHintLabel", l.Value)
}

// Text concatenates the label parts.
func (l InlayHintLabel) Text() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case []InlayHintLabelPart:
		var s string
		for _, p := range v {
			s += p.Value
		}
		return s
	}
	return ""
}

type InlayHint struct {
	Position     Position               `json:"position"`
	Label        InlayHintLabel         `json:"label"`
	Kind         *InlayHintKind         `json:"kind,omitempty"`
	TextEdits    []TextEdit             `json:"textEdits,omitempty"`
	Tooltip      *StringOrMarkupContent `json:"tooltip,omitempty"`
	PaddingLeft  *bool                  `json:"paddingLeft,omitempty"`
	PaddingRight *bool                  `json:"paddingRight,omitempty"`
	Data         json.RawMessage        `json:"data,omitempty"`
}

type InlayHintOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type InlayHintRegistrationOptions struct {
	InlayHintOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_inlineValue
type InlineValueParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      InlineValueContext     `json:"context"`
}

type InlineValueContext struct {
	FrameID         int32 `json:"frameId"`
	StoppedLocation Range `json:"stoppedLocation"`
}

type InlineValueText struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

type InlineValueVariableLookup struct {
	Range               Range   `json:"range"`
	VariableName        *string `json:"variableName,omitempty"`
	CaseSensitiveLookup bool    `json:"caseSensitiveLookup"`
}

type InlineValueEvaluatableExpression struct {
	Range      Range   `json:"range"`
	Expression *string `json:"expression,omitempty"`
}

// InlineValue is InlineValueText | InlineValueVariableLookup |
// InlineValueEvaluatableExpression.
type InlineValue struct {
	Value any
}

var inlineValueShapes = union(
	shapeOf[InlineValueText]("InlineValueText"),
	shapeOf[InlineValueVariableLookup]("InlineValueVariableLookup"),
	shapeOf[InlineValueEvaluatableExpression]("InlineValueEvaluatableExpression"),
)

func (v *InlineValue) UnmarshalJSON(data []byte) error {
	val, err := inlineValueShapes.decode("InlineValue", data)
	if err != nil {
		return err
	}
	v.Value = val
	return nil
}

func (v InlineValue) MarshalJSON() ([]byte, error) {
	return inlineValueShapes.encode("InlineValue", v.Value)
}

type InlineValueOptions struct {
	WorkDoneProgressOptions
}

type InlineValueRegistrationOptions struct {
	InlineValueOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}
