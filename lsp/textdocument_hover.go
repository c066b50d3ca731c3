package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_hover
type HoverParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type Hover struct {
	Contents HoverContents `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// HoverContents is MarkupContent | MarkedString | MarkedString[].
type HoverContents struct {
	Value any
}

var hoverContentsShapes = union(
	shapeOf[MarkupContent]("MarkupContent"),
	shapeOf[MarkedString]("MarkedString"),
	shapeOf[[]MarkedString]("MarkedString[]"),
)

func NewHoverMarkdown(text string) HoverContents {
	return HoverContents{Value: MarkupContent{Kind: MarkupKindMarkdown, Value: text}}
}

func (h *HoverContents) UnmarshalJSON(data []byte) error {
	v, err := hoverContentsShapes.decode("HoverContents", data)
	if err != nil {
		return err
	}
	h.Value = v
	return nil
}

func (h HoverContents) MarshalJSON() ([]byte, error) {
	return hoverContentsShapes.encode("HoverContents", h.Value)
}

func (h HoverContents) MarkupContent() (MarkupContent, bool) {
	return variant[MarkupContent](h.Value)
}

func (h HoverContents) MarkedString() (MarkedString, bool) {
	return variant[MarkedString](h.Value)
}

func (h HoverContents) MarkedStrings() ([]MarkedString, bool) {
	return variant[[]MarkedString](h.Value)
}

type HoverOptions struct {
	WorkDoneProgressOptions
}

type HoverRegistrationOptions struct {
	TextDocumentRegistrationOptions
	HoverOptions
}
