//go:build lsp_proposed

package lsp

// Proposed reports whether the 3.18 proposed features are compiled in.
const Proposed = true

type proposedServerCapabilities struct {
	InlineCompletionProvider *BoolOr[InlineCompletionOptions] `json:"inlineCompletionProvider,omitempty"`
}

type proposedWorkspaceServerCapabilities struct {
	TextDocumentContent *TextDocumentContentProvider `json:"textDocumentContent,omitempty"`
}

type proposedWorkspaceClientCapabilities struct {
	FoldingRange        *RefreshClientCapabilities `json:"foldingRange,omitempty"`
	TextDocumentContent *DynamicRegistration       `json:"textDocumentContent,omitempty"`
}

type proposedTextDocumentClientCapabilities struct {
	InlineCompletion *DynamicRegistration `json:"inlineCompletion,omitempty"`
}

type documentRangeFormattingProposed struct {
	RangesSupport *bool `json:"rangesSupport,omitempty"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.18/specification/#textDocument_rangesFormatting
type DocumentRangesFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Ranges       []Range                `json:"ranges"`
	Options      FormattingOptions      `json:"options"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.18/specification/#workspace_textDocumentContent
type TextDocumentContentParams struct {
	URI DocumentURI `json:"uri"`
}

type TextDocumentContentResult struct {
	Text string `json:"text"`
}

type TextDocumentContentRefreshParams struct {
	URI DocumentURI `json:"uri"`
}

type TextDocumentContentOptions struct {
	Schemes []string `json:"schemes"`
}

type TextDocumentContentRegistrationOptions struct {
	TextDocumentContentOptions
	StaticRegistrationOptions
}

// TextDocumentContentProvider is TextDocumentContentOptions |
// TextDocumentContentRegistrationOptions.
type TextDocumentContentProvider struct {
	Value any
}

var textDocumentContentProviderShapes = union(
	shapeOf[TextDocumentContentOptions]("TextDocumentContentOptions"),
	shapeOf[TextDocumentContentRegistrationOptions]("TextDocumentContentRegistrationOptions"),
)

func (p *TextDocumentContentProvider) UnmarshalJSON(data []byte) error {
	v, err := textDocumentContentProviderShapes.decode("TextDocumentContentProvider", data)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p TextDocumentContentProvider) MarshalJSON() ([]byte, error) {
	return textDocumentContentProviderShapes.encode("TextDocumentContentProvider", p.Value)
}

var proposedMethods = []Method{
	request("textDocument/inlineCompletion", ClientToServer, "3.18.0", decodeAs[InlineCompletionParams], nullableAs[InlineCompletionResult]),
	request("textDocument/rangesFormatting", ClientToServer, "3.18.0", decodeAs[DocumentRangesFormattingParams], nullableAs[[]TextEdit]),
	request("workspace/textDocumentContent", ClientToServer, "3.18.0", decodeAs[TextDocumentContentParams], decodeAs[TextDocumentContentResult]),
	request("workspace/textDocumentContent/refresh", ServerToClient, "3.18.0", decodeAs[TextDocumentContentRefreshParams], none),
	request("workspace/foldingRange/refresh", ServerToClient, "3.18.0", nil, none),
}
