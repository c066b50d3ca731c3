package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#serverCapabilities
type ServerCapabilities struct {
	PositionEncoding                 *PositionEncodingKind                                                       `json:"positionEncoding,omitempty"`
	TextDocumentSync                 *TextDocumentSync                                                           `json:"textDocumentSync,omitempty"`
	NotebookDocumentSync             *NotebookSyncOption                                                         `json:"notebookDocumentSync,omitempty"`
	CompletionProvider               *CompletionOptions                                                          `json:"completionProvider,omitempty"`
	HoverProvider                    *BoolOr[HoverOptions]                                                       `json:"hoverProvider,omitempty"`
	SignatureHelpProvider            *SignatureHelpOptions                                                       `json:"signatureHelpProvider,omitempty"`
	DeclarationProvider              *Provider[DeclarationOptions, DeclarationRegistrationOptions]               `json:"declarationProvider,omitempty"`
	DefinitionProvider               *BoolOr[DefinitionOptions]                                                  `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider           *Provider[TypeDefinitionOptions, TypeDefinitionRegistrationOptions]         `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider           *Provider[ImplementationOptions, ImplementationRegistrationOptions]         `json:"implementationProvider,omitempty"`
	ReferencesProvider               *BoolOr[ReferenceOptions]                                                   `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider        *BoolOr[DocumentHighlightOptions]                                           `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider           *BoolOr[DocumentSymbolOptions]                                              `json:"documentSymbolProvider,omitempty"`
	CodeActionProvider               *BoolOr[CodeActionOptions]                                                  `json:"codeActionProvider,omitempty"`
	CodeLensProvider                 *CodeLensOptions                                                            `json:"codeLensProvider,omitempty"`
	DocumentLinkProvider             *DocumentLinkOptions                                                        `json:"documentLinkProvider,omitempty"`
	ColorProvider                    *Provider[DocumentColorOptions, DocumentColorRegistrationOptions]           `json:"colorProvider,omitempty"`
	DocumentFormattingProvider       *BoolOr[DocumentFormattingOptions]                                          `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  *BoolOr[DocumentRangeFormattingOptions]                                     `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions                                            `json:"documentOnTypeFormattingProvider,omitempty"`
	RenameProvider                   *BoolOr[RenameOptions]                                                      `json:"renameProvider,omitempty"`
	FoldingRangeProvider             *Provider[FoldingRangeOptions, FoldingRangeRegistrationOptions]             `json:"foldingRangeProvider,omitempty"`
	ExecuteCommandProvider           *ExecuteCommandOptions                                                      `json:"executeCommandProvider,omitempty"`
	SelectionRangeProvider           *Provider[SelectionRangeOptions, SelectionRangeRegistrationOptions]         `json:"selectionRangeProvider,omitempty"`
	LinkedEditingRangeProvider       *Provider[LinkedEditingRangeOptions, LinkedEditingRangeRegistrationOptions] `json:"linkedEditingRangeProvider,omitempty"`
	CallHierarchyProvider            *Provider[CallHierarchyOptions, CallHierarchyRegistrationOptions]           `json:"callHierarchyProvider,omitempty"`
	SemanticTokensProvider           *SemanticTokensProvider                                                     `json:"semanticTokensProvider,omitempty"`
	MonikerProvider                  *Provider[MonikerOptions, MonikerRegistrationOptions]                       `json:"monikerProvider,omitempty"`
	TypeHierarchyProvider            *Provider[TypeHierarchyOptions, TypeHierarchyRegistrationOptions]           `json:"typeHierarchyProvider,omitempty"`
	InlineValueProvider              *Provider[InlineValueOptions, InlineValueRegistrationOptions]               `json:"inlineValueProvider,omitempty"`
	InlayHintProvider                *Provider[InlayHintOptions, InlayHintRegistrationOptions]                   `json:"inlayHintProvider,omitempty"`
	DiagnosticProvider               *DiagnosticProvider                                                         `json:"diagnosticProvider,omitempty"`
	WorkspaceSymbolProvider          *BoolOr[WorkspaceSymbolOptions]                                             `json:"workspaceSymbolProvider,omitempty"`
	Workspace                        *WorkspaceServerCapabilities                                                `json:"workspace,omitempty"`
	Experimental                     json.RawMessage                                                             `json:"experimental,omitempty"`
	proposedServerCapabilities
}

// SemanticTokensProvider is SemanticTokensOptions | SemanticTokensRegistrationOptions.
type SemanticTokensProvider struct {
	Value any
}

var semanticTokensProviderShapes = union(
	shapeOf[SemanticTokensOptions]("SemanticTokensOptions"),
	shapeOf[SemanticTokensRegistrationOptions]("SemanticTokensRegistrationOptions"),
)

func (p *SemanticTokensProvider) UnmarshalJSON(data []byte) error {
	v, err := semanticTokensProviderShapes.decode("SemanticTokensProvider", data)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p SemanticTokensProvider) MarshalJSON() ([]byte, error) {
	return semanticTokensProviderShapes.encode("SemanticTokensProvider", p.Value)
}

// Legend returns the token legend of either variant.
func (p SemanticTokensProvider) Legend() SemanticTokensLegend {
	switch v := p.Value.(type) {
	case SemanticTokensOptions:
		return v.Legend
	case SemanticTokensRegistrationOptions:
		return v.Legend
	}
	return SemanticTokensLegend{}
}

type WorkspaceServerCapabilities struct {
	WorkspaceFolders *WorkspaceFoldersServerCapabilities `json:"workspaceFolders,omitempty"`
	FileOperations   *FileOperationOptions               `json:"fileOperations,omitempty"`
	proposedWorkspaceServerCapabilities
}

type WorkspaceFoldersServerCapabilities struct {
	Supported           *bool                `json:"supported,omitempty"`
	ChangeNotifications *ChangeNotifications `json:"changeNotifications,omitempty"`
}

// ChangeNotifications is string | boolean. A string is the id under which the
// notification is registered dynamically.
type ChangeNotifications struct {
	Value any
}

var changeNotificationsShapes = union(
	shapeOf[string]("string"),
	shapeOf[bool]("boolean"),
)

func (c *ChangeNotifications) UnmarshalJSON(data []byte) error {
	v, err := changeNotificationsShapes.decode("ChangeNotifications", data)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

func (c ChangeNotifications) MarshalJSON() ([]byte, error) {
	return changeNotificationsShapes.encode("ChangeNotifications", c.Value)
}

// Enabled reports whether the server wants the notification, either
// statically (true) or through a registration id.
func (c *ChangeNotifications) Enabled() bool {
	if c == nil {
		return false
	}
	switch v := c.Value.(type) {
	case string:
		return true
	case bool:
		return v
	}
	return false
}
