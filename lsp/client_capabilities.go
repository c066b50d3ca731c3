package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#clientCapabilities
type ClientCapabilities struct {
	Workspace        *WorkspaceClientCapabilities        `json:"workspace,omitempty"`
	TextDocument     *TextDocumentClientCapabilities     `json:"textDocument,omitempty"`
	NotebookDocument *NotebookDocumentClientCapabilities `json:"notebookDocument,omitempty"`
	Window           *WindowClientCapabilities           `json:"window,omitempty"`
	General          *GeneralClientCapabilities          `json:"general,omitempty"`
	Experimental     json.RawMessage                     `json:"experimental,omitempty"`
}

// PositionEncodingKind is an open set.
type PositionEncodingKind string

const (
	PositionEncodingUTF8  PositionEncodingKind = "utf-8"
	PositionEncodingUTF16 PositionEncodingKind = "utf-16"
	PositionEncodingUTF32 PositionEncodingKind = "utf-32"
)

// DynamicRegistration is the capability shape shared by features whose only
// client setting is dynamic registration support.
type DynamicRegistration struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// RefreshClientCapabilities is the shape of the workspace refresh
// capabilities.
type RefreshClientCapabilities struct {
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

type (
	DidChangeConfigurationClientCapabilities   = DynamicRegistration
	ExecuteCommandClientCapabilities           = DynamicRegistration
	DeclarationClientCapabilities              = GotoClientCapabilities
	DefinitionClientCapabilities               = GotoClientCapabilities
	TypeDefinitionClientCapabilities           = GotoClientCapabilities
	ImplementationClientCapabilities           = GotoClientCapabilities
	ReferenceClientCapabilities                = DynamicRegistration
	DocumentHighlightClientCapabilities        = DynamicRegistration
	CodeLensClientCapabilities                 = DynamicRegistration
	DocumentColorClientCapabilities            = DynamicRegistration
	DocumentFormattingClientCapabilities       = DynamicRegistration
	DocumentOnTypeFormattingClientCapabilities = DynamicRegistration
	SelectionRangeClientCapabilities           = DynamicRegistration
	LinkedEditingRangeClientCapabilities       = DynamicRegistration
	CallHierarchyClientCapabilities            = DynamicRegistration
	MonikerClientCapabilities                  = DynamicRegistration
	TypeHierarchyClientCapabilities            = DynamicRegistration
	InlineValueClientCapabilities              = DynamicRegistration

	SemanticTokensWorkspaceClientCapabilities = RefreshClientCapabilities
	CodeLensWorkspaceClientCapabilities       = RefreshClientCapabilities
	InlineValueWorkspaceClientCapabilities    = RefreshClientCapabilities
	InlayHintWorkspaceClientCapabilities      = RefreshClientCapabilities
	DiagnosticWorkspaceClientCapabilities     = RefreshClientCapabilities
)

type WorkspaceClientCapabilities struct {
	ApplyEdit              *bool                                      `json:"applyEdit,omitempty"`
	WorkspaceEdit          *WorkspaceEditClientCapabilities           `json:"workspaceEdit,omitempty"`
	DidChangeConfiguration *DidChangeConfigurationClientCapabilities  `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DidChangeWatchedFilesClientCapabilities   `json:"didChangeWatchedFiles,omitempty"`
	Symbol                 *WorkspaceSymbolClientCapabilities         `json:"symbol,omitempty"`
	ExecuteCommand         *ExecuteCommandClientCapabilities          `json:"executeCommand,omitempty"`
	WorkspaceFolders       *bool                                      `json:"workspaceFolders,omitempty"`
	Configuration          *bool                                      `json:"configuration,omitempty"`
	SemanticTokens         *SemanticTokensWorkspaceClientCapabilities `json:"semanticTokens,omitempty"`
	CodeLens               *CodeLensWorkspaceClientCapabilities       `json:"codeLens,omitempty"`
	FileOperations         *FileOperationClientCapabilities           `json:"fileOperations,omitempty"`
	InlineValue            *InlineValueWorkspaceClientCapabilities    `json:"inlineValue,omitempty"`
	InlayHint              *InlayHintWorkspaceClientCapabilities      `json:"inlayHint,omitempty"`
	Diagnostics            *DiagnosticWorkspaceClientCapabilities     `json:"diagnostics,omitempty"`
	proposedWorkspaceClientCapabilities
}

type ChangeAnnotationSupport struct {
	GroupsOnLabel *bool `json:"groupsOnLabel,omitempty"`
}

type WorkspaceEditClientCapabilities struct {
	DocumentChanges         *bool                    `json:"documentChanges,omitempty"`
	ResourceOperations      []ResourceOperationKind  `json:"resourceOperations,omitempty"`
	FailureHandling         *FailureHandlingKind     `json:"failureHandling,omitempty"`
	NormalizesLineEndings   *bool                    `json:"normalizesLineEndings,omitempty"`
	ChangeAnnotationSupport *ChangeAnnotationSupport `json:"changeAnnotationSupport,omitempty"`
}

type DidChangeWatchedFilesClientCapabilities struct {
	DynamicRegistration    *bool `json:"dynamicRegistration,omitempty"`
	RelativePatternSupport *bool `json:"relativePatternSupport,omitempty"`
}

type SymbolKindSet struct {
	ValueSet []SymbolKind `json:"valueSet,omitempty"`
}

type SymbolTagSet struct {
	ValueSet []SymbolTag `json:"valueSet"`
}

type ResolveSupport struct {
	Properties []string `json:"properties"`
}

type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration *bool           `json:"dynamicRegistration,omitempty"`
	SymbolKind          *SymbolKindSet  `json:"symbolKind,omitempty"`
	TagSupport          *SymbolTagSet   `json:"tagSupport,omitempty"`
	ResolveSupport      *ResolveSupport `json:"resolveSupport,omitempty"`
}

type FileOperationClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	DidCreate           *bool `json:"didCreate,omitempty"`
	WillCreate          *bool `json:"willCreate,omitempty"`
	DidRename           *bool `json:"didRename,omitempty"`
	WillRename          *bool `json:"willRename,omitempty"`
	DidDelete           *bool `json:"didDelete,omitempty"`
	WillDelete          *bool `json:"willDelete,omitempty"`
}

type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSyncClientCapabilities         `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities               `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities                    `json:"hover,omitempty"`
	SignatureHelp      *SignatureHelpClientCapabilities            `json:"signatureHelp,omitempty"`
	Declaration        *DeclarationClientCapabilities              `json:"declaration,omitempty"`
	Definition         *DefinitionClientCapabilities               `json:"definition,omitempty"`
	TypeDefinition     *TypeDefinitionClientCapabilities           `json:"typeDefinition,omitempty"`
	Implementation     *ImplementationClientCapabilities           `json:"implementation,omitempty"`
	References         *ReferenceClientCapabilities                `json:"references,omitempty"`
	DocumentHighlight  *DocumentHighlightClientCapabilities        `json:"documentHighlight,omitempty"`
	DocumentSymbol     *DocumentSymbolClientCapabilities           `json:"documentSymbol,omitempty"`
	CodeAction         *CodeActionClientCapabilities               `json:"codeAction,omitempty"`
	CodeLens           *CodeLensClientCapabilities                 `json:"codeLens,omitempty"`
	DocumentLink       *DocumentLinkClientCapabilities             `json:"documentLink,omitempty"`
	ColorProvider      *DocumentColorClientCapabilities            `json:"colorProvider,omitempty"`
	Formatting         *DocumentFormattingClientCapabilities       `json:"formatting,omitempty"`
	RangeFormatting    *DocumentRangeFormattingClientCapabilities  `json:"rangeFormatting,omitempty"`
	OnTypeFormatting   *DocumentOnTypeFormattingClientCapabilities `json:"onTypeFormatting,omitempty"`
	Rename             *RenameClientCapabilities                   `json:"rename,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities       `json:"publishDiagnostics,omitempty"`
	FoldingRange       *FoldingRangeClientCapabilities             `json:"foldingRange,omitempty"`
	SelectionRange     *SelectionRangeClientCapabilities           `json:"selectionRange,omitempty"`
	LinkedEditingRange *LinkedEditingRangeClientCapabilities       `json:"linkedEditingRange,omitempty"`
	CallHierarchy      *CallHierarchyClientCapabilities            `json:"callHierarchy,omitempty"`
	SemanticTokens     *SemanticTokensClientCapabilities           `json:"semanticTokens,omitempty"`
	Moniker            *MonikerClientCapabilities                  `json:"moniker,omitempty"`
	TypeHierarchy      *TypeHierarchyClientCapabilities            `json:"typeHierarchy,omitempty"`
	InlineValue        *InlineValueClientCapabilities              `json:"inlineValue,omitempty"`
	InlayHint          *InlayHintClientCapabilities                `json:"inlayHint,omitempty"`
	Diagnostic         *DiagnosticClientCapabilities               `json:"diagnostic,omitempty"`
	proposedTextDocumentClientCapabilities
}

type TextDocumentSyncClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	WillSave            *bool `json:"willSave,omitempty"`
	WillSaveWaitUntil   *bool `json:"willSaveWaitUntil,omitempty"`
	DidSave             *bool `json:"didSave,omitempty"`
}

type CompletionItemTagSet struct {
	ValueSet []CompletionItemTag `json:"valueSet"`
}

type InsertTextModeSet struct {
	ValueSet []InsertTextMode `json:"valueSet"`
}

type CompletionItemClientCapabilities struct {
	SnippetSupport          *bool                 `json:"snippetSupport,omitempty"`
	CommitCharactersSupport *bool                 `json:"commitCharactersSupport,omitempty"`
	DocumentationFormat     []MarkupKind          `json:"documentationFormat,omitempty"`
	DeprecatedSupport       *bool                 `json:"deprecatedSupport,omitempty"`
	PreselectSupport        *bool                 `json:"preselectSupport,omitempty"`
	TagSupport              *CompletionItemTagSet `json:"tagSupport,omitempty"`
	InsertReplaceSupport    *bool                 `json:"insertReplaceSupport,omitempty"`
	ResolveSupport          *ResolveSupport       `json:"resolveSupport,omitempty"`
	InsertTextModeSupport   *InsertTextModeSet    `json:"insertTextModeSupport,omitempty"`
	LabelDetailsSupport     *bool                 `json:"labelDetailsSupport,omitempty"`
}

type CompletionItemKindSet struct {
	ValueSet []CompletionItemKind `json:"valueSet,omitempty"`
}

type CompletionListClientCapabilities struct {
	ItemDefaults []string `json:"itemDefaults,omitempty"`
}

type CompletionClientCapabilities struct {
	DynamicRegistration *bool                             `json:"dynamicRegistration,omitempty"`
	CompletionItem      *CompletionItemClientCapabilities `json:"completionItem,omitempty"`
	CompletionItemKind  *CompletionItemKindSet            `json:"completionItemKind,omitempty"`
	InsertTextMode      *InsertTextMode                   `json:"insertTextMode,omitempty"`
	ContextSupport      *bool                             `json:"contextSupport,omitempty"`
	CompletionList      *CompletionListClientCapabilities `json:"completionList,omitempty"`
}

type HoverClientCapabilities struct {
	DynamicRegistration *bool        `json:"dynamicRegistration,omitempty"`
	ContentFormat       []MarkupKind `json:"contentFormat,omitempty"`
}

type ParameterInformationClientCapabilities struct {
	LabelOffsetSupport *bool `json:"labelOffsetSupport,omitempty"`
}

type SignatureInformationClientCapabilities struct {
	DocumentationFormat    []MarkupKind                            `json:"documentationFormat,omitempty"`
	ParameterInformation   *ParameterInformationClientCapabilities `json:"parameterInformation,omitempty"`
	ActiveParameterSupport *bool                                   `json:"activeParameterSupport,omitempty"`
}

type SignatureHelpClientCapabilities struct {
	DynamicRegistration  *bool                                   `json:"dynamicRegistration,omitempty"`
	SignatureInformation *SignatureInformationClientCapabilities `json:"signatureInformation,omitempty"`
	ContextSupport       *bool                                   `json:"contextSupport,omitempty"`
}

// GotoClientCapabilities is shared by declaration, definition, type
// definition and implementation.
type GotoClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	LinkSupport         *bool `json:"linkSupport,omitempty"`
}

type DocumentSymbolClientCapabilities struct {
	DynamicRegistration               *bool          `json:"dynamicRegistration,omitempty"`
	SymbolKind                        *SymbolKindSet `json:"symbolKind,omitempty"`
	HierarchicalDocumentSymbolSupport *bool          `json:"hierarchicalDocumentSymbolSupport,omitempty"`
	TagSupport                        *SymbolTagSet  `json:"tagSupport,omitempty"`
	LabelSupport                      *bool          `json:"labelSupport,omitempty"`
}

type CodeActionKindSet struct {
	ValueSet []CodeActionKind `json:"valueSet"`
}

type CodeActionLiteralSupport struct {
	CodeActionKind CodeActionKindSet `json:"codeActionKind"`
}

type CodeActionClientCapabilities struct {
	DynamicRegistration      *bool                     `json:"dynamicRegistration,omitempty"`
	CodeActionLiteralSupport *CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`
	IsPreferredSupport       *bool                     `json:"isPreferredSupport,omitempty"`
	DisabledSupport          *bool                     `json:"disabledSupport,omitempty"`
	DataSupport              *bool                     `json:"dataSupport,omitempty"`
	ResolveSupport           *ResolveSupport           `json:"resolveSupport,omitempty"`
	HonorsChangeAnnotations  *bool                     `json:"honorsChangeAnnotations,omitempty"`
}

type DocumentLinkClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	TooltipSupport      *bool `json:"tooltipSupport,omitempty"`
}

type DocumentRangeFormattingClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	documentRangeFormattingProposed
}

type RenameClientCapabilities struct {
	DynamicRegistration           *bool                          `json:"dynamicRegistration,omitempty"`
	PrepareSupport                *bool                          `json:"prepareSupport,omitempty"`
	PrepareSupportDefaultBehavior *PrepareSupportDefaultBehavior `json:"prepareSupportDefaultBehavior,omitempty"`
	HonorsChangeAnnotations       *bool                          `json:"honorsChangeAnnotations,omitempty"`
}

type DiagnosticTagSet struct {
	ValueSet []DiagnosticTag `json:"valueSet"`
}

type PublishDiagnosticsClientCapabilities struct {
	RelatedInformation     *bool             `json:"relatedInformation,omitempty"`
	TagSupport             *DiagnosticTagSet `json:"tagSupport,omitempty"`
	VersionSupport         *bool             `json:"versionSupport,omitempty"`
	CodeDescriptionSupport *bool             `json:"codeDescriptionSupport,omitempty"`
	DataSupport            *bool             `json:"dataSupport,omitempty"`
}

type FoldingRangeKindSet struct {
	ValueSet []FoldingRangeKind `json:"valueSet,omitempty"`
}

type FoldingRangeItemClientCapabilities struct {
	CollapsedText *bool `json:"collapsedText,omitempty"`
}

type FoldingRangeClientCapabilities struct {
	DynamicRegistration *bool                               `json:"dynamicRegistration,omitempty"`
	RangeLimit          *uint32                             `json:"rangeLimit,omitempty"`
	LineFoldingOnly     *bool                               `json:"lineFoldingOnly,omitempty"`
	FoldingRangeKind    *FoldingRangeKindSet                `json:"foldingRangeKind,omitempty"`
	FoldingRange        *FoldingRangeItemClientCapabilities `json:"foldingRange,omitempty"`
}

type SemanticTokensRequests struct {
	Range *SemanticTokensRangeOption `json:"range,omitempty"`
	Full  *SemanticTokensFullOption  `json:"full,omitempty"`
}

type SemanticTokensClientCapabilities struct {
	DynamicRegistration     *bool                  `json:"dynamicRegistration,omitempty"`
	Requests                SemanticTokensRequests `json:"requests"`
	TokenTypes              []string               `json:"tokenTypes"`
	TokenModifiers          []string               `json:"tokenModifiers"`
	Formats                 []TokenFormat          `json:"formats"`
	OverlappingTokenSupport *bool                  `json:"overlappingTokenSupport,omitempty"`
	MultilineTokenSupport   *bool                  `json:"multilineTokenSupport,omitempty"`
	ServerCancelSupport     *bool                  `json:"serverCancelSupport,omitempty"`
	AugmentsSyntaxTokens    *bool                  `json:"augmentsSyntaxTokens,omitempty"`
}

type InlayHintClientCapabilities struct {
	DynamicRegistration *bool           `json:"dynamicRegistration,omitempty"`
	ResolveSupport      *ResolveSupport `json:"resolveSupport,omitempty"`
}

type DiagnosticClientCapabilities struct {
	DynamicRegistration    *bool `json:"dynamicRegistration,omitempty"`
	RelatedDocumentSupport *bool `json:"relatedDocumentSupport,omitempty"`
}

type NotebookDocumentSyncClientCapabilities struct {
	DynamicRegistration     *bool `json:"dynamicRegistration,omitempty"`
	ExecutionSummarySupport *bool `json:"executionSummarySupport,omitempty"`
}

type NotebookDocumentClientCapabilities struct {
	Synchronization NotebookDocumentSyncClientCapabilities `json:"synchronization"`
}

type MessageActionItemClientCapabilities struct {
	AdditionalPropertiesSupport *bool `json:"additionalPropertiesSupport,omitempty"`
}

type ShowMessageRequestClientCapabilities struct {
	MessageActionItem *MessageActionItemClientCapabilities `json:"messageActionItem,omitempty"`
}

type ShowDocumentClientCapabilities struct {
	Support bool `json:"support"`
}

type WindowClientCapabilities struct {
	WorkDoneProgress *bool                                 `json:"workDoneProgress,omitempty"`
	ShowMessage      *ShowMessageRequestClientCapabilities `json:"showMessage,omitempty"`
	ShowDocument     *ShowDocumentClientCapabilities       `json:"showDocument,omitempty"`
}

type StaleRequestSupport struct {
	Cancel                 bool     `json:"cancel"`
	RetryOnContentModified []string `json:"retryOnContentModified"`
}

type RegularExpressionsClientCapabilities struct {
	Engine  string  `json:"engine"`
	Version *string `json:"version,omitempty"`
}

type MarkdownClientCapabilities struct {
	Parser      string   `json:"parser"`
	Version     *string  `json:"version,omitempty"`
	AllowedTags []string `json:"allowedTags,omitempty"`
}

type GeneralClientCapabilities struct {
	StaleRequestSupport *StaleRequestSupport                  `json:"staleRequestSupport,omitempty"`
	RegularExpressions  *RegularExpressionsClientCapabilities `json:"regularExpressions,omitempty"`
	Markdown            *MarkdownClientCapabilities           `json:"markdown,omitempty"`
	PositionEncodings   []PositionEncodingKind                `json:"positionEncodings,omitempty"`
}
