package lsp

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

type Direction int

const (
	ClientToServer Direction = iota + 1
	ServerToClient
	Both
)

func (d Direction) String() string {
	switch d {
	case ClientToServer:
		return "clientToServer"
	case ServerToClient:
		return "serverToClient"
	case Both:
		return "both"
	}
	return "unknown"
}

type decoder func(data []byte) (any, error)

// Method describes one LSP method and the payload types it carries.
type Method struct {
	Name      string
	Kind      MessageKind
	Direction Direction
	Since     string

	params decoder
	result decoder
}

func decodeAs[T any](data []byte) (any, error) {
	var v T
	if err := Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// nullableAs decodes T | null; null yields a nil value.
func nullableAs[T any](data []byte) (any, error) {
	if isNull(data) {
		return nil, nil
	}
	return decodeAs[T](data)
}

// none accepts only an absent or null payload.
func none(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 || isNull(data) {
		return nil, nil
	}
	return nil, mismatch("void", "", jsonKind(data)+" given where no payload is defined")
}

// request and notification build table entries. A nil params decoder means
// the method defines no params.
func request(name string, dir Direction, since string, params, result decoder) Method {
	return Method{Name: name, Kind: RequestMessage, Direction: dir, Since: since, params: params, result: result}
}

func notification(name string, dir Direction, since string, params decoder) Method {
	return Method{Name: name, Kind: NotificationMessage, Direction: dir, Since: since, params: params}
}

var baseMethods = []Method{
	// Lifecycle
	request("initialize", ClientToServer, "3.0", decodeAs[InitializeParams], decodeAs[InitializeResult]),
	notification("initialized", ClientToServer, "3.0", decodeAs[InitializedParams]),
	request("shutdown", ClientToServer, "3.0", nil, none),
	notification("exit", ClientToServer, "3.0", nil),
	notification("$/setTrace", ClientToServer, "3.16.0", decodeAs[SetTraceParams]),
	notification("$/logTrace", ServerToClient, "3.16.0", decodeAs[LogTraceParams]),
	notification("$/cancelRequest", Both, "3.0", decodeAs[CancelParams]),
	notification("$/progress", Both, "3.15.0", decodeAs[ProgressParams]),
	request("client/registerCapability", ServerToClient, "3.0", decodeAs[RegistrationParams], none),
	request("client/unregisterCapability", ServerToClient, "3.0", decodeAs[UnregistrationParams], none),

	// Document synchronization
	notification("textDocument/didOpen", ClientToServer, "3.0", decodeAs[DidOpenTextDocumentParams]),
	notification("textDocument/didChange", ClientToServer, "3.0", decodeAs[DidChangeTextDocumentParams]),
	notification("textDocument/willSave", ClientToServer, "3.0", decodeAs[WillSaveTextDocumentParams]),
	request("textDocument/willSaveWaitUntil", ClientToServer, "3.0", decodeAs[WillSaveTextDocumentParams], nullableAs[[]TextEdit]),
	notification("textDocument/didSave", ClientToServer, "3.0", decodeAs[DidSaveTextDocumentParams]),
	notification("textDocument/didClose", ClientToServer, "3.0", decodeAs[DidCloseTextDocumentParams]),
	notification("notebookDocument/didOpen", ClientToServer, "3.17.0", decodeAs[DidOpenNotebookDocumentParams]),
	notification("notebookDocument/didChange", ClientToServer, "3.17.0", decodeAs[DidChangeNotebookDocumentParams]),
	notification("notebookDocument/didSave", ClientToServer, "3.17.0", decodeAs[DidSaveNotebookDocumentParams]),
	notification("notebookDocument/didClose", ClientToServer, "3.17.0", decodeAs[DidCloseNotebookDocumentParams]),

	// Language features
	request("textDocument/declaration", ClientToServer, "3.14.0", decodeAs[DeclarationParams], nullableAs[LocationResult]),
	request("textDocument/definition", ClientToServer, "3.0", decodeAs[DefinitionParams], nullableAs[LocationResult]),
	request("textDocument/typeDefinition", ClientToServer, "3.6.0", decodeAs[TypeDefinitionParams], nullableAs[LocationResult]),
	request("textDocument/implementation", ClientToServer, "3.6.0", decodeAs[ImplementationParams], nullableAs[LocationResult]),
	request("textDocument/references", ClientToServer, "3.0", decodeAs[ReferenceParams], nullableAs[[]Location]),
	request("textDocument/prepareCallHierarchy", ClientToServer, "3.16.0", decodeAs[CallHierarchyPrepareParams], nullableAs[[]CallHierarchyItem]),
	request("callHierarchy/incomingCalls", ClientToServer, "3.16.0", decodeAs[CallHierarchyIncomingCallsParams], nullableAs[[]CallHierarchyIncomingCall]),
	request("callHierarchy/outgoingCalls", ClientToServer, "3.16.0", decodeAs[CallHierarchyOutgoingCallsParams], nullableAs[[]CallHierarchyOutgoingCall]),
	request("textDocument/prepareTypeHierarchy", ClientToServer, "3.17.0", decodeAs[TypeHierarchyPrepareParams], nullableAs[[]TypeHierarchyItem]),
	request("typeHierarchy/supertypes", ClientToServer, "3.17.0", decodeAs[TypeHierarchySupertypesParams], nullableAs[[]TypeHierarchyItem]),
	request("typeHierarchy/subtypes", ClientToServer, "3.17.0", decodeAs[TypeHierarchySubtypesParams], nullableAs[[]TypeHierarchyItem]),
	request("textDocument/documentHighlight", ClientToServer, "3.0", decodeAs[DocumentHighlightParams], nullableAs[[]DocumentHighlight]),
	request("textDocument/documentLink", ClientToServer, "3.0", decodeAs[DocumentLinkParams], nullableAs[[]DocumentLink]),
	request("documentLink/resolve", ClientToServer, "3.0", decodeAs[DocumentLink], decodeAs[DocumentLink]),
	request("textDocument/hover", ClientToServer, "3.0", decodeAs[HoverParams], nullableAs[Hover]),
	request("textDocument/codeLens", ClientToServer, "3.0", decodeAs[CodeLensParams], nullableAs[[]CodeLens]),
	request("codeLens/resolve", ClientToServer, "3.0", decodeAs[CodeLens], decodeAs[CodeLens]),
	request("workspace/codeLens/refresh", ServerToClient, "3.16.0", nil, none),
	request("textDocument/foldingRange", ClientToServer, "3.10.0", decodeAs[FoldingRangeParams], nullableAs[[]FoldingRange]),
	request("textDocument/selectionRange", ClientToServer, "3.15.0", decodeAs[SelectionRangeParams], nullableAs[[]SelectionRange]),
	request("textDocument/documentSymbol", ClientToServer, "3.0", decodeAs[DocumentSymbolParams], nullableAs[DocumentSymbolResult]),
	request("textDocument/semanticTokens/full", ClientToServer, "3.16.0", decodeAs[SemanticTokensParams], nullableAs[SemanticTokens]),
	request("textDocument/semanticTokens/full/delta", ClientToServer, "3.16.0", decodeAs[SemanticTokensDeltaParams], nullableAs[SemanticTokensDeltaResult]),
	request("textDocument/semanticTokens/range", ClientToServer, "3.16.0", decodeAs[SemanticTokensRangeParams], nullableAs[SemanticTokens]),
	request("workspace/semanticTokens/refresh", ServerToClient, "3.16.0", nil, none),
	request("textDocument/inlayHint", ClientToServer, "3.17.0", decodeAs[InlayHintParams], nullableAs[[]InlayHint]),
	request("inlayHint/resolve", ClientToServer, "3.17.0", decodeAs[InlayHint], decodeAs[InlayHint]),
	request("workspace/inlayHint/refresh", ServerToClient, "3.17.0", nil, none),
	request("textDocument/inlineValue", ClientToServer, "3.17.0", decodeAs[InlineValueParams], nullableAs[[]InlineValue]),
	request("workspace/inlineValue/refresh", ServerToClient, "3.17.0", nil, none),
	request("textDocument/moniker", ClientToServer, "3.16.0", decodeAs[MonikerParams], nullableAs[[]Moniker]),
	request("textDocument/completion", ClientToServer, "3.0", decodeAs[CompletionParams], nullableAs[CompletionResult]),
	request("completionItem/resolve", ClientToServer, "3.0", decodeAs[CompletionItem], decodeAs[CompletionItem]),
	notification("textDocument/publishDiagnostics", ServerToClient, "3.0", decodeAs[PublishDiagnosticsParams]),
	request("textDocument/diagnostic", ClientToServer, "3.17.0", decodeAs[DocumentDiagnosticParams], decodeAs[DocumentDiagnosticReport]),
	request("workspace/diagnostic", ClientToServer, "3.17.0", decodeAs[WorkspaceDiagnosticParams], decodeAs[WorkspaceDiagnosticReport]),
	request("workspace/diagnostic/refresh", ServerToClient, "3.17.0", nil, none),
	request("textDocument/signatureHelp", ClientToServer, "3.0", decodeAs[SignatureHelpParams], nullableAs[SignatureHelp]),
	request("textDocument/codeAction", ClientToServer, "3.0", decodeAs[CodeActionParams], nullableAs[[]CommandOrCodeAction]),
	request("codeAction/resolve", ClientToServer, "3.16.0", decodeAs[CodeAction], decodeAs[CodeAction]),
	request("textDocument/documentColor", ClientToServer, "3.6.0", decodeAs[DocumentColorParams], decodeAs[[]ColorInformation]),
	request("textDocument/colorPresentation", ClientToServer, "3.6.0", decodeAs[ColorPresentationParams], decodeAs[[]ColorPresentation]),
	request("textDocument/formatting", ClientToServer, "3.0", decodeAs[DocumentFormattingParams], nullableAs[[]TextEdit]),
	request("textDocument/rangeFormatting", ClientToServer, "3.0", decodeAs[DocumentRangeFormattingParams], nullableAs[[]TextEdit]),
	request("textDocument/onTypeFormatting", ClientToServer, "3.0", decodeAs[DocumentOnTypeFormattingParams], nullableAs[[]TextEdit]),
	request("textDocument/rename", ClientToServer, "3.0", decodeAs[RenameParams], nullableAs[WorkspaceEdit]),
	request("textDocument/prepareRename", ClientToServer, "3.12.0", decodeAs[PrepareRenameParams], nullableAs[PrepareRenameResult]),
	request("textDocument/linkedEditingRange", ClientToServer, "3.16.0", decodeAs[LinkedEditingRangeParams], nullableAs[LinkedEditingRanges]),

	// Workspace features
	request("workspace/symbol", ClientToServer, "3.0", decodeAs[WorkspaceSymbolParams], nullableAs[WorkspaceSymbolResult]),
	request("workspaceSymbol/resolve", ClientToServer, "3.17.0", decodeAs[WorkspaceSymbol], decodeAs[WorkspaceSymbol]),
	request("workspace/configuration", ServerToClient, "3.6.0", decodeAs[ConfigurationParams], decodeAs[[]json.RawMessage]),
	notification("workspace/didChangeConfiguration", ClientToServer, "3.0", decodeAs[DidChangeConfigurationParams]),
	request("workspace/workspaceFolders", ServerToClient, "3.6.0", nil, nullableAs[[]WorkspaceFolder]),
	notification("workspace/didChangeWorkspaceFolders", ClientToServer, "3.6.0", decodeAs[DidChangeWorkspaceFoldersParams]),
	request("workspace/willCreateFiles", ClientToServer, "3.16.0", decodeAs[CreateFilesParams], nullableAs[WorkspaceEdit]),
	notification("workspace/didCreateFiles", ClientToServer, "3.16.0", decodeAs[CreateFilesParams]),
	request("workspace/willRenameFiles", ClientToServer, "3.16.0", decodeAs[RenameFilesParams], nullableAs[WorkspaceEdit]),
	notification("workspace/didRenameFiles", ClientToServer, "3.16.0", decodeAs[RenameFilesParams]),
	request("workspace/willDeleteFiles", ClientToServer, "3.16.0", decodeAs[DeleteFilesParams], nullableAs[WorkspaceEdit]),
	notification("workspace/didDeleteFiles", ClientToServer, "3.16.0", decodeAs[DeleteFilesParams]),
	notification("workspace/didChangeWatchedFiles", ClientToServer, "3.0", decodeAs[DidChangeWatchedFilesParams]),
	request("workspace/executeCommand", ClientToServer, "3.0", decodeAs[ExecuteCommandParams], decodeAs[json.RawMessage]),
	request("workspace/applyEdit", ServerToClient, "3.0", decodeAs[ApplyWorkspaceEditParams], decodeAs[ApplyWorkspaceEditResult]),

	// Window features
	notification("window/showMessage", ServerToClient, "3.0", decodeAs[ShowMessageParams]),
	request("window/showMessageRequest", ServerToClient, "3.0", decodeAs[ShowMessageRequestParams], nullableAs[MessageActionItem]),
	request("window/showDocument", ServerToClient, "3.16.0", decodeAs[ShowDocumentParams], decodeAs[ShowDocumentResult]),
	notification("window/logMessage", ServerToClient, "3.0", decodeAs[LogMessageParams]),
	request("window/workDoneProgress/create", ServerToClient, "3.15.0", decodeAs[WorkDoneProgressCreateParams], none),
	notification("window/workDoneProgress/cancel", ClientToServer, "3.15.0", decodeAs[WorkDoneProgressCancelParams]),
	notification("telemetry/event", ServerToClient, "3.0", decodeAs[json.RawMessage]),
}

var methodTable = func() map[string]Method {
	table := make(map[string]Method, len(baseMethods)+len(proposedMethods))
	for _, m := range slices.Concat(baseMethods, proposedMethods) {
		table[m.Name] = m
	}
	return table
}()

func LookupMethod(name string) (Method, bool) {
	m, ok := methodTable[name]
	return m, ok
}

// Methods returns every known method sorted by name.
func Methods() []Method {
	out := make([]Method, 0, len(methodTable))
	for _, m := range methodTable {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Method) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func unknownMethod(name string) error {
	return &DecodeError{Kind: KindUnknownMethod, Type: name}
}

// DecodeParams decodes the params of a request or notification. Methods that
// define no params yield a nil value.
func DecodeParams(method string, raw json.RawMessage) (any, error) {
	m, ok := LookupMethod(method)
	if !ok {
		return nil, unknownMethod(method)
	}
	return m.DecodeParams(raw)
}

// DecodeResult decodes the result of a response to method. Nullable results
// decode null to a nil value.
func DecodeResult(method string, raw json.RawMessage) (any, error) {
	m, ok := LookupMethod(method)
	if !ok {
		return nil, unknownMethod(method)
	}
	return m.DecodeResult(raw)
}

func (m Method) DecodeParams(raw json.RawMessage) (any, error) {
	if m.params == nil {
		_, err := none(raw)
		return nil, fromMethod(m.Name, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &DecodeError{Kind: KindMissingKey, Type: m.Name, Field: "params"}
	}
	return m.params(raw)
}

func (m Method) DecodeResult(raw json.RawMessage) (any, error) {
	if m.result == nil {
		return nil, &DecodeError{Kind: KindTypeMismatch, Type: m.Name, Detail: "notifications have no result"}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &DecodeError{Kind: KindMissingKey, Type: m.Name, Field: "result"}
	}
	v, err := m.result(raw)
	return v, fromMethod(m.Name, err)
}

// HasParams reports whether the method defines a params type.
func (m Method) HasParams() bool { return m.params != nil }

// fromMethod names the method on a void payload error.
func fromMethod(method string, err error) error {
	if de, ok := err.(*DecodeError); ok && de.Type == "void" {
		de.Type = method
	}
	return err
}
