package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#notebookDocument_synchronization

type NotebookCellKind uint32

const (
	CellMarkup NotebookCellKind = iota + 1
	CellCode
)

var notebookCellKindNames = map[NotebookCellKind]string{
	CellMarkup: "Markup",
	CellCode:   "Code",
}

func (k NotebookCellKind) String() string {
	return enumString("NotebookCellKind", k, notebookCellKindNames)
}

func (k *NotebookCellKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("NotebookCellKind", data, notebookCellKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type ExecutionSummary struct {
	ExecutionOrder uint32 `json:"executionOrder"`
	Success        *bool  `json:"success,omitempty"`
}

type NotebookCell struct {
	Kind             NotebookCellKind  `json:"kind"`
	Document         DocumentURI       `json:"document"`
	Metadata         json.RawMessage   `json:"metadata,omitempty"`
	ExecutionSummary *ExecutionSummary `json:"executionSummary,omitempty"`
}

type NotebookDocument struct {
	URI          URI             `json:"uri"`
	NotebookType string          `json:"notebookType"`
	Version      int32           `json:"version"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	Cells        []NotebookCell  `json:"cells"`
}

type NotebookDocumentIdentifier struct {
	URI URI `json:"uri"`
}

type VersionedNotebookDocumentIdentifier struct {
	Version int32 `json:"version"`
	URI     URI   `json:"uri"`
}

type NotebookCellLanguage struct {
	Language string `json:"language"`
}

type NotebookDocumentCellSelector struct {
	Notebook *NotebookDocumentFilterRef `json:"notebook,omitempty"`
	Cells    []NotebookCellLanguage     `json:"cells,omitempty"`
}

type NotebookDocumentSyncOptions struct {
	NotebookSelector []NotebookDocumentCellSelector `json:"notebookSelector"`
	Save             *bool                          `json:"save,omitempty"`
}

type NotebookDocumentSyncRegistrationOptions struct {
	NotebookDocumentSyncOptions
	StaticRegistrationOptions
}

// NotebookSyncOption is NotebookDocumentSyncOptions | NotebookDocumentSyncRegistrationOptions.
type NotebookSyncOption struct {
	Value any
}

var notebookSyncShapes = union(
	shapeOf[NotebookDocumentSyncOptions]("NotebookDocumentSyncOptions"),
	shapeOf[NotebookDocumentSyncRegistrationOptions]("NotebookDocumentSyncRegistrationOptions"),
)

func (o *NotebookSyncOption) UnmarshalJSON(data []byte) error {
	v, err := notebookSyncShapes.decode("NotebookSyncOption", data)
	if err != nil {
		return err
	}
	o.Value = v
	return nil
}

func (o NotebookSyncOption) MarshalJSON() ([]byte, error) {
	return notebookSyncShapes.encode("NotebookSyncOption", o.Value)
}

type DidOpenNotebookDocumentParams struct {
	NotebookDocument  NotebookDocument   `json:"notebookDocument"`
	CellTextDocuments []TextDocumentItem `json:"cellTextDocuments"`
}

type NotebookCellArrayChange struct {
	Start       uint32         `json:"start"`
	DeleteCount uint32         `json:"deleteCount"`
	Cells       []NotebookCell `json:"cells,omitempty"`
}

type NotebookCellStructureChange struct {
	Array    NotebookCellArrayChange  `json:"array"`
	DidOpen  []TextDocumentItem       `json:"didOpen,omitempty"`
	DidClose []TextDocumentIdentifier `json:"didClose,omitempty"`
}

type NotebookCellTextChange struct {
	Document VersionedTextDocumentIdentifier  `json:"document"`
	Changes  []TextDocumentContentChangeEvent `json:"changes"`
}

type NotebookCellChanges struct {
	Structure   *NotebookCellStructureChange `json:"structure,omitempty"`
	Data        []NotebookCell               `json:"data,omitempty"`
	TextContent []NotebookCellTextChange     `json:"textContent,omitempty"`
}

type NotebookDocumentChangeEvent struct {
	Metadata json.RawMessage      `json:"metadata,omitempty"`
	Cells    *NotebookCellChanges `json:"cells,omitempty"`
}

type DidChangeNotebookDocumentParams struct {
	NotebookDocument VersionedNotebookDocumentIdentifier `json:"notebookDocument"`
	Change           NotebookDocumentChangeEvent         `json:"change"`
}

type DidSaveNotebookDocumentParams struct {
	NotebookDocument NotebookDocumentIdentifier `json:"notebookDocument"`
}

type DidCloseNotebookDocumentParams struct {
	NotebookDocument  NotebookDocumentIdentifier `json:"notebookDocument"`
	CellTextDocuments []TextDocumentIdentifier   `json:"cellTextDocuments"`
}
