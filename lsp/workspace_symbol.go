package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_symbol
type WorkspaceSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Query string `json:"query"`
}

// WorkspaceSymbolURI is the location form used before a symbol is resolved.
type WorkspaceSymbolURI struct {
	URI DocumentURI `json:"uri"`
}

// WorkspaceSymbolLocation is Location | { uri }.
type WorkspaceSymbolLocation struct {
	Value any
}

var workspaceSymbolLocationShapes = union(
	shapeOf[Location]("Location"),
	shapeOf[WorkspaceSymbolURI]("{ uri }"),
)

func (l *WorkspaceSymbolLocation) UnmarshalJSON(data []byte) error {
	v, err := workspaceSymbolLocationShapes.decode("WorkspaceSymbolLocation", data)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

func (l WorkspaceSymbolLocation) MarshalJSON() ([]byte, error) {
	return workspaceSymbolLocationShapes.encode("WorkspaceSymbolLocation", l.Value)
}

func (l WorkspaceSymbolLocation) URI() DocumentURI {
	switch v := l.Value.(type) {
	case Location:
		return v.URI
	case WorkspaceSymbolURI:
		return v.URI
	}
	return ""
}

type WorkspaceSymbol struct {
	Name          string                  `json:"name"`
	Kind          SymbolKind              `json:"kind"`
	Tags          []SymbolTag             `json:"tags,omitempty"`
	ContainerName *string                 `json:"containerName,omitempty"`
	Location      WorkspaceSymbolLocation `json:"location"`
	Data          json.RawMessage         `json:"data,omitempty"`
}

// WorkspaceSymbolResult is SymbolInformation[] | WorkspaceSymbol[].
type WorkspaceSymbolResult struct {
	Value any
}

var workspaceSymbolResultShapes = union(
	shapeOf[[]SymbolInformation]("SymbolInformation[]"),
	shapeOf[[]WorkspaceSymbol]("WorkspaceSymbol[]"),
)

func (r *WorkspaceSymbolResult) UnmarshalJSON(data []byte) error {
	v, err := workspaceSymbolResultShapes.decode("WorkspaceSymbolResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r WorkspaceSymbolResult) MarshalJSON() ([]byte, error) {
	return workspaceSymbolResultShapes.encode("WorkspaceSymbolResult", r.Value)
}

type WorkspaceSymbolOptions struct {
	WorkDoneProgressOptions
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type WorkspaceSymbolRegistrationOptions struct {
	WorkspaceSymbolOptions
}
