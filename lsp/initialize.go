package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#initialize
type InitializeParams struct {
	WorkDoneProgressParams
	ProcessID  *int32      `json:"processId"`
	ClientInfo *ClientInfo `json:"clientInfo,omitempty"`
	Locale     *string     `json:"locale,omitempty"`
	// Deprecated: use WorkspaceFolders.
	RootPath *string `json:"rootPath,omitempty"`
	// Deprecated: use WorkspaceFolders.
	RootURI               *DocumentURI       `json:"rootUri"`
	InitializationOptions json.RawMessage    `json:"initializationOptions,omitempty"`
	Capabilities          ClientCapabilities `json:"capabilities"`
	Trace                 *TraceValue        `json:"trace,omitempty"`
	WorkspaceFolders      []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

type ClientInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

type WorkspaceFolder struct {
	URI  URI    `json:"uri"`
	Name string `json:"name"`
}

type TraceValue string

const (
	TraceOff      TraceValue = "off"
	TraceMessages TraceValue = "messages"
	TraceVerbose  TraceValue = "verbose"
)

func (t *TraceValue) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("TraceValue", data, []TraceValue{TraceOff, TraceMessages, TraceVerbose})
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#initializeResult
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

type ServerInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`
}

func NewInitializeResult(capabilities ServerCapabilities, name, version string) InitializeResult {
	info := &ServerInfo{Name: name}
	if version != "" {
		info.Version = &version
	}
	return InitializeResult{
		Capabilities: capabilities,
		ServerInfo:   info,
	}
}

// InitializeError is the data of an initialize error response.
type InitializeError struct {
	Retry bool `json:"retry"`
}

type InitializedParams struct{}

type Registration struct {
	ID              string          `json:"id"`
	Method          string          `json:"method"`
	RegisterOptions json.RawMessage `json:"registerOptions,omitempty"`
}

type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}

type Unregistration struct {
	ID     string `json:"id"`
	Method string `json:"method"`
}

type UnregistrationParams struct {
	// The protocol misspells this key and keeps it for compatibility.
	Unregisterations []Unregistration `json:"unregisterations"`
}

type SetTraceParams struct {
	Value TraceValue `json:"value"`
}

type LogTraceParams struct {
	Message string  `json:"message"`
	Verbose *string `json:"verbose,omitempty"`
}

type CancelParams struct {
	ID IntegerOrString `json:"id"`
}
