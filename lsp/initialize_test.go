package lsp

import (
	"errors"
	"testing"
)

func TestInitializeParams(t *testing.T) {
	input := `{
		"processId": null,
		"clientInfo": {"name": "Neovim", "version": "0.10.0"},
		"rootUri": "file:///workspace",
		"capabilities": {
			"textDocument": {
				"hover": {"dynamicRegistration": true, "contentFormat": ["markdown", "plaintext"]},
				"completion": {"contextSupport": true}
			},
			"general": {"positionEncodings": ["utf-16"]}
		},
		"trace": "off",
		"workspaceFolders": [{"uri": "file:///workspace", "name": "workspace"}]
	}`
	var params InitializeParams
	if err := Unmarshal([]byte(input), &params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.ProcessID != nil {
		t.Errorf("expected null processId, got %d", *params.ProcessID)
	}
	if params.ClientInfo == nil || params.ClientInfo.Name != "Neovim" {
		t.Errorf("expected client Neovim, got %+v", params.ClientInfo)
	}
	hover := params.Capabilities.TextDocument.Hover
	if hover == nil || len(hover.ContentFormat) != 2 || hover.ContentFormat[0] != MarkupKindMarkdown {
		t.Errorf("expected markdown first in hover content format, got %+v", hover)
	}
	if len(params.WorkspaceFolders) != 1 || params.WorkspaceFolders[0].Name != "workspace" {
		t.Errorf("expected one workspace folder, got %+v", params.WorkspaceFolders)
	}
}

func TestInitializeParams_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing processId", `{"rootUri":null,"capabilities":{}}`, ErrMissingKey},
		{"missing capabilities", `{"processId":1,"rootUri":null}`, ErrMissingKey},
		{"unknown trace", `{"processId":1,"rootUri":null,"capabilities":{},"trace":"loud"}`, ErrInvalidEnum},
		{"unknown markup kind", `{"processId":1,"rootUri":null,"capabilities":{"textDocument":{"hover":{"contentFormat":["html"]}}}}`, ErrInvalidEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var params InitializeParams
			if err := Unmarshal([]byte(tt.input), &params); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInitializeResult(t *testing.T) {
	input := `{
		"capabilities": {
			"textDocumentSync": 2,
			"hoverProvider": true,
			"completionProvider": {"triggerCharacters": ["$", "{"]},
			"semanticTokensProvider": {
				"legend": {"tokenTypes": ["variable", "function"], "tokenModifiers": []},
				"full": {"delta": true},
				"documentSelector": [{"language": "sh"}]
			},
			"workspace": {"workspaceFolders": {"supported": true, "changeNotifications": "folders"}}
		},
		"serverInfo": {"name": "bashd", "version": "0.1.0"}
	}`
	var result InitializeResult
	if err := Unmarshal([]byte(input), &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	caps := result.Capabilities
	if caps.TextDocumentSync.Kind() != SyncIncremental {
		t.Errorf("expected incremental sync, got %v", caps.TextDocumentSync.Kind())
	}
	if _, ok := caps.SemanticTokensProvider.Value.(SemanticTokensRegistrationOptions); !ok {
		t.Errorf("expected semantic tokens registration options, got %T", caps.SemanticTokensProvider.Value)
	}
	if legend := caps.SemanticTokensProvider.Legend(); len(legend.TokenTypes) != 2 {
		t.Errorf("expected two token types, got %v", legend.TokenTypes)
	}
	if !caps.Workspace.WorkspaceFolders.ChangeNotifications.Enabled() {
		t.Error("expected workspace folder change notifications")
	}
	if result.ServerInfo == nil || result.ServerInfo.Name != "bashd" {
		t.Errorf("expected server bashd, got %+v", result.ServerInfo)
	}
}

func TestNewInitializeResult(t *testing.T) {
	caps := ServerCapabilities{
		TextDocumentSync: NewSyncKind(SyncFull),
		HoverProvider:    NewBool[HoverOptions](true),
	}
	data, err := Marshal(NewInitializeResult(caps, "lspcheck", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"capabilities":{"textDocumentSync":1,"hoverProvider":true},"serverInfo":{"name":"lspcheck"}}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
