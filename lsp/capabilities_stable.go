//go:build !lsp_proposed

package lsp

// Proposed reports whether the 3.18 proposed features are compiled in.
const Proposed = false

type (
	proposedServerCapabilities             struct{}
	proposedWorkspaceServerCapabilities    struct{}
	proposedWorkspaceClientCapabilities    struct{}
	proposedTextDocumentClientCapabilities struct{}
	documentRangeFormattingProposed        struct{}
)

var proposedMethods []Method
