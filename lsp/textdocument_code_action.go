package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_codeAction
type CodeActionParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeActionKind is an open set; servers may use kinds not listed here.
type CodeActionKind string

const (
	CodeActionEmpty                 CodeActionKind = ""
	CodeActionQuickFix              CodeActionKind = "quickfix"
	CodeActionRefactor              CodeActionKind = "refactor"
	CodeActionRefactorExtract       CodeActionKind = "refactor.extract"
	CodeActionRefactorInline        CodeActionKind = "refactor.inline"
	CodeActionRefactorRewrite       CodeActionKind = "refactor.rewrite"
	CodeActionSource                CodeActionKind = "source"
	CodeActionSourceOrganizeImports CodeActionKind = "source.organizeImports"
	CodeActionSourceFixAll          CodeActionKind = "source.fixAll"
)

type CodeActionTriggerKind uint32

const (
	CodeActionTriggerInvoked CodeActionTriggerKind = iota + 1
	CodeActionTriggerAutomatic
)

var codeActionTriggerKindNames = map[CodeActionTriggerKind]string{
	CodeActionTriggerInvoked:   "Invoked",
	CodeActionTriggerAutomatic: "Automatic",
}

func (k CodeActionTriggerKind) String() string {
	return enumString("CodeActionTriggerKind", k, codeActionTriggerKindNames)
}

func (k *CodeActionTriggerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("CodeActionTriggerKind", data, codeActionTriggerKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type CodeActionContext struct {
	Diagnostics []Diagnostic           `json:"diagnostics"`
	Only        []CodeActionKind       `json:"only,omitempty"`
	TriggerKind *CodeActionTriggerKind `json:"triggerKind,omitempty"`
}

type CodeActionDisabled struct {
	Reason string `json:"reason"`
}

type CodeAction struct {
	Title       string              `json:"title"`
	Kind        *CodeActionKind     `json:"kind,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty"`
	IsPreferred *bool               `json:"isPreferred,omitempty"`
	Disabled    *CodeActionDisabled `json:"disabled,omitempty"`
	Edit        *WorkspaceEdit      `json:"edit,omitempty"`
	Command     *Command            `json:"command,omitempty"`
	Data        json.RawMessage     `json:"data,omitempty"`
}

// CommandOrCodeAction is Command | CodeAction.
type CommandOrCodeAction struct {
	Value any
}

var commandOrCodeActionShapes = union(
	shapeOf[Command]("Command"),
	shapeOf[CodeAction]("CodeAction"),
)

func NewCodeAction(action CodeAction) CommandOrCodeAction {
	return CommandOrCodeAction{Value: action}
}

func (c *CommandOrCodeAction) UnmarshalJSON(data []byte) error {
	v, err := commandOrCodeActionShapes.decode("CommandOrCodeAction", data)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

func (c CommandOrCodeAction) MarshalJSON() ([]byte, error) {
	return commandOrCodeActionShapes.encode("CommandOrCodeAction", c.Value)
}

func (c CommandOrCodeAction) Command() (Command, bool) { return variant[Command](c.Value) }

func (c CommandOrCodeAction) CodeAction() (CodeAction, bool) { return variant[CodeAction](c.Value) }

type CodeActionOptions struct {
	WorkDoneProgressOptions
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`
	ResolveProvider *bool            `json:"resolveProvider,omitempty"`
}

type CodeActionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CodeActionOptions
}
