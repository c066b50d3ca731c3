//go:build lsp_proposed

package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.18/specification/#textDocument_inlineCompletion
type InlineCompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	Context InlineCompletionContext `json:"context"`
}

type InlineCompletionTriggerKind uint32

const (
	InlineCompletionTriggerInvoked InlineCompletionTriggerKind = iota + 1
	InlineCompletionTriggerAutomatic
)

var inlineCompletionTriggerKindNames = map[InlineCompletionTriggerKind]string{
	InlineCompletionTriggerInvoked:   "Invoked",
	InlineCompletionTriggerAutomatic: "Automatic",
}

func (k InlineCompletionTriggerKind) String() string {
	return enumString("InlineCompletionTriggerKind", k, inlineCompletionTriggerKindNames)
}

func (k *InlineCompletionTriggerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("InlineCompletionTriggerKind", data, inlineCompletionTriggerKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type SelectedCompletionInfo struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

type InlineCompletionContext struct {
	TriggerKind            InlineCompletionTriggerKind `json:"triggerKind"`
	SelectedCompletionInfo *SelectedCompletionInfo     `json:"selectedCompletionInfo,omitempty"`
}

// StringValue is a snippet string.
type StringValue struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// InsertText is string | StringValue.
type InsertText struct {
	Value any
}

var insertTextShapes = union(
	shapeOf[string]("string"),
	shapeOf[StringValue]("StringValue"),
)

func (t *InsertText) UnmarshalJSON(data []byte) error {
	v, err := insertTextShapes.decode("InsertText", data)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t InsertText) MarshalJSON() ([]byte, error) {
	return insertTextShapes.encode("InsertText", t.Value)
}

type InlineCompletionItem struct {
	InsertText InsertText `json:"insertText"`
	FilterText *string    `json:"filterText,omitempty"`
	Range      *Range     `json:"range,omitempty"`
	Command    *Command   `json:"command,omitempty"`
}

type InlineCompletionList struct {
	Items []InlineCompletionItem `json:"items"`
}

// InlineCompletionResult is InlineCompletionList | InlineCompletionItem[].
type InlineCompletionResult struct {
	Value any
}

var inlineCompletionResultShapes = union(
	shapeOf[InlineCompletionList]("InlineCompletionList"),
	shapeOf[[]InlineCompletionItem]("InlineCompletionItem[]"),
)

func (r *InlineCompletionResult) UnmarshalJSON(data []byte) error {
	v, err := inlineCompletionResultShapes.decode("InlineCompletionResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r InlineCompletionResult) MarshalJSON() ([]byte, error) {
	return inlineCompletionResultShapes.encode("InlineCompletionResult", r.Value)
}

func (r InlineCompletionResult) Items() []InlineCompletionItem {
	switch v := r.Value.(type) {
	case InlineCompletionList:
		return v.Items
	case []InlineCompletionItem:
		return v
	}
	return nil
}

type InlineCompletionOptions struct {
	WorkDoneProgressOptions
}

type InlineCompletionRegistrationOptions struct {
	InlineCompletionOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}
