package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_completion
type CompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context *CompletionContext `json:"context,omitempty"`
}

type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter *string               `json:"triggerCharacter,omitempty"`
}

type CompletionTriggerKind uint32

const (
	CompletionInvoked                         CompletionTriggerKind = 1
	CompletionTriggerCharacter                CompletionTriggerKind = 2
	CompletionTriggerForIncompleteCompletions CompletionTriggerKind = 3
)

var completionTriggerKindNames = map[CompletionTriggerKind]string{
	CompletionInvoked:                         "Invoked",
	CompletionTriggerCharacter:                "TriggerCharacter",
	CompletionTriggerForIncompleteCompletions: "TriggerForIncompleteCompletions",
}

func (k CompletionTriggerKind) String() string {
	return enumString("CompletionTriggerKind", k, completionTriggerKindNames)
}

func (k *CompletionTriggerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("CompletionTriggerKind", data, completionTriggerKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type CompletionItemKind uint32

const (
	CompletionText CompletionItemKind = iota + 1
	CompletionMethod
	CompletionFunction
	CompletionConstructor
	CompletionField
	CompletionVariable
	CompletionClass
	CompletionInterface
	CompletionModule
	CompletionProperty
	CompletionUnit
	CompletionValue
	CompletionEnum
	CompletionKeyword
	CompletionSnippet
	CompletionColor
	CompletionFile
	CompletionReference
	CompletionFolder
	CompletionEnumMember
	CompletionConstant
	CompletionStruct
	CompletionEvent
	CompletionOperator
	CompletionTypeParameter
)

var completionItemKindNames = map[CompletionItemKind]string{
	CompletionText:          "Text",
	CompletionMethod:        "Method",
	CompletionFunction:      "Function",
	CompletionConstructor:   "Constructor",
	CompletionField:         "Field",
	CompletionVariable:      "Variable",
	CompletionClass:         "Class",
	CompletionInterface:     "Interface",
	CompletionModule:        "Module",
	CompletionProperty:      "Property",
	CompletionUnit:          "Unit",
	CompletionValue:         "Value",
	CompletionEnum:          "Enum",
	CompletionKeyword:       "Keyword",
	CompletionSnippet:       "Snippet",
	CompletionColor:         "Color",
	CompletionFile:          "File",
	CompletionReference:     "Reference",
	CompletionFolder:        "Folder",
	CompletionEnumMember:    "EnumMember",
	CompletionConstant:      "Constant",
	CompletionStruct:        "Struct",
	CompletionEvent:         "Event",
	CompletionOperator:      "Operator",
	CompletionTypeParameter: "TypeParameter",
}

func (k CompletionItemKind) String() string {
	return enumString("CompletionItemKind", k, completionItemKindNames)
}

func (k *CompletionItemKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("CompletionItemKind", data, completionItemKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type CompletionItemTag uint32

const CompletionItemDeprecated CompletionItemTag = 1

var completionItemTagNames = map[CompletionItemTag]string{
	CompletionItemDeprecated: "Deprecated",
}

func (t CompletionItemTag) String() string {
	return enumString("CompletionItemTag", t, completionItemTagNames)
}

func (t *CompletionItemTag) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("CompletionItemTag", data, completionItemTagNames)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type InsertTextFormat uint32

const (
	InsertTextPlainText InsertTextFormat = 1
	InsertTextSnippet   InsertTextFormat = 2
)

var insertTextFormatNames = map[InsertTextFormat]string{
	InsertTextPlainText: "PlainText",
	InsertTextSnippet:   "Snippet",
}

func (f InsertTextFormat) String() string {
	return enumString("InsertTextFormat", f, insertTextFormatNames)
}

func (f *InsertTextFormat) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("InsertTextFormat", data, insertTextFormatNames)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

type InsertTextMode uint32

const (
	InsertTextAsIs              InsertTextMode = 1
	InsertTextAdjustIndentation InsertTextMode = 2
)

var insertTextModeNames = map[InsertTextMode]string{
	InsertTextAsIs:              "AsIs",
	InsertTextAdjustIndentation: "AdjustIndentation",
}

func (m InsertTextMode) String() string {
	return enumString("InsertTextMode", m, insertTextModeNames)
}

func (m *InsertTextMode) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("InsertTextMode", data, insertTextModeNames)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type CompletionItemLabelDetails struct {
	Detail      *string `json:"detail,omitempty"`
	Description *string `json:"description,omitempty"`
}

type InsertReplaceEdit struct {
	NewText string `json:"newText"`
	Insert  Range  `json:"insert"`
	Replace Range  `json:"replace"`
}

// CompletionTextEdit is TextEdit | InsertReplaceEdit.
type CompletionTextEdit struct {
	Value any
}

var completionTextEditShapes = union(
	shapeOf[TextEdit]("TextEdit"),
	shapeOf[InsertReplaceEdit]("InsertReplaceEdit"),
)

func (e *CompletionTextEdit) UnmarshalJSON(data []byte) error {
	v, err := completionTextEditShapes.decode("TextEdit | InsertReplaceEdit", data)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

func (e CompletionTextEdit) MarshalJSON() ([]byte, error) {
	return completionTextEditShapes.encode("TextEdit | InsertReplaceEdit", e.Value)
}

func (e CompletionTextEdit) TextEdit() (TextEdit, bool) { return variant[TextEdit](e.Value) }

func (e CompletionTextEdit) InsertReplace() (InsertReplaceEdit, bool) {
	return variant[InsertReplaceEdit](e.Value)
}

type CompletionItem struct {
	Label               string                      `json:"label"`
	LabelDetails        *CompletionItemLabelDetails `json:"labelDetails,omitempty"`
	Kind                *CompletionItemKind         `json:"kind,omitempty"`
	Tags                []CompletionItemTag         `json:"tags,omitempty"`
	Detail              *string                     `json:"detail,omitempty"`
	Documentation       *StringOrMarkupContent      `json:"documentation,omitempty"`
	Deprecated          *bool                       `json:"deprecated,omitempty"`
	Preselect           *bool                       `json:"preselect,omitempty"`
	SortText            *string                     `json:"sortText,omitempty"`
	FilterText          *string                     `json:"filterText,omitempty"`
	InsertText          *string                     `json:"insertText,omitempty"`
	InsertTextFormat    *InsertTextFormat           `json:"insertTextFormat,omitempty"`
	InsertTextMode      *InsertTextMode             `json:"insertTextMode,omitempty"`
	TextEdit            *CompletionTextEdit         `json:"textEdit,omitempty"`
	TextEditText        *string                     `json:"textEditText,omitempty"`
	AdditionalTextEdits []TextEdit                  `json:"additionalTextEdits,omitempty"`
	CommitCharacters    []string                    `json:"commitCharacters,omitempty"`
	Command             *Command                    `json:"command,omitempty"`
	Data                json.RawMessage             `json:"data,omitempty"`
}

// EditRangeInsertReplace is the { insert, replace } form of a default edit range.
type EditRangeInsertReplace struct {
	Insert  Range `json:"insert"`
	Replace Range `json:"replace"`
}

// EditRange is Range | { insert, replace }.
type EditRange struct {
	Value any
}

var editRangeShapes = union(
	shapeOf[Range]("Range"),
	shapeOf[EditRangeInsertReplace]("EditRangeInsertReplace"),
)

func (r *EditRange) UnmarshalJSON(data []byte) error {
	v, err := editRangeShapes.decode("EditRange", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r EditRange) MarshalJSON() ([]byte, error) {
	return editRangeShapes.encode("EditRange", r.Value)
}

type CompletionItemDefaults struct {
	CommitCharacters []string          `json:"commitCharacters,omitempty"`
	EditRange        *EditRange        `json:"editRange,omitempty"`
	InsertTextFormat *InsertTextFormat `json:"insertTextFormat,omitempty"`
	InsertTextMode   *InsertTextMode   `json:"insertTextMode,omitempty"`
	Data             json.RawMessage   `json:"data,omitempty"`
}

type CompletionList struct {
	IsIncomplete bool                    `json:"isIncomplete"`
	ItemDefaults *CompletionItemDefaults `json:"itemDefaults,omitempty"`
	Items        []CompletionItem        `json:"items"`
}

// CompletionResult is CompletionItem[] | CompletionList.
type CompletionResult struct {
	Value any
}

var completionResultShapes = union(
	shapeOf[[]CompletionItem]("CompletionItem[]"),
	shapeOf[CompletionList]("CompletionList"),
)

func NewCompletionList(items []CompletionItem, incomplete bool) CompletionResult {
	if items == nil {
		items = []CompletionItem{}
	}
	return CompletionResult{Value: CompletionList{IsIncomplete: incomplete, Items: items}}
}

func (r *CompletionResult) UnmarshalJSON(data []byte) error {
	v, err := completionResultShapes.decode("CompletionResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r CompletionResult) MarshalJSON() ([]byte, error) {
	return completionResultShapes.encode("CompletionResult", r.Value)
}

// Items returns the completion items whichever form was sent.
func (r CompletionResult) Items() []CompletionItem {
	switch v := r.Value.(type) {
	case []CompletionItem:
		return v
	case CompletionList:
		return v.Items
	}
	return nil
}

type CompletionItemOptions struct {
	LabelDetailsSupport *bool `json:"labelDetailsSupport,omitempty"`
}

type CompletionOptions struct {
	WorkDoneProgressOptions
	TriggerCharacters   []string               `json:"triggerCharacters,omitempty"`
	AllCommitCharacters []string               `json:"allCommitCharacters,omitempty"`
	ResolveProvider     *bool                  `json:"resolveProvider,omitempty"`
	CompletionItem      *CompletionItemOptions `json:"completionItem,omitempty"`
}

type CompletionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CompletionOptions
}
