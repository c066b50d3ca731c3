package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_synchronization

type TextDocumentSyncKind uint32

const (
	SyncNone TextDocumentSyncKind = iota
	SyncFull
	SyncIncremental
)

var textDocumentSyncKindNames = map[TextDocumentSyncKind]string{
	SyncNone:        "None",
	SyncFull:        "Full",
	SyncIncremental: "Incremental",
}

func (k TextDocumentSyncKind) String() string {
	return enumString("TextDocumentSyncKind", k, textDocumentSyncKindNames)
}

func (k *TextDocumentSyncKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("TextDocumentSyncKind", data, textDocumentSyncKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type SaveOptions struct {
	IncludeText *bool `json:"includeText,omitempty"`
}

// SaveOption is boolean | SaveOptions.
type SaveOption = BoolOr[SaveOptions]

type TextDocumentSyncOptions struct {
	OpenClose         *bool                 `json:"openClose,omitempty"`
	Change            *TextDocumentSyncKind `json:"change,omitempty"`
	WillSave          *bool                 `json:"willSave,omitempty"`
	WillSaveWaitUntil *bool                 `json:"willSaveWaitUntil,omitempty"`
	Save              *SaveOption           `json:"save,omitempty"`
}

// TextDocumentSync is TextDocumentSyncOptions | TextDocumentSyncKind.
type TextDocumentSync struct {
	Value any
}

var textDocumentSyncShapes = union(
	shapeOf[TextDocumentSyncOptions]("TextDocumentSyncOptions"),
	shapeOf[TextDocumentSyncKind]("TextDocumentSyncKind"),
)

func NewSyncKind(kind TextDocumentSyncKind) *TextDocumentSync {
	return &TextDocumentSync{Value: kind}
}

func NewSyncOptions(opts TextDocumentSyncOptions) *TextDocumentSync {
	return &TextDocumentSync{Value: opts}
}

func (s *TextDocumentSync) UnmarshalJSON(data []byte) error {
	v, err := textDocumentSyncShapes.decode("TextDocumentSync", data)
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

func (s TextDocumentSync) MarshalJSON() ([]byte, error) {
	return textDocumentSyncShapes.encode("TextDocumentSync", s.Value)
}

// Kind returns the effective change kind whichever form was sent.
func (s TextDocumentSync) Kind() TextDocumentSyncKind {
	switch v := s.Value.(type) {
	case TextDocumentSyncKind:
		return v
	case TextDocumentSyncOptions:
		if v.Change != nil {
			return *v.Change
		}
	}
	return SyncNone
}

func (s TextDocumentSync) Options() (TextDocumentSyncOptions, bool) {
	return variant[TextDocumentSyncOptions](s.Value)
}

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangePartial replaces Range with Text.
type TextDocumentContentChangePartial struct {
	Range Range `json:"range"`
	// Deprecated: use Range.
	RangeLength *uint32 `json:"rangeLength,omitempty"`
	Text        string  `json:"text"`
}

type TextDocumentContentChangeWholeDocument struct {
	Text string `json:"text"`
}

// TextDocumentContentChangeEvent is a ranged change or a full replacement.
type TextDocumentContentChangeEvent struct {
	Value any
}

var contentChangeShapes = union(
	shapeOf[TextDocumentContentChangePartial]("TextDocumentContentChangePartial"),
	shapeOf[TextDocumentContentChangeWholeDocument]("TextDocumentContentChangeWholeDocument"),
)

func (e *TextDocumentContentChangeEvent) UnmarshalJSON(data []byte) error {
	v, err := contentChangeShapes.decode("TextDocumentContentChangeEvent", data)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

func (e TextDocumentContentChangeEvent) MarshalJSON() ([]byte, error) {
	return contentChangeShapes.encode("TextDocumentContentChangeEvent", e.Value)
}

func (e TextDocumentContentChangeEvent) Partial() (TextDocumentContentChangePartial, bool) {
	return variant[TextDocumentContentChangePartial](e.Value)
}

func (e TextDocumentContentChangeEvent) WholeDocument() (TextDocumentContentChangeWholeDocument, bool) {
	return variant[TextDocumentContentChangeWholeDocument](e.Value)
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

type TextDocumentChangeRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SyncKind TextDocumentSyncKind `json:"syncKind"`
}

type TextDocumentSaveReason uint32

const (
	SaveManual TextDocumentSaveReason = iota + 1
	SaveAfterDelay
	SaveFocusOut
)

var textDocumentSaveReasonNames = map[TextDocumentSaveReason]string{
	SaveManual:     "Manual",
	SaveAfterDelay: "AfterDelay",
	SaveFocusOut:   "FocusOut",
}

func (r TextDocumentSaveReason) String() string {
	return enumString("TextDocumentSaveReason", r, textDocumentSaveReasonNames)
}

func (r *TextDocumentSaveReason) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("TextDocumentSaveReason", data, textDocumentSaveReasonNames)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Reason       TextDocumentSaveReason `json:"reason"`
}

type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

type TextDocumentSaveRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SaveOptions
}

type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}
