package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_rename
type RenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	NewName string `json:"newName"`
}

type PrepareRenameParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type PrepareRenamePlaceholder struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

type PrepareRenameDefaultBehavior struct {
	DefaultBehavior bool `json:"defaultBehavior"`
}

// PrepareRenameResult is Range | { range, placeholder } | { defaultBehavior }.
type PrepareRenameResult struct {
	Value any
}

var prepareRenameResultShapes = union(
	shapeOf[Range]("Range"),
	shapeOf[PrepareRenamePlaceholder]("{ range, placeholder }"),
	shapeOf[PrepareRenameDefaultBehavior]("{ defaultBehavior }"),
)

func (r *PrepareRenameResult) UnmarshalJSON(data []byte) error {
	v, err := prepareRenameResultShapes.decode("PrepareRenameResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r PrepareRenameResult) MarshalJSON() ([]byte, error) {
	return prepareRenameResultShapes.encode("PrepareRenameResult", r.Value)
}

// Range returns the range to rename, if the result names one.
func (r PrepareRenameResult) Range() (Range, bool) {
	switch v := r.Value.(type) {
	case Range:
		return v, true
	case PrepareRenamePlaceholder:
		return v.Range, true
	}
	return Range{}, false
}

type PrepareSupportDefaultBehavior uint32

const PrepareSupportIdentifier PrepareSupportDefaultBehavior = 1

var prepareSupportDefaultBehaviorNames = map[PrepareSupportDefaultBehavior]string{
	PrepareSupportIdentifier: "Identifier",
}

func (b PrepareSupportDefaultBehavior) String() string {
	return enumString("PrepareSupportDefaultBehavior", b, prepareSupportDefaultBehaviorNames)
}

func (b *PrepareSupportDefaultBehavior) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("PrepareSupportDefaultBehavior", data, prepareSupportDefaultBehaviorNames)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

type RenameOptions struct {
	WorkDoneProgressOptions
	PrepareProvider *bool `json:"prepareProvider,omitempty"`
}

type RenameRegistrationOptions struct {
	TextDocumentRegistrationOptions
	RenameOptions
}
