package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_references
type ReferenceParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context ReferenceContext `json:"context"`
}

type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

type ReferenceOptions struct {
	WorkDoneProgressOptions
}

type ReferenceRegistrationOptions struct {
	TextDocumentRegistrationOptions
	ReferenceOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_documentHighlight
type DocumentHighlightParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type DocumentHighlightKind uint32

const (
	HighlightText DocumentHighlightKind = iota + 1
	HighlightRead
	HighlightWrite
)

var documentHighlightKindNames = map[DocumentHighlightKind]string{
	HighlightText:  "Text",
	HighlightRead:  "Read",
	HighlightWrite: "Write",
}

func (k DocumentHighlightKind) String() string {
	return enumString("DocumentHighlightKind", k, documentHighlightKindNames)
}

func (k *DocumentHighlightKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("DocumentHighlightKind", data, documentHighlightKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

type DocumentHighlightOptions struct {
	WorkDoneProgressOptions
}

type DocumentHighlightRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentHighlightOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_linkedEditingRange
type LinkedEditingRangeParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type LinkedEditingRanges struct {
	Ranges      []Range `json:"ranges"`
	WordPattern *string `json:"wordPattern,omitempty"`
}

type LinkedEditingRangeOptions struct {
	WorkDoneProgressOptions
}

type LinkedEditingRangeRegistrationOptions struct {
	TextDocumentRegistrationOptions
	LinkedEditingRangeOptions
	StaticRegistrationOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_moniker
type MonikerParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type UniquenessLevel string

const (
	UniquenessDocument UniquenessLevel = "document"
	UniquenessProject  UniquenessLevel = "project"
	UniquenessGroup    UniquenessLevel = "group"
	UniquenessScheme   UniquenessLevel = "scheme"
	UniquenessGlobal   UniquenessLevel = "global"
)

func (u *UniquenessLevel) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("UniquenessLevel", data, []UniquenessLevel{
		UniquenessDocument, UniquenessProject, UniquenessGroup, UniquenessScheme, UniquenessGlobal,
	})
	if err != nil {
		return err
	}
	*u = v
	return nil
}

type MonikerKind string

const (
	MonikerImport MonikerKind = "import"
	MonikerExport MonikerKind = "export"
	MonikerLocal  MonikerKind = "local"
)

func (k *MonikerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("MonikerKind", data, []MonikerKind{MonikerImport, MonikerExport, MonikerLocal})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type Moniker struct {
	Scheme     string          `json:"scheme"`
	Identifier string          `json:"identifier"`
	Unique     UniquenessLevel `json:"unique"`
	Kind       *MonikerKind    `json:"kind,omitempty"`
}

type MonikerOptions struct {
	WorkDoneProgressOptions
}

type MonikerRegistrationOptions struct {
	TextDocumentRegistrationOptions
	MonikerOptions
}
