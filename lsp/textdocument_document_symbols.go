package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_documentSymbol
type DocumentSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SymbolKind uint32

const (
	SymbolFile SymbolKind = iota + 1
	SymbolModule
	SymbolNamespace
	SymbolPackage
	SymbolClass
	SymbolMethod
	SymbolProperty
	SymbolField
	SymbolConstructor
	SymbolEnum
	SymbolInterface
	SymbolFunction
	SymbolVariable
	SymbolConstant
	SymbolString
	SymbolNumber
	SymbolBoolean
	SymbolArray
	SymbolObject
	SymbolKey
	SymbolNull
	SymbolEnumMember
	SymbolStruct
	SymbolEvent
	SymbolOperator
	SymbolTypeParameter
)

var symbolKindNames = map[SymbolKind]string{
	SymbolFile:          "File",
	SymbolModule:        "Module",
	SymbolNamespace:     "Namespace",
	SymbolPackage:       "Package",
	SymbolClass:         "Class",
	SymbolMethod:        "Method",
	SymbolProperty:      "Property",
	SymbolField:         "Field",
	SymbolConstructor:   "Constructor",
	SymbolEnum:          "Enum",
	SymbolInterface:     "Interface",
	SymbolFunction:      "Function",
	SymbolVariable:      "Variable",
	SymbolConstant:      "Constant",
	SymbolString:        "String",
	SymbolNumber:        "Number",
	SymbolBoolean:       "Boolean",
	SymbolArray:         "Array",
	SymbolObject:        "Object",
	SymbolKey:           "Key",
	SymbolNull:          "Null",
	SymbolEnumMember:    "EnumMember",
	SymbolStruct:        "Struct",
	SymbolEvent:         "Event",
	SymbolOperator:      "Operator",
	SymbolTypeParameter: "TypeParameter",
}

func (k SymbolKind) String() string {
	return enumString("SymbolKind", k, symbolKindNames)
}

func (k *SymbolKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("SymbolKind", data, symbolKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type SymbolTag uint32

const SymbolDeprecated SymbolTag = 1

var symbolTagNames = map[SymbolTag]string{
	SymbolDeprecated: "Deprecated",
}

func (t SymbolTag) String() string {
	return enumString("SymbolTag", t, symbolTagNames)
}

func (t *SymbolTag) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("SymbolTag", data, symbolTagNames)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DocumentSymbol is the hierarchical form of a document symbol.
type DocumentSymbol struct {
	Name   string      `json:"name"`
	Detail *string     `json:"detail,omitempty"`
	Kind   SymbolKind  `json:"kind"`
	Tags   []SymbolTag `json:"tags,omitempty"`
	// Deprecated: use Tags.
	Deprecated     *bool            `json:"deprecated,omitempty"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation is the flat form of a document or workspace symbol.
type SymbolInformation struct {
	Name string      `json:"name"`
	Kind SymbolKind  `json:"kind"`
	Tags []SymbolTag `json:"tags,omitempty"`
	// Deprecated: use Tags.
	Deprecated    *bool    `json:"deprecated,omitempty"`
	Location      Location `json:"location"`
	ContainerName *string  `json:"containerName,omitempty"`
}

// DocumentSymbolResult is DocumentSymbol[] | SymbolInformation[].
type DocumentSymbolResult struct {
	Value any
}

var documentSymbolResultShapes = union(
	shapeOf[[]DocumentSymbol]("DocumentSymbol[]"),
	shapeOf[[]SymbolInformation]("SymbolInformation[]"),
)

func (r *DocumentSymbolResult) UnmarshalJSON(data []byte) error {
	v, err := documentSymbolResultShapes.decode("DocumentSymbolResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r DocumentSymbolResult) MarshalJSON() ([]byte, error) {
	return documentSymbolResultShapes.encode("DocumentSymbolResult", r.Value)
}

func (r DocumentSymbolResult) Symbols() ([]DocumentSymbol, bool) {
	return variant[[]DocumentSymbol](r.Value)
}

func (r DocumentSymbolResult) Information() ([]SymbolInformation, bool) {
	return variant[[]SymbolInformation](r.Value)
}

type DocumentSymbolOptions struct {
	WorkDoneProgressOptions
	Label *string `json:"label,omitempty"`
}

type DocumentSymbolRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentSymbolOptions
}
