package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_signatureHelp
type SignatureHelpParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	Context *SignatureHelpContext `json:"context,omitempty"`
}

type SignatureHelpTriggerKind uint32

const (
	SignatureHelpInvoked          SignatureHelpTriggerKind = 1
	SignatureHelpTriggerCharacter SignatureHelpTriggerKind = 2
	SignatureHelpContentChange    SignatureHelpTriggerKind = 3
)

var signatureHelpTriggerKindNames = map[SignatureHelpTriggerKind]string{
	SignatureHelpInvoked:          "Invoked",
	SignatureHelpTriggerCharacter: "TriggerCharacter",
	SignatureHelpContentChange:    "ContentChange",
}

func (k SignatureHelpTriggerKind) String() string {
	return enumString("SignatureHelpTriggerKind", k, signatureHelpTriggerKindNames)
}

func (k *SignatureHelpTriggerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("SignatureHelpTriggerKind", data, signatureHelpTriggerKindNames)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type SignatureHelpContext struct {
	TriggerKind         SignatureHelpTriggerKind `json:"triggerKind"`
	TriggerCharacter    *string                  `json:"triggerCharacter,omitempty"`
	IsRetrigger         bool                     `json:"isRetrigger"`
	ActiveSignatureHelp *SignatureHelp           `json:"activeSignatureHelp,omitempty"`
}

type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature *uint32                `json:"activeSignature,omitempty"`
	ActiveParameter *uint32                `json:"activeParameter,omitempty"`
}

type SignatureInformation struct {
	Label           string                 `json:"label"`
	Documentation   *StringOrMarkupContent `json:"documentation,omitempty"`
	Parameters      []ParameterInformation `json:"parameters,omitempty"`
	ActiveParameter *uint32                `json:"activeParameter,omitempty"`
}

// ParameterLabel is string | [uinteger, uinteger], the pair being inclusive
// start and exclusive end offsets into the signature label.
type ParameterLabel struct {
	Value any
}

var parameterLabelShapes = union(
	shapeOf[string]("string"),
	shapeOf[[2]uint32]("[uinteger, uinteger]"),
)

func (l *ParameterLabel) UnmarshalJSON(data []byte) error {
	v, err := parameterLabelShapes.decode("ParameterLabel", data)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

func (l ParameterLabel) MarshalJSON() ([]byte, error) {
	return parameterLabelShapes.encode("ParameterLabel", l.Value)
}

func (l ParameterLabel) Offsets() ([2]uint32, bool) { return variant[[2]uint32](l.Value) }

type ParameterInformation struct {
	Label         ParameterLabel         `json:"label"`
	Documentation *StringOrMarkupContent `json:"documentation,omitempty"`
}

type SignatureHelpOptions struct {
	WorkDoneProgressOptions
	TriggerCharacters   []string `json:"triggerCharacters,omitempty"`
	RetriggerCharacters []string `json:"retriggerCharacters,omitempty"`
}

type SignatureHelpRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SignatureHelpOptions
}
