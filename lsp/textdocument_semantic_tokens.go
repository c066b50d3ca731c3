package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_semanticTokens

// SemanticTokenTypes and SemanticTokenModifiers are open sets; these are the
// predefined members.
type SemanticTokenTypes string

const (
	TokenNamespace     SemanticTokenTypes = "namespace"
	TokenType          SemanticTokenTypes = "type"
	TokenClass         SemanticTokenTypes = "class"
	TokenEnum          SemanticTokenTypes = "enum"
	TokenInterface     SemanticTokenTypes = "interface"
	TokenStruct        SemanticTokenTypes = "struct"
	TokenTypeParameter SemanticTokenTypes = "typeParameter"
	TokenParameter     SemanticTokenTypes = "parameter"
	TokenVariable      SemanticTokenTypes = "variable"
	TokenProperty      SemanticTokenTypes = "property"
	TokenEnumMember    SemanticTokenTypes = "enumMember"
	TokenEvent         SemanticTokenTypes = "event"
	TokenFunction      SemanticTokenTypes = "function"
	TokenMethod        SemanticTokenTypes = "method"
	TokenMacro         SemanticTokenTypes = "macro"
	TokenKeyword       SemanticTokenTypes = "keyword"
	TokenModifier      SemanticTokenTypes = "modifier"
	TokenComment       SemanticTokenTypes = "comment"
	TokenString        SemanticTokenTypes = "string"
	TokenNumber        SemanticTokenTypes = "number"
	TokenRegexp        SemanticTokenTypes = "regexp"
	TokenOperator      SemanticTokenTypes = "operator"
	TokenDecorator     SemanticTokenTypes = "decorator"
)

type SemanticTokenModifiers string

const (
	ModifierDeclaration    SemanticTokenModifiers = "declaration"
	ModifierDefinition     SemanticTokenModifiers = "definition"
	ModifierReadonly       SemanticTokenModifiers = "readonly"
	ModifierStatic         SemanticTokenModifiers = "static"
	ModifierDeprecated     SemanticTokenModifiers = "deprecated"
	ModifierAbstract       SemanticTokenModifiers = "abstract"
	ModifierAsync          SemanticTokenModifiers = "async"
	ModifierModification   SemanticTokenModifiers = "modification"
	ModifierDocumentation  SemanticTokenModifiers = "documentation"
	ModifierDefaultLibrary SemanticTokenModifiers = "defaultLibrary"
)

type TokenFormat string

const TokenFormatRelative TokenFormat = "relative"

func (f *TokenFormat) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("TokenFormat", data, []TokenFormat{TokenFormatRelative})
	if err != nil {
		return err
	}
	*f = v
	return nil
}

type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type SemanticTokensParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SemanticTokensDeltaParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	PreviousResultID string                 `json:"previousResultId"`
}

type SemanticTokensRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// SemanticTokens holds the relative encoding: five integers per token.
type SemanticTokens struct {
	ResultID *string  `json:"resultId,omitempty"`
	Data     []uint32 `json:"data"`
}

type SemanticTokensPartialResult struct {
	Data []uint32 `json:"data"`
}

type SemanticTokensEdit struct {
	Start       uint32   `json:"start"`
	DeleteCount uint32   `json:"deleteCount"`
	Data        []uint32 `json:"data,omitempty"`
}

type SemanticTokensDelta struct {
	ResultID *string              `json:"resultId,omitempty"`
	Edits    []SemanticTokensEdit `json:"edits"`
}

type SemanticTokensDeltaPartialResult struct {
	Edits []SemanticTokensEdit `json:"edits"`
}

// SemanticTokensDeltaResult is SemanticTokens | SemanticTokensDelta.
type SemanticTokensDeltaResult struct {
	Value any
}

var semanticTokensDeltaResultShapes = union(
	shapeOf[SemanticTokens]("SemanticTokens"),
	shapeOf[SemanticTokensDelta]("SemanticTokensDelta"),
)

func (r *SemanticTokensDeltaResult) UnmarshalJSON(data []byte) error {
	v, err := semanticTokensDeltaResultShapes.decode("SemanticTokensDeltaResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r SemanticTokensDeltaResult) MarshalJSON() ([]byte, error) {
	return semanticTokensDeltaResultShapes.encode("SemanticTokensDeltaResult", r.Value)
}

func (r SemanticTokensDeltaResult) Tokens() (SemanticTokens, bool) {
	return variant[SemanticTokens](r.Value)
}

func (r SemanticTokensDeltaResult) Delta() (SemanticTokensDelta, bool) {
	return variant[SemanticTokensDelta](r.Value)
}

type SemanticTokensFullDelta struct {
	Delta *bool `json:"delta,omitempty"`
}

// SemanticTokensFullOption is boolean | { delta?: boolean }.
type SemanticTokensFullOption = BoolOr[SemanticTokensFullDelta]

type SemanticTokensRangeOptions struct{}

// SemanticTokensRangeOption is boolean | {}.
type SemanticTokensRangeOption = BoolOr[SemanticTokensRangeOptions]

type SemanticTokensOptions struct {
	WorkDoneProgressOptions
	Legend SemanticTokensLegend       `json:"legend"`
	Range  *SemanticTokensRangeOption `json:"range,omitempty"`
	Full   *SemanticTokensFullOption  `json:"full,omitempty"`
}

type SemanticTokensRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SemanticTokensOptions
	StaticRegistrationOptions
}
