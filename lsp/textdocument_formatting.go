package lsp

import (
	"encoding/json"
	"reflect"
)

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_formatting
type DocumentFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

// FormattingOptions carries the well-known options plus arbitrary
// [key: string]: boolean | integer | string properties in Extra.
type FormattingOptions struct {
	TabSize                uint32                     `json:"tabSize"`
	InsertSpaces           bool                       `json:"insertSpaces"`
	TrimTrailingWhitespace *bool                      `json:"trimTrailingWhitespace,omitempty"`
	InsertFinalNewline     *bool                      `json:"insertFinalNewline,omitempty"`
	TrimFinalNewlines      *bool                      `json:"trimFinalNewlines,omitempty"`
	Extra                  map[string]json.RawMessage `json:"-"`
}

type formattingOptions FormattingOptions

var formattingOptionKeys = func() map[string]bool {
	keys := make(map[string]bool)
	for _, f := range jsonFields(reflect.TypeFor[formattingOptions]()) {
		keys[f.name] = true
	}
	return keys
}()

func (o *FormattingOptions) UnmarshalJSON(data []byte) error {
	if err := checkShape("FormattingOptions", "", data, reflect.TypeFor[formattingOptions]()); err != nil {
		return err
	}
	var known formattingOptions
	if err := json.Unmarshal(data, &known); err != nil {
		return asDecodeError("FormattingOptions", err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return asDecodeError("FormattingOptions", err)
	}
	for k, v := range all {
		if formattingOptionKeys[k] {
			continue
		}
		switch jsonKind(v) {
		case "boolean", "number", "string":
		default:
			return mismatch("FormattingOptions", k, jsonKind(v)+" is not a boolean, integer or string")
		}
		if known.Extra == nil {
			known.Extra = make(map[string]json.RawMessage)
		}
		known.Extra[k] = v
	}
	*o = FormattingOptions(known)
	return nil
}

func (o FormattingOptions) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(formattingOptions(o))
	if err != nil || len(o.Extra) == 0 {
		return data, err
	}
	all := make(map[string]json.RawMessage, len(o.Extra)+5)
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, v := range o.Extra {
		if !formattingOptionKeys[k] {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

type DocumentFormattingOptions struct {
	WorkDoneProgressOptions
}

type DocumentFormattingRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentFormattingOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_rangeFormatting
type DocumentRangeFormattingParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
}

type DocumentRangeFormattingOptions struct {
	WorkDoneProgressOptions
	documentRangeFormattingProposed
}

type DocumentRangeFormattingRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentRangeFormattingOptions
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_onTypeFormatting
type DocumentOnTypeFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
	Ch           string                 `json:"ch"`
	Options      FormattingOptions      `json:"options"`
}

type DocumentOnTypeFormattingOptions struct {
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitempty"`
}

type DocumentOnTypeFormattingRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentOnTypeFormattingOptions
}
