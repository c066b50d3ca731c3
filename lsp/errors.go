package lsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a payload could not be decoded.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota + 1
	KindTypeMismatch
	KindMissingKey
	KindInvalidEnum
	KindNoMatchingCandidate
	KindUnknownMethod
)

var errorKindNames = map[ErrorKind]string{
	KindSyntax:              "syntax error",
	KindTypeMismatch:        "type mismatch",
	KindMissingKey:          "missing required key",
	KindInvalidEnum:         "invalid enumerated value",
	KindNoMatchingCandidate: "no matching shape",
	KindUnknownMethod:       "unknown method",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is. A *DecodeError matches the sentinel of its kind.
var (
	ErrSyntax              = errors.New("lsp: syntax error")
	ErrTypeMismatch        = errors.New("lsp: type mismatch")
	ErrMissingKey          = errors.New("lsp: missing required key")
	ErrInvalidEnum         = errors.New("lsp: invalid enumerated value")
	ErrNoMatchingCandidate = errors.New("lsp: no matching shape")
	ErrUnknownMethod       = errors.New("lsp: unknown method")
)

var errorKindSentinels = map[ErrorKind]error{
	KindSyntax:              ErrSyntax,
	KindTypeMismatch:        ErrTypeMismatch,
	KindMissingKey:          ErrMissingKey,
	KindInvalidEnum:         ErrInvalidEnum,
	KindNoMatchingCandidate: ErrNoMatchingCandidate,
	KindUnknownMethod:       ErrUnknownMethod,
}

// CandidateError records why one shape of a union rejected a payload.
type CandidateError struct {
	Shape string
	Err   error
}

// DecodeError is returned for every payload that does not fit its declared shape.
type DecodeError struct {
	Kind ErrorKind
	// Type is the LSP type being decoded, e.g. "Position" or "HoverContents".
	Type string
	// Field is the dotted path of the offending key, empty for the value itself.
	Field  string
	Detail string
	// Candidates is set for KindNoMatchingCandidate.
	Candidates []CandidateError
	Err        error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("lsp: decode ")
	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Field != "" {
		fmt.Fprintf(&b, " at %q", e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.Candidates) > 0 {
		b.WriteString(" (tried ")
		for i, c := range e.Candidates {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s: %s", c.Shape, reason(c.Err))
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return errorKindSentinels[e.Kind] == target
}

// reason strips the package prefix so candidate lists stay readable.
func reason(err error) string {
	var de *DecodeError
	if errors.As(err, &de) {
		msg := de.Kind.String()
		if de.Field != "" {
			msg += fmt.Sprintf(" %q", de.Field)
		}
		if de.Detail != "" {
			msg += ": " + de.Detail
		}
		return msg
	}
	return err.Error()
}

// EncodeError is returned when a value cannot be written in its wire shape.
type EncodeError struct {
	Type   string
	Detail string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Err != nil && e.Detail == "" {
		return fmt.Sprintf("lsp: encode %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("lsp: encode %s: %s", e.Type, e.Detail)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// asDecodeError turns an encoding/json failure into a *DecodeError. Errors that
// already are decode errors pass through so the innermost cause is reported.
func asDecodeError(typ string, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{
			Kind:   KindTypeMismatch,
			Type:   typ,
			Field:  typeErr.Field,
			Detail: fmt.Sprintf("%s is not a valid %s", typeErr.Value, typeErr.Type),
			Err:    err,
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{
			Kind:   KindSyntax,
			Type:   typ,
			Detail: fmt.Sprintf("%v (offset %d)", syntaxErr, syntaxErr.Offset),
			Err:    err,
		}
	}
	return &DecodeError{Kind: KindSyntax, Type: typ, Detail: err.Error(), Err: err}
}

func mismatch(typ, field, detail string) *DecodeError {
	return &DecodeError{Kind: KindTypeMismatch, Type: typ, Field: field, Detail: detail}
}
