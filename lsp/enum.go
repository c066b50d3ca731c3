package lsp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// decodeUintEnum decodes a closed uinteger enumeration whose members are the
// keys of names.
func decodeUintEnum[T ~uint32](name string, data []byte, names map[T]string) (T, error) {
	if isNull(data) {
		return 0, mismatch(name, "", "null is not a valid "+name)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, enumMismatch(name, data, err)
	}
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, &DecodeError{Kind: KindInvalidEnum, Type: name, Detail: fmt.Sprintf("%d is out of range", n), Err: err}
	}
	if _, ok := names[T(u)]; !ok {
		return 0, &DecodeError{Kind: KindInvalidEnum, Type: name, Detail: fmt.Sprintf("%d is not a known value", n)}
	}
	return T(u), nil
}

// decodeStringEnum decodes a closed string enumeration.
func decodeStringEnum[T ~string](name string, data []byte, known []T) (T, error) {
	if isNull(data) {
		return "", mismatch(name, "", "null is not a valid "+name)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", enumMismatch(name, data, err)
	}
	if !slices.Contains(known, T(s)) {
		return "", &DecodeError{Kind: KindInvalidEnum, Type: name, Detail: fmt.Sprintf("%q is not a known value", s)}
	}
	return T(s), nil
}

// enumMismatch reports a value of the wrong JSON type against the enumeration
// rather than the Go type it was staged in.
func enumMismatch(name string, data []byte, err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return asDecodeError(name, err)
	}
	return &DecodeError{
		Kind:   KindTypeMismatch,
		Type:   name,
		Detail: fmt.Sprintf("%s %s is not a valid %s", jsonKind(data), bytes.TrimSpace(data), name),
		Err:    err,
	}
}

func enumString[T ~uint32](name string, v T, names map[T]string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", name, uint32(v))
}
