package lsp

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// tagged is a union whose variants are told apart by the string value of one
// discriminant key, e.g. "kind": "begin".
type tagged struct {
	key      string
	variants map[string]shape
	// fallback decodes objects that carry no discriminant at all.
	fallback *shape
}

func (u tagged) decode(name string, data []byte) (any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, mismatch(name, "", jsonKind(data)+" is not an object")
	}
	raw, ok := fields[u.key]
	if !ok {
		if u.fallback != nil {
			return u.fallback.decode(data)
		}
		return nil, &DecodeError{Kind: KindMissingKey, Type: name, Field: u.key}
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, mismatch(name, u.key, jsonKind(raw)+" is not a string")
	}
	s, ok := u.variants[tag]
	if !ok {
		return nil, &DecodeError{
			Kind:   KindInvalidEnum,
			Type:   name,
			Field:  u.key,
			Detail: fmt.Sprintf("%q is not one of %s", tag, u.tags()),
		}
	}
	return s.decode(data)
}

// encode marshals v and checks that it carries the discriminant it is
// registered under.
func (u tagged) encode(name string, v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	t := reflect.TypeOf(v)
	if u.fallback != nil && u.fallback.typ == t {
		return json.Marshal(v)
	}
	for tag, s := range u.variants {
		if s.typ != t {
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, &EncodeError{Type: name, Err: err}
		}
		raw, ok := fields[u.key]
		if !ok {
			return nil, &EncodeError{Type: name, Detail: fmt.Sprintf("%s must have %s %q, has none", s.name, u.key, tag)}
		}
		var got string
		if err := json.Unmarshal(raw, &got); err != nil {
			return nil, &EncodeError{Type: name, Detail: fmt.Sprintf("%s %s is not a string", s.name, u.key), Err: err}
		}
		if got != tag {
			return nil, &EncodeError{Type: name, Detail: fmt.Sprintf("%s must have %s %q, has %q", s.name, u.key, tag, got)}
		}
		return data, nil
	}
	return nil, &EncodeError{Type: name, Detail: fmt.Sprintf("%s is not a variant", t)}
}

func (u tagged) tags() string {
	tags := make([]string, 0, len(u.variants))
	for tag := range u.variants {
		tags = append(tags, fmt.Sprintf("%q", tag))
	}
	slices.Sort(tags)
	return strings.Join(tags, ", ")
}
