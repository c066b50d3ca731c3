package lsp

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// shape is one candidate of a union: a display name and the Go type that
// decodes it.
type shape struct {
	name string
	typ  reflect.Type
	// keys holds the wire keys of object shapes, elemKeys those of the
	// elements of arrays of objects; nil for everything else.
	keys     map[string]bool
	elemKeys map[string]bool
	decode   func(data []byte) (any, error)
}

func shapeOf[T any](name string) shape {
	t := reflect.TypeFor[T]()
	s := shape{
		name: name,
		typ:  t,
		decode: func(data []byte) (any, error) {
			var v T
			if err := Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
	s.keys = objectShapeKeys(t)
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		s.elemKeys = objectShapeKeys(t.Elem())
	}
	return s
}

// objectShapeKeys returns the wire keys of a plain struct type, or nil when t
// is not a struct or decodes itself.
func objectShapeKeys(t reflect.Type) map[string]bool {
	if t.Kind() != reflect.Struct || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}
	keys := make(map[string]bool)
	for _, f := range jsonFields(t) {
		keys[f.name] = true
	}
	return keys
}

// exact reports whether every top-level key of data is declared by the shape.
// For arrays of objects every element is checked.
func (s shape) exact(data []byte) error {
	if s.keys != nil {
		return s.declared("", data, s.keys)
	}
	if s.elemKeys == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	for i, item := range items {
		if err := s.declared(fmt.Sprintf("[%d]", i), item, s.elemKeys); err != nil {
			return err
		}
	}
	return nil
}

func (s shape) declared(path string, data []byte, keys map[string]bool) error {
	for _, k := range objectKeys(data) {
		if !keys[k] {
			return &DecodeError{Kind: KindTypeMismatch, Type: s.name, Field: join(path, k), Detail: "key not declared by this shape"}
		}
	}
	return nil
}

// shapes is an ordered union of candidate shapes. Order is the priority order
// of the protocol's "A | B | C" declaration and never changes at runtime.
type shapes []shape

func union(candidates ...shape) shapes { return candidates }

// decode returns the value of the first candidate that accepts data. The first
// pass rejects objects with undeclared keys so that structurally overlapping
// shapes resolve to the one that fits exactly; the second pass drops that
// restriction so payloads carrying newer protocol fields still decode.
func (u shapes) decode(name string, data []byte) (any, error) {
	tried := make([]CandidateError, 0, len(u))
	inexact := make([]bool, len(u))
	for i, s := range u {
		if err := s.exact(data); err != nil {
			tried = append(tried, CandidateError{Shape: s.name, Err: err})
			inexact[i] = true
			continue
		}
		v, err := s.decode(data)
		if err == nil {
			return v, nil
		}
		tried = append(tried, CandidateError{Shape: s.name, Err: err})
	}
	for i, s := range u {
		if !inexact[i] {
			continue
		}
		v, err := s.decode(data)
		if err == nil {
			return v, nil
		}
		tried[i].Err = err
	}
	return nil, &DecodeError{
		Kind:       KindNoMatchingCandidate,
		Type:       name,
		Detail:     jsonKind(data) + " matches none of " + u.names(),
		Candidates: tried,
	}
}

// encode marshals v, which must be one of the union's shapes. A nil v is null.
func (u shapes) encode(name string, v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	t := reflect.TypeOf(v)
	if !slices.ContainsFunc(u, func(s shape) bool { return s.typ == t }) {
		return nil, &EncodeError{Type: name, Detail: fmt.Sprintf("%s is not one of %s", t, u.names())}
	}
	return json.Marshal(v)
}

func (u shapes) names() string {
	out := ""
	for i, s := range u {
		if i > 0 {
			out += " | "
		}
		out += s.name
	}
	return out
}

// variant type-asserts a union's held value.
func variant[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// BoolOr is a capability that is either a plain boolean or an options object.
type BoolOr[O any] struct {
	Value any
}

func NewBool[O any](b bool) *BoolOr[O] { return &BoolOr[O]{Value: b} }

func NewOptions[O any](o O) *BoolOr[O] { return &BoolOr[O]{Value: o} }

func (u BoolOr[O]) shapes() shapes {
	return union(shapeOf[bool]("boolean"), shapeOf[O](typeName(reflect.TypeFor[O]())))
}

func (u *BoolOr[O]) UnmarshalJSON(data []byte) error {
	v, err := u.shapes().decode("boolean | "+typeName(reflect.TypeFor[O]()), data)
	if err != nil {
		return err
	}
	u.Value = v
	return nil
}

func (u BoolOr[O]) MarshalJSON() ([]byte, error) {
	return u.shapes().encode("boolean | "+typeName(reflect.TypeFor[O]()), u.Value)
}

// Enabled reports whether the capability is switched on: true, or any options object.
func (u *BoolOr[O]) Enabled() bool {
	if u == nil || u.Value == nil {
		return false
	}
	if b, ok := u.Value.(bool); ok {
		return b
	}
	return true
}

func (u *BoolOr[O]) Options() (O, bool) {
	if u == nil {
		var zero O
		return zero, false
	}
	return variant[O](u.Value)
}

// Provider is a server capability that is a boolean, its options, or its
// registration options (which add a document selector and registration id).
type Provider[O, R any] struct {
	Value any
}

func (u Provider[O, R]) shapes() shapes {
	return union(
		shapeOf[bool]("boolean"),
		shapeOf[O](typeName(reflect.TypeFor[O]())),
		shapeOf[R](typeName(reflect.TypeFor[R]())),
	)
}

func (u *Provider[O, R]) UnmarshalJSON(data []byte) error {
	s := u.shapes()
	v, err := s.decode(s.names(), data)
	if err != nil {
		return err
	}
	u.Value = v
	return nil
}

func (u Provider[O, R]) MarshalJSON() ([]byte, error) {
	s := u.shapes()
	return s.encode(s.names(), u.Value)
}

func (u *Provider[O, R]) Enabled() bool {
	if u == nil || u.Value == nil {
		return false
	}
	if b, ok := u.Value.(bool); ok {
		return b
	}
	return true
}

func (u *Provider[O, R]) Options() (O, bool) {
	if u == nil {
		var zero O
		return zero, false
	}
	return variant[O](u.Value)
}

func (u *Provider[O, R]) RegistrationOptions() (R, bool) {
	if u == nil {
		var zero R
		return zero, false
	}
	return variant[R](u.Value)
}
