package lsp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	rawMessageType  = reflect.TypeFor[json.RawMessage]()
)

// Unmarshal decodes data into v and enforces the wire shape of v's type: every
// field without omitempty in its json tag must be present, closed enumerations
// must hold a known value and unions must match one of their shapes.
// All failures are *DecodeError.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{Kind: KindTypeMismatch, Type: fmt.Sprintf("%T", v), Detail: "target must be a non-nil pointer"}
	}
	t := rv.Type().Elem()
	name := typeName(t)
	if !json.Valid(data) {
		var scratch any
		return asDecodeError(name, json.Unmarshal(data, &scratch))
	}
	if err := checkShape(name, "", data, t); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return asDecodeError(name, err)
	}
	return nil
}

// Marshal encodes v in its wire shape. Required array and map fields that are
// nil are sent as empty rather than null.
func Marshal(v any) ([]byte, error) {
	if v != nil {
		v = emptyRequired(reflect.ValueOf(v)).Interface()
	}
	data, err := json.Marshal(v)
	if err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			return nil, ee
		}
		return nil, &EncodeError{Type: fmt.Sprintf("%T", v), Err: err}
	}
	return data, nil
}

func typeName(t reflect.Type) string {
	switch {
	case t.Name() != "":
		return t.Name()
	case t.Kind() == reflect.Pointer:
		return typeName(t.Elem())
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return typeName(t.Elem()) + "[]"
	}
	return t.String()
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// jsonKind reports the JSON type of a raw value from its first byte.
func jsonKind(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "empty"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	return "number"
}

// nullable reports whether a value of type t may be null on the wire. Arrays
// and maps may only be null when their field is tagged nullable.
func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return t == rawMessageType
}

// checkShape walks data alongside t and reports the first required key that is
// missing or null where the Go type cannot hold null. Types with their own
// UnmarshalJSON validate themselves and are only checked for null.
func checkShape(typ, path string, data []byte, t reflect.Type) error {
	if isNull(data) {
		if nullable(t) {
			return nil
		}
		return mismatch(typ, path, "null is not a valid "+typeName(t))
	}
	if t.Kind() == reflect.Pointer {
		return checkShape(typ, path, data, t.Elem())
	}
	if t == rawMessageType || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return mismatch(typ, path, jsonKind(data)+" is not an object")
		}
		for _, f := range jsonFields(t) {
			raw, ok := obj[f.name]
			if !ok {
				if f.required {
					return &DecodeError{Kind: KindMissingKey, Type: typ, Field: join(path, f.name)}
				}
				continue
			}
			if isNull(raw) && (!f.required || f.nullable) {
				continue
			}
			if err := checkShape(typ, join(path, f.name), raw, f.typ); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return mismatch(typ, path, jsonKind(data)+" is not an array")
		}
		if t.Kind() == reflect.Array && len(items) != t.Len() {
			return mismatch(typ, path, fmt.Sprintf("array of %d is not a tuple of %d", len(items), t.Len()))
		}
		for i, item := range items {
			if err := checkShape(typ, fmt.Sprintf("%s[%d]", path, i), item, t.Elem()); err != nil {
				return err
			}
		}
	case reflect.Map:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return mismatch(typ, path, jsonKind(data)+" is not an object")
		}
		for k, v := range obj {
			if err := checkShape(typ, join(path, k), v, t.Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

type jsonField struct {
	name     string
	required bool
	nullable bool
	typ      reflect.Type
}

// tagOptions splits a json struct tag into its key and its option flags.
// Besides omitempty, the nullable option marks a required array that the
// protocol declares as T[] | null.
func tagOptions(f reflect.StructField) (name string, omitempty, nullable bool) {
	name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "omitempty":
			omitempty = true
		case "nullable":
			nullable = true
		}
	}
	return name, omitempty, nullable
}

// jsonFields lists the wire keys of struct type t, flattening embedded structs
// the same way encoding/json does.
func jsonFields(t reflect.Type) []jsonField {
	var fields []jsonField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("json") == "-" {
			continue
		}
		name, omitempty, nullable := tagOptions(f)
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, jsonFields(ft)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields = append(fields, jsonField{
			name:     name,
			required: !omitempty,
			nullable: nullable,
			typ:      f.Type,
		})
	}
	return fields
}

// objectKeys returns the top-level keys of a JSON object, or nil if data is not one.
func objectKeys(data []byte) []string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys
}

// emptyRequired returns a copy of v in which every nil array or map held by a
// required, non-nullable field is replaced by an empty one. Fields of
// unexported embedded structs are copied as they are.
func emptyRequired(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(emptyRequired(v.Elem()))
		return p
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(emptyRequired(v.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			fv := out.Field(i)
			if !fv.CanSet() {
				continue
			}
			nv := emptyRequired(v.Field(i))
			if mustBeEmpty(v.Type().Field(i), nv) {
				nv = emptyOf(nv.Type())
			}
			fv.Set(nv)
		}
		return out
	case reflect.Slice:
		if v.IsNil() || v.Type() == rawMessageType {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(emptyRequired(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(emptyRequired(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), emptyRequired(iter.Value()))
		}
		return out
	}
	return v
}

func mustBeEmpty(f reflect.StructField, v reflect.Value) bool {
	if f.Anonymous || f.Tag.Get("json") == "-" || f.Type == rawMessageType {
		return false
	}
	if (v.Kind() != reflect.Slice && v.Kind() != reflect.Map) || !v.IsNil() {
		return false
	}
	_, omitempty, nullable := tagOptions(f)
	return !omitempty && !nullable
}

func emptyOf(t reflect.Type) reflect.Value {
	if t.Kind() == reflect.Map {
		return reflect.MakeMap(t)
	}
	return reflect.MakeSlice(t, 0, 0)
}
