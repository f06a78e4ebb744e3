// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/blinklabs-io/goeas/qmhash"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// SchemaItem is one declared field of a schema: its name (possibly empty),
// canonical type, the signature consumed by the ABI codec, and a
// type-appropriate default value
type SchemaItem struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Signature string `json:"signature"`
	Value     any    `json:"value"`
}

// schemaField extends SchemaItem with the parsed type information used
// internally by the encode/decode paths
type schemaField struct {
	SchemaItem
	kind       typeKind
	components []component
	abiType    abi.Type
}

// DataField is a single named value provided to EncodeData. Fields must
// match the schema's declared fields one-to-one by position.
type DataField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// DecodedItem is a decoded value with its field or component name
// re-attached. For tuple fields Value is a []DecodedItem of the components;
// for tuple-array fields it is a [][]DecodedItem, one component list per
// element.
type DecodedItem struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// DecodedField is one decoded schema field
type DecodedField struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Signature string      `json:"signature"`
	Value     DecodedItem `json:"value"`
}

// SchemaEncoder encodes and decodes attestation data for a single schema.
// The field list is built once at construction and never mutated, so a
// SchemaEncoder is safe for concurrent use.
type SchemaEncoder struct {
	schema string
	fields []schemaField
	args   abi.Arguments
}

// New creates a SchemaEncoder from a schema string of comma-separated
// "type name" field declarations, for example:
//
//	uint256 eventId, uint8 voteIndex
//	(uint256 x, uint256 y) point, bool active
//	ipfsHash ipfsHash
//
// An empty schema string is legal and describes a zero-field record. A
// malformed schema returns an error wrapping ErrSchemaParse.
func New(schemaString string) (*SchemaEncoder, error) {
	e := &SchemaEncoder{
		schema: schemaString,
	}
	trimmed := strings.TrimSpace(schemaString)
	if trimmed == "" {
		return e, nil
	}
	for _, declStr := range splitTopLevel(trimmed, ',') {
		decl, err := parseDeclaration(declStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchemaParse, err)
		}
		field, err := buildField(decl)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchemaParse, err)
		}
		e.fields = append(e.fields, field)
		e.args = append(
			e.args,
			abi.Argument{Name: field.Name, Type: field.abiType},
		)
	}
	return e, nil
}

// Schema returns the original schema string
func (e *SchemaEncoder) Schema() string {
	return e.schema
}

// Items returns the parsed schema fields in declaration order
func (e *SchemaEncoder) Items() []SchemaItem {
	items := make([]SchemaItem, len(e.fields))
	for i, field := range e.fields {
		items[i] = field.SchemaItem
	}
	return items
}

// EncodeData encodes the provided field values into a single canonical
// binary blob following the schema. The provided fields must match the
// schema's fields one-to-one by position: the field count, each field's
// type (canonical type, full signature, or the content-hash pseudo-type for
// bytes32 fields), and each field's name are all validated before any
// encoding happens.
func (e *SchemaEncoder) EncodeData(fields []DataField) ([]byte, error) {
	if len(fields) != len(e.fields) {
		return nil, FieldCountError{
			Expected: len(e.fields),
			Actual:   len(fields),
		}
	}
	values := make([]any, len(fields))
	for i, provided := range fields {
		field := e.fields[i]
		if !typeMatches(provided.Type, field) {
			return nil, FieldTypeError{
				Index:    i,
				Expected: field.Type,
				Actual:   provided.Type,
			}
		}
		if provided.Name != field.Name {
			return nil, FieldNameError{
				Index:    i,
				Expected: field.Name,
				Actual:   provided.Name,
			}
		}
		value := provided.Value
		if field.Type == bytes32Type {
			if field.Name == ipfsHashFieldName {
				packed, err := qmhash.EncodeValue(value)
				if err != nil {
					return nil, fmt.Errorf(
						"failed to encode content-hash field %q: %w",
						field.Name,
						err,
					)
				}
				value = packed
			} else if s, ok := value.(string); ok && !isHexString(s) {
				value = formatBytes32String(s)
			}
		}
		coerced, err := coerceValue(field.abiType, value)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to encode field %d (%q): %w",
				i,
				field.Name,
				err,
			)
		}
		values[i] = coerced
	}
	return e.args.Pack(values...)
}

// DecodeData decodes a binary blob produced by EncodeData (or an equivalent
// encoder for the same schema) back into named, typed values. The
// underlying ABI encoding is positional and carries no names, so field and
// tuple-component names are reconstructed from the schema.
func (e *SchemaEncoder) DecodeData(data []byte) ([]DecodedField, error) {
	raw, err := e.args.UnpackValues(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	if len(raw) != len(e.fields) {
		return nil, fmt.Errorf(
			"decoded value count %d does not match schema field count %d",
			len(raw),
			len(e.fields),
		)
	}
	decoded := make([]DecodedField, len(e.fields))
	for i, field := range e.fields {
		wrapped, err := field.wrapValue(raw[i])
		if err != nil {
			return nil, err
		}
		decoded[i] = DecodedField{
			Name:      field.Name,
			Type:      field.Type,
			Signature: field.Signature,
			Value:     wrapped,
		}
	}
	return decoded, nil
}

// IsEncodedDataValid reports whether the provided data decodes cleanly
// against the schema. It never returns an error.
func (e *SchemaEncoder) IsEncodedDataValid(data []byte) bool {
	_, err := e.DecodeData(data)
	return err == nil
}

// wrapValue re-attaches the field name to a raw decoded value, recursing
// into tuple components
func (f *schemaField) wrapValue(raw any) (DecodedItem, error) {
	item := DecodedItem{
		Name: f.Name,
		Type: f.Type,
	}
	switch f.kind {
	case kindTuple:
		components, err := f.wrapTuple(raw)
		if err != nil {
			return item, err
		}
		item.Value = components
	case kindTupleArray:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return item, fmt.Errorf(
				"expected sequence value for field %q, got %T",
				f.Name,
				raw,
			)
		}
		if rv.Len() == 0 {
			item.Value = raw
			return item, nil
		}
		lists := make([][]DecodedItem, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			components, err := f.wrapTuple(rv.Index(i).Interface())
			if err != nil {
				return item, err
			}
			lists[i] = components
		}
		item.Value = lists
	default:
		item.Value = raw
	}
	return item, nil
}

// wrapTuple pairs a decoded tuple value's members with the schema's
// component names by position
func (f *schemaField) wrapTuple(raw any) ([]DecodedItem, error) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf(
			"expected tuple value for field %q, got %T",
			f.Name,
			raw,
		)
	}
	if rv.NumField() != len(f.components) {
		return nil, fmt.Errorf(
			"tuple value for field %q has %d members, schema declares %d components",
			f.Name,
			rv.NumField(),
			len(f.components),
		)
	}
	components := make([]DecodedItem, len(f.components))
	for i, c := range f.components {
		components[i] = DecodedItem{
			Name:  c.Name,
			Type:  c.Type,
			Value: rv.Field(i).Interface(),
		}
	}
	return components, nil
}

// typeMatches reports whether a caller-provided type string is compatible
// with a schema field: the canonical type, the full signature (whitespace
// insignificant), or the content-hash pseudo-type for bytes32 fields
func typeMatches(provided string, field schemaField) bool {
	stripped := stripWhitespace(provided)
	if stripped == field.Type {
		return true
	}
	if stripped == stripWhitespace(field.Signature) {
		return true
	}
	return stripped == IpfsHashType && field.Type == bytes32Type
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// splitTopLevel splits on a separator, ignoring separators nested inside
// parentheses
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
