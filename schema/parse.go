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
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/blinklabs-io/goeas"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	// IpfsHashType is the pseudo-type accepted for content-hash fields. It
	// is rewritten to bytes32 before grammar parsing, since content hashes
	// are stored on the wire as plain 32-byte values.
	IpfsHashType = "ipfsHash"

	bytes32Type = "bytes32"

	// Fields with this name and a bytes32 wire type have their values
	// transformed through the CID codec on encode
	ipfsHashFieldName = "ipfsHash"
)

// typeKind is the parsed shape of a schema field's type. Branching on the
// kind replaces repeated string inspection of the type tag.
type typeKind int

const (
	kindPrimitive typeKind = iota
	kindPrimitiveArray
	kindTuple
	kindTupleArray
)

// component is one (type, name) pair inside a tuple type
type component struct {
	Type string
	Name string
}

// declaration is a single parsed schema field before signature and default
// value expansion
type declaration struct {
	kind        typeKind
	baseType    string
	arraySuffix string
	components  []component
	name        string
}

var (
	fieldNameRegexp   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	typeNameRegexp    = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	arraySuffixRegexp = regexp.MustCompile(`^(\[[0-9]*\])+$`)
)

// checkTypeToken validates a primitive type token, optionally carrying an
// array suffix. The ABI library's own type parser ignores trailing junk, so
// the grammar is enforced here.
func checkTypeToken(t string) error {
	base := t
	if idx := strings.IndexByte(t, '['); idx >= 0 {
		base = t[:idx]
		if !arraySuffixRegexp.MatchString(t[idx:]) {
			return fmt.Errorf("malformed array suffix in type %q", t)
		}
	}
	if !typeNameRegexp.MatchString(base) {
		return fmt.Errorf("invalid type %q", t)
	}
	return nil
}

// parseDeclaration parses one comma-separated schema field declaration:
// either "type" or "type name", where type is a primitive (optionally with
// an array suffix) or a parenthesized tuple component list
func parseDeclaration(decl string) (*declaration, error) {
	decl = strings.TrimSpace(decl)
	if decl == "" {
		return nil, errors.New("empty field declaration")
	}
	if decl[0] == '(' {
		return parseTupleDeclaration(decl)
	}
	return parsePrimitiveDeclaration(decl)
}

func parsePrimitiveDeclaration(decl string) (*declaration, error) {
	tokens := strings.Fields(decl)
	if len(tokens) > 2 {
		return nil, fmt.Errorf("malformed field declaration %q", decl)
	}
	d := &declaration{kind: kindPrimitive}
	typeToken := rewriteType(tokens[0])
	if err := checkTypeToken(typeToken); err != nil {
		return nil, err
	}
	if idx := strings.IndexByte(typeToken, '['); idx >= 0 {
		d.baseType = typeToken[:idx]
		d.arraySuffix = typeToken[idx:]
		d.kind = kindPrimitiveArray
	} else {
		d.baseType = typeToken
	}
	if len(tokens) == 2 {
		if !fieldNameRegexp.MatchString(tokens[1]) {
			return nil, fmt.Errorf("invalid field name %q", tokens[1])
		}
		d.name = tokens[1]
	}
	return d, nil
}

func parseTupleDeclaration(decl string) (*declaration, error) {
	depth := 0
	closeIdx := -1
	for i := 0; i < len(decl); i++ {
		switch decl[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", decl)
	}
	components, err := parseComponents(decl[1:closeIdx])
	if err != nil {
		return nil, err
	}
	d := &declaration{
		kind:       kindTuple,
		baseType:   "tuple",
		components: components,
	}
	rest := strings.Fields(decl[closeIdx+1:])
	switch len(rest) {
	case 0:
		// Anonymous tuple
	case 1:
		if arraySuffixRegexp.MatchString(rest[0]) {
			d.arraySuffix = rest[0]
		} else if fieldNameRegexp.MatchString(rest[0]) {
			d.name = rest[0]
		} else {
			return nil, fmt.Errorf(
				"malformed tuple declaration %q",
				decl,
			)
		}
	case 2:
		if !arraySuffixRegexp.MatchString(rest[0]) {
			return nil, fmt.Errorf(
				"malformed array suffix in %q",
				decl,
			)
		}
		if !fieldNameRegexp.MatchString(rest[1]) {
			return nil, fmt.Errorf("invalid field name %q", rest[1])
		}
		d.arraySuffix = rest[0]
		d.name = rest[1]
	default:
		return nil, fmt.Errorf("malformed tuple declaration %q", decl)
	}
	if d.arraySuffix != "" {
		d.kind = kindTupleArray
	}
	return d, nil
}

// parseComponents parses the component list inside a tuple type's
// parentheses. Components are primitives, optionally named
func parseComponents(inner string) ([]component, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, errors.New("empty tuple component list")
	}
	if strings.ContainsAny(inner, "()") {
		return nil, errors.New("nested tuple components are not supported")
	}
	parts := strings.Split(inner, ",")
	components := make([]component, 0, len(parts))
	for _, part := range parts {
		tokens := strings.Fields(part)
		if len(tokens) > 0 {
			tokens[0] = rewriteType(tokens[0])
			if err := checkTypeToken(tokens[0]); err != nil {
				return nil, err
			}
		}
		switch len(tokens) {
		case 1:
			components = append(
				components,
				component{Type: tokens[0]},
			)
		case 2:
			if !fieldNameRegexp.MatchString(tokens[1]) {
				return nil, fmt.Errorf(
					"invalid component name %q",
					tokens[1],
				)
			}
			components = append(
				components,
				component{
					Type: tokens[0],
					Name: tokens[1],
				},
			)
		default:
			return nil, fmt.Errorf(
				"malformed tuple component %q",
				part,
			)
		}
	}
	return components, nil
}

// rewriteType replaces the content-hash pseudo-type with its bytes32 wire
// type, preserving any array suffix
func rewriteType(t string) string {
	if t == IpfsHashType {
		return bytes32Type
	}
	if rest, ok := strings.CutPrefix(t, IpfsHashType+"["); ok {
		return bytes32Type + "[" + rest
	}
	return t
}

// buildField expands a parsed declaration into a full schema field: the
// canonical type, the signature consumed by the ABI codec, the default
// value, and the structured ABI type
func buildField(d *declaration) (schemaField, error) {
	field := schemaField{
		kind:       d.kind,
		components: d.components,
	}
	field.Name = d.name
	switch d.kind {
	case kindTuple, kindTupleArray:
		compTypes := make([]string, len(d.components))
		compSigs := make([]string, len(d.components))
		for i, c := range d.components {
			compTypes[i] = c.Type
			compSigs[i] = c.Type
			if c.Name != "" {
				compSigs[i] = c.Type + " " + c.Name
			}
		}
		field.Type = "(" + strings.Join(compTypes, ",") + ")" + d.arraySuffix
		field.Signature = "(" + strings.Join(
			compSigs,
			",",
		) + ")" + d.arraySuffix
	default:
		field.Type = d.baseType + d.arraySuffix
		field.Signature = field.Type
	}
	if d.name != "" {
		field.Signature += " " + d.name
	}
	field.Value = defaultForType(field.Type)
	abiType, err := newABIType(d)
	if err != nil {
		return field, err
	}
	field.abiType = abiType
	return field, nil
}

// newABIType constructs the structured ABI type for a declaration. Unnamed
// tuple components receive positional placeholder names, since the ABI
// library requires named components to build its tuple representation.
func newABIType(d *declaration) (abi.Type, error) {
	if d.kind == kindTuple || d.kind == kindTupleArray {
		components := make([]abi.ArgumentMarshaling, len(d.components))
		for i, c := range d.components {
			name := c.Name
			if name == "" {
				name = fmt.Sprintf("arg%d", i)
			}
			components[i] = abi.ArgumentMarshaling{
				Name: name,
				Type: c.Type,
			}
		}
		return abi.NewType("tuple"+d.arraySuffix, "", components)
	}
	return abi.NewType(d.baseType+d.arraySuffix, "", nil)
}

// defaultForType returns the type-appropriate zero value for a canonical
// type tag. Array-typed fields always default to an empty sequence.
func defaultForType(canonicalType string) any {
	if strings.HasSuffix(canonicalType, "]") {
		return []any{}
	}
	switch {
	case canonicalType == "bool":
		return false
	case strings.Contains(canonicalType, "uint"):
		return "0"
	case canonicalType == "address":
		return goeas.ZeroAddress.Hex()
	default:
		return ""
	}
}
