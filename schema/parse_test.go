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
	"reflect"
	"testing"
)

func TestParseSchema(t *testing.T) {
	testDefs := []struct {
		schema        string
		expectedItems []SchemaItem
	}{
		{
			schema:        "",
			expectedItems: nil,
		},
		{
			schema: "uint256 eventId",
			expectedItems: []SchemaItem{
				{
					Name:      "eventId",
					Type:      "uint256",
					Signature: "uint256 eventId",
					Value:     "0",
				},
			},
		},
		{
			schema: "uint256 eventId, uint8 voteIndex",
			expectedItems: []SchemaItem{
				{
					Name:      "eventId",
					Type:      "uint256",
					Signature: "uint256 eventId",
					Value:     "0",
				},
				{
					Name:      "voteIndex",
					Type:      "uint8",
					Signature: "uint8 voteIndex",
					Value:     "0",
				},
			},
		},
		{
			schema: "bool like",
			expectedItems: []SchemaItem{
				{
					Name:      "like",
					Type:      "bool",
					Signature: "bool like",
					Value:     false,
				},
			},
		},
		{
			schema: "address voter",
			expectedItems: []SchemaItem{
				{
					Name:      "voter",
					Type:      "address",
					Signature: "address voter",
					Value:     "0x0000000000000000000000000000000000000000",
				},
			},
		},
		{
			schema: "string note, bytes payload",
			expectedItems: []SchemaItem{
				{
					Name:      "note",
					Type:      "string",
					Signature: "string note",
					Value:     "",
				},
				{
					Name:      "payload",
					Type:      "bytes",
					Signature: "bytes payload",
					Value:     "",
				},
			},
		},
		// Anonymous field
		{
			schema: "uint256",
			expectedItems: []SchemaItem{
				{
					Name:      "",
					Type:      "uint256",
					Signature: "uint256",
					Value:     "0",
				},
			},
		},
		// Array fields default to an empty sequence
		{
			schema: "uint256[] scores",
			expectedItems: []SchemaItem{
				{
					Name:      "scores",
					Type:      "uint256[]",
					Signature: "uint256[] scores",
					Value:     []any{},
				},
			},
		},
		// The ipfsHash pseudo-type is stored as bytes32, keeping the
		// field name
		{
			schema: "ipfsHash ipfsHash",
			expectedItems: []SchemaItem{
				{
					Name:      "ipfsHash",
					Type:      "bytes32",
					Signature: "bytes32 ipfsHash",
					Value:     "",
				},
			},
		},
		{
			schema: "(uint256 x, uint256 y) point",
			expectedItems: []SchemaItem{
				{
					Name:      "point",
					Type:      "(uint256,uint256)",
					Signature: "(uint256 x,uint256 y) point",
					Value:     "0",
				},
			},
		},
		// Anonymous tuple
		{
			schema: "(uint256 x, uint256 y)",
			expectedItems: []SchemaItem{
				{
					Name:      "",
					Type:      "(uint256,uint256)",
					Signature: "(uint256 x,uint256 y)",
					Value:     "0",
				},
			},
		},
		{
			schema: "(uint256 value, bool flag)[] entries",
			expectedItems: []SchemaItem{
				{
					Name:      "entries",
					Type:      "(uint256,bool)[]",
					Signature: "(uint256 value,bool flag)[] entries",
					Value:     []any{},
				},
			},
		},
		// Unnamed tuple components
		{
			schema: "(uint256,bool) entry",
			expectedItems: []SchemaItem{
				{
					Name:      "entry",
					Type:      "(uint256,bool)",
					Signature: "(uint256,bool) entry",
					Value:     "0",
				},
			},
		},
	}
	for _, testDef := range testDefs {
		encoder, err := New(testDef.schema)
		if err != nil {
			t.Fatalf(
				"unexpected error parsing schema %q: %s",
				testDef.schema,
				err,
			)
		}
		var items []SchemaItem
		if len(encoder.fields) > 0 {
			items = encoder.Items()
		}
		if !reflect.DeepEqual(items, testDef.expectedItems) {
			t.Fatalf(
				"did not get expected items for schema %q\n  got:    %#v\n  wanted: %#v",
				testDef.schema,
				items,
				testDef.expectedItems,
			)
		}
	}
}

func TestParseSchemaInvalid(t *testing.T) {
	testDefs := []string{
		"uint256 eventId extra",
		"(uint256 x",
		"uint256 eventId,,bool like",
		"notatype foo",
		"(notatype x) point",
		"((uint256 x) inner) outer",
		"()",
		"uint256[ scores",
		"uint256 1name",
		"(uint256 x)[]2 points",
	}
	for _, schemaDef := range testDefs {
		_, err := New(schemaDef)
		if err == nil {
			t.Fatalf(
				"expected error parsing schema %q, got none",
				schemaDef,
			)
		}
		if !errors.Is(err, ErrSchemaParse) {
			t.Fatalf(
				"error for schema %q does not wrap ErrSchemaParse: %s",
				schemaDef,
				err,
			)
		}
	}
}

func TestParseSchemaFieldKinds(t *testing.T) {
	encoder, err := New(
		"uint256 id, uint8[] counts, (uint256 x, uint256 y) point, (uint256 value, bool flag)[] entries",
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectedKinds := []typeKind{
		kindPrimitive,
		kindPrimitiveArray,
		kindTuple,
		kindTupleArray,
	}
	if len(encoder.fields) != len(expectedKinds) {
		t.Fatalf(
			"unexpected field count: %d",
			len(encoder.fields),
		)
	}
	for i, expected := range expectedKinds {
		if encoder.fields[i].kind != expected {
			t.Fatalf(
				"unexpected kind for field %d: got %d, wanted %d",
				i,
				encoder.fields[i].kind,
				expected,
			)
		}
	}
}
