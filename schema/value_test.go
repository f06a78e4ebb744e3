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
	"encoding/json"
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

func mustNewType(t *testing.T, typeStr string) abi.Type {
	abiType, err := abi.NewType(typeStr, "", nil)
	if err != nil {
		t.Fatalf("failed to create ABI type %q: %s", typeStr, err)
	}
	return abiType
}

func TestCoerceValue(t *testing.T) {
	testDefs := []struct {
		abiType       string
		value         any
		expectedValue any
		expectedError bool
	}{
		// uint256 always becomes *big.Int
		{
			abiType:       "uint256",
			value:         big.NewInt(123),
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         "123",
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         "0x7b",
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         json.Number("123"),
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         int(123),
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         float64(123),
			expectedValue: big.NewInt(123),
		},
		{
			abiType:       "uint256",
			value:         float64(1.5),
			expectedError: true,
		},
		{
			abiType:       "uint256",
			value:         "not a number",
			expectedError: true,
		},
		// Sized types use their native width
		{
			abiType:       "uint8",
			value:         json.Number("5"),
			expectedValue: uint8(5),
		},
		{
			abiType:       "uint8",
			value:         300,
			expectedError: true,
		},
		{
			abiType:       "int8",
			value:         -128,
			expectedValue: int8(-128),
		},
		{
			abiType:       "int8",
			value:         -129,
			expectedError: true,
		},
		{
			abiType:       "uint64",
			value:         "18446744073709551615",
			expectedValue: uint64(18446744073709551615),
		},
		{
			abiType:       "bool",
			value:         true,
			expectedValue: true,
		},
		{
			abiType:       "bool",
			value:         "true",
			expectedError: true,
		},
		{
			abiType:       "string",
			value:         "hello",
			expectedValue: "hello",
		},
		{
			abiType: "address",
			value:   "0x1234567890abcdef1234567890abcdef12345678",
			expectedValue: common.HexToAddress(
				"0x1234567890abcdef1234567890abcdef12345678",
			),
		},
		{
			abiType:       "address",
			value:         "0x1234",
			expectedError: true,
		},
		{
			abiType:       "bytes",
			value:         "0xdeadbeef",
			expectedValue: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			abiType:       "bytes",
			value:         "deadbeef",
			expectedError: true,
		},
		{
			abiType:       "bytes4",
			value:         "0xdeadbeef",
			expectedValue: [4]byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			abiType:       "bytes4",
			value:         "0xdead",
			expectedError: true,
		},
		{
			abiType:       "uint256[]",
			value:         []any{1, 2},
			expectedValue: []*big.Int{big.NewInt(1), big.NewInt(2)},
		},
		{
			abiType:       "uint256[]",
			value:         "nope",
			expectedError: true,
		},
		{
			abiType:       "uint256",
			value:         nil,
			expectedError: true,
		},
	}
	for _, testDef := range testDefs {
		abiType := mustNewType(t, testDef.abiType)
		coerced, err := coerceValue(abiType, testDef.value)
		if testDef.expectedError {
			if err == nil {
				t.Fatalf(
					"expected error coercing %#v to %s, got none",
					testDef.value,
					testDef.abiType,
				)
			}
			continue
		}
		if err != nil {
			t.Fatalf(
				"unexpected error coercing %#v to %s: %s",
				testDef.value,
				testDef.abiType,
				err,
			)
		}
		if !reflect.DeepEqual(coerced, testDef.expectedValue) {
			t.Fatalf(
				"did not get expected value coercing %#v to %s\n  got:    %#v\n  wanted: %#v",
				testDef.value,
				testDef.abiType,
				coerced,
				testDef.expectedValue,
			)
		}
	}
}

func TestFormatBytes32String(t *testing.T) {
	out := formatBytes32String("hello")
	if string(out[:5]) != "hello" {
		t.Fatalf("unexpected prefix: %x", out)
	}
	for _, b := range out[5:] {
		if b != 0 {
			t.Fatalf("expected zero padding, got: %x", out)
		}
	}
	// Values longer than 31 bytes are truncated, keeping the final NUL
	long := formatBytes32String(
		"this string is quite a bit longer than thirty-one bytes",
	)
	if long[31] != 0 {
		t.Fatalf("expected trailing NUL byte, got: %x", long)
	}
}

func TestIsHexString(t *testing.T) {
	testDefs := []struct {
		value    string
		expected bool
	}{
		{"0xdeadbeef", true},
		{"0X00", true},
		{"0x", true},
		{"deadbeef", false},
		{"0xzz", false},
		{"0xabc", false},
		{"", false},
	}
	for _, testDef := range testDefs {
		if isHexString(testDef.value) != testDef.expected {
			t.Fatalf(
				"unexpected result for %q: wanted %v",
				testDef.value,
				testDef.expected,
			)
		}
	}
}
