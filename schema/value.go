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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// coerceValue converts a caller-provided value into the exact Go type the
// ABI library expects for the given ABI type. Values already of the right
// type pass through unchanged.
func coerceValue(t abi.Type, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value for type %s", t.String())
	}
	if reflect.TypeOf(v) == t.GetType() &&
		t.T != abi.SliceTy && t.T != abi.ArrayTy {
		return v, nil
	}
	switch t.T {
	case abi.TupleTy:
		return coerceTuple(t, v)
	case abi.SliceTy:
		return coerceSequence(t, v, false)
	case abi.ArrayTy:
		return coerceSequence(t, v, true)
	case abi.UintTy, abi.IntTy:
		return coerceInteger(t, v)
	case abi.BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool value, got %T", v)
		}
		return b, nil
	case abi.AddressTy:
		return coerceAddress(v)
	case abi.FixedBytesTy:
		return coerceFixedBytes(t, v)
	case abi.BytesTy:
		return coerceBytes(v)
	case abi.StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string value, got %T", v)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported ABI type: %s", t.String())
	}
}

// coerceTuple builds the ABI library's struct representation of a tuple
// from a positional list, a name-keyed map, or a compatible struct
func coerceTuple(t abi.Type, v any) (any, error) {
	sv := reflect.New(t.TupleType).Elem()
	switch val := v.(type) {
	case []any:
		if len(val) != len(t.TupleElems) {
			return nil, fmt.Errorf(
				"tuple value has %d members, type %s expects %d",
				len(val),
				t.String(),
				len(t.TupleElems),
			)
		}
		for i, elem := range t.TupleElems {
			coerced, err := coerceValue(*elem, val[i])
			if err != nil {
				return nil, err
			}
			sv.Field(i).Set(reflect.ValueOf(coerced))
		}
	case map[string]any:
		for i, elem := range t.TupleElems {
			name := t.TupleRawNames[i]
			member, ok := val[name]
			if !ok {
				return nil, fmt.Errorf(
					"tuple value is missing member %q",
					name,
				)
			}
			coerced, err := coerceValue(*elem, member)
			if err != nil {
				return nil, err
			}
			sv.Field(i).Set(reflect.ValueOf(coerced))
		}
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Struct ||
			rv.NumField() != len(t.TupleElems) {
			return nil, fmt.Errorf(
				"unsupported tuple value type %T for %s",
				v,
				t.String(),
			)
		}
		for i, elem := range t.TupleElems {
			coerced, err := coerceValue(
				*elem,
				rv.Field(i).Interface(),
			)
			if err != nil {
				return nil, err
			}
			sv.Field(i).Set(reflect.ValueOf(coerced))
		}
	}
	return sv.Interface(), nil
}

// coerceSequence converts a slice or array value element-wise to the ABI
// library's slice/array representation
func coerceSequence(t abi.Type, v any, fixedLen bool) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf(
			"expected sequence value for type %s, got %T",
			t.String(),
			v,
		)
	}
	if fixedLen && rv.Len() != t.Size {
		return nil, fmt.Errorf(
			"sequence value has %d elements, type %s expects %d",
			rv.Len(),
			t.String(),
			t.Size,
		)
	}
	var out reflect.Value
	if fixedLen {
		out = reflect.New(t.GetType()).Elem()
	} else {
		out = reflect.MakeSlice(t.GetType(), rv.Len(), rv.Len())
	}
	for i := 0; i < rv.Len(); i++ {
		coerced, err := coerceValue(*t.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(reflect.ValueOf(coerced))
	}
	return out.Interface(), nil
}

// coerceInteger converts any Go integer representation (native ints, big
// ints, decimal or hex strings, JSON numbers) to the width the ABI library
// expects for the type
func coerceInteger(t abi.Type, v any) (any, error) {
	n, err := toBigInt(v)
	if err != nil {
		return nil, fmt.Errorf("invalid value for type %s: %w", t.String(), err)
	}
	target := t.GetType()
	if target == bigIntType {
		return n, nil
	}
	out := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !n.IsUint64() || out.OverflowUint(n.Uint64()) {
			return nil, fmt.Errorf(
				"value %s overflows type %s",
				n.String(),
				t.String(),
			)
		}
		out.SetUint(n.Uint64())
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsInt64() || out.OverflowInt(n.Int64()) {
			return nil, fmt.Errorf(
				"value %s overflows type %s",
				n.String(),
				t.String(),
			)
		}
		out.SetInt(n.Int64())
	default:
		return nil, fmt.Errorf(
			"unsupported integer representation for type %s",
			t.String(),
		)
	}
	return out.Interface(), nil
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case big.Int:
		return new(big.Int).Set(&n), nil
	case string:
		var parsed *big.Int
		var ok bool
		if strings.HasPrefix(n, "0x") || strings.HasPrefix(n, "0X") {
			parsed, ok = new(big.Int).SetString(n[2:], 16)
		} else {
			parsed, ok = new(big.Int).SetString(n, 10)
		}
		if !ok {
			return nil, fmt.Errorf("malformed integer string %q", n)
		}
		return parsed, nil
	case json.Number:
		parsed, ok := new(big.Int).SetString(string(n), 10)
		if !ok {
			return nil, fmt.Errorf("malformed JSON number %q", n)
		}
		return parsed, nil
	case float64:
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("non-integer number %v", n)
		}
		bf := new(big.Float).SetFloat64(n)
		parsed, _ := bf.Int(nil)
		return parsed, nil
	case int, int8, int16, int32, int64:
		return big.NewInt(reflect.ValueOf(v).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return new(big.Int).SetUint64(reflect.ValueOf(v).Uint()), nil
	default:
		return nil, fmt.Errorf("unsupported integer value type %T", v)
	}
}

func coerceAddress(v any) (any, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case string:
		if !common.IsHexAddress(a) {
			return nil, fmt.Errorf("malformed address %q", a)
		}
		return common.HexToAddress(a), nil
	case [common.AddressLength]byte:
		return common.Address(a), nil
	case []byte:
		if len(a) != common.AddressLength {
			return nil, fmt.Errorf(
				"invalid address length: %d",
				len(a),
			)
		}
		return common.BytesToAddress(a), nil
	default:
		return nil, fmt.Errorf("unsupported address value type %T", v)
	}
}

func coerceFixedBytes(t abi.Type, v any) (any, error) {
	var raw []byte
	switch b := v.(type) {
	case []byte:
		raw = b
	case common.Hash:
		raw = b.Bytes()
	case string:
		decoded, err := decodeHexString(b)
		if err != nil {
			return nil, fmt.Errorf(
				"invalid value for type %s: %w",
				t.String(),
				err,
			)
		}
		raw = decoded
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Array &&
			rv.Type().Elem().Kind() == reflect.Uint8 {
			raw = make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(raw), rv)
		} else {
			return nil, fmt.Errorf(
				"unsupported value type %T for type %s",
				v,
				t.String(),
			)
		}
	}
	if len(raw) != t.Size {
		return nil, fmt.Errorf(
			"invalid value length for type %s: %d",
			t.String(),
			len(raw),
		)
	}
	out := reflect.New(t.GetType()).Elem()
	reflect.Copy(out, reflect.ValueOf(raw))
	return out.Interface(), nil
}

func coerceBytes(v any) (any, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		decoded, err := decodeHexString(b)
		if err != nil {
			return nil, fmt.Errorf("invalid bytes value: %w", err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("unsupported bytes value type %T", v)
	}
}

// isHexString reports whether a string is a 0x-prefixed hex byte string
func isHexString(s string) bool {
	_, err := decodeHexString(s)
	return err == nil
}

func decodeHexString(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("missing 0x prefix in %q", s)
	}
	decoded, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, fmt.Errorf("malformed hex string %q", s)
	}
	return decoded, nil
}

// formatBytes32String right-pads the UTF-8 bytes of a string to a 32-byte
// value, truncating past 31 bytes to leave room for the conventional NUL
// terminator
func formatBytes32String(s string) [32]byte {
	var out [32]byte
	copy(out[:31], s)
	return out
}
