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
)

// ErrSchemaParse indicates a malformed schema string. It is returned
// (wrapped) by New and never by the encode/decode paths.
var ErrSchemaParse = errors.New("failed to parse schema")

// FieldCountError indicates a value list whose length does not match the
// schema's field count
type FieldCountError struct {
	Expected int
	Actual   int
}

func (e FieldCountError) Error() string {
	return fmt.Sprintf(
		"invalid number of fields: expected %d, got %d",
		e.Expected,
		e.Actual,
	)
}

// FieldTypeError indicates a provided field whose type matches neither the
// schema field's canonical type nor its signature
type FieldTypeError struct {
	Index    int
	Expected string
	Actual   string
}

func (e FieldTypeError) Error() string {
	return fmt.Sprintf(
		"incompatible field type at index %d: expected %q, got %q",
		e.Index,
		e.Expected,
		e.Actual,
	)
}

// FieldNameError indicates a provided field whose name does not match the
// schema field's name
type FieldNameError struct {
	Index    int
	Expected string
	Actual   string
}

func (e FieldNameError) Error() string {
	return fmt.Sprintf(
		"incompatible field name at index %d: expected %q, got %q",
		e.Index,
		e.Expected,
		e.Actual,
	)
}
