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

// Package schema provides a typed schema encoder/decoder for attestation
// data.
//
// A schema is a comma-separated list of "type name" field declarations
// using the canonical ABI type grammar, plus the ipfsHash pseudo-type for
// content-hash fields. The SchemaEncoder parses a schema once at
// construction and then encodes named values into a canonical ABI blob and
// decodes such blobs back into named values, reconstructing the field and
// tuple-component names that the positional ABI encoding discards.
//
// # Key Types
//
//   - SchemaEncoder: parsed schema, safe for concurrent use once built
//   - SchemaItem: one declared field (name, canonical type, signature)
//   - DataField: a named value supplied to EncodeData
//   - DecodedField / DecodedItem: the named output of DecodeData
//
// Fields declared with the ipfsHash pseudo-type are stored on the wire as
// bytes32 values; their values are converted through the qmhash package,
// which accepts both CID strings and pre-encoded 32-byte values.
package schema
