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

// Package goeas provides primitives for working with onchain attestation
// data: deterministic schema and attestation identifiers, shared zero-value
// constants, and (via subpackages) a schema-driven ABI codec and CID/bytes32
// conversion helpers.
package goeas

import (
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ZeroAddress is the all-zero address
	ZeroAddress = common.Address{}

	// ZeroHash is the all-zero 32-byte value
	ZeroHash = common.Hash{}
)
