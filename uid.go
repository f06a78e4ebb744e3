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

package goeas

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// SchemaUID returns the deterministic identifier for a schema registration,
// computed as the keccak-256 hash of the tightly packed schema string,
// resolver address, and revocable flag. This matches the packing used by the
// onchain schema registry, so UIDs computed offline line up with registered
// schemas.
func SchemaUID(
	schema string,
	resolver common.Address,
	revocable bool,
) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(schema))
	h.Write(resolver.Bytes())
	h.Write(boolByte(revocable))
	return common.BytesToHash(h.Sum(nil))
}

// AttestationUID returns the deterministic identifier for an attestation,
// computed as the keccak-256 hash of the tightly packed attestation fields.
// The bump value disambiguates otherwise-identical attestations created in
// the same block.
func AttestationUID(
	schema string,
	recipient common.Address,
	attester common.Address,
	timestamp uint64,
	expiration uint64,
	revocable bool,
	refUID common.Hash,
	data []byte,
	bump uint32,
) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(schema))
	h.Write(recipient.Bytes())
	h.Write(attester.Bytes())
	h.Write(binary.BigEndian.AppendUint64(nil, timestamp))
	h.Write(binary.BigEndian.AppendUint64(nil, expiration))
	h.Write(boolByte(revocable))
	h.Write(refUID.Bytes())
	h.Write(data)
	h.Write(binary.BigEndian.AppendUint32(nil, bump))
	return common.BytesToHash(h.Sum(nil))
}

func boolByte(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}
