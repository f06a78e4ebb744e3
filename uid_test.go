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
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestSchemaUID(t *testing.T) {
	resolver := common.HexToAddress(
		"0x1234567890abcdef1234567890abcdef12345678",
	)
	uid := SchemaUID("uint256 eventId, uint8 voteIndex", resolver, true)
	if uid == ZeroHash {
		t.Fatalf("unexpected zero UID")
	}
	// Deterministic
	uid2 := SchemaUID("uint256 eventId, uint8 voteIndex", resolver, true)
	if uid != uid2 {
		t.Fatalf("UID not deterministic: %x != %x", uid, uid2)
	}
	// Sensitive to every input
	if SchemaUID("uint256 eventId", resolver, true) == uid {
		t.Fatalf("UID not sensitive to schema")
	}
	if SchemaUID("uint256 eventId, uint8 voteIndex", ZeroAddress, true) == uid {
		t.Fatalf("UID not sensitive to resolver")
	}
	if SchemaUID("uint256 eventId, uint8 voteIndex", resolver, false) == uid {
		t.Fatalf("UID not sensitive to revocable flag")
	}
}

func TestAttestationUID(t *testing.T) {
	recipient := common.HexToAddress(
		"0x1111111111111111111111111111111111111111",
	)
	attester := common.HexToAddress(
		"0x2222222222222222222222222222222222222222",
	)
	uid := AttestationUID(
		"uint256 eventId",
		recipient,
		attester,
		1700000000,
		0,
		true,
		ZeroHash,
		[]byte{0x01, 0x02},
		0,
	)
	if uid == ZeroHash {
		t.Fatalf("unexpected zero UID")
	}
	// The bump value disambiguates otherwise-identical attestations
	bumped := AttestationUID(
		"uint256 eventId",
		recipient,
		attester,
		1700000000,
		0,
		true,
		ZeroHash,
		[]byte{0x01, 0x02},
		1,
	)
	if bumped == uid {
		t.Fatalf("UID not sensitive to bump value")
	}
}
