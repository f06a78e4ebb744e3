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

// Package qmhash converts between textual content identifiers (CIDs) and
// their fixed 32-byte digest form used for bytes32 schema fields. Only
// SHA-256 multihashes with a 32-byte digest survive a full round trip, since
// the 32-byte form carries no room for the multihash header.
package qmhash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// DigestSize is the only digest size representable as a bytes32 value
const DigestSize = 32

// ErrDigestSize indicates a multihash digest that does not fit a bytes32 value
var ErrDigestSize = errors.New("multihash digest is not 32 bytes")

// bytes32Args describes a single bytes32 value for the ABI codec
var bytes32Args = mustBytes32Args()

func mustBytes32Args() abi.Arguments {
	t, err := abi.NewType("bytes32", "", nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create bytes32 ABI type: %s", err))
	}
	return abi.Arguments{{Type: t}}
}

// IsCID returns whether the provided string parses as a CID
func IsCID(s string) bool {
	_, err := cid.Decode(s)
	return err == nil
}

// EncodeCID parses the provided CID string, extracts its multihash digest,
// and returns the digest ABI-encoded as a single bytes32 value. The digest
// must be exactly 32 bytes.
func EncodeCID(s string) ([]byte, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CID: %w", err)
	}
	mh, err := multihash.Decode([]byte(c.Hash()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode multihash: %w", err)
	}
	if len(mh.Digest) != DigestSize {
		return nil, ErrDigestSize
	}
	var digest [DigestSize]byte
	copy(digest[:], mh.Digest)
	return bytes32Args.Pack(digest)
}

// DecodeCID reconstructs a version-0 CID string from a 32-byte digest. The
// digest is assumed to have been produced by SHA-256 regardless of its
// actual origin, so only values encoded from a SHA-256 CID round-trip to
// their original string.
func DecodeCID(data []byte) (string, error) {
	if len(data) != DigestSize {
		return "", ErrDigestSize
	}
	encoded, err := multihash.Encode(data, multihash.SHA2_256)
	if err != nil {
		return "", fmt.Errorf("failed to encode multihash: %w", err)
	}
	return cid.NewCidV0(encoded).String(), nil
}

// EncodeValue encodes an arbitrary content-hash field value as a bytes32
// value. Byte-like values (byte slices, 32-byte arrays, 0x-prefixed hex
// strings) are used as the raw digest directly. Anything else is parsed as a
// CID, falling back to raw-byte encoding of the string when the parse fails,
// so this function accepts both CID strings and pre-encoded values.
func EncodeValue(val any) ([]byte, error) {
	switch v := val.(type) {
	case []byte:
		return packRawBytes(v)
	case [DigestSize]byte:
		return bytes32Args.Pack(v)
	case common.Hash:
		return bytes32Args.Pack([DigestSize]byte(v))
	case string:
		if raw, ok := hexBytes(v); ok {
			return packRawBytes(raw)
		}
		encoded, err := EncodeCID(v)
		if err != nil {
			// Not a usable CID, treat as a raw string value
			return packText(v)
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf(
			"unsupported content-hash value type: %T",
			val,
		)
	}
}

// packRawBytes right-pads (or truncates) the provided bytes to a bytes32
// value and ABI-encodes it
func packRawBytes(data []byte) ([]byte, error) {
	var digest [DigestSize]byte
	copy(digest[:], data)
	return bytes32Args.Pack(digest)
}

// packText right-pads the UTF-8 bytes of a plain-text string to a bytes32
// value, truncating past 31 bytes to leave room for the conventional NUL
// terminator
func packText(s string) ([]byte, error) {
	var digest [DigestSize]byte
	copy(digest[:DigestSize-1], s)
	return bytes32Args.Pack(digest)
}

// hexBytes interprets a 0x-prefixed hex string as raw bytes
func hexBytes(s string) ([]byte, bool) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, false
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, false
	}
	return raw, true
}
