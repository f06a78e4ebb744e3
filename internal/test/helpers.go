package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	hexData = strings.TrimPrefix(hexData, "0x")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeHexBytes32 decodes a hex string into a 32-byte array, which is the
// form fixed bytes32 values take after ABI decoding
func DecodeHexBytes32(hexData string) [32]byte {
	decoded := DecodeHexString(hexData)
	if len(decoded) != 32 {
		panic(fmt.Sprintf("expected 32 bytes, got %d", len(decoded)))
	}
	var out [32]byte
	copy(out[:], decoded)
	return out
}
