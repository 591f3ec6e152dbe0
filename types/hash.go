// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/luxfi/teleport"
)

// Hash is a 32 byte SHA-256 digest identifying a burn proof or a route
type Hash [teleport.HashLen]byte

// HashFromUint256 converts the u256 wire form of a proof hash.
func HashFromUint256(v *uint256.Int) Hash {
	return Hash(v.Bytes32())
}

// HashFromHex parses a 0x-prefixed or bare 64 character hex string.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex hash: %w", err)
	}
	if len(b) != teleport.HashLen {
		return Hash{}, fmt.Errorf("invalid hash length %d", len(b))
	}
	return Hash(b), nil
}

// Uint256 returns the hash interpreted as a big-endian integer.
func (h Hash) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(h[:])
}

// Compare orders hashes as big-endian unsigned integers.
func (h Hash) Compare(o Hash) int {
	return bytes.Compare(h[:], o[:])
}

// Hex returns the lowercase hex encoding without prefix. It is the storage
// key form for proof and route entries.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return "0x" + h.Hex()
}
