// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/luxfi/teleport"
)

const (
	// AddressLen is the width every caller and token identifier is
	// normalized to before it is encoded.
	AddressLen = 40

	nativeLen = 32
	evmLen    = common.AddressLength
)

// Address is a caller or token identifier normalized to AddressLen bytes.
// Narrower native identifiers are left padded with zeros.
type Address [AddressLen]byte

// FromNative pads a 32 byte native account or contract hash.
func FromNative(id ids.ID) Address {
	var a Address
	copy(a[AddressLen-nativeLen:], id[:])
	return a
}

// FromEVM pads a 20 byte EVM address.
func FromEVM(addr common.Address) Address {
	var a Address
	copy(a[AddressLen-evmLen:], addr[:])
	return a
}

// CallerFromBytes validates a foreign caller identifier.
func CallerFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, fmt.Errorf("%w: got %d bytes", teleport.ErrInvalidCallerLength, len(b))
	}
	return Address(b), nil
}

// TokenFromBytes validates a foreign token identifier.
func TokenFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, fmt.Errorf("%w: got %d bytes", teleport.ErrInvalidTokenLength, len(b))
	}
	return Address(b), nil
}

// AddressFromHex parses a 0x-prefixed or bare hex string. 20 and 32 byte
// inputs are padded as EVM and native identifiers respectively.
func AddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex address: %w", err)
	}
	switch len(b) {
	case evmLen:
		return FromEVM(common.BytesToAddress(b)), nil
	case nativeLen:
		return FromNative(ids.ID(b)), nil
	default:
		return TokenFromBytes(b)
	}
}

// Native returns the trailing 32 bytes.
func (a Address) Native() ids.ID {
	return ids.ID(a[AddressLen-nativeLen:])
}

// EVM returns the trailing 20 bytes.
func (a Address) EVM() common.Address {
	return common.BytesToAddress(a[AddressLen-evmLen:])
}

// Bytes returns a copy of the normalized identifier.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLen)
	copy(b, a[:])
	return b
}

// Hex returns the lowercase hex encoding without prefix. It is the storage
// key form for per-token entries.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return "0x" + a.Hex()
}

// Render formats the identifier the way the chain it belongs to displays it.
// Chains without a known address format render as a dead address.
func (a Address) Render(chain ChainType) string {
	switch chain {
	case ChainTypeEvm:
		return strings.ToLower(a.EVM().Hex())
	case ChainTypeNative:
		native := a.Native()
		return "0x" + hex.EncodeToString(native[:])
	default:
		return DeadAddress
	}
}

// DeadAddress is rendered for chain types without a display format.
const DeadAddress = "0x000000dead"
