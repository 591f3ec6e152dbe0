// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package payload holds the fixed-layout byte encodings both sides of the
// bridge must reproduce: the canonical intent, the route identifier and the
// event records relayers consume.
package payload

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/types"
)

const (
	// uint256Len is the width of amounts and nonces on the wire
	uint256Len = 32
	chainLen   = 1 + 4

	// IntentLen = 40 + 40 + 40 + 40 + 32 + 1 + 4 + 1 + 4 + 32
	IntentLen = 4*types.AddressLen + uint256Len + 2*chainLen + uint256Len
)

// Intent is the logical tuple describing one cross-chain transfer. The burn
// side builds it with itself as the burn chain; the mint side rebuilds the
// same tuple from relayed fields with itself as the mint chain. Both must
// arrive at the same bytes.
type Intent struct {
	MintCaller types.Address
	BurnCaller types.Address
	MintToken  types.Address
	BurnToken  types.Address
	Amount     uint256.Int
	MintChain  types.Chain
	BurnChain  types.Chain
	Nonce      uint256.Int
}

// Bytes returns the canonical encoding. The length check guards against a
// field width drifting between independently written implementations.
func (i *Intent) Bytes() ([]byte, error) {
	buf := make([]byte, 0, IntentLen)

	buf = append(buf, i.MintCaller[:]...)
	buf = append(buf, i.BurnCaller[:]...)
	buf = append(buf, i.MintToken[:]...)
	buf = append(buf, i.BurnToken[:]...)

	amount := i.Amount.Bytes32()
	buf = append(buf, amount[:]...)

	buf = appendChain(buf, i.MintChain)
	buf = appendChain(buf, i.BurnChain)

	nonce := i.Nonce.Bytes32()
	buf = append(buf, nonce[:]...)

	if len(buf) != IntentLen {
		return nil, fmt.Errorf("%w: encoded %d bytes, want %d", teleport.ErrInvalidPackage, len(buf), IntentLen)
	}
	return buf, nil
}

// ID returns the burn proof identity, sha256 of the canonical encoding.
func (i *Intent) ID() (types.Hash, error) {
	b, err := i.Bytes()
	if err != nil {
		return types.Hash{}, err
	}
	return teleport.ComputeHash256(b), nil
}

// ParseIntent decodes a canonical encoding.
func ParseIntent(data []byte) (*Intent, error) {
	if len(data) != IntentLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", teleport.ErrInvalidPackage, len(data), IntentLen)
	}

	i := &Intent{}
	offset := 0

	for _, addr := range []*types.Address{&i.MintCaller, &i.BurnCaller, &i.MintToken, &i.BurnToken} {
		copy(addr[:], data[offset:offset+types.AddressLen])
		offset += types.AddressLen
	}

	i.Amount.SetBytes32(data[offset : offset+uint256Len])
	offset += uint256Len

	var err error
	if i.MintChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen
	if i.BurnChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen

	i.Nonce.SetBytes32(data[offset : offset+uint256Len])
	return i, nil
}

func appendChain(buf []byte, c types.Chain) []byte {
	buf = append(buf, byte(c.Type))
	return binary.BigEndian.AppendUint32(buf, c.ID)
}

func parseChain(data []byte) (types.Chain, error) {
	t, err := types.ParseChainType(data[0])
	if err != nil {
		return types.Chain{}, err
	}
	return types.Chain{Type: t, ID: binary.BigEndian.Uint32(data[1:chainLen])}, nil
}
