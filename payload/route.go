// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package payload

import (
	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/types"
)

// SideLen is the encoded width of one route side
const SideLen = chainLen + types.AddressLen

// Side is one end of a route: a token on a given chain.
type Side struct {
	Chain types.Chain
	Token types.Address
}

// Bytes encodes the side as type(1) | id(4, big-endian) | token(40).
func (s Side) Bytes() []byte {
	buf := make([]byte, 0, SideLen)
	buf = appendChain(buf, s.Chain)
	return append(buf, s.Token[:]...)
}

// RouteID identifies the unordered pair {a, b}. Each side is hashed on its
// own and the two side hashes are hashed again, numerically larger first, so
// RouteID(a, b) == RouteID(b, a) and one allowance entry covers both
// directions.
func RouteID(a, b Side) types.Hash {
	aHash := types.Hash(teleport.ComputeHash256(a.Bytes()))
	bHash := types.Hash(teleport.ComputeHash256(b.Bytes()))

	if aHash.Compare(bHash) < 0 {
		aHash, bHash = bHash, aHash
	}
	return teleport.ComputeHash256(aHash[:], bHash[:])
}
