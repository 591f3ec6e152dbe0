// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const noncesName = "nonces"

// nonces sequences local burns per source token. Two burns of the same token
// with otherwise identical fields still get distinct proof hashes.
type nonces struct {
	m *state.KeyedMap[*uint256.Int]
}

func newNonces(db database.Database) nonces {
	return nonces{
		m: state.NewKeyedMap[*uint256.Int](db, noncesName, state.Uint256Codec{}, uint256.NewInt(0)),
	}
}

func (n nonces) get(token types.Address) (*uint256.Int, error) {
	return n.m.GetOrDefault(token.Hex())
}

// next returns the current nonce and stores its successor.
func (n nonces) next(token types.Address) (*uint256.Int, error) {
	current, err := n.get(token)
	if err != nil {
		return nil, err
	}
	if err := n.m.Put(token.Hex(), new(uint256.Int).AddUint64(current, 1)); err != nil {
		return nil, err
	}
	return current, nil
}
