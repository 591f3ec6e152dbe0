// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const allowancesName = "allowances"

// allowances gates which routes may be bridged. Entries are only ever set to
// Allowed; there is no revoke.
type allowances struct {
	m *state.KeyedMap[types.AllowanceState]
}

func newAllowances(db database.Database) allowances {
	return allowances{
		m: state.NewKeyedMap(
			db,
			allowancesName,
			state.EnumCodec[types.AllowanceState]{Parse: types.ParseAllowanceState},
			types.AllowanceUndefined,
		),
	}
}

func (a allowances) get(route types.Hash) (types.AllowanceState, error) {
	return a.m.GetOrDefault(route.Hex())
}

func (a allowances) set(route types.Hash, s types.AllowanceState) error {
	return a.m.Put(route.Hex(), s)
}

func (a allowances) require(route types.Hash) error {
	s, err := a.get(route)
	if err != nil {
		return err
	}
	if s != types.AllowanceAllowed {
		return fmt.Errorf("%w: route %s is %s", teleport.ErrAllowanceNotFound, route, s)
	}
	return nil
}
