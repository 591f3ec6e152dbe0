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

const proofsName = "burn_proof_storage"

// proofs holds the state of every proof hash this chain has seen.
//
//	Undefined --burn-->    Burned    (local burn, terminal here)
//	Undefined --approve--> Approved
//	Approved  --mint-->    Executed  (terminal)
type proofs struct {
	m *state.KeyedMap[types.ProofState]
}

func newProofs(db database.Database) proofs {
	return proofs{
		m: state.NewKeyedMap(
			db,
			proofsName,
			state.EnumCodec[types.ProofState]{Parse: types.ParseProofState},
			types.ProofStateUndefined,
		),
	}
}

func (p proofs) get(hash types.Hash) (types.ProofState, error) {
	return p.m.GetOrDefault(hash.Hex())
}

func (p proofs) burn(hash types.Hash) error {
	s, err := p.get(hash)
	if err != nil {
		return err
	}
	if s != types.ProofStateUndefined {
		return fmt.Errorf("%w: proof %s is already %s", teleport.ErrProvidedHashIsInvalid, hash, s)
	}
	return p.m.Put(hash.Hex(), types.ProofStateBurned)
}

func (p proofs) approve(hash types.Hash) error {
	s, err := p.get(hash)
	if err != nil {
		return err
	}
	if s != types.ProofStateUndefined {
		return fmt.Errorf("%w: proof %s is %s", teleport.ErrAlreadyApproved, hash, s)
	}
	return p.m.Put(hash.Hex(), types.ProofStateApproved)
}

// requireApproved is checked before the hash is recomputed so a replayed
// mint fails on state rather than on hash contents.
func (p proofs) requireApproved(hash types.Hash) error {
	s, err := p.get(hash)
	if err != nil {
		return err
	}
	if s != types.ProofStateApproved {
		return fmt.Errorf("%w: proof %s is %s", teleport.ErrNotApprovedOrExecuted, hash, s)
	}
	return nil
}

func (p proofs) execute(hash types.Hash) error {
	return p.m.Put(hash.Hex(), types.ProofStateExecuted)
}
