// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"

	"github.com/luxfi/teleport"
)

// ProofState is the lifecycle state of a burn proof
type ProofState uint8

const (
	ProofStateUndefined ProofState = iota
	ProofStateBurned
	ProofStateApproved
	ProofStateExecuted
)

func (s ProofState) String() string {
	switch s {
	case ProofStateUndefined:
		return "undefined"
	case ProofStateBurned:
		return "burned"
	case ProofStateApproved:
		return "approved"
	case ProofStateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// ParseProofState converts a stored tag into a ProofState. Undefined is never
// persisted, so a zero tag is as invalid as an out of range one.
func ParseProofState(v uint8) (ProofState, error) {
	switch s := ProofState(v); s {
	case ProofStateBurned, ProofStateApproved, ProofStateExecuted:
		return s, nil
	default:
		return ProofStateUndefined, fmt.Errorf("%w: tag %d", teleport.ErrUnknownState, v)
	}
}

// AllowanceState gates whether a route may be bridged
type AllowanceState uint8

const (
	AllowanceUndefined AllowanceState = iota
	AllowanceAllowed
	AllowanceBlocked
)

func (a AllowanceState) String() string {
	switch a {
	case AllowanceUndefined:
		return "undefined"
	case AllowanceAllowed:
		return "allowed"
	case AllowanceBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// ParseAllowanceState converts a stored tag into an AllowanceState.
func ParseAllowanceState(v uint8) (AllowanceState, error) {
	switch a := AllowanceState(v); a {
	case AllowanceAllowed, AllowanceBlocked:
		return a, nil
	default:
		return AllowanceUndefined, fmt.Errorf("%w: tag %d", teleport.ErrUnknownAllowance, v)
	}
}
