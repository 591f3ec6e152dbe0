// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the identifiers and enumerations shared by both sides
// of the bridge. Every type here has a fixed-width wire form that must be
// reproduced byte for byte by independently operated deployments.
package types

import (
	"fmt"

	"github.com/luxfi/teleport"
)

// ChainType identifies the execution environment a token or account lives on
type ChainType uint8

const (
	ChainTypeUndefined ChainType = iota
	ChainTypeEvm
	ChainTypeNative
	ChainTypeSolana
	ChainTypeRadix
)

func (c ChainType) String() string {
	switch c {
	case ChainTypeUndefined:
		return "undefined"
	case ChainTypeEvm:
		return "evm"
	case ChainTypeNative:
		return "native"
	case ChainTypeSolana:
		return "solana"
	case ChainTypeRadix:
		return "radix"
	default:
		return "unknown"
	}
}

// ParseChainType converts a raw tag into a ChainType. Undefined is not a valid
// runtime value and is rejected along with any out of range tag.
func ParseChainType(v uint8) (ChainType, error) {
	switch c := ChainType(v); c {
	case ChainTypeEvm, ChainTypeNative, ChainTypeSolana, ChainTypeRadix:
		return c, nil
	default:
		return ChainTypeUndefined, fmt.Errorf("%w: tag %d", teleport.ErrUnknownChain, v)
	}
}

// ChainTypeFromString parses the lowercase name printed by String.
func ChainTypeFromString(s string) (ChainType, error) {
	for c := ChainTypeEvm; c <= ChainTypeRadix; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return ChainTypeUndefined, fmt.Errorf("%w: %q", teleport.ErrUnknownChain, s)
}

// Chain is one (type, id) pair. The id is the deployment's numeric chain id,
// e.g. 1337 for a local EVM network.
type Chain struct {
	Type ChainType
	ID   uint32
}

func (c Chain) String() string {
	return fmt.Sprintf("%s/%d", c.Type, c.ID)
}
