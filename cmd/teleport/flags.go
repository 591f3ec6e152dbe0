// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/holiman/uint256"
	"github.com/spf13/pflag"

	"github.com/luxfi/teleport/types"
)

// addChainFlags registers <side>-chain-type and <side>-chain-id.
func addChainFlags(fs *pflag.FlagSet, side string) {
	fs.String(side+"-chain-type", "", "Chain type of the "+side+" side (evm, native, solana, radix)")
	fs.Uint32(side+"-chain-id", 0, "Chain id of the "+side+" side")
}

func getChain(fs *pflag.FlagSet, side string) (types.Chain, error) {
	name, err := fs.GetString(side + "-chain-type")
	if err != nil {
		return types.Chain{}, err
	}
	chainType, err := types.ChainTypeFromString(name)
	if err != nil {
		return types.Chain{}, fmt.Errorf("invalid --%s-chain-type: %w", side, err)
	}
	id, err := fs.GetUint32(side + "-chain-id")
	if err != nil {
		return types.Chain{}, err
	}
	return types.Chain{Type: chainType, ID: id}, nil
}

func getAddress(fs *pflag.FlagSet, name string) (types.Address, error) {
	s, err := fs.GetString(name)
	if err != nil {
		return types.Address{}, err
	}
	a, err := types.AddressFromHex(s)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return a, nil
}

func getID(fs *pflag.FlagSet, name string) (ids.ID, error) {
	s, err := fs.GetString(name)
	if err != nil {
		return ids.Empty, err
	}
	id, err := ids.FromString(s)
	if err != nil {
		return ids.Empty, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return id, nil
}

func getUint256(fs *pflag.FlagSet, name string) (*uint256.Int, error) {
	s, err := fs.GetString(name)
	if err != nil {
		return nil, err
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return v, nil
}

func getHash(fs *pflag.FlagSet, name string) (types.Hash, error) {
	s, err := fs.GetString(name)
	if err != nil {
		return types.Hash{}, err
	}
	h, err := types.HashFromHex(s)
	if err != nil {
		return types.Hash{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return h, nil
}
