// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger holds fungible token balances. The bridge only ever burns
// from and mints to the ledger of the token being moved.
package ledger

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const (
	balancesName = "balances"
	supplyName   = "total_supply"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSupplyOverflow      = errors.New("total supply overflow")
)

// Ledger is the balance book of a single token
type Ledger interface {
	BalanceOf(account types.Address) (*uint256.Int, error)
	Mint(account types.Address, amount *uint256.Int) error
	Burn(account types.Address, amount *uint256.Int) error
	TotalSupply() (*uint256.Int, error)
}

// Factory binds a token's ledger to the database of the current atomic unit.
type Factory interface {
	Ledger(db database.Database, token types.Address) Ledger
}

var (
	_ Factory = StoreFactory{}
	_ Ledger  = (*Store)(nil)
)

// StoreFactory builds Store ledgers.
type StoreFactory struct{}

func (StoreFactory) Ledger(db database.Database, token types.Address) Ledger {
	return NewStore(db, token)
}

// Store keeps balances and total supply in the backing database.
type Store struct {
	token    types.Address
	balances *state.KeyedMap[*uint256.Int]
	supply   *state.KeyedMap[*uint256.Int]
}

func NewStore(db database.Database, token types.Address) *Store {
	return &Store{
		token:    token,
		balances: state.NewKeyedMap[*uint256.Int](db, balancesName+token.Hex(), state.Uint256Codec{}, uint256.NewInt(0)),
		supply:   state.NewKeyedMap[*uint256.Int](db, supplyName, state.Uint256Codec{}, uint256.NewInt(0)),
	}
}

func (s *Store) BalanceOf(account types.Address) (*uint256.Int, error) {
	return s.balances.GetOrDefault(account.Hex())
}

func (s *Store) TotalSupply() (*uint256.Int, error) {
	return s.supply.GetOrDefault(s.token.Hex())
}

func (s *Store) Mint(account types.Address, amount *uint256.Int) error {
	supply, err := s.TotalSupply()
	if err != nil {
		return err
	}
	newSupply, overflow := new(uint256.Int).AddOverflow(supply, amount)
	if overflow {
		return fmt.Errorf("%w: minting %s onto %s", ErrSupplyOverflow, amount, supply)
	}

	balance, err := s.BalanceOf(account)
	if err != nil {
		return err
	}
	// balance <= supply, so this cannot overflow once the supply check passed
	newBalance := new(uint256.Int).Add(balance, amount)

	if err := s.balances.Put(account.Hex(), newBalance); err != nil {
		return err
	}
	return s.supply.Put(s.token.Hex(), newSupply)
}

func (s *Store) Burn(account types.Address, amount *uint256.Int) error {
	balance, err := s.BalanceOf(account)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return fmt.Errorf("%w: balance %s, burning %s", ErrInsufficientBalance, balance, amount)
	}
	supply, err := s.TotalSupply()
	if err != nil {
		return err
	}

	if err := s.balances.Put(account.Hex(), new(uint256.Int).Sub(balance, amount)); err != nil {
		return err
	}
	return s.supply.Put(s.token.Hex(), new(uint256.Int).Sub(supply, amount))
}
