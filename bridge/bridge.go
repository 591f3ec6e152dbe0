// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package bridge implements the burn -> approve -> mint proof protocol.
//
// A holder burns tokens on the source chain, which records a proof hash over
// the canonical intent encoding. The approver of the destination chain
// approves that hash there, and the holder's counterparty then mints by
// presenting the intent fields; the destination recomputes the hash and
// only mints if it matches an approved proof.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/events"
	"github.com/luxfi/teleport/ledger"
	"github.com/luxfi/teleport/payload"
	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const (
	opSetAllowance = "set_allowance"
	opBurn         = "burn_and_create_proof"
	opApprove      = "approve_burn_proof"
	opMint         = "mint_with_burn_proof"
	opCredit       = "credit"
)

// DefaultChain is the identity of a bridge deployment that does not
// configure one.
var DefaultChain = types.Chain{Type: types.ChainTypeNative, ID: 1010}

var errNilAmount = errors.New("amount is required")

// Config configures a Bridge
type Config struct {
	// Chain is the local chain. Routes and intents name it as the burn side
	// of local burns and the mint side of local mints.
	Chain types.Chain
	// Approver is the only identity allowed to set allowances and approve
	// foreign proofs.
	Approver ids.ID

	Logger     logging.Logger
	Registerer prometheus.Registerer
	// Notifier is told about committed events. Optional.
	Notifier events.Notifier
	// Ledgers defaults to ledger.StoreFactory.
	Ledgers ledger.Factory
}

// SetAllowanceRequest opens the route between two (chain, token) sides. Both
// tokens are raw 40 byte identifiers.
type SetAllowanceRequest struct {
	MintToken     []byte
	BurnToken     []byte
	MintChainType uint8
	MintChainID   uint32
	BurnChainType uint8
	BurnChainID   uint32
}

// BurnRequest burns a local token in exchange for a proof redeemable on the
// mint chain.
type BurnRequest struct {
	BurnToken     ids.ID
	MintToken     []byte
	MintCaller    []byte
	MintChainType uint8
	MintChainID   uint32
	Amount        *uint256.Int
}

// MintRequest redeems an approved proof created by a burn on another chain.
type MintRequest struct {
	MintToken     ids.ID
	BurnToken     []byte
	BurnCaller    []byte
	BurnChainType uint8
	BurnChainID   uint32
	Amount        *uint256.Int
	ProofHash     *uint256.Int
	Nonce         *uint256.Int
}

// Bridge is one chain's side of the protocol. Every operation runs as a
// single atomic unit against the store: a rejected operation leaves no
// state change and emits no event.
type Bridge struct {
	chain    types.Chain
	role     roleGuard
	db       *state.DB
	ledgers  ledger.Factory
	notifier events.Notifier
	logger   logging.Logger
	metrics  *Metrics
}

func New(db database.Database, cfg Config) (*Bridge, error) {
	if _, err := types.ParseChainType(uint8(cfg.Chain.Type)); err != nil {
		return nil, fmt.Errorf("invalid local chain: %w", err)
	}
	if cfg.Approver == ids.Empty {
		return nil, errors.New("approver is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NoLog{}
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.NewRegistry()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = events.NoNotifier{}
	}
	if cfg.Ledgers == nil {
		cfg.Ledgers = ledger.StoreFactory{}
	}

	return &Bridge{
		chain:    cfg.Chain,
		role:     roleGuard{approver: cfg.Approver},
		db:       state.New(db),
		ledgers:  cfg.Ledgers,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		metrics:  NewMetrics(cfg.Registerer),
	}, nil
}

// Chain returns the local chain identity.
func (b *Bridge) Chain() types.Chain {
	return b.chain
}

// SetAllowance marks the route between the two sides as Allowed.
func (b *Bridge) SetAllowance(ctx context.Context, caller ids.ID, req SetAllowanceRequest) error {
	return b.execute(ctx, opSetAllowance, func(tx *txn) error {
		if err := b.role.require(caller); err != nil {
			return err
		}
		mintToken, err := types.TokenFromBytes(req.MintToken)
		if err != nil {
			return err
		}
		burnToken, err := types.TokenFromBytes(req.BurnToken)
		if err != nil {
			return err
		}
		mintType, err := types.ParseChainType(req.MintChainType)
		if err != nil {
			return err
		}
		burnType, err := types.ParseChainType(req.BurnChainType)
		if err != nil {
			return err
		}

		route := payload.RouteID(
			payload.Side{Chain: types.Chain{Type: mintType, ID: req.MintChainID}, Token: mintToken},
			payload.Side{Chain: types.Chain{Type: burnType, ID: req.BurnChainID}, Token: burnToken},
		)
		if err := newAllowances(tx.db).set(route, types.AllowanceAllowed); err != nil {
			return err
		}

		b.logger.Info(
			"Allowance set",
			zap.Stringer("route", route),
			zap.Stringer("mintToken", mintToken),
			zap.Stringer("burnToken", burnToken),
		)
		return nil
	})
}

// BurnAndCreateProof burns amount of the caller's BurnToken and records a
// Burned proof for the resulting intent. It returns the proof hash.
func (b *Bridge) BurnAndCreateProof(ctx context.Context, caller ids.ID, req BurnRequest) (types.Hash, error) {
	var proofHash types.Hash
	err := b.execute(ctx, opBurn, func(tx *txn) error {
		mintToken, err := types.TokenFromBytes(req.MintToken)
		if err != nil {
			return err
		}
		mintCaller, err := types.CallerFromBytes(req.MintCaller)
		if err != nil {
			return err
		}
		mintType, err := types.ParseChainType(req.MintChainType)
		if err != nil {
			return err
		}
		if req.Amount == nil {
			return fmt.Errorf("%w: %w", teleport.ErrInvalidPackage, errNilAmount)
		}

		mintChain := types.Chain{Type: mintType, ID: req.MintChainID}
		burnToken := types.FromNative(req.BurnToken)
		route := payload.RouteID(
			payload.Side{Chain: mintChain, Token: mintToken},
			payload.Side{Chain: b.chain, Token: burnToken},
		)
		if err := newAllowances(tx.db).require(route); err != nil {
			return err
		}

		nonce, err := newNonces(tx.db).next(burnToken)
		if err != nil {
			return err
		}

		burnCaller := types.FromNative(caller)
		tokenLedger := b.ledgers.Ledger(tx.db, burnToken)
		balance, err := tokenLedger.BalanceOf(burnCaller)
		if err != nil {
			return err
		}
		if balance.Lt(req.Amount) {
			return fmt.Errorf("%w: balance %s, burning %s", teleport.ErrAmountExceeded, balance, req.Amount)
		}

		intent := &payload.Intent{
			MintCaller: mintCaller,
			BurnCaller: burnCaller,
			MintToken:  mintToken,
			BurnToken:  burnToken,
			Amount:     *req.Amount,
			MintChain:  mintChain,
			BurnChain:  b.chain,
			Nonce:      *nonce,
		}
		proofHash, err = intent.ID()
		if err != nil {
			return err
		}
		if err := newProofs(tx.db).burn(proofHash); err != nil {
			return err
		}
		if err := tokenLedger.Burn(burnCaller, req.Amount); err != nil {
			return err
		}
		if err := tx.emit(payload.NewProofOfBurn(intent, proofHash)); err != nil {
			return err
		}

		b.logger.Info(
			"Burned and created proof",
			zap.Stringer("proofHash", proofHash),
			zap.Stringer("burnToken", burnToken),
			zap.Stringer("mintChain", mintChain),
			zap.Stringer("amount", req.Amount),
			zap.Stringer("nonce", nonce),
		)
		return nil
	})
	if err != nil {
		return types.Hash{}, err
	}
	return proofHash, nil
}

// ApproveBurnProof approves a proof hash created by a burn on another chain.
func (b *Bridge) ApproveBurnProof(ctx context.Context, caller ids.ID, proofHash *uint256.Int) error {
	return b.execute(ctx, opApprove, func(tx *txn) error {
		if err := b.role.require(caller); err != nil {
			return err
		}
		if proofHash == nil {
			return fmt.Errorf("%w: proof hash is required", teleport.ErrInvalidPackage)
		}

		hash := types.HashFromUint256(proofHash)
		if err := newProofs(tx.db).approve(hash); err != nil {
			return err
		}
		if err := tx.emit(&payload.ApprovedBurnProof{ProofHash: hash}); err != nil {
			return err
		}

		b.logger.Info("Approved burn proof", zap.Stringer("proofHash", hash))
		return nil
	})
}

// MintWithBurnProof mints amount of MintToken to the caller if the intent
// rebuilt from the request hashes to an approved proof.
func (b *Bridge) MintWithBurnProof(ctx context.Context, caller ids.ID, req MintRequest) error {
	return b.execute(ctx, opMint, func(tx *txn) error {
		burnCaller, err := types.CallerFromBytes(req.BurnCaller)
		if err != nil {
			return err
		}
		burnToken, err := types.TokenFromBytes(req.BurnToken)
		if err != nil {
			return err
		}
		burnType, err := types.ParseChainType(req.BurnChainType)
		if err != nil {
			return err
		}
		if req.Amount == nil || req.ProofHash == nil || req.Nonce == nil {
			return fmt.Errorf("%w: amount, proof hash and nonce are required", teleport.ErrInvalidPackage)
		}

		burnChain := types.Chain{Type: burnType, ID: req.BurnChainID}
		mintToken := types.FromNative(req.MintToken)
		route := payload.RouteID(
			payload.Side{Chain: b.chain, Token: mintToken},
			payload.Side{Chain: burnChain, Token: burnToken},
		)
		if err := newAllowances(tx.db).require(route); err != nil {
			return err
		}

		provided := types.HashFromUint256(req.ProofHash)
		proofStore := newProofs(tx.db)
		if err := proofStore.requireApproved(provided); err != nil {
			return err
		}

		mintCaller := types.FromNative(caller)
		intent := &payload.Intent{
			MintCaller: mintCaller,
			BurnCaller: burnCaller,
			MintToken:  mintToken,
			BurnToken:  burnToken,
			Amount:     *req.Amount,
			MintChain:  b.chain,
			BurnChain:  burnChain,
			Nonce:      *req.Nonce,
		}
		computed, err := intent.ID()
		if err != nil {
			return err
		}
		if computed != provided {
			return fmt.Errorf("%w: computed %s, provided %s", teleport.ErrProvidedHashIsInvalid, computed, provided)
		}

		if err := proofStore.execute(provided); err != nil {
			return err
		}
		if err := b.ledgers.Ledger(tx.db, mintToken).Mint(mintCaller, req.Amount); err != nil {
			return err
		}
		if err := tx.emit(payload.NewProofOfMint(intent, provided)); err != nil {
			return err
		}

		b.logger.Info(
			"Minted with burn proof",
			zap.Stringer("proofHash", provided),
			zap.Stringer("mintToken", mintToken),
			zap.Stringer("burnChain", burnChain),
			zap.Stringer("amount", req.Amount),
		)
		return nil
	})
}

// Credit mints local supply of token to account outside of any bridge
// transfer. It funds accounts on deployments whose ledger is not seeded by
// another system and is restricted to the approver.
func (b *Bridge) Credit(ctx context.Context, caller ids.ID, token ids.ID, account ids.ID, amount *uint256.Int) error {
	return b.execute(ctx, opCredit, func(tx *txn) error {
		if err := b.role.require(caller); err != nil {
			return err
		}
		if amount == nil {
			return fmt.Errorf("%w: %w", teleport.ErrInvalidPackage, errNilAmount)
		}
		return b.ledgers.Ledger(tx.db, types.FromNative(token)).Mint(types.FromNative(account), amount)
	})
}

// ProofState returns the committed state of a proof hash.
func (b *Bridge) ProofState(hash types.Hash) (types.ProofState, error) {
	var s types.ProofState
	err := b.db.View(func(db database.Database) error {
		var err error
		s, err = newProofs(db).get(hash)
		return err
	})
	return s, err
}

// Allowance returns the committed state of a route.
func (b *Bridge) Allowance(route types.Hash) (types.AllowanceState, error) {
	var s types.AllowanceState
	err := b.db.View(func(db database.Database) error {
		var err error
		s, err = newAllowances(db).get(route)
		return err
	})
	return s, err
}

// Nonce returns the nonce the next local burn of token will use.
func (b *Bridge) Nonce(token types.Address) (*uint256.Int, error) {
	var n *uint256.Int
	err := b.db.View(func(db database.Database) error {
		var err error
		n, err = newNonces(db).get(token)
		return err
	})
	return n, err
}

// Balance returns account's balance of the local token.
func (b *Bridge) Balance(token types.Address, account types.Address) (*uint256.Int, error) {
	var balance *uint256.Int
	err := b.db.View(func(db database.Database) error {
		var err error
		balance, err = b.ledgers.Ledger(db, token).BalanceOf(account)
		return err
	})
	return balance, err
}

// Events returns up to limit committed event records starting at seq from.
func (b *Bridge) Events(from uint64, limit int) ([]events.Record, error) {
	var records []events.Record
	err := b.db.View(func(db database.Database) error {
		var err error
		records, err = events.NewLog(db).Scan(from, limit)
		return err
	})
	return records, err
}

type emission struct {
	seq   uint64
	event payload.Event
}

// txn is the view of the store one operation works against.
type txn struct {
	db      database.Database
	log     *events.Log
	emitted []emission
}

func (t *txn) emit(e payload.Event) error {
	seq, err := t.log.Append(e)
	if err != nil {
		return err
	}
	t.emitted = append(t.emitted, emission{seq: seq, event: e})
	return nil
}

func (b *Bridge) execute(ctx context.Context, op string, fn func(tx *txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	var tx *txn
	err := b.db.Update(func(db database.Database) error {
		tx = &txn{db: db, log: events.NewLog(db)}
		return fn(tx)
	})
	b.metrics.observe(op, err, time.Since(start))
	if err != nil {
		b.logger.Debug(
			"Operation rejected",
			zap.String("operation", op),
			zap.Error(err),
		)
		return err
	}

	for _, e := range tx.emitted {
		b.metrics.emitted(e.event.Name())
		b.notifier.Notify(ctx, e.seq, e.event)
	}
	return nil
}
