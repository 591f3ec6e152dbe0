// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package indexer follows a bridge's emission log and maintains a queryable
// view of transfers and their proofs.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/luxfi/teleport/cache"
	"github.com/luxfi/teleport/events"
	"github.com/luxfi/teleport/payload"
	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const (
	DefaultBatchSize = 256
	DefaultCacheSize = 1024
)

var ErrTransferNotFound = errors.New("transfer not found")

// Source is a readable emission log
type Source interface {
	Events(from uint64, limit int) ([]events.Record, error)
}

type Config struct {
	BatchSize int
	CacheSize int
}

type Indexer struct {
	logger     logging.Logger
	source     Source
	db         *state.DB
	checkpoint checkpoint
	batchSize  int
	// Executed transfers never change again
	executed *cache.LRUCache[types.Hash, *Transfer]
}

// New indexes source into db.
func New(logger logging.Logger, source Source, db database.Database, cfg Config) (*Indexer, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	executed, err := cache.NewLRUCache[types.Hash, *Transfer](cfg.CacheSize, func(t *Transfer) bool {
		return t.Status == TransferExecuted
	})
	if err != nil {
		return nil, err
	}
	return &Indexer{
		logger:     logger,
		source:     source,
		db:         state.New(db),
		checkpoint: checkpoint{logger: logger},
		batchSize:  cfg.BatchSize,
		executed:   executed,
	}, nil
}

// Run syncs every interval until ctx is cancelled.
func (i *Indexer) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := i.Sync(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			i.logger.Error("Failed to sync index", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Sync indexes every record emitted since the checkpoint and returns how many
// were applied.
func (i *Indexer) Sync(ctx context.Context) (int, error) {
	applied := 0
	for {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		n, err := i.syncBatch()
		applied += n
		if err != nil {
			return applied, err
		}
		if n < i.batchSize {
			return applied, nil
		}
	}
}

func (i *Indexer) syncBatch() (int, error) {
	var n int
	err := i.db.Update(func(db database.Database) error {
		next, err := i.checkpoint.load(db)
		if err != nil {
			return err
		}
		records, err := i.source.Events(next, i.batchSize)
		if err != nil {
			return fmt.Errorf("failed to read events from %d: %w", next, err)
		}
		for _, r := range records {
			if err := i.apply(db, r); err != nil {
				return fmt.Errorf("failed to index event %d: %w", r.Seq, err)
			}
			next = r.Seq + 1
		}
		n = len(records)
		if n == 0 {
			return nil
		}
		return i.checkpoint.commit(db, next)
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		i.logger.Debug("Indexed events", zap.Int("count", n))
	}
	return n, nil
}

func (i *Indexer) apply(db database.Database, r events.Record) error {
	e, err := payload.ParseEvent(r.Data)
	if err != nil {
		return err
	}

	switch e := e.(type) {
	case *payload.ProofOfBurn:
		proof := newProof(e.ProofHash, ProofBurn, r.Seq, e.BurnChain, e.MintChain, e.BurnCaller, e.MintCaller, e.BurnToken, e.MintToken)
		proof.Amount = new(uint256.Int).Set(&e.Amount)
		proof.Nonce = new(uint256.Int).Set(&e.Nonce)
		return i.record(db, proof, TransferBurned)
	case *payload.ProofOfMint:
		proof := newProof(e.ProofHash, ProofMint, r.Seq, e.BurnChain, e.MintChain, e.BurnCaller, e.MintCaller, e.BurnToken, e.MintToken)
		proof.Amount = new(uint256.Int).Set(&e.Amount)
		return i.record(db, proof, TransferExecuted)
	case *payload.ApprovedBurnProof:
		return i.setStatus(db, e.ProofHash, TransferApproved)
	default:
		return fmt.Errorf("unhandled event %s", e.Name())
	}
}

func newProof(
	id types.Hash,
	kind ProofKind,
	seq uint64,
	src, dest types.Chain,
	srcCaller, destCaller, srcToken, destToken types.Address,
) *Proof {
	return &Proof{
		ID:         id,
		Kind:       kind,
		Nonce:      new(uint256.Int),
		Src:        src.ID,
		SrcType:    uint8(src.Type),
		Dest:       dest.ID,
		DestType:   uint8(dest.Type),
		SrcCaller:  srcCaller.Render(src.Type),
		DestCaller: destCaller.Render(dest.Type),
		SrcToken:   srcToken.Render(src.Type),
		DestToken:  destToken.Render(dest.Type),
		Seq:        seq,
	}
}

func (i *Indexer) record(db database.Database, proof *Proof, status TransferStatus) error {
	if err := proofs(db).Put(proofKey(proof.ID, proof.Kind), proof); err != nil {
		return err
	}
	return i.setStatus(db, proof.ID, status)
}

// setStatus gets or creates the transfer and moves it to status.
func (i *Indexer) setStatus(db database.Database, id types.Hash, status TransferStatus) error {
	m := transfers(db)
	t, err := m.GetOrDefault(id.Hex())
	if err != nil {
		return err
	}
	if t == nil {
		t = &Transfer{ID: id, Status: TransferCreated}
	}
	t.Status = status
	return m.Put(id.Hex(), t)
}

// Transfer returns a copy of the indexed transfer for a proof hash.
func (i *Indexer) Transfer(id types.Hash) (*Transfer, error) {
	t, err := i.executed.Get(id, func(id types.Hash) (*Transfer, error) {
		var t *Transfer
		err := i.db.View(func(db database.Database) error {
			var err error
			t, err = transfers(db).GetOrDefault(id.Hex())
			return err
		})
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("%w: %s", ErrTransferNotFound, id)
		}
		return t, nil
	}, false)
	if err != nil {
		return nil, err
	}
	cp := *t
	return &cp, nil
}

// Proof returns the indexed proof of the given kind, or nil if this chain
// has not seen one.
func (i *Indexer) Proof(id types.Hash, kind ProofKind) (*Proof, error) {
	var p *Proof
	err := i.db.View(func(db database.Database) error {
		var err error
		p, err = proofs(db).GetOrDefault(proofKey(id, kind))
		return err
	})
	return p, err
}

// Next returns the sequence number of the next record to index.
func (i *Indexer) Next() (uint64, error) {
	var next uint64
	err := i.db.View(func(db database.Database) error {
		var err error
		next, err = i.checkpoint.load(db)
		return err
	})
	return next, err
}
