// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package indexer

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

var checkpointKey = []byte("checkpoint")

// checkpoint tracks the next emission log sequence to index. It is written
// in the same atomic unit as the records derived from the batch before it,
// so a crash never skips or double applies an event.
type checkpoint struct {
	logger logging.Logger
}

func (c checkpoint) load(db database.KeyValueReader) (uint64, error) {
	next, err := database.GetUInt64(db, checkpointKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		c.logger.Error("Failed to get checkpoint", zap.Error(err))
		return 0, fmt.Errorf("failed to get the checkpoint: %w", err)
	}
	return next, nil
}

func (c checkpoint) commit(db database.KeyValueWriter, next uint64) error {
	c.logger.Verbo("Writing checkpoint", zap.Uint64("next", next))
	if err := database.PutUInt64(db, checkpointKey, next); err != nil {
		c.logger.Error("Failed to write checkpoint", zap.Uint64("next", next), zap.Error(err))
		return err
	}
	return nil
}
