// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	LevelDB = "leveldb"
	MemDB   = "memdb"
)

// Open creates the backing database named by dbType.
func Open(dbType, dir string, logger logging.Logger, registerer prometheus.Registerer) (database.Database, error) {
	switch dbType {
	case LevelDB:
		logger.Info("Opening database", zap.String("type", dbType), zap.String("dir", dir))
		db, err := leveldb.New(dir, nil, logger, registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to open leveldb at %s: %w", dir, err)
		}
		return db, nil
	case MemDB:
		logger.Warn("Using in-memory database, state will not survive a restart")
		return memdb.New(), nil
	default:
		return nil, fmt.Errorf("unknown database type %q", dbType)
	}
}
