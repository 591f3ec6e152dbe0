// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package state provides the transactional key-value layer every bridge
// operation runs against.
package state

import (
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
)

// DB serializes writers over a base database it does not own. Each Update runs against a
// fresh versiondb overlay that is committed only if the callback succeeds,
// so a failed operation leaves no partial writes behind.
type DB struct {
	lock sync.RWMutex
	base database.Database
}

func New(base database.Database) *DB {
	return &DB{base: base}
}

// Update runs fn as one atomic unit.
func (d *DB) Update(fn func(db database.Database) error) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	vdb := versiondb.New(d.base)
	if err := fn(vdb); err != nil {
		vdb.Abort()
		return err
	}
	if err := vdb.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// View runs fn against committed state. Writes made by fn are not allowed.
func (d *DB) View(fn func(db database.Database) error) error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return fn(d.base)
}
