// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package events persists emitted bridge records and fans them out to
// relayers.
package events

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"

	"github.com/luxfi/teleport/payload"
)

var (
	recordsPrefix = []byte("events")
	metaPrefix    = []byte("events_meta")
	nextSeqKey    = []byte("next")
)

// Record is one emitted event at its position in the log
type Record struct {
	Seq  uint64
	Data []byte
}

// Log is the append-only emission log. Records are keyed by a big-endian
// sequence number so iteration order is emission order.
type Log struct {
	records database.Database
	meta    database.Database
}

// NewLog opens the log within db. Appends made through a transactional db
// become visible only when it commits.
func NewLog(db database.Database) *Log {
	return &Log{
		records: prefixdb.New(recordsPrefix, db),
		meta:    prefixdb.New(metaPrefix, db),
	}
}

// Next returns the sequence number the next appended record will get.
func (l *Log) Next() (uint64, error) {
	seq, err := database.GetUInt64(l.meta, nextSeqKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	return seq, err
}

// Append stores the encoded event and returns its sequence number.
func (l *Log) Append(e payload.Event) (uint64, error) {
	seq, err := l.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to read next sequence: %w", err)
	}
	if err := l.records.Put(database.PackUInt64(seq), e.Bytes()); err != nil {
		return 0, fmt.Errorf("failed to append %s: %w", e.Name(), err)
	}
	if err := database.PutUInt64(l.meta, nextSeqKey, seq+1); err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}
	return seq, nil
}

// Scan returns up to limit records starting at sequence from.
func (l *Log) Scan(from uint64, limit int) ([]Record, error) {
	it := l.records.NewIteratorWithStart(database.PackUInt64(from))
	defer it.Release()

	var records []Record
	for len(records) < limit && it.Next() {
		seq, err := database.ParseUInt64(it.Key())
		if err != nil {
			return nil, fmt.Errorf("corrupt event key %x: %w", it.Key(), err)
		}
		data := make([]byte, len(it.Value()))
		copy(data, it.Value())
		records = append(records, Record{Seq: seq, Data: data})
	}
	return records, it.Error()
}
