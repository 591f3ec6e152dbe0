// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/holiman/uint256"
)

// Codec converts map values to and from their stored form
type Codec[V any] interface {
	Marshal(V) ([]byte, error)
	Unmarshal([]byte) (V, error)
}

// KeyedMap is a string keyed map with a default value, stored in its own
// namespace of the backing database.
type KeyedMap[V any] struct {
	name  string
	db    database.Database
	codec Codec[V]
	def   V
}

// NewKeyedMap scopes a map named name within db. Absent keys read as def.
func NewKeyedMap[V any](db database.Database, name string, codec Codec[V], def V) *KeyedMap[V] {
	return &KeyedMap[V]{
		name:  name,
		db:    prefixdb.New([]byte(name), db),
		codec: codec,
		def:   def,
	}
}

func (m *KeyedMap[V]) GetOrDefault(key string) (V, error) {
	b, err := m.db.Get([]byte(key))
	if errors.Is(err, database.ErrNotFound) {
		return m.def, nil
	}
	if err != nil {
		return m.def, fmt.Errorf("failed to read %s/%s: %w", m.name, key, err)
	}
	return m.codec.Unmarshal(b)
}

func (m *KeyedMap[V]) Put(key string, v V) error {
	b, err := m.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", m.name, key, err)
	}
	if err := m.db.Put([]byte(key), b); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", m.name, key, err)
	}
	return nil
}

// EnumCodec stores a single byte tag and validates it with parse on read.
type EnumCodec[T ~uint8] struct {
	Parse func(uint8) (T, error)
}

func (EnumCodec[T]) Marshal(v T) ([]byte, error) {
	return []byte{uint8(v)}, nil
}

func (c EnumCodec[T]) Unmarshal(b []byte) (T, error) {
	if len(b) != 1 {
		var zero T
		return zero, fmt.Errorf("enum tag of %d bytes", len(b))
	}
	return c.Parse(b[0])
}

// Uint256Codec stores values as 32 big-endian bytes.
type Uint256Codec struct{}

func (Uint256Codec) Marshal(v *uint256.Int) ([]byte, error) {
	b := v.Bytes32()
	return b[:], nil
}

func (Uint256Codec) Unmarshal(b []byte) (*uint256.Int, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("uint256 of %d bytes", len(b))
	}
	return new(uint256.Int).SetBytes32(b), nil
}
