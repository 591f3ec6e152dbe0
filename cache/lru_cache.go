// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// LRUCache fronts a slower store for values that stop changing once they
// reach a final form. Values keep reports which fetched values are final;
// anything else is returned to the caller but not cached.
type LRUCache[K comparable, V any] struct {
	cache   *lru.Cache[K, V]
	keep    func(V) bool
	sfGroup singleflight.Group
}

// NewLRUCache caches up to size values. A nil keep caches every value.
func NewLRUCache[K comparable, V any](size int, keep func(V) bool) (*LRUCache[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	if keep == nil {
		keep = func(V) bool { return true }
	}
	return &LRUCache[K, V]{
		cache: c,
		keep:  keep,
	}, nil
}

// Get checks if the cached value exists for a given key, otherwise fetches
// the value using fetchFunc. Concurrent fetches for the same key are
// deduplicated. If [invalidate] is true, the value will be cleared from the
// cache prior to fetching.
func (c *LRUCache[K, V]) Get(key K, fetchFunc func(K) (V, error), invalidate bool) (V, error) {
	if invalidate {
		c.cache.Remove(key)
	} else if value, found := c.cache.Get(key); found {
		return value, nil
	}

	v, err, _ := c.sfGroup.Do(keyToString(key), func() (interface{}, error) {
		newValue, fetchErr := fetchFunc(key)
		if fetchErr != nil {
			return *new(V), fetchErr
		}
		if c.keep(newValue) {
			c.cache.Add(key, newValue)
		}
		return newValue, nil
	})
	if err != nil {
		return *new(V), err
	}
	return v.(V), nil
}

// Len returns the number of cached values.
func (c *LRUCache[K, V]) Len() int {
	return c.cache.Len()
}

// keyToString is defined to allow for both fmt.Stringer and primitive string types.
func keyToString[K comparable](key K) string {
	if s, ok := any(key).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", key)
}
