/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache implements the shared, bounded store for fallback names.
//
// The cache never evicts. Every insert attempt bumps an atomic counter and
// attempts are declined once the counter reaches the configured capacity.
// The check and the increment are not one transaction, so concurrent writers
// may overshoot the cap by at most the number of goroutines racing on it.
package cache

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/efx/apis"
	"dirpx.dev/efx/internal/logging"
)

// New constructs a cache holding at most (approximately) maxEntries names.
// A non-positive maxEntries yields a cache that stores nothing.
func New(maxEntries int) apis.Cache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &cache{max: int64(maxEntries)}
}

// key identifies a cached value of one enumeration.
type key struct {
	enum  string
	value uint64
}

// cache is a sync.Map-backed apis.Cache. Readers never take a lock.
type cache struct {
	// max is the approximate capacity.
	max int64
	// attempts counts insert attempts, the basis of the cap.
	attempts atomic.Int64
	// size counts stored entries.
	size atomic.Int64
	// m maps key to name.
	m sync.Map // map[key]string
	// full fires once when the cap is first hit.
	full sync.Once
}

// Ensure cache implements apis.Cache.
var _ apis.Cache = (*cache)(nil)

// Load returns the cached name for (enum, value).
func (c *cache) Load(enum string, value uint64) (string, bool) {
	if v, ok := c.m.Load(key{enum: enum, value: value}); ok {
		return v.(string), true
	}
	return "", false
}

// Offer stores name unless the cache is full. A racing duplicate for the
// same key keeps the first stored name.
func (c *cache) Offer(enum string, value uint64, name string) bool {
	if c.attempts.Load() >= c.max {
		c.full.Do(func() {
			logging.New(logging.ComponentCache).Debug("fallback cache is full", "max_entries", c.max)
		})
		return false
	}
	c.attempts.Add(1)

	if _, loaded := c.m.LoadOrStore(key{enum: enum, value: value}, name); loaded {
		return false
	}
	c.size.Add(1)
	return true
}

// Len returns the number of stored entries.
func (c *cache) Len() int {
	return int(c.size.Load())
}

// Cap returns the configured capacity.
func (c *cache) Cap() int {
	return int(c.max)
}
