// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package cache provides the TTL caches backing resolution results.
//
// One generic Cache[V] is instantiated per cached concern (cuisine
// classifications, location resolutions), keyed by normalized query text.
// Expiry is lazy: Get reports a stale entry as absent, and the entry stays
// in storage until the next Put overwrites it. There is no sweeper
// goroutine. Storage is therefore bounded by the number of distinct keys,
// which for normalized query text is acceptable and keeps reads cheap.
//
// There is deliberately no single-flight deduplication: concurrent misses
// on the same key may each recompute and converge on the last write, which
// is safe because cached values are idempotent recomputations.
package cache

import (
	"sync"
	"time"

	"github.com/ming0627/bellyfed/internal/metrics"
)

// DefaultTTL bounds how long a cached resolution stays usable.
const DefaultTTL = 24 * time.Hour

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Stats is a point-in-time snapshot of cache counters. Expired counts
// lookups that found a key whose entry had outlived the TTL; those are
// reported to callers as misses but tracked separately.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Expired int64 `json:"expired"`
	Entries int64 `json:"entries"`
}

// Cache is a thread-safe TTL cache with lazy expiry. The zero value is not
// usable; construct with New.
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]

	statsMu sync.Mutex
	hits    int64
	misses  int64
	expired int64
}

// New creates a cache named for metrics labeling. A non-positive ttl means
// DefaultTTL.
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return NewWithClock[V](name, ttl, time.Now)
}

// NewWithClock is New with an injectable clock for expiry tests.
func NewWithClock[V any](name string, ttl time.Duration, now func() time.Time) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the value stored under key. The second return is false when
// the key is absent or its entry is older than the TTL. A stale entry is
// not removed here; it waits for the next Put.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.recordMiss()
		var zero V
		return zero, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		c.recordExpired()
		var zero V
		return zero, false
	}

	c.recordHit()
	return e.value, true
}

// Put stores value under key, unconditionally overwriting any previous
// entry and refreshing its insertion time.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, insertedAt: c.now()}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.SetCacheEntries(c.name, size)
}

// Len reports stored entries, stale ones included.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Name returns the metrics label this cache was created with.
func (c *Cache[V]) Name() string { return c.name }

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	c.statsMu.Lock()
	s := Stats{Hits: c.hits, Misses: c.misses, Expired: c.expired}
	c.statsMu.Unlock()
	s.Entries = int64(c.Len())
	return s
}

// HitRate returns the percentage of lookups answered from cache. Expired
// lookups count against it.
func (c *Cache[V]) HitRate() float64 {
	s := c.Stats()
	total := s.Hits + s.Misses + s.Expired
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

func (c *Cache[V]) recordHit() {
	c.statsMu.Lock()
	c.hits++
	c.statsMu.Unlock()
	metrics.RecordCacheHit(c.name)
}

func (c *Cache[V]) recordMiss() {
	c.statsMu.Lock()
	c.misses++
	c.statsMu.Unlock()
	metrics.RecordCacheMiss(c.name)
}

func (c *Cache[V]) recordExpired() {
	c.statsMu.Lock()
	c.expired++
	c.statsMu.Unlock()
	metrics.RecordCacheExpired(c.name)
}
