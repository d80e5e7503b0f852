// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package analytics aggregates resolution events into per-domain counters
// served by the analytics API. Everything lives in memory and resets on
// restart; durable analytics ride the nats mirror into whatever warehouse
// consumes it.
package analytics

import (
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/metrics"
)

// HandlerName identifies the collector on the event router.
const HandlerName = "analytics-collector"

// DomainStats summarizes one resolution domain.
type DomainStats struct {
	Total         int64            `json:"total"`
	Matched       int64            `json:"matched"`
	CacheHits     int64            `json:"cache_hits"`
	Strategies    map[string]int64 `json:"strategies"`
	AvgScore      float64          `json:"avg_score"`
	AvgDurationMS float64          `json:"avg_duration_ms"`
	LastEventAt   time.Time        `json:"last_event_at"`
}

// Snapshot is a point-in-time copy of everything collected.
type Snapshot struct {
	TotalEvents    int64                  `json:"total_events"`
	Domains        map[string]DomainStats `json:"domains"`
	CollectedSince time.Time              `json:"collected_since"`
}

type domainAccumulator struct {
	total       int64
	matched     int64
	cacheHits   int64
	strategies  map[string]int64
	scoreSum    float64
	durationSum float64
	lastEventAt time.Time
}

// Collector accumulates resolution events.
type Collector struct {
	mu      sync.RWMutex
	since   time.Time
	total   int64
	domains map[string]*domainAccumulator
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		since:   time.Now().UTC(),
		domains: make(map[string]*domainAccumulator),
	}
}

// Handle is the bus handler. An undecodable payload is dropped with a
// warning instead of erroring: retrying cannot make it parse.
func (c *Collector) Handle(msg *message.Message) error {
	var event events.ResolutionEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		metrics.RecordEventHandled(HandlerName, err)
		logging.Warn().
			Err(err).
			Str("message_uuid", msg.UUID).
			Msg("Discarding undecodable resolution event")
		return nil
	}
	c.Record(event)
	metrics.RecordEventHandled(HandlerName, nil)
	return nil
}

// Record folds one event into the aggregates.
func (c *Collector) Record(event events.ResolutionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	acc, ok := c.domains[event.Domain]
	if !ok {
		acc = &domainAccumulator{strategies: make(map[string]int64)}
		c.domains[event.Domain] = acc
	}

	acc.total++
	acc.strategies[event.Strategy]++
	acc.durationSum += event.DurationMS
	if event.Matched {
		acc.matched++
		acc.scoreSum += event.Score
	}
	if event.Cached {
		acc.cacheHits++
	}
	if event.Timestamp.After(acc.lastEventAt) {
		acc.lastEventAt = event.Timestamp
	}
}

// Snapshot copies the aggregates. Averages are computed here: scores over
// matched events only, durations over all.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		TotalEvents:    c.total,
		Domains:        make(map[string]DomainStats, len(c.domains)),
		CollectedSince: c.since,
	}
	for domain, acc := range c.domains {
		stats := DomainStats{
			Total:       acc.total,
			Matched:     acc.matched,
			CacheHits:   acc.cacheHits,
			Strategies:  make(map[string]int64, len(acc.strategies)),
			LastEventAt: acc.lastEventAt,
		}
		for strategy, n := range acc.strategies {
			stats.Strategies[strategy] = n
		}
		if acc.matched > 0 {
			stats.AvgScore = acc.scoreSum / float64(acc.matched)
		}
		if acc.total > 0 {
			stats.AvgDurationMS = acc.durationSum / float64(acc.total)
		}
		snap.Domains[domain] = stats
	}
	return snap
}
