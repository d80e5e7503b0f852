// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package resolve turns free-text queries into canonical taxonomy values
// and structured locations.
//
// The Engine layers cheap strategies over expensive ones. Vocabulary
// lookups (exact, synonym, fuzzy) are pure in-memory work and never fail;
// the NLP extractor and the geocoder are remote, so their results are
// cached and their failures demote the pipeline to the next tier instead
// of surfacing as errors. "No match" is a normal outcome everywhere.
//
// One Engine serves all tenants. The vocabulary index is immutable after
// construction and both caches are safe for concurrent use, so handlers
// share a single instance.
package resolve

import (
	"time"

	"github.com/ming0627/bellyfed/internal/cache"
	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/geocode"
	"github.com/ming0627/bellyfed/internal/metrics"
	"github.com/ming0627/bellyfed/internal/models"
	"github.com/ming0627/bellyfed/internal/nlp"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

// DefaultConfidenceThreshold gates external classifier and region results.
// Scores must exceed it strictly; a result at exactly the threshold is
// discarded.
const DefaultConfidenceThreshold = 0.7

// DomainLocation labels location resolutions in events and metrics. The
// three vocabulary domains carry their taxonomy names.
const DomainLocation = "location"

// UnmatchedRecorder receives inputs that resolved absent. Unlike the event
// bus, it sees the raw text: samples feed vocabulary curation and stay on
// local disk.
type UnmatchedRecorder interface {
	RecordUnmatched(domain, raw, normalized string)
}

// cuisineEntry is what the cuisine cache stores for an accepted external
// classification.
type cuisineEntry struct {
	Value taxonomy.Cuisine
	Score float64
}

// Engine resolves free text against the vocabulary index, the external
// NLP extractor and the geocoder.
type Engine struct {
	index      *taxonomy.Index
	extractor  nlp.Extractor
	geocoder   geocode.Geocoder
	publisher  events.Publisher
	journal    UnmatchedRecorder
	confidence float64

	cuisines  *cache.Cache[cuisineEntry]
	locations *cache.Cache[models.LocationResolution]
}

// Options configures an Engine. Every field except the index is optional:
// a nil Extractor or Geocoder disables the corresponding tier, a nil
// Publisher or Journal disables that sink, and zero values fall back to
// defaults.
type Options struct {
	Extractor nlp.Extractor
	Geocoder  geocode.Geocoder
	Publisher events.Publisher
	Journal   UnmatchedRecorder

	// ConfidenceThreshold is the exclusive minimum score for external
	// classifier and region results. Zero means DefaultConfidenceThreshold.
	ConfidenceThreshold float64

	// CuisineCacheTTL and LocationCacheTTL bound how long accepted external
	// results are served without re-resolving. Zero means cache.DefaultTTL.
	CuisineCacheTTL  time.Duration
	LocationCacheTTL time.Duration

	// Clock supplies the time both caches use for expiry. Nil means
	// time.Now.
	Clock func() time.Time
}

// NewEngine builds an Engine around an immutable vocabulary index.
func NewEngine(index *taxonomy.Index, opts Options) *Engine {
	confidence := opts.ConfidenceThreshold
	if confidence <= 0 {
		confidence = DefaultConfidenceThreshold
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		index:      index,
		extractor:  opts.Extractor,
		geocoder:   opts.Geocoder,
		publisher:  opts.Publisher,
		journal:    opts.Journal,
		confidence: confidence,
		cuisines:   cache.NewWithClock[cuisineEntry]("cuisine", opts.CuisineCacheTTL, clock),
		locations:  cache.NewWithClock[models.LocationResolution]("location", opts.LocationCacheTTL, clock),
	}
}

// Index exposes the vocabulary index for taxonomy listings.
func (e *Engine) Index() *taxonomy.Index { return e.index }

// CacheStats reports both resolution caches, keyed by cache name.
func (e *Engine) CacheStats() map[string]cache.Stats {
	return map[string]cache.Stats{
		e.cuisines.Name():  e.cuisines.Stats(),
		e.locations.Name(): e.locations.Stats(),
	}
}

// MatchServiceType classifies a service-type phrase. Vocabulary tiers
// only; no remote calls, no cache, so no context.
func (e *Engine) MatchServiceType(input string) taxonomy.Match[taxonomy.Service] {
	start := time.Now()
	m := e.index.Services.Match(input)
	e.record(taxonomy.DomainService, input, taxonomy.Normalize(input), strategyLabel(m.Strategy), m.Score, m.OK, false, start)
	return m
}

// MatchEstablishmentType classifies an establishment-type phrase.
// Vocabulary tiers only.
func (e *Engine) MatchEstablishmentType(input string) taxonomy.Match[taxonomy.Establishment] {
	start := time.Now()
	m := e.index.Establishments.Match(input)
	e.record(taxonomy.DomainEstablishment, input, taxonomy.Normalize(input), strategyLabel(m.Strategy), m.Score, m.OK, false, start)
	return m
}

// record is the single funnel every resolution exits through: Prometheus
// counters, one event on the bus, and an unmatched-journal entry when
// nothing matched.
func (e *Engine) record(domain, input, normalized, strategy string, score float64, matched, cached bool, start time.Time) {
	duration := time.Since(start)
	metrics.RecordResolution(domain, strategy, matched, duration)
	if e.publisher != nil {
		e.publisher.PublishResolution(events.NewResolutionEvent(domain, input, normalized, strategy, score, matched, cached, duration))
	}
	if !matched && e.journal != nil {
		e.journal.RecordUnmatched(domain, input, normalized)
	}
}

// strategyLabel maps an absent match to the "none" label so metric and
// event consumers never see an empty strategy.
func strategyLabel(s taxonomy.Strategy) string {
	if s == "" {
		return "none"
	}
	return string(s)
}
