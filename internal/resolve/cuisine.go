// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package resolve

import (
	"context"
	"time"

	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

// ResolveCuisine classifies a cuisine phrase. Tier order: exact and
// synonym lookups first (these bypass the cache entirely), then the cache
// of previously accepted external classifications, then the external
// classifier, then fuzzy matching. The second return reports whether the
// value came from the cache.
//
// An external label is only trusted after it round-trips through the
// vocabulary: the classifier may answer "fusion" or some other label the
// platform does not model, and such results are discarded rather than
// cached. Extractor failures demote to fuzzy; they never surface as
// errors.
func (e *Engine) ResolveCuisine(ctx context.Context, input string) (taxonomy.Match[taxonomy.Cuisine], bool) {
	start := time.Now()
	normalized := taxonomy.Normalize(input)

	if value, strategy, ok := e.index.Cuisines.MatchSynonym(input); ok {
		m := taxonomy.Match[taxonomy.Cuisine]{Value: value, Strategy: strategy, Score: 1.0, OK: true}
		e.record(taxonomy.DomainCuisine, input, normalized, string(strategy), m.Score, true, false, start)
		return m, false
	}

	if entry, ok := e.cuisines.Get(normalized); ok {
		m := taxonomy.Match[taxonomy.Cuisine]{Value: entry.Value, Strategy: taxonomy.StrategyExternal, Score: entry.Score, OK: true}
		e.record(taxonomy.DomainCuisine, input, normalized, string(taxonomy.StrategyExternal), entry.Score, true, true, start)
		return m, true
	}

	if m, ok := e.identifyCuisine(ctx, input, normalized); ok {
		e.record(taxonomy.DomainCuisine, input, normalized, string(taxonomy.StrategyExternal), m.Score, true, false, start)
		return m, false
	}

	m := e.index.Cuisines.MatchFuzzy(input)
	e.record(taxonomy.DomainCuisine, input, normalized, strategyLabel(m.Strategy), m.Score, m.OK, false, start)
	return m, false
}

// identifyCuisine runs the external classifier tier. It returns ok only
// for a confident, vocabulary-backed result, and caches exactly those.
func (e *Engine) identifyCuisine(ctx context.Context, input, normalized string) (taxonomy.Match[taxonomy.Cuisine], bool) {
	var zero taxonomy.Match[taxonomy.Cuisine]
	if e.extractor == nil {
		return zero, false
	}

	ident, err := e.extractor.IdentifyCuisineAndDish(ctx, input)
	if err != nil {
		logging.Debug().
			Err(err).
			Int("input_len", len(input)).
			Msg("Cuisine classifier unavailable, falling back to fuzzy match")
		return zero, false
	}
	if ident == nil || ident.Confidence <= e.confidence {
		return zero, false
	}

	value, _, ok := e.index.Cuisines.MatchSynonym(ident.CuisineType)
	if !ok {
		logging.Debug().
			Str("label", ident.CuisineType).
			Float64("confidence", ident.Confidence).
			Msg("Discarding external cuisine label outside vocabulary")
		return zero, false
	}

	// A cancelled resolution must not write: the caller is gone and a
	// partially torn-down request never populates shared state.
	if ctx.Err() == nil {
		e.cuisines.Put(normalized, cuisineEntry{Value: value, Score: ident.Confidence})
	}
	return taxonomy.Match[taxonomy.Cuisine]{Value: value, Strategy: taxonomy.StrategyExternal, Score: ident.Confidence, OK: true}, true
}
