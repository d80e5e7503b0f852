// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package resolve

import (
	"context"
	"time"

	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/models"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

// ResolveLocation turns a free-text location phrase into a structured
// resolution. The extractor tiers only refine the query string that is
// eventually geocoded: structured address or city first, then a confident
// region landmark or area, then the raw input itself. Only the geocoder
// produces a result, so without one the resolution is absent regardless
// of what the extractor found, and nothing partial is cached.
//
// Successful resolutions are cached under the normalized original input,
// not the refined query, so repeated phrasings of the same request skip
// the remote round-trips entirely. The second return reports a cache hit.
func (e *Engine) ResolveLocation(ctx context.Context, input string) (*models.LocationResolution, bool) {
	start := time.Now()
	normalized := taxonomy.Normalize(input)

	if cached, ok := e.locations.Get(normalized); ok {
		e.record(DomainLocation, input, normalized, "geocoder", 1.0, true, true, start)
		return &cached, true
	}

	if e.geocoder == nil {
		e.record(DomainLocation, input, normalized, "none", 0, false, false, start)
		return nil, false
	}

	query := e.locationQuery(ctx, input)

	resolution, err := e.geocoder.SearchLocation(ctx, query)
	if err != nil {
		logging.Debug().
			Err(err).
			Int("query_len", len(query)).
			Msg("Geocoder lookup failed")
		e.record(DomainLocation, input, normalized, "none", 0, false, false, start)
		return nil, false
	}
	if resolution == nil || !resolution.Valid() {
		e.record(DomainLocation, input, normalized, "none", 0, false, false, start)
		return nil, false
	}

	if ctx.Err() == nil {
		e.locations.Put(normalized, *resolution)
	}
	e.record(DomainLocation, input, normalized, "geocoder", 1.0, true, false, start)
	return resolution, false
}

// locationQuery walks the extractor tiers to pick the string the geocoder
// will see. Every tier failure demotes to the next; the raw input is the
// floor.
func (e *Engine) locationQuery(ctx context.Context, input string) string {
	if e.extractor == nil {
		return input
	}

	keywords, err := e.extractor.ExtractKeywords(ctx, input)
	if err != nil {
		logging.Debug().
			Err(err).
			Int("input_len", len(input)).
			Msg("Keyword extraction failed, trying region identification")
	} else if q := keywords.LocationQuery(); q != "" {
		return q
	}

	region, err := e.extractor.IdentifyRegion(ctx, input)
	if err != nil {
		logging.Debug().
			Err(err).
			Int("input_len", len(input)).
			Msg("Region identification failed, geocoding raw input")
		return input
	}
	if region != nil && region.Confidence > e.confidence {
		if place := region.Place(); place != "" {
			return place
		}
	}
	return input
}
