// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package nlp

import (
	"context"

	"github.com/ming0627/bellyfed/internal/breaker"
)

// BreakerExtractor wraps an Extractor with a circuit breaker so a failing
// NLP service stops being called instead of slowing every resolution down
// to its timeout. All three operations share one breaker: the service is
// one dependency, and its health is judged as a whole.
type BreakerExtractor struct {
	inner Extractor
	cb    *breaker.Breaker
}

// NewBreakerExtractor wraps inner with a named circuit breaker.
func NewBreakerExtractor(inner Extractor) *BreakerExtractor {
	return &BreakerExtractor{
		inner: inner,
		cb:    breaker.New(inner.Name()),
	}
}

// Name returns the wrapped adapter's name.
func (b *BreakerExtractor) Name() string { return b.inner.Name() }

// ExtractKeywords calls the wrapped extractor with breaker protection.
func (b *BreakerExtractor) ExtractKeywords(ctx context.Context, text string) (*KeywordExtraction, error) {
	return breaker.Cast[KeywordExtraction](b.cb.Execute(func() (interface{}, error) {
		return b.inner.ExtractKeywords(ctx, text)
	}))
}

// IdentifyRegion calls the wrapped extractor with breaker protection.
func (b *BreakerExtractor) IdentifyRegion(ctx context.Context, text string) (*RegionIdentification, error) {
	return breaker.Cast[RegionIdentification](b.cb.Execute(func() (interface{}, error) {
		return b.inner.IdentifyRegion(ctx, text)
	}))
}

// IdentifyCuisineAndDish calls the wrapped extractor with breaker protection.
func (b *BreakerExtractor) IdentifyCuisineAndDish(ctx context.Context, text string) (*CuisineIdentification, error) {
	return breaker.Cast[CuisineIdentification](b.cb.Execute(func() (interface{}, error) {
		return b.inner.IdentifyCuisineAndDish(ctx, text)
	}))
}
