// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package geocode

import (
	"context"

	"github.com/ming0627/bellyfed/internal/breaker"
	"github.com/ming0627/bellyfed/internal/models"
)

// BreakerGeocoder wraps a Geocoder with a circuit breaker so a failing
// place-search service stops being called instead of slowing location
// resolution down to its timeout.
type BreakerGeocoder struct {
	inner Geocoder
	cb    *breaker.Breaker
}

// NewBreakerGeocoder wraps inner with a named circuit breaker.
func NewBreakerGeocoder(inner Geocoder) *BreakerGeocoder {
	return &BreakerGeocoder{
		inner: inner,
		cb:    breaker.New(inner.Name()),
	}
}

// Name returns the wrapped adapter's name.
func (b *BreakerGeocoder) Name() string { return b.inner.Name() }

// SearchLocation calls the wrapped geocoder with breaker protection.
// A provider no-match passes through as (nil, nil) and counts as success.
func (b *BreakerGeocoder) SearchLocation(ctx context.Context, query string) (*models.LocationResolution, error) {
	return breaker.Cast[models.LocationResolution](b.cb.Execute(func() (interface{}, error) {
		return b.inner.SearchLocation(ctx, query)
	}))
}
