// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package geocode adapts the platform's place-search service for the
// resolution engine.
//
// A Geocoder turns a free-text query ("KLCC", "12 Jalan SS2/24") into a
// structured location. No match is a normal answer, reported as (nil, nil);
// errors are reserved for the service misbehaving, and the engine treats
// them the same as no match after logging and counting them.
package geocode

import (
	"context"

	"github.com/ming0627/bellyfed/internal/models"
)

// Geocoder is the engine's view of the place-search service.
type Geocoder interface {
	// SearchLocation resolves a query to a structured location.
	// Returns (nil, nil) when the provider has no match.
	SearchLocation(ctx context.Context, query string) (*models.LocationResolution, error)

	// Name identifies the implementation in logs and metrics.
	Name() string
}
