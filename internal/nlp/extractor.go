// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package nlp adapts the platform's NLP service for the resolution engine.
//
// The engine asks three questions of free text: which keywords it contains
// (ExtractKeywords), which region it describes (IdentifyRegion), and which
// cuisine it names (IdentifyCuisineAndDish). All three are advisory. Any
// error from an implementation, including a timeout or an open circuit
// breaker, means "this tier produced nothing" and the engine moves on to
// its next fallback.
//
// HTTPExtractor talks to the real service; wrap it in NewBreakerExtractor
// so a struggling service is cut off instead of slowing every resolution.
package nlp

import "context"

// Extractor is the engine's view of the NLP service.
type Extractor interface {
	// ExtractKeywords pulls structured terms out of free text.
	ExtractKeywords(ctx context.Context, text string) (*KeywordExtraction, error)

	// IdentifyRegion guesses the geographic region the text refers to.
	IdentifyRegion(ctx context.Context, text string) (*RegionIdentification, error)

	// IdentifyCuisineAndDish classifies the cuisine the text names.
	IdentifyCuisineAndDish(ctx context.Context, text string) (*CuisineIdentification, error)

	// Name identifies the implementation in logs and metrics.
	Name() string
}

// LocationTerms is the structured location fragment of a keyword extraction.
type LocationTerms struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// RelevantTerms groups the structured fragments of a keyword extraction.
type RelevantTerms struct {
	Location *LocationTerms `json:"location,omitempty"`
}

// KeywordExtraction is the ExtractKeywords response.
type KeywordExtraction struct {
	Cuisine       string         `json:"cuisine,omitempty"`
	Location      string         `json:"location,omitempty"`
	RelevantTerms *RelevantTerms `json:"relevant_terms,omitempty"`
	Message       string         `json:"message,omitempty"`
}

// LocationQuery returns the geocoding query this extraction supports: the
// structured address when present, else the city, else empty. Nil-safe.
func (k *KeywordExtraction) LocationQuery() string {
	if k == nil || k.RelevantTerms == nil || k.RelevantTerms.Location == nil {
		return ""
	}
	if k.RelevantTerms.Location.Address != "" {
		return k.RelevantTerms.Location.Address
	}
	return k.RelevantTerms.Location.City
}

// RegionContext carries the places a region identification is anchored on.
type RegionContext struct {
	Landmarks []string `json:"landmarks,omitempty"`
	Area      string   `json:"area,omitempty"`
}

// RegionIdentification is the IdentifyRegion response.
type RegionIdentification struct {
	Confidence float64        `json:"confidence"`
	Context    *RegionContext `json:"context,omitempty"`
}

// Place returns the geocoding query this identification supports: the first
// landmark when any exist, else the area, else empty. Confidence gating is
// the caller's decision. Nil-safe.
func (r *RegionIdentification) Place() string {
	if r == nil || r.Context == nil {
		return ""
	}
	if len(r.Context.Landmarks) > 0 {
		return r.Context.Landmarks[0]
	}
	return r.Context.Area
}

// CuisineIdentification is the IdentifyCuisineAndDish response. CuisineType
// is the service's label and is never trusted verbatim; the engine
// round-trips it through the synonym matcher before accepting it.
type CuisineIdentification struct {
	Confidence  float64 `json:"confidence"`
	CuisineType string  `json:"cuisine_type,omitempty"`
}
