// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package models

// ResolutionResult is the API payload for cuisine, service type, and
// establishment type resolutions.
//
// When Matched is false, Value, DisplayName, Strategy, and Score are omitted:
// an unrecognized term is a normal outcome, not an error.
//
// Strategy reports which tier produced the match: "exact", "synonym",
// "fuzzy", or "external". Score is 1.0 for exact and synonym matches and the
// length-ratio score for fuzzy matches.
type ResolutionResult struct {
	Query       string  `json:"query"`
	Normalized  string  `json:"normalized"`
	Matched     bool    `json:"matched"`
	Value       string  `json:"value,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Strategy    string  `json:"strategy,omitempty"`
	Score       float64 `json:"score,omitempty"`
}

// LocationResult is the API payload for location resolutions. Resolution is
// nil when no tier could produce a structured location for the query.
type LocationResult struct {
	Query      string              `json:"query"`
	Normalized string              `json:"normalized"`
	Matched    bool                `json:"matched"`
	Resolution *LocationResolution `json:"resolution,omitempty"`
}

// TaxonomyEntry is one canonical vocabulary value with its display name and
// registered synonyms, as returned by the taxonomy listing endpoints.
type TaxonomyEntry struct {
	Value       string   `json:"value"`
	DisplayName string   `json:"display_name"`
	Synonyms    []string `json:"synonyms,omitempty"`
}
