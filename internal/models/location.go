// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package models

// Coordinates is a latitude/longitude pair in decimal degrees (WGS84).
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// LocationResolution is the structured location produced by the resolution
// pipeline. Fields are populated best-effort: a geocoder hit usually fills
// most of them, while a region identified from free text may carry only
// Location and LocationType.
//
// LocationType describes what kind of place Location names. Known values are
// "city", "district", "area", "landmark", and "address"; the geocoder may
// supply others.
type LocationResolution struct {
	Location     string       `json:"location"`
	LocationType string       `json:"location_type,omitempty"`
	District     string       `json:"district,omitempty"`
	Area         string       `json:"area,omitempty"`
	Address      string       `json:"address,omitempty"`
	FullAddress  string       `json:"full_address,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// Valid reports whether the resolution carries enough information to be
// useful. A resolution with neither a location name nor an address is
// discarded by the pipeline rather than cached or returned.
func (lr *LocationResolution) Valid() bool {
	if lr == nil {
		return false
	}
	return lr.Location != "" || lr.Address != ""
}
