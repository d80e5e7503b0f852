// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package models defines shared data structures for the Bellyfed resolution service.

This package contains the API response wrapper, structured location results,
and the resolution DTOs returned by HTTP endpoints. It has no dependencies on
other internal packages so every layer can import it freely.

Model Categories:

 1. API Envelope:
    - APIResponse: Standard response wrapper
    - APIError: Error details
    - Metadata: Response metadata (timestamp, query time, cache flag)

 2. Location Models:
    - LocationResolution: Structured location produced by the resolution pipeline
    - Coordinates: Latitude/longitude pair

 3. Resolution DTOs:
    - ResolutionResult: Outcome of a cuisine/service/establishment resolution
    - LocationResult: Outcome of a location resolution
    - TaxonomyEntry: One canonical value with its synonyms, for vocabulary listings

Usage Example - API Response:

	import "github.com/ming0627/bellyfed/internal/models"

	response := models.APIResponse{
	    Status: "success",
	    Data: models.ResolutionResult{
	        Query:      "Tapau!",
	        Normalized: "tapau",
	        Matched:    true,
	        Value:      "takeout",
	        Strategy:   "synonym",
	        Score:      1.0,
	    },
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 2,
	    },
	}

	json.NewEncoder(w).Encode(response)

Thread Safety:

All models are plain data structures with no internal synchronization. They are
safe for concurrent reads after construction.

See Also:

  - internal/api: HTTP handlers returning these models
  - internal/resolve: Resolution engine producing LocationResolution values
*/
package models
