// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"query": "Tapau!", "matched": true, "value": "takeout"},
//	  "metadata": {
//	    "timestamp": "2026-08-23T12:00:00Z",
//	    "query_time_ms": 2,
//	    "cached": true
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "missing required parameter",
//	    "details": {"field": "q"}
//	  },
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Resolution time in milliseconds
//   - Cached: Whether the result was served from a resolution cache (omitted if false)
//
// A cached location hit typically completes in under a millisecond; a resolution
// that reaches the external classifier or geocoder can take hundreds.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected server failure
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "query exceeds maximum length",
//	  "details": {
//	    "field": "q",
//	    "constraint": "max_500"
//	  }
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the health endpoint. Adapter fields report
// whether the optional external collaborators were configured at startup;
// the process is healthy without them because every resolution domain can
// fall back to local matching.
type HealthStatus struct {
	Status           string             `json:"status"`
	Version          string             `json:"version"`
	UptimeSeconds    float64            `json:"uptime_seconds"`
	ExtractorEnabled bool               `json:"extractor_enabled"`
	GeocoderEnabled  bool               `json:"geocoder_enabled"`
	JournalEnabled   bool               `json:"journal_enabled"`
	EventsEnabled    bool               `json:"events_enabled"`
	Caches           map[string]float64 `json:"cache_hit_rates,omitempty"`
}
