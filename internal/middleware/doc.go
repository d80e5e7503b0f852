// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package middleware provides HTTP middleware for the resolution API.

The package implements infrastructure middleware for request ID tracking,
Prometheus instrumentation, gzip compression, and endpoint latency
monitoring. CORS and rate limiting live in internal/api where the Chi
router is assembled, because they come straight from the go-chi ecosystem
and need no wrapping.

Key Components:

  - RequestID: UUID-based request tracking wired into the logging context
  - PrometheusMetrics: per-request counters, durations and in-flight gauge
  - Compression: gzip for clients that send Accept-Encoding: gzip
  - PerformanceMonitor: rolling-window latency percentiles per endpoint

Middleware here uses the http.HandlerFunc wrapping shape:

	handler := middleware.RequestID(
	    middleware.PrometheusMetrics(
	        middleware.Compression(resolveHandler),
	    ),
	)

The Chi router bridges these onto chi.Router with a small adapter, so the
same functions serve both plain net/http wiring in tests and the production
route tree.

Request IDs arriving from an upstream proxy via X-Request-ID are preserved;
otherwise a fresh UUID is generated. The ID is echoed on the response,
stored in the request context, and pushed into the logging context so every
log line emitted while resolving a query carries it.

The performance monitor keeps a bounded window of recent request samples
and computes p50/p95/p99 per endpoint on demand. It backs the
/api/v1/analytics/endpoints handler and logs requests slower than one
second as they happen.

All components are safe for concurrent use.
*/
package middleware
