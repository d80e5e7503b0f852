// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the resolution pipeline using the Prometheus client
library, exposing counters, gauges, and histograms for monitoring match rates,
cache efficiency, external service health, and API throughput.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3663/metrics

# Available Metrics

Resolution Metrics:
  - resolver_resolutions_total: Resolution attempts (counter)
    Labels: domain (cuisine, location, service_type, establishment_type),
    strategy (exact, synonym, fuzzy, external, none), outcome (matched, unmatched)
  - resolver_resolution_duration_seconds: Resolution latency (histogram)
    Labels: domain

Cache Metrics:
  - cache_hits_total: Fresh cache hits (counter)
    Labels: cache (cuisine, location)
  - cache_misses_total: Cache misses (counter)
    Labels: cache
  - cache_expired_total: Lookups that found an entry past its TTL (counter)
    Labels: cache
  - cache_entries: Current number of cached entries, expired included (gauge)
    Labels: cache

External Service Metrics:
  - external_requests_total: Outbound classifier/geocoder calls (counter)
    Labels: service (extractor, geocoder), operation, status (success, error)
  - external_request_duration_seconds: Outbound call latency (histogram)
    Labels: service, operation

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Consecutive failures (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Event Bus Metrics:
  - events_published_total: Resolution events published (counter)
    Labels: domain
  - event_publish_errors_total: Failed publishes (counter)
  - events_handled_total: Events consumed per handler (counter)
    Labels: handler
  - event_handler_errors_total: Handler failures (counter)
    Labels: handler

Journal Metrics:
  - journal_records_total: Unmatched terms recorded (counter)
    Labels: domain
  - journal_write_errors_total: Failed journal writes (counter)
  - journal_gc_runs_total: Value-log GC cycles (counter)
    Labels: outcome (reclaimed, clean, error)

API Metrics:
  - api_requests_total: HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: HTTP request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

# Usage Example

	import "github.com/ming0627/bellyfed/internal/metrics"

	start := time.Now()
	match, cached := engine.ResolveCuisine(ctx, query)
	metrics.RecordResolution("cuisine", string(match.Strategy), match.OK, time.Since(start))

# Thread Safety

All recording functions are safe for concurrent use from multiple goroutines.
The Prometheus client library handles synchronization internally.

# Cardinality Management

Label values are drawn from small fixed sets (domains, strategies, cache names,
service names). Raw query text never appears as a label value.
*/
package metrics
