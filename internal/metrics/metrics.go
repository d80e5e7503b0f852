// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Resolution outcomes per domain and matching strategy
// - Cuisine and location cache efficiency
// - External classifier and geocoder latency
// - Circuit breaker state
// - Event bus throughput
// - Unmatched-term journal activity

var (
	// Resolution Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_resolutions_total",
			Help: "Total number of resolution attempts",
		},
		[]string{"domain", "strategy", "outcome"}, // strategy: "exact", "synonym", "fuzzy", "external", "none"
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resolver_resolution_duration_seconds",
			Help:    "Duration of resolution attempts in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5}, // local matches are sub-millisecond, external tiers can take seconds
		},
		[]string{"domain"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of fresh cache hits",
		},
		[]string{"cache"}, // "cuisine", "location"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_expired_total",
			Help: "Total number of cache lookups that found an entry past its TTL",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries, expired entries included",
		},
		[]string{"cache"},
	)

	// External Service Metrics
	ExternalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_requests_total",
			Help: "Total number of outbound requests to external services",
		},
		[]string{"service", "operation", "status"}, // service: "extractor", "geocoder"; status: "success", "error"
	)

	ExternalRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_request_duration_seconds",
			Help:    "Duration of outbound requests to external services in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of resolution events published",
		},
		[]string{"domain"},
	)

	EventPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_publish_errors_total",
			Help: "Total number of failed event publishes",
		},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_handled_total",
			Help: "Total number of events consumed per handler",
		},
		[]string{"handler"}, // "analytics", "journal"
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_handler_errors_total",
			Help: "Total number of event handler failures",
		},
		[]string{"handler"},
	)

	// Journal Metrics
	JournalRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_records_total",
			Help: "Total number of unmatched terms recorded in the journal",
		},
		[]string{"domain"},
	)

	JournalWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_write_errors_total",
			Help: "Total number of failed journal writes",
		},
	)

	JournalGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_gc_runs_total",
			Help: "Total number of journal value-log GC cycles",
		},
		[]string{"outcome"}, // "reclaimed", "clean", "error"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordResolution records a completed resolution attempt.
// Strategy is "none" when no tier produced a match.
func RecordResolution(domain, strategy string, matched bool, duration time.Duration) {
	outcome := "matched"
	if !matched {
		outcome = "unmatched"
	}
	ResolutionsTotal.WithLabelValues(domain, strategy, outcome).Inc()
	ResolutionDuration.WithLabelValues(domain).Observe(duration.Seconds())
}

// RecordCacheHit records a fresh cache hit
func RecordCacheHit(cache string) {
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(cache string) {
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordCacheExpired records a lookup that found an entry past its TTL
func RecordCacheExpired(cache string) {
	CacheExpired.WithLabelValues(cache).Inc()
}

// SetCacheEntries updates the entry count gauge for a cache
func SetCacheEntries(cache string, count int) {
	CacheEntries.WithLabelValues(cache).Set(float64(count))
}

// RecordExternalRequest records an outbound classifier or geocoder call
func RecordExternalRequest(service, operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ExternalRequestsTotal.WithLabelValues(service, operation, status).Inc()
	ExternalRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordEventPublished records a resolution event published to the bus
func RecordEventPublished(domain string) {
	EventsPublished.WithLabelValues(domain).Inc()
}

// RecordEventPublishError records a failed event publish
func RecordEventPublishError() {
	EventPublishErrors.Inc()
}

// RecordEventHandled records the outcome of an event handler invocation
func RecordEventHandled(handler string, err error) {
	if err != nil {
		EventHandlerErrors.WithLabelValues(handler).Inc()
		return
	}
	EventsHandled.WithLabelValues(handler).Inc()
}

// RecordJournalRecord records an unmatched term written to the journal
func RecordJournalRecord(domain string) {
	JournalRecordsTotal.WithLabelValues(domain).Inc()
}

// RecordJournalWriteError records a failed journal write
func RecordJournalWriteError() {
	JournalWriteErrors.Inc()
}

// RecordJournalGC records a journal value-log GC cycle
func RecordJournalGC(outcome string) {
	JournalGCRuns.WithLabelValues(outcome).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
