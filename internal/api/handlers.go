// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package api

import (
	"time"

	"github.com/ming0627/bellyfed/internal/analytics"
	"github.com/ming0627/bellyfed/internal/config"
	"github.com/ming0627/bellyfed/internal/journal"
	"github.com/ming0627/bellyfed/internal/middleware"
	"github.com/ming0627/bellyfed/internal/resolve"
)

// defaultMaxQueryLength bounds ?q= when the config leaves it unset
const defaultMaxQueryLength = 256

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and validation helpers
//   - handlers_resolve.go: Resolution endpoints (4 methods)
//   - handlers_taxonomy.go: Taxonomy listing endpoints (2 methods)
//   - handlers_analytics.go: Analytics endpoints (2 methods)
//   - handlers_journal.go: Unmatched-term journal endpoint
//   - handlers_health.go: Health and probe endpoints (3 methods)
type Handler struct {
	engine    *resolve.Engine
	collector *analytics.Collector
	journal   *journal.Store
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// The collector and journal store may be nil when the corresponding
// subsystem is disabled; the affected endpoints then report
// SERVICE_UNAVAILABLE or empty data rather than failing.
func NewHandler(engine *resolve.Engine, collector *analytics.Collector, store *journal.Store, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		collector: collector,
		journal:   store,
		config:    cfg,
		perfMon:   middleware.NewPerformanceMonitor(1000), // keep last 1000 requests
		startTime: time.Now(),
	}
}

// PerformanceMonitor exposes the latency monitor so the router can install
// its middleware around the API routes.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// maxQueryLength returns the configured ?q= ceiling.
func (h *Handler) maxQueryLength() int {
	if h.config != nil && h.config.API.MaxQueryLength > 0 {
		return h.config.API.MaxQueryLength
	}
	return defaultMaxQueryLength
}
