// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package api

import (
	"net/http"
	"time"

	"github.com/ming0627/bellyfed/internal/models"
)

// AnalyticsResolutions serves the in-memory resolution counters
//
// @Summary Resolution analytics snapshot
// @Description Returns per-domain resolution counters accumulated from the event bus since process start: totals, match and cache-hit counts, strategy breakdown, average score and duration. Counters reset on restart; durable analytics consume the NATS mirror instead.
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=analytics.Snapshot} "Counter snapshot"
// @Failure 503 {object} models.APIResponse "Event collection disabled"
// @Router /analytics/resolutions [get]
func (h *Handler) AnalyticsResolutions(w http.ResponseWriter, r *http.Request) {
	if h.collector == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"Resolution analytics require the event bus, which is disabled", nil)
		return
	}

	start := time.Now()
	snapshot := h.collector.Snapshot()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     snapshot,
		Metadata: queryMetadata(start, false),
	})
}

// AnalyticsEndpoints serves per-endpoint latency statistics
//
// @Summary API latency statistics
// @Description Returns request counts and latency percentiles (p50/p95/p99) per endpoint over a rolling window of recent requests.
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]middleware.EndpointStats} "Latency statistics"
// @Router /analytics/endpoints [get]
func (h *Handler) AnalyticsEndpoints(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.perfMon.Stats()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     stats,
		Metadata: queryMetadata(start, false),
	})
}
