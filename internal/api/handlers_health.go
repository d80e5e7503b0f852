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

// Version reported by the health endpoint
const Version = "1.0.0"

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns health status with adapter availability and cache hit rates. The service is healthy without the optional external adapters because every domain falls back to local matching.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	cacheRates := make(map[string]float64)
	for name, stats := range h.engine.CacheStats() {
		total := stats.Hits + stats.Misses + stats.Expired
		rate := 0.0
		if total > 0 {
			rate = float64(stats.Hits) / float64(total) * 100.0
		}
		cacheRates[name] = rate
	}

	health := models.HealthStatus{
		Status:           "healthy",
		Version:          Version,
		UptimeSeconds:    time.Since(h.startTime).Seconds(),
		ExtractorEnabled: h.config != nil && h.config.Extractor.Enabled,
		GeocoderEnabled:  h.config != nil && h.config.Geocoder.Enabled,
		JournalEnabled:   h.journal != nil,
		EventsEnabled:    h.collector != nil,
		Caches:           cacheRates,
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK once the taxonomy index is built and the engine accepts queries. Returns 503 before that.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"Resolution engine not initialized", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
