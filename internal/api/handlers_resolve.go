// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ming0627/bellyfed/internal/models"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

// parseQuery extracts and validates the q parameter shared by all resolve
// endpoints. Returns the query and true, or writes the error response and
// returns false.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := ResolveRequest{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr)
		return "", false
	}

	if maxLen := h.maxQueryLength(); len(req.Query) > maxLen {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("q must be at most %d characters", maxLen), nil)
		return "", false
	}

	return req.Query, true
}

// matchResult converts a taxonomy match into the API payload.
func matchResult[T ~string](query string, m taxonomy.Match[T]) models.ResolutionResult {
	result := models.ResolutionResult{
		Query:      query,
		Normalized: taxonomy.Normalize(query),
		Matched:    m.OK,
	}
	if m.OK {
		result.Value = string(m.Value)
		result.DisplayName = taxonomy.DisplayName(m.Value)
		result.Strategy = string(m.Strategy)
		result.Score = m.Score
	}
	return result
}

// ResolveCuisine handles cuisine resolution requests
//
// @Summary Resolve free-text input to a canonical cuisine
// @Description Runs the full cuisine pipeline: exact and synonym matching, cached external classifications, the external NLP classifier, then fuzzy matching. An unmatched query is a successful response with matched:false.
// @Tags Resolve
// @Produce json
// @Param q query string true "Free-text cuisine description"
// @Success 200 {object} models.APIResponse{data=models.ResolutionResult} "Resolution outcome"
// @Failure 400 {object} models.APIResponse "Missing or oversized q parameter"
// @Router /resolve/cuisine [get]
func (h *Handler) ResolveCuisine(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	match, cached := h.engine.ResolveCuisine(r.Context(), query)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     matchResult(query, match),
		Metadata: queryMetadata(start, cached),
	})
}

// ResolveServiceType handles service type resolution requests
//
// @Summary Resolve free-text input to a canonical service type
// @Description Matches against the service type vocabulary using exact, synonym, then fuzzy strategies. Purely local; no external calls.
// @Tags Resolve
// @Produce json
// @Param q query string true "Free-text service description"
// @Success 200 {object} models.APIResponse{data=models.ResolutionResult} "Resolution outcome"
// @Failure 400 {object} models.APIResponse "Missing or oversized q parameter"
// @Router /resolve/service-type [get]
func (h *Handler) ResolveServiceType(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	match := h.engine.MatchServiceType(query)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     matchResult(query, match),
		Metadata: queryMetadata(start, false),
	})
}

// ResolveEstablishmentType handles establishment type resolution requests
//
// @Summary Resolve free-text input to a canonical establishment type
// @Description Matches against the establishment type vocabulary using exact, synonym, then fuzzy strategies. Purely local; no external calls.
// @Tags Resolve
// @Produce json
// @Param q query string true "Free-text establishment description"
// @Success 200 {object} models.APIResponse{data=models.ResolutionResult} "Resolution outcome"
// @Failure 400 {object} models.APIResponse "Missing or oversized q parameter"
// @Router /resolve/establishment-type [get]
func (h *Handler) ResolveEstablishmentType(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	match := h.engine.MatchEstablishmentType(query)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     matchResult(query, match),
		Metadata: queryMetadata(start, false),
	})
}

// ResolveLocation handles location resolution requests
//
// @Summary Resolve free-text input to a structured location
// @Description Extracts location keywords or regional context from the query, geocodes the derived search string, and caches successful resolutions under the normalized original input. Returns matched:false when no tier produces a usable location.
// @Tags Resolve
// @Produce json
// @Param q query string true "Free-text location description"
// @Success 200 {object} models.APIResponse{data=models.LocationResult} "Resolution outcome"
// @Failure 400 {object} models.APIResponse "Missing or oversized q parameter"
// @Router /resolve/location [get]
func (h *Handler) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	start := time.Now()
	resolution, cached := h.engine.ResolveLocation(r.Context(), query)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LocationResult{
			Query:      query,
			Normalized: taxonomy.Normalize(query),
			Matched:    resolution != nil,
			Resolution: resolution,
		},
		Metadata: queryMetadata(start, cached),
	})
}
