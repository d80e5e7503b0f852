// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ming0627/bellyfed/internal/models"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

// DomainSummary describes one vocabulary in the domain listing.
type DomainSummary struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// domainEntries flattens a vocabulary into API taxonomy entries.
func domainEntries[T ~string](d *taxonomy.Domain[T]) []models.TaxonomyEntry {
	values := d.Values()
	entries := make([]models.TaxonomyEntry, len(values))
	for i, v := range values {
		entries[i] = models.TaxonomyEntry{
			Value:       string(v),
			DisplayName: taxonomy.DisplayName(v),
			Synonyms:    d.Synonyms(v),
		}
	}
	return entries
}

// TaxonomyDomains lists the resolution vocabularies
//
// @Summary List taxonomy domains
// @Description Returns the three resolution vocabularies with their canonical value counts.
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]api.DomainSummary} "Domain listing"
// @Router /taxonomy/domains [get]
func (h *Handler) TaxonomyDomains(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	index := h.engine.Index()

	domains := []DomainSummary{
		{Name: index.Cuisines.Name(), Size: index.Cuisines.Size()},
		{Name: index.Establishments.Name(), Size: index.Establishments.Size()},
		{Name: index.Services.Name(), Size: index.Services.Size()},
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     domains,
		Metadata: queryMetadata(start, false),
	})
}

// TaxonomyDomain lists the canonical values of one vocabulary
//
// @Summary List canonical values for a domain
// @Description Returns every canonical value of the named domain with its display name and registered synonyms. Feeds the platform's form dropdowns.
// @Tags Taxonomy
// @Produce json
// @Param domain path string true "Domain name" Enums(cuisine, establishment_type, service_type)
// @Success 200 {object} models.APIResponse{data=[]models.TaxonomyEntry} "Vocabulary listing"
// @Failure 400 {object} models.APIResponse "Unknown domain"
// @Router /taxonomy/{domain} [get]
func (h *Handler) TaxonomyDomain(w http.ResponseWriter, r *http.Request) {
	req := TaxonomyRequest{Domain: chi.URLParam(r, "domain")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	start := time.Now()
	index := h.engine.Index()

	var entries []models.TaxonomyEntry
	switch req.Domain {
	case taxonomy.DomainCuisine:
		entries = domainEntries(index.Cuisines)
	case taxonomy.DomainEstablishment:
		entries = domainEntries(index.Establishments)
	case taxonomy.DomainService:
		entries = domainEntries(index.Services)
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     entries,
		Metadata: queryMetadata(start, false),
	})
}
