// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package api

import (
	"net/http"
	"time"

	"github.com/ming0627/bellyfed/internal/journal"
	"github.com/ming0627/bellyfed/internal/models"
)

// JournalUnmatched lists the most frequent unmatched inputs
//
// @Summary Top unmatched inputs
// @Description Returns the unmatched free-text inputs seen most often, with one raw sample per normalized form. The platform team mines this list for new synonyms. Returns empty data when the journal is disabled.
// @Tags Journal
// @Produce json
// @Param limit query int false "Maximum records to return (1-500)" default(50)
// @Success 200 {object} models.APIResponse{data=[]journal.Record} "Unmatched-term records"
// @Failure 400 {object} models.APIResponse "Invalid limit parameter"
// @Failure 500 {object} models.APIResponse "Journal read failure"
// @Router /journal/unmatched [get]
func (h *Handler) JournalUnmatched(w http.ResponseWriter, r *http.Request) {
	req := JournalRequest{Limit: getIntParam(r, "limit", journal.DefaultTopLimit)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, http.StatusBadRequest, apiErr)
		return
	}

	start := time.Now()
	records, err := h.journal.Top(req.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to read unmatched-term journal", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     records,
		Metadata: queryMetadata(start, false),
	})
}
