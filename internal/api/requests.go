// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Request validation structs with go-playground/validator tags. These are
// bound from query parameters and validated before any handler touches the
// engine.
//
// Example usage:
//
//	req := ResolveRequest{Query: r.URL.Query().Get("q")}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package api

// ResolveRequest represents the validated query parameters for the
// /resolve/* endpoints. The query length ceiling is enforced separately
// against the configured api.max_query_length, which defaults to 256 and
// may be tightened per deployment.
type ResolveRequest struct {
	Query string `validate:"required,min=1"`
}

// TaxonomyRequest represents the validated path parameter for the
// /taxonomy/{domain} endpoint.
type TaxonomyRequest struct {
	Domain string `validate:"required,oneof=cuisine establishment_type service_type"`
}

// JournalRequest represents the validated query parameters for the
// /journal/unmatched endpoint.
//
// Fields:
//   - Limit: Maximum records to return (1-500, default 50)
type JournalRequest struct {
	Limit int `validate:"min=1,max=500"`
}
