// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package main provides the Bellyfed entity resolution HTTP server
//
// @title Bellyfed Entity Resolution API
// @version 1.0
// @description Free-text entity resolution and classification for the Bellyfed restaurant-discovery platform
// @description
// @description ## Features
// @description
// @description - **Cuisine resolution**: exact/synonym/fuzzy vocabulary matching with an optional external classifier tier
// @description - **Service and establishment types**: purely local multilingual vocabulary matching ("tapau", "kopitiam", "outdoor seat")
// @description - **Location resolution**: keyword extraction, region identification and place-search geocoding with 24h result caching
// @description - **Taxonomy listings**: canonical values and synonym counts for platform UI forms
// @description - **Analytics**: per-domain resolution counters aggregated from the event bus
// @description - **Unmatched-term journal**: recurring unresolved inputs for vocabulary curation
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-30T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/ming0627/bellyfed
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3663
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Resolve
// @tag.description Free-text resolution endpoints for cuisine, service type, establishment type and location
//
// @tag.name Taxonomy
// @tag.description Canonical vocabulary listings backing platform UI forms
//
// @tag.name Analytics
// @tag.description Resolution analytics aggregated from the event bus
//
// @tag.name Journal
// @tag.description Unmatched-term journal for vocabulary curation
//
// @tag.name Core
// @tag.description Health checks and operational endpoints
package main
