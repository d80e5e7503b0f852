// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package api provides the HTTP REST layer over the resolution engine.

Every endpoint is a GET bound to query parameters, validated with
go-playground/validator before touching the engine. Responses use the
standard envelope from internal/models:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true}
	}

Endpoint groups:

1. Resolution (/api/v1/resolve/):
  - cuisine: full pipeline including the external classifier and cache
  - service-type, establishment-type: local matching only
  - location: tiered extraction plus geocoding with cache

2. Taxonomy (/api/v1/taxonomy/):
  - domains: list the three vocabularies with sizes
  - {domain}: canonical values, display names and synonyms

3. Operations:
  - /api/v1/analytics/resolutions: in-memory counters from the event collector
  - /api/v1/analytics/endpoints: latency percentiles per endpoint
  - /api/v1/journal/unmatched: top unmatched inputs from the badger journal
  - /health, /health/live, /health/ready, /metrics, /swagger/*

There is no authentication layer; the platform gateway in front of this
service owns that. Rate limiting (go-chi/httprate) and CORS (go-chi/cors)
are still applied because operators sometimes expose the service directly
in staging environments.

Usage:

	handler := api.NewHandler(engine, collector, store, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
	http.ListenAndServe(":3663", router.Setup())
*/
package api
