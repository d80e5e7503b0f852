// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/ming0627/bellyfed/internal/metrics"
	"github.com/ming0627/bellyfed/internal/models"
)

const (
	defaultTimeout = 10 * time.Second

	// maxErrorBodySize limits how much of an error response is read back
	// for diagnostics.
	maxErrorBodySize = 64 * 1024 // 64KB
)

// Config holds the connection settings for the HTTP geocoder.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // zero means 10s

	// RatePerSecond and RateBurst bound outbound calls to the provider's
	// quota. Non-positive rate means unlimited.
	RatePerSecond float64
	RateBurst     int
}

// HTTPGeocoder talks to the platform place-search service over HTTP.
//
// Requests are GETs with the query in a URL parameter, authenticated with
// an X-API-Key header. A client-side token bucket keeps the service within
// the provider quota; waits for a token respect the caller's context.
//
// Thread safety: safe for concurrent use.
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPGeocoder creates a client for the place-search service.
func NewHTTPGeocoder(cfg Config) *HTTPGeocoder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Limit(cfg.RatePerSecond)
	burst := cfg.RateBurst
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &HTTPGeocoder{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Name returns the adapter name for logs and metrics.
func (g *HTTPGeocoder) Name() string { return "geocoder" }

// SearchLocation resolves a query to a structured location.
// Returns (nil, nil) when the provider has no match.
func (g *HTTPGeocoder) SearchLocation(ctx context.Context, query string) (*models.LocationResolution, error) {
	start := time.Now()
	result, err := g.search(ctx, query)
	metrics.RecordExternalRequest("geocoder", "search", time.Since(start), err)
	return result, err
}

// placeSearchResponse is the place-search service's answer envelope.
type placeSearchResponse struct {
	Status  string       `json:"status"` // "success" or "zero_results"
	Message string       `json:"message,omitempty"`
	Result  *placeResult `json:"result,omitempty"`
}

// placeResult is the best place the service found for a query.
type placeResult struct {
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	District    string  `json:"district,omitempty"`
	Area        string  `json:"area,omitempty"`
	Address     string  `json:"address,omitempty"`
	FullAddress string  `json:"full_address,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

func (g *HTTPGeocoder) search(ctx context.Context, query string) (*models.LocationResolution, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		req.Header.Set("X-API-Key", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if readErr != nil {
			body = []byte("(failed to read response body)")
		}
		return nil, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var result placeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch result.Status {
	case "success":
		return convertPlaceResult(result.Result), nil
	case "zero_results":
		return nil, nil
	default:
		return nil, fmt.Errorf("geocoder lookup failed: %s", result.Message)
	}
}

// convertPlaceResult maps the wire result into the shared location model.
// A result naming neither a location nor an address is useless downstream
// and collapses to no match.
func convertPlaceResult(r *placeResult) *models.LocationResolution {
	if r == nil {
		return nil
	}

	resolution := &models.LocationResolution{
		Location:     r.Name,
		LocationType: r.Type,
		District:     r.District,
		Area:         r.Area,
		Address:      r.Address,
		FullAddress:  r.FullAddress,
	}
	if r.Lat != 0 || r.Lng != 0 {
		resolution.Coordinates = &models.Coordinates{Latitude: r.Lat, Longitude: r.Lng}
	}

	if !resolution.Valid() {
		return nil
	}
	return resolution
}
