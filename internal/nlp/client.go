// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package nlp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ming0627/bellyfed/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is read back for
// diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
)

// Config holds the connection settings for the HTTP extractor.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // zero means 10s
	MaxRetries int           // extra attempts after a rate-limited first try
}

// HTTPExtractor talks to the platform NLP service over HTTP.
//
// Requests are JSON POSTs authenticated with an X-API-Key header. HTTP 429
// responses are retried with exponential backoff (honoring Retry-After);
// other failures are returned to the caller immediately, where the circuit
// breaker and the engine's tier fallback take over.
//
// Thread safety: safe for concurrent use, each call builds its own request.
type HTTPExtractor struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewHTTPExtractor creates a client for the NLP service.
func NewHTTPExtractor(cfg Config) *HTTPExtractor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = defaultMaxRetries
	}
	return &HTTPExtractor{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		client:         &http.Client{Timeout: timeout},
		maxRetries:     retries,
		retryBaseDelay: 500 * time.Millisecond,
	}
}

// Name returns the adapter name for logs and metrics.
func (e *HTTPExtractor) Name() string { return "nlp-extractor" }

// ExtractKeywords pulls structured terms out of free text.
func (e *HTTPExtractor) ExtractKeywords(ctx context.Context, text string) (*KeywordExtraction, error) {
	return callExtractor[KeywordExtraction](ctx, e, "/v1/keywords", "extract_keywords", text)
}

// IdentifyRegion guesses the geographic region the text refers to.
func (e *HTTPExtractor) IdentifyRegion(ctx context.Context, text string) (*RegionIdentification, error) {
	return callExtractor[RegionIdentification](ctx, e, "/v1/region", "identify_region", text)
}

// IdentifyCuisineAndDish classifies the cuisine the text names.
func (e *HTTPExtractor) IdentifyCuisineAndDish(ctx context.Context, text string) (*CuisineIdentification, error) {
	return callExtractor[CuisineIdentification](ctx, e, "/v1/cuisine", "identify_cuisine", text)
}

// extractRequest is the body of every extractor call.
type extractRequest struct {
	Text string `json:"text"`
}

// callExtractor wraps postJSON with per-operation request metrics.
func callExtractor[T any](ctx context.Context, e *HTTPExtractor, path, operation, text string) (*T, error) {
	start := time.Now()
	result, err := postJSON[T](ctx, e, path, text)
	metrics.RecordExternalRequest("extractor", operation, time.Since(start), err)
	return result, err
}

// postJSON executes one extractor operation: encode, POST with rate-limit
// retries, status check, decode.
func postJSON[T any](ctx context.Context, e *HTTPExtractor, path, text string) (*T, error) {
	payload, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := e.doWithRateLimit(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("nlp service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// doWithRateLimit performs the POST with automatic HTTP 429 handling.
// Backoff doubles per attempt; a Retry-After header (seconds) overrides the
// computed delay. Waits are cancellable through the context.
func (e *HTTPExtractor) doWithRateLimit(ctx context.Context, path string, payload []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if e.apiKey != "" {
			req.Header.Set("X-API-Key", e.apiKey)
		}

		resp, err := e.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()

		if attempt == e.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", e.maxRetries)
			break
		}

		delay := e.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// readBodyForError reads at most maxErrorBodySize bytes for error messages.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
