// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package config

import (
	"fmt"
	"net/url"
)

// Validate checks that the configuration is complete and internally
// consistent. The first violation found is returned.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateResolver(); err != nil {
		return err
	}

	if err := c.validateExtractor(); err != nil {
		return err
	}

	if err := c.validateGeocoder(); err != nil {
		return err
	}

	if err := c.validateJournal(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.API.RateLimitWindow)
		}
	}
	if c.API.MaxQueryLength < 1 {
		return fmt.Errorf("MAX_QUERY_LENGTH must be at least 1, got %d", c.API.MaxQueryLength)
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.ConfidenceThreshold <= 0 || c.Resolver.ConfidenceThreshold >= 1 {
		return fmt.Errorf("CONFIDENCE_THRESHOLD must be in (0, 1), got %g", c.Resolver.ConfidenceThreshold)
	}
	if c.Resolver.FuzzyThreshold < 0 || c.Resolver.FuzzyThreshold >= 1 {
		return fmt.Errorf("FUZZY_THRESHOLD must be in [0, 1), got %g", c.Resolver.FuzzyThreshold)
	}
	if c.Resolver.CuisineCacheTTL <= 0 {
		return fmt.Errorf("CUISINE_CACHE_TTL must be positive, got %s", c.Resolver.CuisineCacheTTL)
	}
	if c.Resolver.LocationCacheTTL <= 0 {
		return fmt.Errorf("LOCATION_CACHE_TTL must be positive, got %s", c.Resolver.LocationCacheTTL)
	}
	return nil
}

// validateExtractor validates the extractor connection (only when enabled).
func (c *Config) validateExtractor() error {
	if !c.Extractor.Enabled {
		return nil
	}
	if c.Extractor.URL == "" {
		return fmt.Errorf("EXTRACTOR_URL is required when EXTRACTOR_ENABLED=true")
	}
	if err := validateHTTPURL(c.Extractor.URL, "EXTRACTOR_URL"); err != nil {
		return err
	}
	if c.Extractor.Timeout <= 0 {
		return fmt.Errorf("EXTRACTOR_TIMEOUT must be positive, got %s", c.Extractor.Timeout)
	}
	if c.Extractor.MaxRetries < 0 {
		return fmt.Errorf("EXTRACTOR_MAX_RETRIES must not be negative, got %d", c.Extractor.MaxRetries)
	}
	return nil
}

// validateGeocoder validates the geocoder connection (only when enabled).
func (c *Config) validateGeocoder() error {
	if !c.Geocoder.Enabled {
		return nil
	}
	if c.Geocoder.URL == "" {
		return fmt.Errorf("GEOCODER_URL is required when GEOCODER_ENABLED=true")
	}
	if err := validateHTTPURL(c.Geocoder.URL, "GEOCODER_URL"); err != nil {
		return err
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_TIMEOUT must be positive, got %s", c.Geocoder.Timeout)
	}
	if c.Geocoder.RatePerSecond <= 0 {
		return fmt.Errorf("GEOCODER_RATE_PER_SECOND must be positive, got %g", c.Geocoder.RatePerSecond)
	}
	if c.Geocoder.RateBurst < 1 {
		return fmt.Errorf("GEOCODER_RATE_BURST must be at least 1, got %d", c.Geocoder.RateBurst)
	}
	return nil
}

func (c *Config) validateJournal() error {
	if !c.Journal.Enabled {
		return nil
	}
	if c.Journal.Path == "" {
		return fmt.Errorf("JOURNAL_PATH is required when JOURNAL_ENABLED=true")
	}
	if c.Journal.GCInterval <= 0 {
		return fmt.Errorf("JOURNAL_GC_INTERVAL must be positive, got %s", c.Journal.GCInterval)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.BufferSize < 1 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must be at least 1, got %d", c.Events.BufferSize)
	}
	if c.Events.NATSURL != "" {
		if err := validateNATSURL(c.Events.NATSURL); err != nil {
			return fmt.Errorf("NATS_URL is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, disabled; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS
// services: scheme http/https, host present, no path or query.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateNATSURL validates that a NATS URL is properly formatted.
// Supports nats://, tls://, ws:// and wss:// schemes.
func validateNATSURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	validSchemes := map[string]bool{"nats": true, "tls": true, "ws": true, "wss": true}
	if !validSchemes[parsedURL.Scheme] {
		return fmt.Errorf("scheme must be nats, tls, ws, or wss, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required (e.g., localhost:4222, nats.example.com)")
	}

	return nil
}
