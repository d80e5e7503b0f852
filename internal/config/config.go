// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package config

import (
	"time"
)

// Config is the root configuration for the resolver service.
//
// Configuration is loaded in layers (Load): built-in defaults, then an
// optional YAML file, then environment variables. Validation failures are
// configuration errors and abort startup; nothing here is recoverable
// per-request.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Resolver  ResolverConfig  `koanf:"resolver"`
	Extractor ExtractorConfig `koanf:"extractor"` // Optional: NLP keyword/region/cuisine service
	Geocoder  GeocoderConfig  `koanf:"geocoder"`  // Optional: place-search service
	Journal   JournalConfig   `koanf:"journal"`   // Optional: unmatched-term journal (Badger)
	Events    EventsConfig    `koanf:"events"`    // Resolution event bus
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"` // per-request timeout middleware
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`   // requests per window per IP
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"` // sliding window size
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxQueryLength    int           `koanf:"max_query_length"` // longest accepted ?q= input
}

// ResolverConfig tunes the resolution pipelines.
type ResolverConfig struct {
	// ConfidenceThreshold is the minimum external classifier confidence,
	// exclusive. Results at or below it are discarded.
	ConfidenceThreshold float64 `koanf:"confidence_threshold"`

	// FuzzyThreshold is the minimum fuzzy containment score, exclusive.
	FuzzyThreshold float64 `koanf:"fuzzy_threshold"`

	// CuisineCacheTTL bounds the age of cached cuisine classifications.
	CuisineCacheTTL time.Duration `koanf:"cuisine_cache_ttl"`

	// LocationCacheTTL bounds the age of cached location resolutions.
	LocationCacheTTL time.Duration `koanf:"location_cache_ttl"`
}

// ExtractorConfig holds the external NLP extractor connection settings.
// When disabled, cuisine resolution skips the external tier and location
// resolution geocodes the raw input directly.
type ExtractorConfig struct {
	Enabled    bool          `koanf:"enabled"`
	URL        string        `koanf:"url"`
	APIKey     string        `koanf:"api_key"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxRetries int           `koanf:"max_retries"` // extra attempts after the first
}

// GeocoderConfig holds the external place-search connection settings.
// When disabled, location resolution always returns absent.
type GeocoderConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	APIKey        string        `koanf:"api_key"`
	Timeout       time.Duration `koanf:"timeout"`
	RatePerSecond float64       `koanf:"rate_per_second"` // client-side provider quota
	RateBurst     int           `koanf:"rate_burst"`
}

// JournalConfig holds the unmatched-term journal settings.
type JournalConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Path       string        `koanf:"path"`        // Badger directory
	GCInterval time.Duration `koanf:"gc_interval"` // value-log GC cadence
}

// EventsConfig holds the resolution event bus settings.
// The default transport is an in-process Go channel Pub/Sub; builds with the
// nats tag publish to an external NATS JetStream server instead.
type EventsConfig struct {
	Enabled    bool   `koanf:"enabled"`
	BufferSize int    `koanf:"buffer_size"`
	NATSURL    string `koanf:"nats_url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error, fatal
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    3663,
			Timeout: 30 * time.Second,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			MaxQueryLength:    256,
		},
		Resolver: ResolverConfig{
			ConfidenceThreshold: 0.7,
			FuzzyThreshold:      0.5,
			CuisineCacheTTL:     24 * time.Hour,
			LocationCacheTTL:    24 * time.Hour,
		},
		Extractor: ExtractorConfig{
			Enabled:    false, // local-only matching by default
			URL:        "",
			APIKey:     "",
			Timeout:    10 * time.Second,
			MaxRetries: 3,
		},
		Geocoder: GeocoderConfig{
			Enabled:       false, // location resolution absent by default
			URL:           "",
			APIKey:        "",
			Timeout:       10 * time.Second,
			RatePerSecond: 1.0,
			RateBurst:     3,
		},
		Journal: JournalConfig{
			Enabled:    false,
			Path:       "/data/bellyfed/journal",
			GCInterval: 10 * time.Minute,
		},
		Events: EventsConfig{
			Enabled:    true,
			BufferSize: 1024,
			NATSURL:    "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
