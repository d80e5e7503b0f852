// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package main is the entry point for the Bellyfed entity resolution
// server.
//
// The service turns noisy free-text queries ("tapau", "kopitiam",
// "outdoor seat", a half-written address) into canonical taxonomy values
// (cuisine, establishment type, service type) or structured locations.
// It is the resolver core of the Bellyfed platform, exposed over a thin
// HTTP API consumed by the platform's request handlers.
//
// # Application Architecture
//
// Components run under a Suture v4 supervision tree:
//
//	RootSupervisor ("bellyfed")
//	├── DataSupervisor ("data-layer")
//	│   └── Journal GC (optional, JOURNAL_ENABLED=true)
//	├── MessagingSupervisor ("messaging-layer")
//	│   └── Event Router (analytics collector)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server
//
// Component initialization order:
//
//  1. Configuration: Koanf v2 layered load (defaults, YAML file, env)
//  2. Logging: zerolog from config
//  3. Vocabulary index: compiled and validated, fatal on malformed tables
//  4. External adapters: NLP extractor and geocoder behind circuit breakers
//  5. Event bus: in-process Pub/Sub (NATS mirror with -tags nats)
//  6. Unmatched-term journal: BadgerDB store plus supervised GC
//  7. Resolution engine: vocabulary tiers over cached external tiers
//  8. HTTP server: Chi router with rate limiting and Prometheus metrics
//
// # Build Tags
//
//	go build ./cmd/server              # in-process event bus only
//	go build -tags nats ./cmd/server   # mirror events to NATS JetStream
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger a graceful shutdown: the HTTP server drains
// connections (10s timeout), the event router drains in-flight handlers,
// and the journal flushes and closes.
//
// # Example Usage
//
// Local-only matching (no external services):
//
//	./bellyfed
//
// Full pipeline:
//
//	export EXTRACTOR_ENABLED=true
//	export EXTRACTOR_URL=http://nlp.internal:8080
//	export EXTRACTOR_API_KEY=your-key
//	export GEOCODER_ENABLED=true
//	export GEOCODER_URL=http://places.internal:8080
//	export GEOCODER_API_KEY=your-key
//	export JOURNAL_ENABLED=true
//	export JOURNAL_PATH=/data/bellyfed/journal
//	./bellyfed
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ming0627/bellyfed/docs" // generated swagger docs
	"github.com/ming0627/bellyfed/internal/analytics"
	"github.com/ming0627/bellyfed/internal/api"
	"github.com/ming0627/bellyfed/internal/config"
	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/geocode"
	"github.com/ming0627/bellyfed/internal/journal"
	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/nlp"
	"github.com/ming0627/bellyfed/internal/resolve"
	"github.com/ming0627/bellyfed/internal/supervisor"
	"github.com/ming0627/bellyfed/internal/supervisor/services"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Bool("extractor_enabled", cfg.Extractor.Enabled).
		Bool("geocoder_enabled", cfg.Geocoder.Enabled).
		Bool("journal_enabled", cfg.Journal.Enabled).
		Msg("Starting Bellyfed entity resolution service")

	// Compile the vocabulary index. A malformed table is a configuration
	// error: abort before anything else starts.
	index, err := taxonomy.NewIndex(taxonomy.IndexConfig{
		FuzzyThreshold: cfg.Resolver.FuzzyThreshold,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build vocabulary index")
	}
	logging.Info().
		Int("cuisines", len(index.Cuisines.Values())).
		Int("establishments", len(index.Establishments.Values())).
		Int("services", len(index.Services.Values())).
		Msg("Vocabulary index built")

	// External adapters, each behind its own circuit breaker. Disabled
	// adapters stay nil and the engine skips their tiers.
	var extractor nlp.Extractor
	if cfg.Extractor.Enabled {
		extractor = nlp.NewBreakerExtractor(nlp.NewHTTPExtractor(nlp.Config{
			BaseURL:    cfg.Extractor.URL,
			APIKey:     cfg.Extractor.APIKey,
			Timeout:    cfg.Extractor.Timeout,
			MaxRetries: cfg.Extractor.MaxRetries,
		}))
		logging.Info().Str("url", cfg.Extractor.URL).Msg("NLP extractor enabled")
	} else {
		logging.Info().Msg("NLP extractor disabled - cuisine resolution is local-only")
	}

	var geocoder geocode.Geocoder
	if cfg.Geocoder.Enabled {
		geocoder = geocode.NewBreakerGeocoder(geocode.NewHTTPGeocoder(geocode.Config{
			BaseURL:       cfg.Geocoder.URL,
			APIKey:        cfg.Geocoder.APIKey,
			Timeout:       cfg.Geocoder.Timeout,
			RatePerSecond: cfg.Geocoder.RatePerSecond,
			RateBurst:     cfg.Geocoder.RateBurst,
		}))
		logging.Info().Str("url", cfg.Geocoder.URL).Msg("Geocoder enabled")
	} else {
		logging.Info().Msg("Geocoder disabled - location resolution returns absent")
	}

	// Event bus and analytics. The bus is in-process; a NATS mirror is
	// attached by initEventMirror in builds with -tags nats.
	var bus *events.Bus
	var eventRouter *events.Router
	collector := analytics.NewCollector()
	if cfg.Events.Enabled {
		bus = events.NewBus(events.BusConfig{BufferSize: cfg.Events.BufferSize})
		initEventMirror(cfg, bus)

		eventRouter, err = events.NewRouter(events.DefaultRouterConfig())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create event router")
		}
		eventRouter.AddConsumerHandler(
			"analytics-collector",
			events.TopicResolutions,
			bus.Subscriber(),
			collector.Handle,
		)
	} else {
		logging.Info().Msg("Event bus disabled - analytics endpoints report no data")
	}

	// Unmatched-term journal. A nil store disables recording everywhere
	// downstream.
	var store *journal.Store
	if cfg.Journal.Enabled {
		store, err = journal.Open(journal.Config{Path: cfg.Journal.Path})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open unmatched-term journal")
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing journal")
			}
		}()
	} else {
		logging.Info().Msg("Unmatched-term journal disabled")
	}

	engine := resolve.NewEngine(index, resolve.Options{
		Extractor:           extractor,
		Geocoder:            geocoder,
		Publisher:           bus,
		Journal:             store,
		ConfidenceThreshold: cfg.Resolver.ConfidenceThreshold,
		CuisineCacheTTL:     cfg.Resolver.CuisineCacheTTL,
		LocationCacheTTL:    cfg.Resolver.LocationCacheTTL,
	})

	handler := api.NewHandler(engine, collector, store, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins:   cfg.API.CORSOrigins,
		CORSAllowedMethods:   []string{"GET", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,
		RateLimitRequests:    cfg.API.RateLimitReqs,
		RateLimitWindow:      cfg.API.RateLimitWindow,
		RateLimitDisabled:    cfg.API.RateLimitDisabled,
	}))

	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (API_RATE_LIMIT_DISABLED=true)")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Supervision tree, logging through the zerolog-backed slog adapter.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if store != nil {
		tree.AddDataService(journal.NewGCService(store, cfg.Journal.GCInterval))
	}
	if eventRouter != nil {
		tree.AddMessagingService(services.NewEventRouterService(eventRouter))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The GoChannel Pub/Sub drops publishes until the router's handlers
	// are consuming; hold early traffic consequences to a minimum by
	// waiting for it before reporting ready.
	if eventRouter != nil {
		select {
		case <-eventRouter.Running():
			logging.Info().Msg("Event router running")
		case <-time.After(10 * time.Second):
			logging.Warn().Msg("Event router not running after 10s, continuing startup")
		case <-ctx.Done():
		}
	}

	<-ctx.Done()
	logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if bus != nil {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
