// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package supervisor provides process supervision for Bellyfed using suture v4.

This package implements a hierarchical supervisor tree that manages the
lifecycle of all long-running services in the resolver. It provides
Erlang/OTP-style supervision with automatic restart, failure isolation, and
graceful shutdown.

# Overview

The supervisor tree organizes services into three layers for failure
isolation:

	RootSupervisor ("bellyfed")
	├── DataSupervisor ("data-layer")
	│   └── Journal GC (if JOURNAL_ENABLED)
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService (analytics + metrics consumers)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that:
  - A crash in an event consumer doesn't affect request serving
  - Journal GC failures don't impact the event bus
  - Each layer restarts independently with its own failure counter

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging hangs

Structured Logging:
  - Suture events flow through sutureslog into the zerolog-backed slog
    adapter in internal/logging

# Usage Example

Basic setup in main.go:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMessagingService(services.NewEventRouterService(router))
	tree.AddDataService(journal.NewGCService(store, interval))

	errCh := tree.ServeBackground(ctx)

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return behavior:
  - Return nil or an error: the service is restarted
  - Return ctx.Err() after cancellation: shutdown, no restart
  - suture.ErrDoNotRestart: permanent completion

# What Is Not Supervised

The resolution engine, the vocabulary index, and the caches are plain
in-memory state with no run loop, so there is nothing to supervise; they
are constructed once in main and shared. BadgerDB itself is an embedded
library; only its value-log GC loop runs as a service.
*/
package supervisor
