// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

//go:build nats

package main

import (
	"time"

	"github.com/ming0627/bellyfed/internal/config"
	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/logging"
)

// initEventMirror attaches a NATS JetStream mirror to the event bus so
// resolution events ship off-box. Mirror failures are non-fatal: the
// in-process bus keeps serving analytics either way.
func initEventMirror(cfg *config.Config, bus *events.Bus) {
	if cfg.Events.NATSURL == "" {
		logging.Warn().Msg("Built with -tags nats but EVENTS_NATS_URL is empty, mirror disabled")
		return
	}

	pub, err := events.NewNATSPublisher(events.NATSConfig{
		URL:           cfg.Events.NATSURL,
		MaxReconnects: 10,
		ReconnectWait: 2 * time.Second,
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to connect NATS mirror, continuing without it")
		return
	}

	bus.SetMirror(pub)
	logging.Info().Str("url", cfg.Events.NATSURL).Msg("NATS JetStream event mirror attached")
}
