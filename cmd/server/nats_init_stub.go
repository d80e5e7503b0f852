// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

//go:build !nats

package main

import (
	"github.com/ming0627/bellyfed/internal/config"
	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/logging"
)

// initEventMirror is a no-op stub for non-NATS builds.
func initEventMirror(cfg *config.Config, _ *events.Bus) {
	if cfg.Events.NATSURL != "" {
		logging.Warn().Msg("EVENTS_NATS_URL set but NATS support not compiled (build with -tags nats)")
	}
}
