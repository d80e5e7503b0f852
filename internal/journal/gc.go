// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package journal

import (
	"context"
	"time"

	"github.com/ming0627/bellyfed/internal/logging"
)

// DefaultGCInterval paces the supervised value-log GC.
const DefaultGCInterval = 10 * time.Minute

// GCService runs periodic value-log garbage collection under the
// supervision tree.
type GCService struct {
	store    *Store
	interval time.Duration
}

// NewGCService wraps a store's GC in a supervised service.
func NewGCService(store *Store, interval time.Duration) *GCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &GCService{store: store, interval: interval}
}

// Serve implements suture.Service. It ticks until the context ends; GC
// failures are logged and retried next tick rather than crashing the
// service.
func (g *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.store.RunGC(); err != nil {
				logging.Warn().Err(err).Msg("Journal GC failed")
			}
		}
	}
}

// String names the service in supervisor logs.
func (g *GCService) String() string { return "journal-gc" }
