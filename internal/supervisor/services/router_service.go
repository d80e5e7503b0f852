// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package services

import (
	"context"
	"fmt"
)

// EventRouter matches the run surface of the resolution event consumer
// router (internal/events.Router).
type EventRouter interface {
	Run(ctx context.Context) error
}

// EventRouterService runs the event consumer router under supervision.
// Run blocks until the context ends and drains in-flight handlers on the
// way out, so the wrapper translates directly: a nil return after
// cancellation is shutdown, anything else is a failure the supervisor
// should restart.
type EventRouterService struct {
	router EventRouter
	name   string
}

// NewEventRouterService wraps the consumer router for the supervision tree.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{
		router: router,
		name:   "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		// Shutdown path; Run's own error (if any) is a side effect of
		// tearing down mid-consume and not worth a restart.
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("event router failed: %w", err)
	}
	return fmt.Errorf("event router stopped unexpectedly")
}

// String implements fmt.Stringer for suture log lines.
func (s *EventRouterService) String() string {
	return s.name
}
