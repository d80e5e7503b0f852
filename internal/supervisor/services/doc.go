// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package services provides suture.Service wrappers for Bellyfed components.

This package adapts application components to the suture v4 supervision
model, translating their native lifecycle patterns (ListenAndServe, Run)
into suture's context-aware Serve pattern.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Event Router (EventRouterService):
  - Wraps the resolution event consumer router
  - Run blocks until the context ends, then handlers drain

The journal GC loop implements suture.Service directly in
internal/journal and needs no wrapper here.

# Error Handling

Return values determine supervisor behavior:

	nil or error -> supervisor restarts the service
	ctx.Err() after cancellation -> shutdown, no restart

All wrappers implement fmt.Stringer so suture log lines carry a stable
service name.
*/
package services
