// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

//go:build !nats

package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NewNATSPublisher is a stub when NATS dependencies are not compiled in.
// Build with -tags=nats to enable the JetStream mirror.
func NewNATSPublisher(cfg NATSConfig) (message.Publisher, error) {
	return nil, fmt.Errorf("NATS publisher not available: build with -tags=nats")
}
