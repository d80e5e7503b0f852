// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package events

import (
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/metrics"
)

// TopicResolutions is the subject all resolution events are published on.
const TopicResolutions = "resolutions"

// DefaultBufferSize bounds both the intake queue and the per-subscriber
// output channel.
const DefaultBufferSize = 1024

// BusConfig configures the in-process event bus.
type BusConfig struct {
	// BufferSize is the event backlog tolerated before publishes are
	// dropped. Zero means DefaultBufferSize.
	BufferSize int
}

// NATSConfig configures the optional JetStream mirror, available in
// builds with the nats tag.
type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
}

// Bus is the in-process resolution event bus. Engine publishes land on a
// bounded intake queue; a single forwarder goroutine moves them onto a
// watermill GoChannel Pub/Sub (and, when configured, mirrors them to an
// external publisher). A full intake drops the event rather than slowing
// a resolution down.
type Bus struct {
	pubsub *gochannel.GoChannel
	mirror message.Publisher

	intake chan ResolutionEvent
	quit   chan struct{}
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewBus starts the bus and its forwarder.
func NewBus(cfg BusConfig) *Bus {
	buffer := cfg.BufferSize
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	b := &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: int64(buffer),
		}, NewWatermillLogger()),
		intake: make(chan ResolutionEvent, buffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go b.forward()
	return b
}

// SetMirror attaches an external publisher that receives a copy of every
// event, for nats-tagged builds shipping telemetry off-box. Must be
// called before traffic starts; mirror failures are counted and logged
// but never affect in-process delivery.
func (b *Bus) SetMirror(pub message.Publisher) {
	b.mirror = pub
}

// Subscriber exposes the in-process side for router wiring.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// PublishResolution enqueues one event, best-effort. Safe on a nil or
// closed Bus, and never blocks the caller.
func (b *Bus) PublishResolution(event ResolutionEvent) {
	if b == nil {
		return
	}
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		metrics.RecordEventPublishError()
		return
	}

	select {
	case b.intake <- event:
	default:
		metrics.RecordEventPublishError()
		logging.Debug().
			Str("domain", event.Domain).
			Msg("Event intake full, dropping resolution event")
	}
}

// Close stops the forwarder and tears down the Pub/Sub. Events still on
// the intake queue are dropped.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	close(b.quit)
	<-b.done
	return b.pubsub.Close()
}

func (b *Bus) forward() {
	defer close(b.done)
	for {
		select {
		case <-b.quit:
			return
		case event := <-b.intake:
			b.publish(event)
		}
	}
}

func (b *Bus) publish(event ResolutionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		metrics.RecordEventPublishError()
		logging.Warn().Err(err).Str("event_id", event.EventID).Msg("Event marshal failed")
		return
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set("domain", event.Domain)

	if err := b.pubsub.Publish(TopicResolutions, msg); err != nil {
		metrics.RecordEventPublishError()
		logging.Debug().Err(err).Str("event_id", event.EventID).Msg("Event publish failed")
		return
	}
	metrics.RecordEventPublished(event.Domain)

	if b.mirror != nil {
		mirrored := message.NewMessage(event.EventID, payload)
		mirrored.Metadata.Set("domain", event.Domain)
		if err := b.mirror.Publish(TopicResolutions, mirrored); err != nil {
			metrics.RecordEventPublishError()
			logging.Debug().Err(err).Str("event_id", event.EventID).Msg("Event mirror publish failed")
		}
	}
}
