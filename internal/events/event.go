// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package events carries resolution telemetry over a watermill Pub/Sub.
//
// Every engine resolution publishes one ResolutionEvent. Events never
// embed the query text itself, only its sha256 hash and normalized length:
// builds with the nats tag ship events to an external broker, and free
// text must not leave the process. Mining raw samples for vocabulary
// curation is the unmatched-term journal's job, which stays on local disk.
//
// Publishing is best-effort. A full buffer or a closed bus drops the
// event; it never fails or delays a resolution.
package events

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is stamped on every event so downstream consumers can
// handle payload evolution.
const SchemaVersion = 1

// ResolutionEvent describes one resolution outcome.
type ResolutionEvent struct {
	EventID       string    `json:"event_id"`
	SchemaVersion int       `json:"schema_version"`
	Domain        string    `json:"domain"`
	InputHash     string    `json:"input_hash"`
	NormalizedLen int       `json:"normalized_len"`
	Strategy      string    `json:"strategy"`
	Score         float64   `json:"score"`
	Matched       bool      `json:"matched"`
	Cached        bool      `json:"cached"`
	DurationMS    float64   `json:"duration_ms"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher is the engine's view of the event bus.
type Publisher interface {
	// PublishResolution emits one event, best-effort and non-blocking.
	PublishResolution(event ResolutionEvent)
}

// HashInput returns the hex sha256 of a query string, the only form in
// which query text appears on the bus.
func HashInput(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// NewResolutionEvent assembles a fully stamped event.
func NewResolutionEvent(domain, input, normalized, strategy string, score float64, matched, cached bool, duration time.Duration) ResolutionEvent {
	return ResolutionEvent{
		EventID:       uuid.NewString(),
		SchemaVersion: SchemaVersion,
		Domain:        domain,
		InputHash:     HashInput(input),
		NormalizedLen: len(normalized),
		Strategy:      strategy,
		Score:         score,
		Matched:       matched,
		Cached:        cached,
		DurationMS:    float64(duration.Microseconds()) / 1000.0,
		Timestamp:     time.Now().UTC(),
	}
}
