// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package analytics

import (
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/ming0627/bellyfed/internal/events"
)

func TestCollectorRecordAndSnapshot(t *testing.T) {
	c := NewCollector()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	c.Record(events.ResolutionEvent{Domain: "cuisine", Strategy: "exact", Score: 1.0, Matched: true, DurationMS: 2.0, Timestamp: base})
	c.Record(events.ResolutionEvent{Domain: "cuisine", Strategy: "external", Score: 0.8, Matched: true, Cached: true, DurationMS: 4.0, Timestamp: base.Add(time.Minute)})
	c.Record(events.ResolutionEvent{Domain: "cuisine", Strategy: "none", DurationMS: 6.0, Timestamp: base.Add(2 * time.Minute)})
	c.Record(events.ResolutionEvent{Domain: "location", Strategy: "geocoder", Score: 1.0, Matched: true, DurationMS: 10.0, Timestamp: base})

	snap := c.Snapshot()
	if snap.TotalEvents != 4 {
		t.Errorf("TotalEvents = %d, want 4", snap.TotalEvents)
	}
	if snap.CollectedSince.IsZero() {
		t.Error("CollectedSince is zero")
	}

	cuisine, ok := snap.Domains["cuisine"]
	if !ok {
		t.Fatal("missing cuisine domain")
	}
	if cuisine.Total != 3 || cuisine.Matched != 2 || cuisine.CacheHits != 1 {
		t.Errorf("cuisine = total %d matched %d cacheHits %d, want 3/2/1", cuisine.Total, cuisine.Matched, cuisine.CacheHits)
	}
	if cuisine.Strategies["exact"] != 1 || cuisine.Strategies["external"] != 1 || cuisine.Strategies["none"] != 1 {
		t.Errorf("cuisine.Strategies = %v, want one of each", cuisine.Strategies)
	}
	if cuisine.AvgScore != 0.9 {
		t.Errorf("cuisine.AvgScore = %v, want 0.9", cuisine.AvgScore)
	}
	if cuisine.AvgDurationMS != 4.0 {
		t.Errorf("cuisine.AvgDurationMS = %v, want 4.0", cuisine.AvgDurationMS)
	}
	if !cuisine.LastEventAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("cuisine.LastEventAt = %v, want latest event time", cuisine.LastEventAt)
	}

	location, ok := snap.Domains["location"]
	if !ok {
		t.Fatal("missing location domain")
	}
	if location.Total != 1 || location.Matched != 1 {
		t.Errorf("location = total %d matched %d, want 1/1", location.Total, location.Matched)
	}
}

func TestCollectorSnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.Record(events.ResolutionEvent{Domain: "cuisine", Strategy: "exact", Matched: true})

	snap := c.Snapshot()
	snap.Domains["cuisine"].Strategies["exact"] = 99
	delete(snap.Domains, "cuisine")

	if again := c.Snapshot(); again.Domains["cuisine"].Strategies["exact"] != 1 {
		t.Errorf("snapshot mutation leaked into collector: %v", again.Domains["cuisine"].Strategies)
	}
}

func TestCollectorHandle(t *testing.T) {
	c := NewCollector()

	payload, err := json.Marshal(events.ResolutionEvent{Domain: "service_type", Strategy: "synonym", Score: 1.0, Matched: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := c.Handle(message.NewMessage("m1", payload)); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if snap := c.Snapshot(); snap.Domains["service_type"].Matched != 1 {
		t.Errorf("snapshot after Handle = %+v, want one service_type match", snap)
	}
}

func TestCollectorHandleMalformedPayload(t *testing.T) {
	c := NewCollector()

	if err := c.Handle(message.NewMessage("m1", []byte("{not json"))); err != nil {
		t.Errorf("Handle() with malformed payload = %v, want nil (dropped, not retried)", err)
	}
	if snap := c.Snapshot(); snap.TotalEvents != 0 {
		t.Errorf("TotalEvents = %d, want 0", snap.TotalEvents)
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(events.ResolutionEvent{Domain: "cuisine", Strategy: "fuzzy", Score: 0.6, Matched: true, DurationMS: 1.0})
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	if snap.TotalEvents != 1000 {
		t.Errorf("TotalEvents = %d, want 1000", snap.TotalEvents)
	}
	if snap.Domains["cuisine"].Strategies["fuzzy"] != 1000 {
		t.Errorf("fuzzy count = %d, want 1000", snap.Domains["cuisine"].Strategies["fuzzy"])
	}
}
