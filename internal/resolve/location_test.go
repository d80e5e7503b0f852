// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package resolve

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ming0627/bellyfed/internal/models"
)

func TestResolveLocationQueryTiers(t *testing.T) {
	input := "makan near the twin towers"

	tests := []struct {
		name      string
		ext       *mockExtractor
		wantQuery string
	}{
		{
			name:      "structured address preferred",
			ext:       &mockExtractor{keywords: nlpKeywords("12 Jalan SS2/24", "Petaling Jaya")},
			wantQuery: "12 Jalan SS2/24",
		},
		{
			name:      "city when no address",
			ext:       &mockExtractor{keywords: nlpKeywords("", "Petaling Jaya")},
			wantQuery: "Petaling Jaya",
		},
		{
			name:      "confident region landmark",
			ext:       &mockExtractor{region: nlpRegion(0.85, []string{"KLCC", "Pavilion"}, "Bukit Bintang")},
			wantQuery: "KLCC",
		},
		{
			name:      "confident region area",
			ext:       &mockExtractor{region: nlpRegion(0.85, nil, "Bukit Bintang")},
			wantQuery: "Bukit Bintang",
		},
		{
			name:      "region at threshold rejected",
			ext:       &mockExtractor{region: nlpRegion(0.7, []string{"KLCC"}, "")},
			wantQuery: input,
		},
		{
			name:      "keyword failure falls to region",
			ext:       &mockExtractor{keywordsErr: errors.New("boom"), region: nlpRegion(0.9, []string{"KLCC"}, "")},
			wantQuery: "KLCC",
		},
		{
			name:      "both extractor tiers fail",
			ext:       &mockExtractor{keywordsErr: errors.New("boom"), regionErr: errors.New("boom")},
			wantQuery: input,
		},
		{
			name:      "no extractor",
			wantQuery: input,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := &mockGeocoder{result: klccResolution()}
			opts := Options{Geocoder: geo}
			if tt.ext != nil {
				opts.Extractor = tt.ext
			}
			e := NewEngine(newTestIndex(t), opts)

			res, cached := e.ResolveLocation(context.Background(), input)
			if res == nil || cached {
				t.Fatalf("ResolveLocation() = %+v cached %v, want fresh result", res, cached)
			}
			if got := geo.lastQuery(); got != tt.wantQuery {
				t.Errorf("geocoded query = %q, want %q", got, tt.wantQuery)
			}
		})
	}
}

func TestResolveLocationCachedUnderOriginalInput(t *testing.T) {
	ext := &mockExtractor{keywords: nlpKeywords("", "Kuala Lumpur")}
	geo := &mockGeocoder{result: klccResolution()}
	pub := &mockPublisher{}
	e := NewEngine(newTestIndex(t), Options{Extractor: ext, Geocoder: geo, Publisher: pub})
	ctx := context.Background()
	input := "Food near KLCC please!"

	first, cached := e.ResolveLocation(ctx, input)
	if first == nil || cached {
		t.Fatalf("first ResolveLocation() = %+v cached %v, want fresh result", first, cached)
	}

	second, cached := e.ResolveLocation(ctx, input)
	if second == nil || !cached {
		t.Fatalf("second ResolveLocation() = %+v cached %v, want cache hit", second, cached)
	}
	if geo.calls() != 1 {
		t.Errorf("geocoder called %d times, want 1", geo.calls())
	}
	if kw, _, _ := ext.counts(); kw != 1 {
		t.Errorf("extractor called %d times, want 1", kw)
	}

	if second.Location != first.Location || second.Address != first.Address || second.FullAddress != first.FullAddress {
		t.Errorf("cached resolution differs: %+v vs %+v", second, first)
	}
	if second.Coordinates == nil || *second.Coordinates != *first.Coordinates {
		t.Errorf("cached coordinates differ: %+v vs %+v", second.Coordinates, first.Coordinates)
	}

	// Equivalent phrasing normalizes to the same key.
	if _, cached := e.ResolveLocation(ctx, "food NEAR klcc, please"); !cached {
		t.Error("equivalent phrasing should hit the cache")
	}
	if geo.calls() != 1 {
		t.Errorf("geocoder called %d times after equivalent phrasing, want 1", geo.calls())
	}

	// The refined query is not the cache key; asking for it directly is a
	// different resolution.
	if _, cached := e.ResolveLocation(ctx, "Kuala Lumpur"); cached {
		t.Error("refined query must not share the original input's cache entry")
	}
	if geo.calls() != 2 {
		t.Errorf("geocoder called %d times after direct query, want 2", geo.calls())
	}

	evs := pub.all()
	if len(evs) < 2 {
		t.Fatalf("published %d events, want at least 2", len(evs))
	}
	if evs[0].Domain != DomainLocation || evs[0].Strategy != "geocoder" || evs[0].Cached {
		t.Errorf("first event = %+v, want fresh geocoder resolution", evs[0])
	}
	if !evs[1].Cached || !evs[1].Matched {
		t.Errorf("second event = %+v, want cached hit", evs[1])
	}
}

func TestResolveLocationAbsentOutcomes(t *testing.T) {
	tests := []struct {
		name string
		geo  *mockGeocoder
	}{
		{"geocoder failure", &mockGeocoder{err: errors.New("upstream 503")}},
		{"zero results", &mockGeocoder{}},
		{"unusable result", &mockGeocoder{result: &models.LocationResolution{
			LocationType: "landmark",
			Coordinates:  &models.Coordinates{Latitude: 3.1, Longitude: 101.7},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &mockJournal{}
			e := NewEngine(newTestIndex(t), Options{Geocoder: tt.geo, Journal: j})
			ctx := context.Background()
			input := "somewhere uncharted"

			res, cached := e.ResolveLocation(ctx, input)
			if res != nil || cached {
				t.Fatalf("ResolveLocation() = %+v cached %v, want absent", res, cached)
			}

			// Absent outcomes are never cached.
			e.ResolveLocation(ctx, input)
			if tt.geo.calls() != 2 {
				t.Errorf("geocoder called %d times, want 2", tt.geo.calls())
			}

			entries := j.all()
			if len(entries) != 2 {
				t.Fatalf("journal has %d entries, want 2", len(entries))
			}
			if entries[0].domain != DomainLocation || entries[0].raw != input {
				t.Errorf("journal entry = %+v, want location/%q", entries[0], input)
			}
		})
	}
}

func TestResolveLocationNoGeocoder(t *testing.T) {
	ext := &mockExtractor{keywords: nlpKeywords("12 Jalan SS2/24", "")}
	j := &mockJournal{}
	e := NewEngine(newTestIndex(t), Options{Extractor: ext, Journal: j})

	res, cached := e.ResolveLocation(context.Background(), "anywhere at all")
	if res != nil || cached {
		t.Fatalf("ResolveLocation() = %+v cached %v, want absent", res, cached)
	}

	// Without a geocoder nothing can come of extraction, so the extractor
	// is not consulted either.
	if kw, rg, _ := ext.counts(); kw != 0 || rg != 0 {
		t.Errorf("extractor calls = %d keywords, %d region, want 0, 0", kw, rg)
	}
	if entries := j.all(); len(entries) != 1 || entries[0].domain != DomainLocation {
		t.Errorf("journal entries = %+v, want one location entry", entries)
	}
}

func TestResolveLocationCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	geo := &mockGeocoder{result: klccResolution()}
	e := NewEngine(newTestIndex(t), Options{Geocoder: geo, Clock: clock.Now})
	ctx := context.Background()
	input := "KLCC tower"

	if res, _ := e.ResolveLocation(ctx, input); res == nil {
		t.Fatal("first resolve should succeed")
	}

	clock.Advance(24 * time.Hour)
	if _, cached := e.ResolveLocation(ctx, input); !cached {
		t.Error("resolve at exactly the TTL should still hit the cache")
	}

	clock.Advance(time.Nanosecond)
	if _, cached := e.ResolveLocation(ctx, input); cached {
		t.Error("resolve past the TTL should re-geocode")
	}
	if geo.calls() != 2 {
		t.Errorf("geocoder called %d times, want 2", geo.calls())
	}
}

func TestResolveLocationCancelledContextSkipsCache(t *testing.T) {
	geo := &mockGeocoder{result: klccResolution()}
	e := NewEngine(newTestIndex(t), Options{Geocoder: geo})
	input := "KLCC tower"

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	res, cached := e.ResolveLocation(cancelled, input)
	if res == nil || cached {
		t.Fatalf("ResolveLocation() = %+v cached %v, want uncached result", res, cached)
	}

	if _, cached := e.ResolveLocation(context.Background(), input); cached {
		t.Error("cancelled resolution must not populate the cache")
	}
	if geo.calls() != 2 {
		t.Errorf("geocoder called %d times, want 2", geo.calls())
	}
}

func TestResolveLocationConcurrentSameInput(t *testing.T) {
	geo := &mockGeocoder{result: klccResolution()}
	e := NewEngine(newTestIndex(t), Options{Geocoder: geo})
	ctx := context.Background()
	input := "suria klcc mall"

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, _ := e.ResolveLocation(ctx, input)
			if res == nil || res.Location != "KLCC" {
				t.Errorf("concurrent ResolveLocation() = %+v, want KLCC", res)
			}
		}()
	}
	wg.Wait()

	if _, cached := e.ResolveLocation(ctx, input); !cached {
		t.Error("resolve after concurrent burst should hit the cache")
	}
}
