// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package resolve

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ming0627/bellyfed/internal/events"
	"github.com/ming0627/bellyfed/internal/models"
	"github.com/ming0627/bellyfed/internal/nlp"
	"github.com/ming0627/bellyfed/internal/taxonomy"
)

type mockExtractor struct {
	mu           sync.Mutex
	keywordCalls int
	regionCalls  int
	cuisineCalls int

	keywords    *nlp.KeywordExtraction
	keywordsErr error
	region      *nlp.RegionIdentification
	regionErr   error
	cuisine     *nlp.CuisineIdentification
	cuisineErr  error
}

func (m *mockExtractor) ExtractKeywords(ctx context.Context, text string) (*nlp.KeywordExtraction, error) {
	m.mu.Lock()
	m.keywordCalls++
	m.mu.Unlock()
	if m.keywordsErr != nil {
		return nil, m.keywordsErr
	}
	return m.keywords, nil
}

func (m *mockExtractor) IdentifyRegion(ctx context.Context, text string) (*nlp.RegionIdentification, error) {
	m.mu.Lock()
	m.regionCalls++
	m.mu.Unlock()
	if m.regionErr != nil {
		return nil, m.regionErr
	}
	return m.region, nil
}

func (m *mockExtractor) IdentifyCuisineAndDish(ctx context.Context, text string) (*nlp.CuisineIdentification, error) {
	m.mu.Lock()
	m.cuisineCalls++
	m.mu.Unlock()
	if m.cuisineErr != nil {
		return nil, m.cuisineErr
	}
	return m.cuisine, nil
}

func (m *mockExtractor) Name() string { return "mock-extractor" }

func (m *mockExtractor) counts() (keywords, region, cuisine int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keywordCalls, m.regionCalls, m.cuisineCalls
}

type mockGeocoder struct {
	mu      sync.Mutex
	queries []string
	result  *models.LocationResolution
	err     error
}

func (m *mockGeocoder) SearchLocation(ctx context.Context, query string) (*models.LocationResolution, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return nil, nil
	}
	out := *m.result
	return &out, nil
}

func (m *mockGeocoder) Name() string { return "mock-geocoder" }

func (m *mockGeocoder) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

func (m *mockGeocoder) lastQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queries) == 0 {
		return ""
	}
	return m.queries[len(m.queries)-1]
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.ResolutionEvent
}

func (m *mockPublisher) PublishResolution(e events.ResolutionEvent) {
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
}

func (m *mockPublisher) all() []events.ResolutionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.ResolutionEvent(nil), m.events...)
}

type journalEntry struct {
	domain, raw, normalized string
}

type mockJournal struct {
	mu      sync.Mutex
	entries []journalEntry
}

func (m *mockJournal) RecordUnmatched(domain, raw, normalized string) {
	m.mu.Lock()
	m.entries = append(m.entries, journalEntry{domain: domain, raw: raw, normalized: normalized})
	m.mu.Unlock()
}

func (m *mockJournal) all() []journalEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journalEntry(nil), m.entries...)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestIndex(t *testing.T) *taxonomy.Index {
	t.Helper()
	idx, err := taxonomy.NewIndex(taxonomy.IndexConfig{})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return idx
}

func nlpCuisine(confidence float64, label string) *nlp.CuisineIdentification {
	return &nlp.CuisineIdentification{Confidence: confidence, CuisineType: label}
}

func nlpKeywords(address, city string) *nlp.KeywordExtraction {
	return &nlp.KeywordExtraction{
		RelevantTerms: &nlp.RelevantTerms{Location: &nlp.LocationTerms{Address: address, City: city}},
	}
}

func nlpRegion(confidence float64, landmarks []string, area string) *nlp.RegionIdentification {
	return &nlp.RegionIdentification{
		Confidence: confidence,
		Context:    &nlp.RegionContext{Landmarks: landmarks, Area: area},
	}
}

func klccResolution() *models.LocationResolution {
	return &models.LocationResolution{
		Location:     "KLCC",
		LocationType: "landmark",
		District:     "Kuala Lumpur City Centre",
		Area:         "Kuala Lumpur",
		Address:      "Kuala Lumpur City Centre, 50088 Kuala Lumpur",
		FullAddress:  "Kuala Lumpur City Centre, 50088 Kuala Lumpur, Malaysia",
		Coordinates:  &models.Coordinates{Latitude: 3.1579, Longitude: 101.7123},
	}
}

func TestMatchServiceType(t *testing.T) {
	e := NewEngine(newTestIndex(t), Options{})

	tests := []struct {
		input string
		want  taxonomy.Match[taxonomy.Service]
	}{
		{"buffet", taxonomy.Match[taxonomy.Service]{Value: taxonomy.ServiceBuffet, Strategy: taxonomy.StrategyExact, Score: 1.0, OK: true}},
		{"Dine-In!", taxonomy.Match[taxonomy.Service]{Value: taxonomy.ServiceDineIn, Strategy: taxonomy.StrategyExact, Score: 1.0, OK: true}},
		{"tapau", taxonomy.Match[taxonomy.Service]{Value: taxonomy.ServiceTakeout, Strategy: taxonomy.StrategySynonym, Score: 1.0, OK: true}},
		{"all you can eat", taxonomy.Match[taxonomy.Service]{Value: taxonomy.ServiceBuffet, Strategy: taxonomy.StrategySynonym, Score: 1.0, OK: true}},
		{"outdoor", taxonomy.Match[taxonomy.Service]{}},
		{"swimming", taxonomy.Match[taxonomy.Service]{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := e.MatchServiceType(tt.input); got != tt.want {
				t.Errorf("MatchServiceType(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchEstablishmentType(t *testing.T) {
	e := NewEngine(newTestIndex(t), Options{})

	tests := []struct {
		input string
		want  taxonomy.Match[taxonomy.Establishment]
	}{
		{"kopitiam", taxonomy.Match[taxonomy.Establishment]{Value: taxonomy.EstablishmentKopitiam, Strategy: taxonomy.StrategyExact, Score: 1.0, OK: true}},
		{"Medan Selera", taxonomy.Match[taxonomy.Establishment]{Value: taxonomy.EstablishmentFoodCourt, Strategy: taxonomy.StrategySynonym, Score: 1.0, OK: true}},
		{"restauran", taxonomy.Match[taxonomy.Establishment]{Value: taxonomy.EstablishmentRestaurant, Strategy: taxonomy.StrategyFuzzy, Score: 0.9, OK: true}},
		{"laundromat", taxonomy.Match[taxonomy.Establishment]{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := e.MatchEstablishmentType(tt.input); got != tt.want {
				t.Errorf("MatchEstablishmentType(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEngineEventsPublished(t *testing.T) {
	pub := &mockPublisher{}
	e := NewEngine(newTestIndex(t), Options{Publisher: pub})

	e.MatchServiceType("tapau")
	e.MatchEstablishmentType("zzz unknown zzz")

	got := pub.all()
	if len(got) != 2 {
		t.Fatalf("published %d events, want 2", len(got))
	}

	hit := got[0]
	if hit.Domain != taxonomy.DomainService {
		t.Errorf("hit.Domain = %q, want %q", hit.Domain, taxonomy.DomainService)
	}
	if hit.Strategy != "synonym" || !hit.Matched || hit.Cached {
		t.Errorf("hit = strategy %q matched %v cached %v, want synonym/true/false", hit.Strategy, hit.Matched, hit.Cached)
	}
	if hit.Score != 1.0 {
		t.Errorf("hit.Score = %v, want 1.0", hit.Score)
	}
	if hit.InputHash != events.HashInput("tapau") {
		t.Errorf("hit.InputHash = %q, want hash of raw input", hit.InputHash)
	}
	if hit.NormalizedLen != len("tapau") {
		t.Errorf("hit.NormalizedLen = %d, want %d", hit.NormalizedLen, len("tapau"))
	}
	if hit.SchemaVersion != events.SchemaVersion {
		t.Errorf("hit.SchemaVersion = %d, want %d", hit.SchemaVersion, events.SchemaVersion)
	}
	if hit.EventID == "" {
		t.Error("hit.EventID is empty")
	}
	if hit.Timestamp.IsZero() {
		t.Error("hit.Timestamp is zero")
	}

	miss := got[1]
	if miss.Domain != taxonomy.DomainEstablishment {
		t.Errorf("miss.Domain = %q, want %q", miss.Domain, taxonomy.DomainEstablishment)
	}
	if miss.Strategy != "none" || miss.Matched {
		t.Errorf("miss = strategy %q matched %v, want none/false", miss.Strategy, miss.Matched)
	}
}

func TestEngineJournalRecordsUnmatched(t *testing.T) {
	j := &mockJournal{}
	e := NewEngine(newTestIndex(t), Options{Journal: j})

	e.MatchServiceType("tapau")
	e.MatchServiceType("Quantum Leap")

	entries := j.all()
	if len(entries) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(entries))
	}
	want := journalEntry{domain: taxonomy.DomainService, raw: "Quantum Leap", normalized: "quantumleap"}
	if entries[0] != want {
		t.Errorf("journal entry = %+v, want %+v", entries[0], want)
	}
}

func TestEngineNilCollaborators(t *testing.T) {
	e := NewEngine(newTestIndex(t), Options{})
	ctx := context.Background()

	if m, cached := e.ResolveCuisine(ctx, "malayfood"); !m.OK || m.Strategy != taxonomy.StrategyFuzzy || cached {
		t.Errorf("ResolveCuisine() = %+v cached %v, want fuzzy match uncached", m, cached)
	}
	if res, cached := e.ResolveLocation(ctx, "KLCC"); res != nil || cached {
		t.Errorf("ResolveLocation() = %+v cached %v, want absent", res, cached)
	}
	if m := e.MatchEstablishmentType("warung"); !m.OK {
		t.Errorf("MatchEstablishmentType() = %+v, want match", m)
	}
}

func TestEngineCacheStats(t *testing.T) {
	e := NewEngine(newTestIndex(t), Options{})
	ctx := context.Background()

	e.ResolveCuisine(ctx, "nothing known")
	e.ResolveLocation(ctx, "nowhere")

	stats := e.CacheStats()
	cuisine, ok := stats["cuisine"]
	if !ok {
		t.Fatal("CacheStats() missing cuisine cache")
	}
	if cuisine.Misses != 1 {
		t.Errorf("cuisine.Misses = %d, want 1", cuisine.Misses)
	}
	location, ok := stats["location"]
	if !ok {
		t.Fatal("CacheStats() missing location cache")
	}
	if location.Misses != 1 {
		t.Errorf("location.Misses = %d, want 1", location.Misses)
	}
}
