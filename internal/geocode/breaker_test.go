// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package geocode

import (
	"context"
	"errors"
	"sync"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/ming0627/bellyfed/internal/models"
)

// mockGeocoder is a scriptable Geocoder with a call counter.
type mockGeocoder struct {
	mu     sync.Mutex
	calls  int
	result *models.LocationResolution
	err    error
}

func (m *mockGeocoder) SearchLocation(_ context.Context, _ string) (*models.LocationResolution, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockGeocoder) Name() string { return "mock-geocoder" }

func (m *mockGeocoder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestBreakerGeocoderPassthrough(t *testing.T) {
	inner := &mockGeocoder{result: &models.LocationResolution{Location: "KLCC"}}
	b := NewBreakerGeocoder(inner)

	if b.Name() != "mock-geocoder" {
		t.Errorf("Name() = %q, want mock-geocoder", b.Name())
	}

	got, err := b.SearchLocation(context.Background(), "KLCC")
	if err != nil || got == nil || got.Location != "KLCC" {
		t.Errorf("SearchLocation() = (%+v, %v), want passthrough result", got, err)
	}
}

// TestBreakerGeocoderNoMatchPassthrough verifies the (nil, nil) no-match
// answer survives the breaker and counts as a success, not a failure.
func TestBreakerGeocoderNoMatchPassthrough(t *testing.T) {
	inner := &mockGeocoder{}
	b := NewBreakerGeocoder(inner)

	for i := 0; i < 15; i++ {
		got, err := b.SearchLocation(context.Background(), "nowhere")
		if err != nil || got != nil {
			t.Fatalf("call %d = (%+v, %v), want (nil, nil)", i+1, got, err)
		}
	}

	// All calls reached the provider; no-match never trips the breaker.
	if n := inner.callCount(); n != 15 {
		t.Errorf("inner saw %d calls, want 15", n)
	}
}

func TestBreakerGeocoderOpensAfterFailures(t *testing.T) {
	inner := &mockGeocoder{err: errors.New("down")}
	b := NewBreakerGeocoder(inner)

	for i := 0; i < 10; i++ {
		if _, err := b.SearchLocation(context.Background(), "anything"); err == nil {
			t.Fatalf("call %d succeeded, want failure", i+1)
		}
	}

	_, err := b.SearchLocation(context.Background(), "anything")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("call 11 error = %v, want ErrOpenState", err)
	}
	if n := inner.callCount(); n != 10 {
		t.Errorf("inner saw %d calls, want 10 (rejected call must not reach it)", n)
	}
}
