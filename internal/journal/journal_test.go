// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// waitFor polls until cond holds or the deadline passes. Journal writes
// are asynchronous, so tests observe them eventually.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal(msg)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestStoreRecordAndTop(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		s.RecordUnmatched("cuisine", "Nasi Kandar Special", "nasikandarspecial")
	}
	s.RecordUnmatched("cuisine", "Bubble Tea", "bubbletea")
	s.RecordUnmatched("service_type", "gig economy", "gigeconomy")
	s.RecordUnmatched("service_type", "gig economy", "gigeconomy")

	waitFor(t, func() bool {
		n, err := s.Size()
		return err == nil && n == 3
	}, "journal never reached 3 distinct terms")

	records, err := s.Top(10)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Top() returned %d records, want 3", len(records))
	}

	first := records[0]
	if first.Normalized != "nasikandarspecial" || first.Count != 3 {
		t.Errorf("top record = %+v, want nasikandarspecial with count 3", first)
	}
	if first.Domain != "cuisine" || first.RawSample != "Nasi Kandar Special" {
		t.Errorf("top record = %+v, want cuisine domain and original raw sample", first)
	}
	if first.FirstSeen.IsZero() || first.LastSeen.Before(first.FirstSeen) {
		t.Errorf("timestamps = first %v last %v, want ordered", first.FirstSeen, first.LastSeen)
	}

	if records[1].Normalized != "gigeconomy" || records[1].Count != 2 {
		t.Errorf("second record = %+v, want gigeconomy with count 2", records[1])
	}

	limited, err := s.Top(1)
	if err != nil {
		t.Fatalf("Top(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].Normalized != "nasikandarspecial" {
		t.Errorf("Top(1) = %+v, want only the most frequent term", limited)
	}
}

func TestStoreKeepsFirstRawSample(t *testing.T) {
	s := newTestStore(t)

	s.RecordUnmatched("cuisine", "Lok Lok!", "loklok")
	waitFor(t, func() bool {
		recs, err := s.Top(1)
		return err == nil && len(recs) == 1
	}, "first write never landed")

	s.RecordUnmatched("cuisine", "lok lok", "loklok")
	waitFor(t, func() bool {
		recs, err := s.Top(1)
		return err == nil && len(recs) == 1 && recs[0].Count == 2
	}, "second write never landed")

	recs, err := s.Top(1)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if recs[0].RawSample != "Lok Lok!" {
		t.Errorf("RawSample = %q, want the first phrasing kept", recs[0].RawSample)
	}
}

func TestStoreSkipsEmptyNormalized(t *testing.T) {
	s := newTestStore(t)

	s.RecordUnmatched("cuisine", "!!!", "")
	time.Sleep(50 * time.Millisecond)

	if n, err := s.Size(); err != nil || n != 0 {
		t.Errorf("Size() = %d, %v; want 0 entries", n, err)
	}
}

func TestStoreNilSafe(t *testing.T) {
	var s *Store

	s.RecordUnmatched("cuisine", "raw", "raw")
	if recs, err := s.Top(5); err != nil || len(recs) != 0 {
		t.Errorf("nil Top() = %v, %v; want empty, nil", recs, err)
	}
	if n, err := s.Size(); err != nil || n != 0 {
		t.Errorf("nil Size() = %d, %v; want 0, nil", n, err)
	}
	if err := s.RunGC(); err != nil {
		t.Errorf("nil RunGC() = %v, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("nil Close() = %v, want nil", err)
	}
}

func TestStoreCloseSemantics(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}

	s.RecordUnmatched("cuisine", "closing time", "closingtime")
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	s.RecordUnmatched("cuisine", "after close", "afterclose")
}

func TestStoreConcurrentRecords(t *testing.T) {
	s := newTestStore(t)
	terms := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	// The burst stays below the intake buffer so no record can be dropped.
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				term := terms[j%len(terms)]
				s.RecordUnmatched("cuisine", term, term)
			}
		}()
	}
	wg.Wait()

	waitFor(t, func() bool {
		recs, err := s.Top(10)
		if err != nil || len(recs) != len(terms) {
			return false
		}
		var total int64
		for _, r := range recs {
			total += r.Count
		}
		return total == 100
	}, "concurrent records never all landed")
}

func TestStoreRunGCOnDisk(t *testing.T) {
	s, err := Open(Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	s.RecordUnmatched("cuisine", "gc probe", "gcprobe")
	waitFor(t, func() bool {
		n, err := s.Size()
		return err == nil && n == 1
	}, "write never landed")

	if err := s.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestGCServiceServe(t *testing.T) {
	s := newTestStore(t)
	svc := NewGCService(s, 10*time.Millisecond)
	if svc.String() != "journal-gc" {
		t.Errorf("String() = %q, want journal-gc", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
