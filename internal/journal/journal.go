// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

// Package journal persists queries that resolved absent, so the
// vocabulary team can mine them for missing synonyms. Unlike the event
// bus, the journal keeps raw query text; it lives on local disk and never
// leaves the process.
//
// Writes are asynchronous: the engine hands terms to a bounded intake
// queue and a single writer goroutine folds them into BadgerDB. A nil
// *Store is a disabled journal, and every method degrades to a no-op on
// it.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/ming0627/bellyfed/internal/logging"
	"github.com/ming0627/bellyfed/internal/metrics"
)

const recordKeyPrefix = "unmatched:"

// DefaultTopLimit is used when Top is asked for a non-positive number of
// records.
const DefaultTopLimit = 50

const intakeBuffer = 256

// Record is the aggregate for one unmatched term. RawSample keeps the
// first phrasing seen; Count and LastSeen track recurrence.
type Record struct {
	Domain     string    `json:"domain"`
	Normalized string    `json:"normalized"`
	RawSample  string    `json:"raw_sample"`
	Count      int64     `json:"count"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
}

// Config holds journal settings.
type Config struct {
	Path       string
	SyncWrites bool
}

// Store is the BadgerDB-backed unmatched-term journal.
type Store struct {
	db *badger.DB

	intake chan unmatched
	quit   chan struct{}
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

type unmatched struct {
	domain, raw, normalized string
}

// Open opens (or creates) the journal at the configured path and starts
// the writer.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("journal path required")
	}
	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Msg("Unmatched-term journal opened")
	return newStore(db), nil
}

// OpenInMemory opens a diskless journal, for tests and ephemeral
// deployments.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory journal: %w", err)
	}
	return newStore(db), nil
}

func newStore(db *badger.DB) *Store {
	s := &Store{
		db:     db,
		intake: make(chan unmatched, intakeBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.writer()
	return s
}

// RecordUnmatched enqueues one unmatched term, best-effort. Empty
// normalized forms are skipped; a full intake drops the term rather than
// slowing a resolution down. Safe on a nil or closed Store.
func (s *Store) RecordUnmatched(domain, raw, normalized string) {
	if s == nil || normalized == "" {
		return
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}

	select {
	case s.intake <- unmatched{domain: domain, raw: raw, normalized: normalized}:
	default:
		metrics.RecordJournalWriteError()
		logging.Debug().Str("domain", domain).Msg("Journal intake full, dropping unmatched term")
	}
}

// Top returns up to limit records ordered by recurrence, most frequent
// first, ties broken by recency. A non-positive limit means
// DefaultTopLimit. A nil Store returns no records.
func (s *Store) Top(limit int) ([]Record, error) {
	if s == nil {
		return []Record{}, nil
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				continue
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		if !records[i].LastSeen.Equal(records[j].LastSeen) {
			return records[i].LastSeen.After(records[j].LastSeen)
		}
		return records[i].Normalized < records[j].Normalized
	})
	if len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Size reports how many distinct terms the journal holds.
func (s *Store) Size() (int, error) {
	if s == nil {
		return 0, nil
	}
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC reclaims value-log space until Badger reports nothing left to
// rewrite.
func (s *Store) RunGC() error {
	if s == nil {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) {
			metrics.RecordJournalGC("noop")
			return nil
		}
		if err != nil {
			metrics.RecordJournalGC("error")
			return fmt.Errorf("journal gc: %w", err)
		}
		metrics.RecordJournalGC("rewrite")
	}
}

// Close drains pending writes and closes the database. Safe to call
// twice and on a nil Store.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.quit)
	<-s.done
	return s.db.Close()
}

func (s *Store) writer() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			// Drain what is already queued before shutting down.
			for {
				select {
				case in := <-s.intake:
					s.write(in)
				default:
					return
				}
			}
		case in := <-s.intake:
			s.write(in)
		}
	}
}

func (s *Store) write(in unmatched) {
	now := time.Now().UTC()
	key := []byte(recordKeyPrefix + in.domain + ":" + in.normalized)

	err := s.db.Update(func(txn *badger.Txn) error {
		rec := Record{
			Domain:     in.domain,
			Normalized: in.normalized,
			RawSample:  in.raw,
			Count:      1,
			FirstSeen:  now,
			LastSeen:   now,
		}

		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return fmt.Errorf("get journal record: %w", err)
		default:
			var existing Record
			if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &existing) }); err != nil {
				return fmt.Errorf("decode journal record: %w", err)
			}
			rec.Count = existing.Count + 1
			rec.FirstSeen = existing.FirstSeen
			rec.RawSample = existing.RawSample
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode journal record: %w", err)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		metrics.RecordJournalWriteError()
		logging.Warn().Err(err).Str("domain", in.domain).Msg("Journal write failed")
		return
	}
	metrics.RecordJournalRecord(in.domain)
}
