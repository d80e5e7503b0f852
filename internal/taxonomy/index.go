// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package taxonomy

import (
	"errors"
	"fmt"
)

// ErrInvalidVocabulary marks a malformed vocabulary table. It is returned
// only from index construction at startup and is always fatal.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// DefaultFuzzyThreshold is the exclusive lower bound for fuzzy match scores.
const DefaultFuzzyThreshold = 0.5

// Domain is an immutable matching index over one enumerated vocabulary.
// Safe for concurrent use once constructed.
type Domain[T ~string] struct {
	name           string
	fuzzyThreshold float64

	values    []T      // declaration order, drives fuzzy tie-breaking
	normNames []string // normalized canonical names, parallel to values
	names     map[string]T
	synonyms  map[string]T
	declared  map[T][]string // raw synonym strings for listings
}

// NewDomain compiles entries into a Domain, validating that every lookup key
// resolves to exactly one value. Fuzzy matches are accepted strictly above
// threshold.
func NewDomain[T ~string](name string, entries []Entry[T], threshold float64) (*Domain[T], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: domain %q has no values", ErrInvalidVocabulary, name)
	}

	d := &Domain[T]{
		name:           name,
		fuzzyThreshold: threshold,
		values:         make([]T, 0, len(entries)),
		normNames:      make([]string, 0, len(entries)),
		names:          make(map[string]T, len(entries)),
		synonyms:       make(map[string]T),
		declared:       make(map[T][]string, len(entries)),
	}

	for _, e := range entries {
		n := Normalize(string(e.Value))
		if n == "" {
			return nil, fmt.Errorf("%w: domain %q value %q normalizes to empty", ErrInvalidVocabulary, name, string(e.Value))
		}
		if prev, ok := d.names[n]; ok {
			return nil, fmt.Errorf("%w: domain %q values %q and %q collide on %q", ErrInvalidVocabulary, name, string(prev), string(e.Value), n)
		}
		d.names[n] = e.Value
		d.values = append(d.values, e.Value)
		d.normNames = append(d.normNames, n)
		d.declared[e.Value] = append([]string(nil), e.Synonyms...)
	}

	// Synonyms go in a second pass so shadowing checks see every canonical name.
	for _, e := range entries {
		for _, s := range e.Synonyms {
			n := Normalize(s)
			if n == "" {
				return nil, fmt.Errorf("%w: domain %q synonym %q of %q normalizes to empty", ErrInvalidVocabulary, name, s, string(e.Value))
			}
			if owner, ok := d.names[n]; ok {
				if owner != e.Value {
					return nil, fmt.Errorf("%w: domain %q synonym %q of %q shadows value %q", ErrInvalidVocabulary, name, s, string(e.Value), string(owner))
				}
				// Spaced rendering of its own name, redundant but harmless.
				continue
			}
			if owner, ok := d.synonyms[n]; ok {
				if owner != e.Value {
					return nil, fmt.Errorf("%w: domain %q synonym %q claimed by both %q and %q", ErrInvalidVocabulary, name, s, string(owner), string(e.Value))
				}
				continue
			}
			d.synonyms[n] = e.Value
		}
	}

	return d, nil
}

// Name returns the domain label used in logs, metrics, and events.
func (d *Domain[T]) Name() string { return d.name }

// Size returns the number of canonical values.
func (d *Domain[T]) Size() int { return len(d.values) }

// Values returns the canonical values in declaration order.
func (d *Domain[T]) Values() []T {
	out := make([]T, len(d.values))
	copy(out, d.values)
	return out
}

// Synonyms returns the declared synonym strings for a value, in declaration
// order. Nil when the value is not part of the domain.
func (d *Domain[T]) Synonyms(v T) []string {
	s, ok := d.declared[v]
	if !ok {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// IndexConfig carries the tunables for index construction.
type IndexConfig struct {
	// FuzzyThreshold is the exclusive lower bound for fuzzy match scores.
	// Zero means DefaultFuzzyThreshold.
	FuzzyThreshold float64
}

// Index holds the three compiled domains. Built once at startup, immutable
// afterward.
type Index struct {
	Cuisines       *Domain[Cuisine]
	Establishments *Domain[Establishment]
	Services       *Domain[Service]
}

// NewIndex compiles the built-in vocabulary tables into an Index. An error
// here means the tables themselves are malformed and startup must abort.
func NewIndex(cfg IndexConfig) (*Index, error) {
	threshold := cfg.FuzzyThreshold
	if threshold == 0 {
		threshold = DefaultFuzzyThreshold
	}

	cuisines, err := NewDomain(DomainCuisine, cuisineVocabulary, threshold)
	if err != nil {
		return nil, err
	}
	establishments, err := NewDomain(DomainEstablishment, establishmentVocabulary, threshold)
	if err != nil {
		return nil, err
	}
	services, err := NewDomain(DomainService, serviceVocabulary, threshold)
	if err != nil {
		return nil, err
	}

	return &Index{
		Cuisines:       cuisines,
		Establishments: establishments,
		Services:       services,
	}, nil
}
