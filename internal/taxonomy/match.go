// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package taxonomy

import "strings"

// Strategy identifies which matching tier produced a result.
type Strategy string

const (
	// StrategyExact means the normalized input equals a canonical name.
	StrategyExact Strategy = "exact"

	// StrategySynonym means the normalized input hit the synonym table.
	StrategySynonym Strategy = "synonym"

	// StrategyFuzzy means substring containment scored above the threshold.
	StrategyFuzzy Strategy = "fuzzy"

	// StrategyExternal means an external classifier supplied the value.
	StrategyExternal Strategy = "external"
)

// Match is the outcome of a vocabulary lookup. OK is false when no tier
// produced a value; an absent match is a normal result, not an error.
// Exact and synonym hits score 1.0, fuzzy hits score their length ratio,
// external hits score the classifier confidence.
type Match[T ~string] struct {
	Value    T
	Strategy Strategy
	Score    float64
	OK       bool
}

// MatchSynonym resolves input against canonical names first, then the
// synonym table. First hit wins; both tiers score 1.0. The third return is
// false when neither tier matched and the caller should proceed to fuzzy.
func (d *Domain[T]) MatchSynonym(input string) (T, Strategy, bool) {
	n := Normalize(input)
	if v, ok := d.names[n]; ok {
		return v, StrategyExact, true
	}
	if v, ok := d.synonyms[n]; ok {
		return v, StrategySynonym, true
	}
	var zero T
	return zero, "", false
}

// MatchFuzzy scans every canonical name in declaration order. A candidate
// qualifies when the normalized input contains the candidate or the
// candidate contains the input; its score is min(len)/max(len) of the two
// strings. The best score wins, ties keeping the first candidate
// encountered, and the result is accepted only strictly above the domain
// threshold.
func (d *Domain[T]) MatchFuzzy(input string) Match[T] {
	n := Normalize(input)
	if n == "" {
		return Match[T]{}
	}

	var best Match[T]
	for i, c := range d.normNames {
		if !strings.Contains(n, c) && !strings.Contains(c, n) {
			continue
		}
		score := lengthRatio(n, c)
		if score > best.Score {
			best = Match[T]{Value: d.values[i], Strategy: StrategyFuzzy, Score: score}
		}
	}

	if best.Score > d.fuzzyThreshold {
		best.OK = true
		return best
	}
	return Match[T]{}
}

// Match runs the full local ladder: exact, synonym, then fuzzy.
func (d *Domain[T]) Match(input string) Match[T] {
	if v, strategy, ok := d.MatchSynonym(input); ok {
		return Match[T]{Value: v, Strategy: strategy, Score: 1.0, OK: true}
	}
	return d.MatchFuzzy(input)
}

// lengthRatio scores two non-empty strings by min(len)/max(len), yielding a
// value in (0,1] that reaches 1.0 only for equal lengths.
func lengthRatio(a, b string) float64 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return float64(la) / float64(lb)
}
