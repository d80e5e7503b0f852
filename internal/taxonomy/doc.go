// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

/*
Package taxonomy defines the canonical food-service vocabularies and the local
matching tiers that resolve free text against them.

Three disjoint domains are maintained: Cuisine, Establishment, and Service.
Each domain is a fixed set of typed string constants plus a multilingual
synonym table mapping colloquial Malaysian and Singaporean terms ("tapau",
"kaki lima", "zi char") to canonical values. The tables are compiled into an
immutable index at startup; all lookups afterwards are read-only and need no
synchronization.

# Normalization

Every lookup key passes through Normalize, which lowercases, trims, and strips
everything outside [a-z0-9]. "Kaki-Lima!", "kaki lima", and "KAKILIMA" all
resolve identically. Text in non-Latin scripts normalizes to the empty string
and can only be resolved by the external classifier tiers.

# Matching tiers

A Domain offers two local tiers, tried in order:

 1. MatchSynonym: normalized input against canonical names (strategy "exact"),
    then against the synonym table (strategy "synonym"). Both score 1.0.
 2. MatchFuzzy: substring containment in either direction between the
    normalized input and each canonical name, scored by length ratio
    min(len)/max(len). A match is accepted only strictly above the threshold;
    ties keep the first value in declaration order.

Match combines both tiers and is the whole local ladder for domains without an
external fallback.

# Startup validation

NewIndex validates the vocabulary and fails fast on a malformed table: an
empty domain, a value whose normalized name is empty, or a synonym that is
ambiguous within its domain (registered under two values, or shadowing another
value's canonical name). A validation failure is a configuration error and
aborts startup; it can never surface at resolution time.

Usage:

	idx, err := taxonomy.NewIndex(taxonomy.IndexConfig{FuzzyThreshold: 0.5})
	if err != nil {
	    log.Fatal(err)
	}

	m := idx.Services.Match("Tapau!")
	// m.Value == taxonomy.ServiceTakeout, m.Strategy == "synonym", m.Score == 1.0
*/
package taxonomy
