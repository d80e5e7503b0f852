// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package taxonomy

import "strings"

// Normalize canonicalizes free text for vocabulary and cache lookups:
// lowercase, trim exterior whitespace, strip every character outside [a-z0-9].
// Deterministic and idempotent:
//
//	Normalize("Kaki-Lima!") == Normalize("kaki lima") == "kakilima"
//
// Non-ASCII characters are stripped, not transliterated, so text in non-Latin
// scripts normalizes to "" and never matches locally.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
