// Package search implements trigram similarity scoring for the federated
// search. It is storage-free so scoring can be tested without a database.
package search

import "strings"

// RankThreshold is the minimum similarity a candidate must exceed to stay
// in the result set. 1/14, inherited from the original ranking tuning;
// keep in sync with API consumers before changing.
const RankThreshold = 0.071428575

// Similarity returns the trigram similarity between a and b in [0, 1]:
// the number of three-rune substrings the strings share divided by the
// number of distinct trigrams present in either. Matching is case-folded,
// and each word is padded so prefixes weigh like full trigrams.
func Similarity(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

// trigrams extracts the distinct three-rune substrings of s. Words are
// lowercased and padded with two leading and one trailing space, matching
// pg_trgm's extraction rules.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		runes := []rune("  " + word + " ")
		for i := 0; i+3 <= len(runes); i++ {
			set[string(runes[i:i+3])] = struct{}{}
		}
	}
	return set
}
