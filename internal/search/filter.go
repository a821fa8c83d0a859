// Package search holds the local search state of the shell: the recent
// searches list, query filtering and the toolbar facets.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// RecentSearches is the fixed list shown under an empty search field.
var RecentSearches = []string{"One Piece", "Naruto", "Death Note"}

const (
	// minFuzzyLen is the shortest query that gets typo tolerance.
	minFuzzyLen = 4
	maxDistance = 2
)

// Filter returns the items matching query, in their original order.
// An item matches when it contains the query case-insensitively, or when the
// query is long enough and within a small edit distance of the item.
func Filter(query string, items []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}

	var out []string
	for _, item := range items {
		if Matches(q, item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether item matches an already lowercased query.
func Matches(query, item string) bool {
	it := strings.ToLower(item)
	if strings.Contains(it, query) {
		return true
	}
	if utf8.RuneCountInString(query) < minFuzzyLen {
		return false
	}
	return levenshtein.ComputeDistance(query, it) <= maxDistance
}
