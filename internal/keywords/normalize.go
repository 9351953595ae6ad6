// Package keywords provides keyword normalization, synonym expansion, and
// rule-based keyword extraction for ATS matching.
package keywords

import "strings"

// minExpansionLength is the minimum term length eligible for synonym
// expansion. Shorter fragments produce false positives from acronym noise.
const minExpansionLength = 3

// Normalize lowercases a keyword, trims surrounding whitespace, and collapses
// hyphens and underscores to spaces for comparison.
func Normalize(keyword string) string {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	return normalized
}

// Variants returns the variant set of a keyword: its normalized form plus all
// synonym-linked normalized forms reachable in either direction of the
// synonym table. Terms shorter than three characters are not expanded.
func Variants(keyword string) map[string]bool {
	normalized := Normalize(keyword)
	variants := map[string]bool{normalized: true}

	if len(normalized) < minExpansionLength {
		return variants
	}

	if set, ok := variantSets[normalized]; ok {
		for v := range set {
			variants[v] = true
		}
	}

	return variants
}
