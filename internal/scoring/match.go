// Package scoring implements the ATS compatibility scoring engine: keyword
// matching with synonym expansion, content quality analyzers, and the
// weighted composite score.
package scoring

import (
	"strings"

	"github.com/prakash/ats-cv-generator/internal/keywords"
)

// CalculateKeywordMatch computes the keyword-overlap between profile keywords
// and JD keywords using variant-set intersection with a substring-containment
// fallback. Returns the match percentage (0 when jdKeywords is empty) plus the
// matched and missing JD keywords in input order.
func CalculateKeywordMatch(profileKeywords, jdKeywords []string) (float64, []string, []string) {
	profileVariants := make(map[string]bool)
	for _, kw := range profileKeywords {
		for v := range keywords.Variants(kw) {
			profileVariants[v] = true
		}
	}

	matched := []string{}
	missing := []string{}

	for _, jdKw := range jdKeywords {
		if matchesProfile(jdKw, profileVariants) {
			matched = append(matched, jdKw)
		} else {
			missing = append(missing, jdKw)
		}
	}

	if len(jdKeywords) == 0 {
		return 0, matched, missing
	}
	return float64(len(matched)) / float64(len(jdKeywords)) * 100, matched, missing
}

// matchesProfile tests one JD keyword against the profile variant union:
// first by variant-set intersection, then by substring containment in either
// direction against profile variants longer than two characters.
func matchesProfile(jdKeyword string, profileVariants map[string]bool) bool {
	jdNormalized := keywords.Normalize(jdKeyword)

	for v := range keywords.Variants(jdKeyword) {
		if profileVariants[v] {
			return true
		}
	}

	for pv := range profileVariants {
		if len(pv) <= 2 {
			continue
		}
		if strings.Contains(jdNormalized, pv) || strings.Contains(pv, jdNormalized) {
			return true
		}
	}

	return false
}
