package scoring

import (
	"regexp"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/keywords"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// SemanticSimilarity estimates the semantic overlap between two texts as the
// Jaccard similarity of their word sets (words longer than two characters,
// stop-words removed). Returns a ratio in [0,1], 0 when either set is empty.
//
// This is a deliberate lightweight proxy for embedding similarity; the
// composite score weights are tuned against this metric's scale.
func SemanticSimilarity(text1, text2 string) float64 {
	words1 := wordSet(text1)
	words2 := wordSet(text2)

	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	intersection := 0
	for w := range words1 {
		if words2[w] {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection

	return float64(intersection) / float64(union)
}

// wordSet tokenizes text into its set of significant lowercase words.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(text, -1) {
		lower := strings.ToLower(w)
		if len(lower) > 2 && !keywords.StopWords[lower] {
			set[lower] = true
		}
	}
	return set
}
