package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// Stuffing thresholds: a word is flagged when it exceeds both the frequency
// percentage and the absolute count.
const (
	stuffingFrequencyPct = 3.0
	stuffingMinCount     = 3
)

// stuffingStopWords is the short stop-word list used only by the stuffing
// detector; it deliberately differs from the extraction stop-word list.
var stuffingStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true,
}

// Fixed recommendation strings per detector state.
const (
	stuffingDetectedRecommendation = "Reduce repetition of highlighted keywords"
	noStuffingRecommendation       = "No keyword stuffing detected"
)

// CheckKeywordStuffing flags words whose repetition looks like keyword
// stuffing: frequency above 3% of total words and raw count above 3.
// Offending words are reported sorted for deterministic output.
func CheckKeywordStuffing(text string) types.StuffingAnalysis {
	words := strings.Fields(strings.ToLower(text))
	totalWords := len(words)

	wordFreq := make(map[string]int)
	for _, word := range words {
		if stuffingStopWords[word] || len(word) <= 2 {
			continue
		}
		wordFreq[word]++
	}

	var stuffed []types.StuffedKeyword
	for word, count := range wordFreq {
		frequency := float64(count) / float64(totalWords) * 100
		if frequency > stuffingFrequencyPct && count > stuffingMinCount {
			stuffed = append(stuffed, types.StuffedKeyword{
				Word:      word,
				Count:     count,
				Frequency: math.Round(frequency*100) / 100,
			})
		}
	}
	sort.Slice(stuffed, func(i, j int) bool { return stuffed[i].Word < stuffed[j].Word })

	analysis := types.StuffingAnalysis{
		IsStuffed:       len(stuffed) > 0,
		StuffedKeywords: stuffed,
		Recommendation:  noStuffingRecommendation,
	}
	if analysis.IsStuffed {
		analysis.Recommendation = stuffingDetectedRecommendation
	}
	return analysis
}
