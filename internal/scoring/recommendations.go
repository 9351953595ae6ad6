package scoring

import (
	"fmt"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// maxSuggestedKeywords caps the missing keywords quoted in a recommendation.
const maxSuggestedKeywords = 5

// GenerateRecommendations produces actionable recommendation strings from the
// analyzer outputs. Always returns at least one entry.
func GenerateRecommendations(
	keywordMatch float64,
	missingKeywords []string,
	bullets types.BulletAnalysis,
	stuffing types.StuffingAnalysis,
	sections types.SectionAnalysis,
) []string {
	var recommendations []string

	switch {
	case keywordMatch < 50:
		n := len(missingKeywords)
		if n > maxSuggestedKeywords {
			n = maxSuggestedKeywords
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Low keyword match (%.0f%%). Consider adding these skills: %s",
			keywordMatch, strings.Join(missingKeywords[:n], ", ")))
	case keywordMatch < 75:
		recommendations = append(recommendations, fmt.Sprintf(
			"Moderate keyword match (%.0f%%). Add more relevant skills from the job description.",
			keywordMatch))
	}

	if bullets.TooShort > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d bullet points are too short. Aim for %d-%d words each.",
			bullets.TooShort, BulletMinWords, BulletMaxWords))
	}
	if bullets.TooLong > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d bullet points are too long. Condense to %d-%d words.",
			bullets.TooLong, BulletMinWords, BulletMaxWords))
	}

	if stuffing.IsStuffed {
		words := make([]string, len(stuffing.StuffedKeywords))
		for i, k := range stuffing.StuffedKeywords {
			words[i] = k.Word
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Potential keyword stuffing detected. Reduce repetition of: %s",
			strings.Join(words, ", ")))
	}

	if sections.Score < 100 {
		recommendations = append(recommendations,
			"Consider adding more standard resume sections for better ATS compatibility.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Your resume is well-optimized for ATS systems.")
	}

	return recommendations
}
