package scoring

import (
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// Optimal bullet point word count range for ATS parsing.
const (
	BulletMinWords = 12
	BulletMaxWords = 20
)

// bulletPreviewLength caps the bullet text stored in analysis details.
const bulletPreviewLength = 50

// AnalyzeBulletLength classifies each bullet by word count and computes the
// aggregate bullet score: optimal bullets / total * 100 (0 when there are no
// bullets).
func AnalyzeBulletLength(bullets []string) types.BulletAnalysis {
	analysis := types.BulletAnalysis{
		TotalBullets:  len(bullets),
		BulletDetails: make([]types.BulletDetail, 0, len(bullets)),
	}

	for _, bullet := range bullets {
		wordCount := len(strings.Fields(bullet))
		status := "optimal"

		switch {
		case wordCount < BulletMinWords:
			analysis.TooShort++
			status = "too_short"
		case wordCount > BulletMaxWords:
			analysis.TooLong++
			status = "too_long"
		default:
			analysis.OptimalBullets++
		}

		preview := bullet
		if len(preview) > bulletPreviewLength {
			preview = preview[:bulletPreviewLength] + "..."
		}
		analysis.BulletDetails = append(analysis.BulletDetails, types.BulletDetail{
			Text:      preview,
			WordCount: wordCount,
			Status:    status,
		})
	}

	if analysis.TotalBullets > 0 {
		analysis.BulletScore = float64(analysis.OptimalBullets) / float64(analysis.TotalBullets) * 100
	}

	return analysis
}
