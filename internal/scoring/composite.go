package scoring

import "math"

// Composite score weights. Keyword matching dominates ATS outcomes; the
// ordering and values are fixed design constants and must not drift, since
// downstream score thresholds were tuned against them.
const (
	keywordMatchWeight  = 0.50
	bulletScoreWeight   = 0.15
	sectionScoreWeight  = 0.10
	semanticScoreWeight = 0.25

	// stuffingPenalty is the multiplier applied when keyword stuffing is detected.
	stuffingPenalty = 0.85
)

// CompositeScore combines the four component scores (each on a 0-100 scale)
// into the final ATS score: a weighted sum, multiplied by the stuffing
// penalty when applicable, rounded and clamped to [0,100].
func CompositeScore(keywordMatch, bulletScore, sectionScore, semanticScore float64, isStuffed bool) int {
	score := keywordMatch*keywordMatchWeight +
		bulletScore*bulletScoreWeight +
		sectionScore*sectionScoreWeight +
		semanticScore*semanticScoreWeight

	if isStuffed {
		score *= stuffingPenalty
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	return final
}
