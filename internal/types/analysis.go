// Package types provides type definitions for structured data used throughout the ATS CV generator.
package types

// BulletDetail describes the length classification of a single bullet.
type BulletDetail struct {
	Text      string `json:"text"` // truncated preview, not the full bullet
	WordCount int    `json:"word_count"`
	Status    string `json:"status"` // "optimal", "too_short", or "too_long"
}

// BulletAnalysis aggregates the bullet-length classification for one scoring pass.
type BulletAnalysis struct {
	TotalBullets   int            `json:"total_bullets"`
	OptimalBullets int            `json:"optimal_bullets"`
	TooShort       int            `json:"too_short"`
	TooLong        int            `json:"too_long"`
	BulletScore    float64        `json:"bullet_score"`
	BulletDetails  []BulletDetail `json:"bullet_details"`
}

// StuffedKeyword describes a word repeated often enough to look like keyword stuffing.
type StuffedKeyword struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"` // percentage of total words, rounded to 2 decimals
}

// StuffingAnalysis holds the keyword-stuffing detector output.
type StuffingAnalysis struct {
	IsStuffed       bool             `json:"is_stuffed"`
	StuffedKeywords []StuffedKeyword `json:"stuffed_keywords"`
	Recommendation  string           `json:"recommendation"`
}

// SectionAnalysis holds the section-coverage checker output.
type SectionAnalysis struct {
	SectionsPresent []string `json:"sections_present"`
	Score           float64  `json:"score"`
}

// AnalysisResult is the composite output of one scoring pass.
// It is produced fresh per attempt and never mutated after creation.
type AnalysisResult struct {
	Score                  int              `json:"score"` // 0-100
	KeywordMatchPercentage float64          `json:"keyword_match_percentage"`
	AlignedSkills          []string         `json:"aligned_skills"`
	MissingKeywords        []string         `json:"missing_keywords"`
	BulletAnalysis         BulletAnalysis   `json:"bullet_analysis"`
	SectionAnalysis        SectionAnalysis  `json:"section_analysis"`
	KeywordStuffing        StuffingAnalysis `json:"keyword_stuffing"`
	SemanticSimilarity     float64          `json:"semantic_similarity"` // 0-100 scale, 2 decimals
	Recommendations        []string         `json:"recommendations"`
}

// GenerationAttempt couples the optimized content of one retry iteration
// with its rendered markup and analysis.
type GenerationAttempt struct {
	Attempt   int               `json:"attempt"` // 1-based
	Content   *OptimizedContent `json:"content"`
	LaTeXCode string            `json:"latex_code"`
	Analysis  *AnalysisResult   `json:"analysis"`
}
