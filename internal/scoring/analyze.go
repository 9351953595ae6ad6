package scoring

import (
	"math"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/keywords"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// maxMissingKeywords caps the missing-keyword list returned to callers.
const maxMissingKeywords = 20

// Analyze performs one full ATS compatibility pass over the profile (or the
// optimized content when provided) against the job description and its
// extracted keywords. The result is produced fresh and never mutated.
func Analyze(
	profile *types.ProfileSnapshot,
	jobDescription string,
	jdKeywords *types.JDKeywordSet,
	optimized *types.OptimizedContent,
) *types.AnalysisResult {
	var profileText string
	if optimized != nil {
		profileText = OptimizedContentText(optimized, profile)
	} else {
		profileText = ProfileText(profile)
	}

	profileKeywords := keywords.ExtractProfileKeywords(profileText)

	// Explicit skills from optimized content count as keywords verbatim, so
	// multi-word skill names keep phrase matching intact.
	if optimized != nil {
		profileKeywords = append(profileKeywords, optimized.Skills.ProgrammingLanguages...)
		profileKeywords = append(profileKeywords, optimized.Skills.TechnicalSkills...)
		profileKeywords = append(profileKeywords, optimized.Skills.DeveloperTools...)
	}

	allJDKeywords := jdKeywords.AllMatchable()
	keywordMatch, matched, missing := CalculateKeywordMatch(profileKeywords, allJDKeywords)

	var allBullets []string
	if optimized != nil {
		allBullets = optimized.AllBullets()
	}
	if len(allBullets) == 0 {
		for _, p := range profile.Projects {
			allBullets = append(allBullets, p.BulletPoints...)
		}
		for _, i := range profile.Internships {
			allBullets = append(allBullets, i.BulletPoints...)
		}
		for _, c := range profile.Certifications {
			allBullets = append(allBullets, c.BulletPoints...)
		}
	}

	bulletAnalysis := AnalyzeBulletLength(allBullets)
	stuffingAnalysis := CheckKeywordStuffing(profileText)
	sectionAnalysis := CheckSectionCoverage(profile)
	semanticRatio := SemanticSimilarity(profileText, jobDescription)

	score := CompositeScore(
		keywordMatch,
		bulletAnalysis.BulletScore,
		sectionAnalysis.Score,
		semanticRatio*100,
		stuffingAnalysis.IsStuffed,
	)

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return &types.AnalysisResult{
		Score:                  score,
		KeywordMatchPercentage: math.Round(keywordMatch*100) / 100,
		AlignedSkills:          matched,
		MissingKeywords:        missing,
		BulletAnalysis:         bulletAnalysis,
		SectionAnalysis:        sectionAnalysis,
		KeywordStuffing:        stuffingAnalysis,
		SemanticSimilarity:     math.Round(semanticRatio*100*100) / 100,
		Recommendations: GenerateRecommendations(
			keywordMatch, missing, bulletAnalysis, stuffingAnalysis, sectionAnalysis),
	}
}

// ProfileText flattens a raw profile into searchable text for keyword
// extraction and similarity scoring.
func ProfileText(profile *types.ProfileSnapshot) string {
	var parts []string

	parts = append(parts, profile.Skills.ProgrammingLanguages...)
	parts = append(parts, profile.Skills.TechnicalSkills...)
	parts = append(parts, profile.Skills.DeveloperTools...)

	for _, p := range profile.Projects {
		parts = append(parts, p.ProjectName)
		parts = append(parts, p.TechStack...)
		parts = append(parts, p.BulletPoints...)
	}
	for _, i := range profile.Internships {
		parts = append(parts, i.InternshipName, i.CompanyName)
		parts = append(parts, i.BulletPoints...)
	}
	for _, c := range profile.Certifications {
		parts = append(parts, c.CertificateName, c.IssuingCompany)
		parts = append(parts, c.BulletPoints...)
	}
	parts = append(parts, profile.Achievements...)

	return strings.Join(parts, " ")
}

// OptimizedContentText flattens optimized content into searchable text.
// Certifications, achievements, and project tech stacks still come from the
// original profile since optimization does not touch them.
func OptimizedContentText(optimized *types.OptimizedContent, profile *types.ProfileSnapshot) string {
	var parts []string

	if optimized.ProfessionalSummary != "" {
		parts = append(parts, optimized.ProfessionalSummary)
	}

	// Each skill individually for token matching, then space-joined for
	// phrase matching.
	parts = append(parts, optimized.Skills.ProgrammingLanguages...)
	parts = append(parts, optimized.Skills.TechnicalSkills...)
	parts = append(parts, optimized.Skills.DeveloperTools...)
	for _, list := range [][]string{
		optimized.Skills.ProgrammingLanguages,
		optimized.Skills.TechnicalSkills,
		optimized.Skills.DeveloperTools,
	} {
		if len(list) > 0 {
			parts = append(parts, strings.Join(list, " "))
		}
	}

	for _, p := range optimized.Projects {
		parts = append(parts, p.ProjectName)
		parts = append(parts, p.OptimizedBullets...)
	}
	for _, i := range optimized.Internships {
		parts = append(parts, i.InternshipName, i.CompanyName)
		parts = append(parts, i.OptimizedBullets...)
	}

	for _, p := range profile.Projects {
		parts = append(parts, p.TechStack...)
	}
	for _, c := range profile.Certifications {
		parts = append(parts, c.CertificateName)
		parts = append(parts, c.BulletPoints...)
	}
	parts = append(parts, profile.Achievements...)
	parts = append(parts, optimized.InjectedKeywords...)

	return strings.Join(parts, " ")
}
