package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prakash/ats-cv-generator/internal/types"
)

func sampleProfile() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		Skills: types.Skills{
			ProgrammingLanguages: []string{"Python", "React"},
			TechnicalSkills:      []string{"REST APIs"},
			DeveloperTools:       []string{"Git"},
		},
		Projects: []types.Project{{
			ProjectName:  "Inventory Tracker",
			TechStack:    []string{"Python", "Flask"},
			BulletPoints: []string{"Built an inventory tracking service used by three campus departments for daily stock checks"},
		}},
		Education: []types.Education{{Degree: "B.Tech", CollegeName: "IIT"}},
	}
}

func TestAnalyze_SynonymEquivalenceScenario(t *testing.T) {
	profile := sampleProfile()
	jd := &types.JDKeywordSet{Skills: []string{"python", "reactjs"}}

	result := Analyze(profile, "We need python and reactjs developers", jd, nil)

	assert.Equal(t, 100.0, result.KeywordMatchPercentage)
	assert.Empty(t, result.MissingKeywords)
}

func TestAnalyze_ScoreWithinBounds(t *testing.T) {
	result := Analyze(sampleProfile(), "python role", &types.JDKeywordSet{Skills: []string{"python"}}, nil)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestAnalyze_EmptyJDKeywords(t *testing.T) {
	result := Analyze(sampleProfile(), "", &types.JDKeywordSet{}, nil)
	assert.Equal(t, 0.0, result.KeywordMatchPercentage)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyze_UsesOptimizedBulletsWhenPresent(t *testing.T) {
	profile := sampleProfile()
	optimized := &types.OptimizedContent{
		ProfessionalSummary: "Results-driven developer experienced in python and reactjs",
		Skills:              profile.Skills,
	}

	result := Analyze(profile, "python reactjs", &types.JDKeywordSet{Skills: []string{"python"}}, optimized)
	// Falls back to original profile bullets for length analysis.
	assert.Equal(t, 1, result.BulletAnalysis.TotalBullets)
}

func TestAnalyze_MissingKeywordsCapped(t *testing.T) {
	jd := &types.JDKeywordSet{}
	for i := 0; i < 30; i++ {
		jd.Keywords = append(jd.Keywords, "unmatchable"+string(rune('a'+i)))
	}
	result := Analyze(&types.ProfileSnapshot{}, "", jd, nil)
	assert.LessOrEqual(t, len(result.MissingKeywords), 20)
}

func TestProfileText_ContainsAllSections(t *testing.T) {
	profile := sampleProfile()
	profile.Achievements = []string{"Won hackathon"}
	text := ProfileText(profile)

	assert.Contains(t, text, "Python")
	assert.Contains(t, text, "Inventory Tracker")
	assert.Contains(t, text, "Won hackathon")
}

func TestOptimizedContentText_IncludesInjectedKeywords(t *testing.T) {
	profile := sampleProfile()
	optimized := &types.OptimizedContent{
		ProfessionalSummary: "Summary text",
		InjectedKeywords:    []string{"kubernetes"},
	}
	text := OptimizedContentText(optimized, profile)
	assert.Contains(t, text, "kubernetes")
	assert.Contains(t, text, "Summary text")
	// Tech stack still sourced from the original profile.
	assert.Contains(t, text, "Flask")
}
