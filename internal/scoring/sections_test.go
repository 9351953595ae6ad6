package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prakash/ats-cv-generator/internal/types"
)

func TestCheckSectionCoverage_EmptyProfile(t *testing.T) {
	analysis := CheckSectionCoverage(&types.ProfileSnapshot{})
	assert.Empty(t, analysis.SectionsPresent)
	assert.Equal(t, 0.0, analysis.Score)
}

func TestCheckSectionCoverage_AllSections(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Education:      []types.Education{{Degree: "B.Tech"}},
		Skills:         types.Skills{ProgrammingLanguages: []string{"Go"}},
		Projects:       []types.Project{{ProjectName: "p"}},
		Internships:    []types.Internship{{InternshipName: "i"}},
		Certifications: []types.Certification{{CertificateName: "c"}},
		Achievements:   []string{"won"},
	}
	analysis := CheckSectionCoverage(profile)
	assert.Equal(t, 100.0, analysis.Score)
	assert.Len(t, analysis.SectionsPresent, 6)
}

func TestCheckSectionCoverage_AnySkillListCounts(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Skills: types.Skills{DeveloperTools: []string{"Git"}},
	}
	analysis := CheckSectionCoverage(profile)
	assert.Contains(t, analysis.SectionsPresent, "skills")
}

func TestCheckSectionCoverage_HalfCoverage(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Education: []types.Education{{Degree: "B.Tech"}},
		Skills:    types.Skills{TechnicalSkills: []string{"SQL"}},
		Projects:  []types.Project{{ProjectName: "p"}},
	}
	analysis := CheckSectionCoverage(profile)
	assert.Equal(t, 50.0, analysis.Score)
}
