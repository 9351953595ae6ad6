package scoring

import "github.com/prakash/ats-cv-generator/internal/types"

// totalSections is the number of ATS-recognized profile sections checked.
const totalSections = 6

// CheckSectionCoverage reports which of the six standard resume sections the
// profile populates and scores coverage as present/6 * 100.
func CheckSectionCoverage(profile *types.ProfileSnapshot) types.SectionAnalysis {
	present := []string{}

	if len(profile.Education) > 0 {
		present = append(present, "education")
	}
	if !profile.Skills.IsEmpty() {
		present = append(present, "skills")
	}
	if len(profile.Projects) > 0 {
		present = append(present, "projects")
	}
	if len(profile.Internships) > 0 {
		present = append(present, "internships")
	}
	if len(profile.Certifications) > 0 {
		present = append(present, "certifications")
	}
	if len(profile.Achievements) > 0 {
		present = append(present, "achievements")
	}

	return types.SectionAnalysis{
		SectionsPresent: present,
		Score:           float64(len(present)) / totalSections * 100,
	}
}
