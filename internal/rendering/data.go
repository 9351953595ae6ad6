package rendering

import (
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// TemplateData is the fully escaped view handed to the LaTeX template.
// Email and URL fields pass through unescaped so \href links stay valid.
type TemplateData struct {
	FullName            string
	Location            string
	Phone               string
	Email               string
	LinkedIn            string
	GitHub              string
	ProfessionalSummary string
	SkillCategories     []SkillCategory
	Education           []EducationEntry
	Projects            []ProjectEntry
	Internships         []InternshipEntry
	Certifications      []CertificationEntry
	Achievements        []string
}

// SkillCategory is one labeled skill row.
type SkillCategory struct {
	Label string
	Items []string
}

// EducationEntry is one education row. Exactly one of CGPA and Percentage
// is set when the profile carries a grade.
type EducationEntry struct {
	Degree      string
	Years       string
	Institution string
	CGPA        string
	Percentage  string
}

// ProjectEntry is one project block.
type ProjectEntry struct {
	Name         string
	Link         string
	Technologies []string
	Bullets      []string
}

// InternshipEntry is one internship block.
type InternshipEntry struct {
	Name    string
	Company string
	Bullets []string
}

// CertificationEntry is one certification block.
type CertificationEntry struct {
	Title   string
	Issuer  string
	Details []string
}

// BuildTemplateData prepares a profile for rendering. Optimized content,
// when present, supplies the summary, the skill lists, and the rewritten
// bullets; anything it misses falls back to the profile's originals.
func BuildTemplateData(profile *types.ProfileSnapshot, content *types.OptimizedContent) *TemplateData {
	data := &TemplateData{
		FullName: EscapeLaTeX(profile.PersonalDetails.FullName),
		Location: EscapeLaTeX(profile.PersonalDetails.Location),
		Phone:    EscapeLaTeX(profile.PersonalDetails.Phone),
		Email:    profile.PersonalDetails.Email,
		LinkedIn: profile.PersonalDetails.LinkedIn,
		GitHub:   profile.PersonalDetails.GitHub,
	}

	if content != nil {
		data.ProfessionalSummary = EscapeLaTeX(content.ProfessionalSummary)
	}

	skills := profile.Skills
	if content != nil && len(content.Skills.ProgrammingLanguages) > 0 {
		skills = content.Skills
	}
	data.SkillCategories = buildSkillCategories(skills)

	for _, edu := range sortEducation(profile.Education) {
		entry := EducationEntry{
			Degree:      EscapeLaTeX(edu.Degree),
			Years:       EscapeLaTeX(edu.SessionYear),
			Institution: EscapeLaTeX(edu.CollegeName),
		}
		if edu.CGPAOrPercentage != "" {
			grade := EscapeLaTeX(edu.CGPAOrPercentage)
			if isPercentageGrade(edu.CGPAOrPercentage) {
				entry.Percentage = strings.TrimSpace(strings.ReplaceAll(grade, `\%`, ""))
			} else {
				entry.CGPA = grade
			}
		}
		data.Education = append(data.Education, entry)
	}

	optimizedProjectBullets := make(map[string][]string)
	optimizedInternshipBullets := make(map[string][]string)
	if content != nil {
		for _, p := range content.Projects {
			optimizedProjectBullets[p.ProjectName] = p.OptimizedBullets
		}
		for _, in := range content.Internships {
			optimizedInternshipBullets[in.InternshipName] = in.OptimizedBullets
		}
	}

	for _, project := range profile.Projects {
		bullets := project.BulletPoints
		if optimized, ok := optimizedProjectBullets[project.ProjectName]; ok && len(optimized) > 0 {
			bullets = optimized
		}
		data.Projects = append(data.Projects, ProjectEntry{
			Name:         EscapeLaTeX(project.ProjectName),
			Link:         project.ProjectLink,
			Technologies: escapeAll(project.TechStack),
			Bullets:      escapeAll(bullets),
		})
	}

	for _, internship := range profile.Internships {
		bullets := internship.BulletPoints
		if optimized, ok := optimizedInternshipBullets[internship.InternshipName]; ok && len(optimized) > 0 {
			bullets = optimized
		}
		data.Internships = append(data.Internships, InternshipEntry{
			Name:    EscapeLaTeX(internship.InternshipName),
			Company: EscapeLaTeX(internship.CompanyName),
			Bullets: escapeAll(bullets),
		})
	}

	for _, cert := range profile.Certifications {
		data.Certifications = append(data.Certifications, CertificationEntry{
			Title:   EscapeLaTeX(cert.CertificateName),
			Issuer:  EscapeLaTeX(cert.IssuingCompany),
			Details: escapeAll(cert.BulletPoints),
		})
	}

	data.Achievements = escapeAll(profile.Achievements)

	return data
}

// buildSkillCategories keeps the fixed label order and drops empty categories.
func buildSkillCategories(skills types.Skills) []SkillCategory {
	var categories []SkillCategory
	if len(skills.ProgrammingLanguages) > 0 {
		categories = append(categories, SkillCategory{Label: "Programming Languages", Items: escapeAll(skills.ProgrammingLanguages)})
	}
	if len(skills.TechnicalSkills) > 0 {
		categories = append(categories, SkillCategory{Label: "Technical Skills", Items: escapeAll(skills.TechnicalSkills)})
	}
	if len(skills.DeveloperTools) > 0 {
		categories = append(categories, SkillCategory{Label: "Tools \\& Platforms", Items: escapeAll(skills.DeveloperTools)})
	}
	return categories
}
