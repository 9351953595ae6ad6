// Package types provides type definitions for structured data used throughout the ATS CV generator.
package types

// OptimizedProject holds the rewritten bullets for one project alongside the originals.
type OptimizedProject struct {
	ProjectName      string   `json:"project_name"`
	OriginalBullets  []string `json:"original_bullets"`
	OptimizedBullets []string `json:"optimized_bullets"`
	KeywordsInjected []string `json:"keywords_injected"`
}

// OptimizedInternship holds the rewritten bullets for one internship alongside the originals.
type OptimizedInternship struct {
	InternshipName   string   `json:"internship_name"`
	CompanyName      string   `json:"company_name"`
	OriginalBullets  []string `json:"original_bullets"`
	OptimizedBullets []string `json:"optimized_bullets"`
	KeywordsInjected []string `json:"keywords_injected"`
}

// OptimizedContent is the mutable aggregate built during one optimization attempt.
// It lives only for the duration of one generation request; the winning instance
// is persisted by the CV store.
type OptimizedContent struct {
	ProfessionalSummary string                `json:"professional_summary"`
	Skills              Skills                `json:"skills"`
	Projects            []OptimizedProject    `json:"projects"`
	Internships         []OptimizedInternship `json:"internships"`
	InjectedKeywords    []string              `json:"injected_keywords"`
}

// DedupeInjectedKeywords removes duplicate injected keywords in place,
// preserving first-seen order.
func (o *OptimizedContent) DedupeInjectedKeywords() {
	o.InjectedKeywords = dedupeKeywords(o.InjectedKeywords)
}

// AllBullets returns every optimized bullet across projects and internships.
func (o *OptimizedContent) AllBullets() []string {
	var bullets []string
	for _, p := range o.Projects {
		bullets = append(bullets, p.OptimizedBullets...)
	}
	for _, i := range o.Internships {
		bullets = append(bullets, i.OptimizedBullets...)
	}
	return bullets
}
