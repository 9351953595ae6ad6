// Package types provides type definitions for structured data used throughout the ATS CV generator.
package types

// JDKeywordSet holds the categorized keyword lists extracted from one job description.
// It is treated as input by the scoring engine and never mutated.
type JDKeywordSet struct {
	Keywords               []string `json:"keywords"`
	Skills                 []string `json:"skills"`
	Technologies           []string `json:"technologies"`
	SoftSkills             []string `json:"soft_skills"`
	ExperienceRequirements []string `json:"experience_requirements"`
	ActionVerbs            []string `json:"action_verbs"`
	Methodologies          []string `json:"methodologies"`
}

// AllMatchable flattens the categories that participate in keyword matching.
// Experience requirements and action verbs are extracted for prompting but
// are not counted against the match percentage.
func (k *JDKeywordSet) AllMatchable() []string {
	all := make([]string, 0, len(k.Keywords)+len(k.Skills)+len(k.Technologies)+len(k.SoftSkills)+len(k.Methodologies))
	all = append(all, k.Keywords...)
	all = append(all, k.Skills...)
	all = append(all, k.Technologies...)
	all = append(all, k.SoftSkills...)
	all = append(all, k.Methodologies...)
	return dedupeKeywords(all)
}

// TargetKeywords returns the skill and technology terms used as rewrite targets.
func (k *JDKeywordSet) TargetKeywords() []string {
	targets := make([]string, 0, len(k.Skills)+len(k.Technologies))
	targets = append(targets, k.Skills...)
	targets = append(targets, k.Technologies...)
	return dedupeKeywords(targets)
}

// dedupeKeywords removes duplicates while preserving first-seen order.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		result = append(result, kw)
	}
	return result
}
