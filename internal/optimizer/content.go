package optimizer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// languageTokens steers inferred skills into the programming languages list.
var languageTokens = []string{
	"python", "java", "javascript", "typescript", "c++", "c#",
	"go", "rust", "ruby", "php", "scala", "kotlin", "swift",
}

// buildContent assembles one attempt's OptimizedContent. The summary, the
// skills optimization, and each bullet group rewrite run concurrently; a
// failed sub-call falls back to the candidate's original content for that
// item and never aborts the attempt.
func (e *Engine) buildContent(ctx context.Context, profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) *types.OptimizedContent {
	targets := keywords.TargetKeywords()
	if len(targets) > maxRewriteTargets {
		targets = targets[:maxRewriteTargets]
	}

	// Only entries that carry bullets participate in rewriting.
	var projects []types.Project
	for _, p := range profile.Projects {
		if len(p.BulletPoints) > 0 {
			projects = append(projects, p)
		}
	}
	var internships []types.Internship
	for _, in := range profile.Internships {
		if len(in.BulletPoints) > 0 {
			internships = append(internships, in)
		}
	}

	content := &types.OptimizedContent{
		Skills:      profile.Skills,
		Projects:    make([]types.OptimizedProject, len(projects)),
		Internships: make([]types.OptimizedInternship, len(internships)),
	}

	var summary string
	var skillsResult *llm.SkillsResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := e.generator.GenerateSummary(gctx, profile, jobDescription, keywords)
		if err != nil {
			log.Printf("[OPTIMIZER] summary generation failed, leaving summary empty: %v", err)
			return nil
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		result, err := e.generator.OptimizeSkills(gctx, profile.Skills, keywords)
		if err != nil {
			log.Printf("[OPTIMIZER] skills optimization failed, keeping original skills: %v", err)
			return nil
		}
		skillsResult = result
		return nil
	})

	for i, project := range projects {
		g.Go(func() error {
			contextNote := fmt.Sprintf("Project: %s, Tech Stack: %s",
				project.ProjectName, strings.Join(project.TechStack, ", "))
			result, err := e.generator.RewriteBullets(gctx, project.BulletPoints, targets, contextNote)
			if err != nil {
				log.Printf("[OPTIMIZER] project %q rewrite failed, keeping original bullets: %v", project.ProjectName, err)
				content.Projects[i] = types.OptimizedProject{
					ProjectName:      project.ProjectName,
					OriginalBullets:  project.BulletPoints,
					OptimizedBullets: project.BulletPoints,
				}
				return nil
			}
			content.Projects[i] = types.OptimizedProject{
				ProjectName:      project.ProjectName,
				OriginalBullets:  project.BulletPoints,
				OptimizedBullets: result.RewrittenBullets,
				KeywordsInjected: result.KeywordsInjected,
			}
			return nil
		})
	}

	for i, internship := range internships {
		g.Go(func() error {
			contextNote := fmt.Sprintf("Internship: %s at %s",
				internship.InternshipName, internship.CompanyName)
			result, err := e.generator.RewriteBullets(gctx, internship.BulletPoints, targets, contextNote)
			if err != nil {
				log.Printf("[OPTIMIZER] internship %q rewrite failed, keeping original bullets: %v", internship.InternshipName, err)
				content.Internships[i] = types.OptimizedInternship{
					InternshipName:   internship.InternshipName,
					CompanyName:      internship.CompanyName,
					OriginalBullets:  internship.BulletPoints,
					OptimizedBullets: internship.BulletPoints,
				}
				return nil
			}
			content.Internships[i] = types.OptimizedInternship{
				InternshipName:   internship.InternshipName,
				CompanyName:      internship.CompanyName,
				OriginalBullets:  internship.BulletPoints,
				OptimizedBullets: result.RewrittenBullets,
				KeywordsInjected: result.KeywordsInjected,
			}
			return nil
		})
	}

	// Sub-calls recover internally, so Wait cannot fail.
	_ = g.Wait()

	content.ProfessionalSummary = summary

	if skillsResult != nil {
		content.Skills = types.Skills{
			ProgrammingLanguages: skillsResult.ProgrammingLanguages,
			TechnicalSkills:      skillsResult.TechnicalSkills,
			DeveloperTools:       skillsResult.DeveloperTools,
		}
		mergeAddedSkills(&content.Skills, skillsResult.SkillsAdded)
		content.InjectedKeywords = append(content.InjectedKeywords, skillsResult.KeywordsPrioritized...)
		content.InjectedKeywords = append(content.InjectedKeywords, skillsResult.SkillsAdded...)
	}

	for _, p := range content.Projects {
		content.InjectedKeywords = append(content.InjectedKeywords, p.KeywordsInjected...)
	}
	for _, in := range content.Internships {
		content.InjectedKeywords = append(content.InjectedKeywords, in.KeywordsInjected...)
	}
	content.DedupeInjectedKeywords()

	return content
}

// mergeAddedSkills places each inferred skill into the programming languages
// list when it mentions a known language token, into technical skills
// otherwise. Skills already present are not duplicated.
func mergeAddedSkills(skills *types.Skills, added []string) {
	for _, skill := range added {
		normalized := strings.ToLower(skill)
		placed := false
		for _, token := range languageTokens {
			if strings.Contains(normalized, token) {
				if !containsSkill(skills.ProgrammingLanguages, skill) {
					skills.ProgrammingLanguages = append(skills.ProgrammingLanguages, skill)
				}
				placed = true
				break
			}
		}
		if !placed && !containsSkill(skills.TechnicalSkills, skill) {
			skills.TechnicalSkills = append(skills.TechnicalSkills, skill)
		}
	}
}

func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
