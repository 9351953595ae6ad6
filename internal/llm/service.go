package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// DefaultCallTimeout bounds a single model call when no timeout is configured.
const DefaultCallTimeout = 45 * time.Second

// Service implements the generation calls used by the optimizer on top of a Client.
// All methods bound the underlying model call with the configured timeout.
type Service struct {
	client  Client
	timeout time.Duration
}

// NewService creates a Service. A non-positive timeout falls back to DefaultCallTimeout.
func NewService(client Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Service{client: client, timeout: timeout}
}

// RewriteResult holds the outcome of one bullet rewrite call.
type RewriteResult struct {
	RewrittenBullets []string `json:"rewritten_bullets"`
	KeywordsInjected []string `json:"keywords_injected"`
}

// SkillsResult holds the outcome of one skills optimization call.
type SkillsResult struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	TechnicalSkills      []string `json:"technical_skills"`
	DeveloperTools       []string `json:"developer_tools"`
	KeywordsPrioritized  []string `json:"keywords_prioritized"`
	SkillsAdded          []string `json:"skills_added"`
}

// summaryResponse is the wire shape of the summary generation call.
type summaryResponse struct {
	Summary          string   `json:"summary"`
	KeywordsIncluded []string `json:"keywords_included"`
}

// ExtractKeywords extracts categorized ATS keywords from a job description.
// The response is schema-validated before unmarshalling; any failure is
// returned as an ExtractionError and is fatal for the generation request.
func (s *Service) ExtractKeywords(ctx context.Context, jobDescription string) (*types.JDKeywordSet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := BuildExtractionPrompt(JDKeywordsSchema(), jobDescription)

	responseText, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "model call failed", Cause: err}
	}

	if err := validateKeywordPayload(responseText); err != nil {
		return nil, &ExtractionError{Message: "invalid response payload", Cause: err}
	}

	var keywords types.JDKeywordSet
	if err := json.Unmarshal([]byte(responseText), &keywords); err != nil {
		return nil, &ExtractionError{Message: "failed to parse response", Cause: err}
	}

	log.Printf("[LLM] extracted JD keywords: technologies=%d skills=%d keywords=%d",
		len(keywords.Technologies), len(keywords.Skills), len(keywords.Keywords))

	return &keywords, nil
}

// GenerateSummary produces a professional summary tailored to the job
// description, weaving in as many JD keywords as the profile honestly supports.
func (s *Service) GenerateSummary(ctx context.Context, profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildSummaryPrompt(profile, jobDescription, keywords)

	responseText, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return "", &APICallError{Message: "summary generation failed", Cause: err}
	}

	var resp summaryResponse
	if err := json.Unmarshal([]byte(responseText), &resp); err != nil {
		return "", &ParseError{Message: "failed to parse summary response", Cause: err}
	}

	log.Printf("[LLM] generated summary with %d JD keywords", len(resp.KeywordsIncluded))
	return resp.Summary, nil
}

// OptimizeSkills reorders the profile's skill lists to front-load JD matches
// and suggests closely related skills the candidate likely has.
func (s *Service) OptimizeSkills(ctx context.Context, skills types.Skills, keywords *types.JDKeywordSet) (*SkillsResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildSkillsPrompt(skills, keywords)

	responseText, err := s.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "skills optimization failed", Cause: err}
	}

	var result SkillsResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, &ParseError{Message: "failed to parse skills response", Cause: err}
	}

	// Lists the model omitted keep the candidate's originals.
	if result.ProgrammingLanguages == nil {
		result.ProgrammingLanguages = skills.ProgrammingLanguages
	}
	if result.TechnicalSkills == nil {
		result.TechnicalSkills = skills.TechnicalSkills
	}
	if result.DeveloperTools == nil {
		result.DeveloperTools = skills.DeveloperTools
	}

	log.Printf("[LLM] skills optimized, added: %v", result.SkillsAdded)
	return &result, nil
}

// RewriteBullets rewrites a bullet group to inject target keywords while
// keeping each bullet in the 12-20 word range. contextNote identifies the
// project or internship the bullets belong to.
func (s *Service) RewriteBullets(ctx context.Context, bullets, targetKeywords []string, contextNote string) (*RewriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildRewritePrompt(bullets, targetKeywords, contextNote)

	responseText, err := s.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "bullet rewrite failed", Cause: err}
	}

	var result RewriteResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, &ParseError{Message: "failed to parse rewrite response", Cause: err}
	}

	if len(result.RewrittenBullets) == 0 {
		result.RewrittenBullets = bullets
	}

	log.Printf("[LLM] rewrote %d bullets, injected: %v", len(bullets), result.KeywordsInjected)
	return &result, nil
}

func buildSummaryPrompt(profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) string {
	allSkills := make([]string, 0,
		len(profile.Skills.ProgrammingLanguages)+len(profile.Skills.TechnicalSkills)+len(profile.Skills.DeveloperTools))
	allSkills = append(allSkills, profile.Skills.ProgrammingLanguages...)
	allSkills = append(allSkills, profile.Skills.TechnicalSkills...)
	allSkills = append(allSkills, profile.Skills.DeveloperTools...)

	var projectNames, projectTechs []string
	for _, p := range firstProjects(profile.Projects, 3) {
		projectNames = append(projectNames, p.ProjectName)
		projectTechs = append(projectTechs, p.TechStack...)
	}

	var companies []string
	for i, in := range profile.Internships {
		if i >= 2 {
			break
		}
		companies = append(companies, in.CompanyName)
	}
	experience := strings.Join(companies, ", ")
	if experience == "" {
		experience = "Fresh graduate/student"
	}

	jdKeywords := append(keywords.TargetKeywords(), keywords.Keywords...)

	var sb strings.Builder
	sb.WriteString("Generate an ATS-OPTIMIZED professional summary that MAXIMIZES keyword matches.\n\n")
	sb.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&sb, "- Programming Skills: %s\n", strings.Join(firstN(allSkills, 20), ", "))
	fmt.Fprintf(&sb, "- Project Technologies: %s\n", strings.Join(firstN(projectTechs, 10), ", "))
	fmt.Fprintf(&sb, "- Notable Projects: %s\n", strings.Join(projectNames, ", "))
	fmt.Fprintf(&sb, "- Work Experience: %s\n\n", experience)
	sb.WriteString("JOB DESCRIPTION KEYWORDS TO INCLUDE (use as many as honestly possible):\n")
	fmt.Fprintf(&sb, "%s\n\n", strings.Join(firstN(jdKeywords, 20), ", "))
	fmt.Fprintf(&sb, "Job Description Excerpt:\n%s\n\n", truncate(jobDescription, 600))
	sb.WriteString(`INSTRUCTIONS:
1. Write 3-4 impactful sentences (60-100 words total)
2. MUST include at least 8-10 keywords from the JD keyword list above
3. Use EXACT keyword phrases from the JD (e.g., if JD says "React.js", use "React.js" not just "React")
4. Start with a strong descriptor: "Results-driven", "Detail-oriented", "Passionate"
5. Mention specific technologies that match the JD
6. Include soft skills mentioned in the JD if applicable
7. Quantify where possible (e.g., "developed 5+ projects")
8. End with a career goal aligned to the role

Respond with ONLY a JSON object:
{
    "summary": "Your professional summary here...",
    "keywords_included": ["keyword1", "keyword2"]
}`)
	return sb.String()
}

func buildSkillsPrompt(skills types.Skills, keywords *types.JDKeywordSet) string {
	var sb strings.Builder
	sb.WriteString("You are an ATS optimization expert. Optimize these skills sections to maximize ATS score for this job.\n\n")
	sb.WriteString("CANDIDATE'S CURRENT SKILLS:\n")
	fmt.Fprintf(&sb, "- Programming Languages: %s\n", strings.Join(skills.ProgrammingLanguages, ", "))
	fmt.Fprintf(&sb, "- Technical Skills: %s\n", strings.Join(skills.TechnicalSkills, ", "))
	fmt.Fprintf(&sb, "- Developer Tools: %s\n\n", strings.Join(skills.DeveloperTools, ", "))
	sb.WriteString("JOB REQUIRED SKILLS/TECHNOLOGIES:\n")
	fmt.Fprintf(&sb, "%s\n\n", strings.Join(keywords.TargetKeywords(), ", "))
	sb.WriteString(`OPTIMIZATION TASKS (DO ALL):
1. Put JD-matching skills FIRST in each category
2. Add commonly accepted variations (e.g., "JavaScript" -> "JavaScript (ES6+)", "React" -> "React.js")
3. Add related skills from the JD that the candidate LIKELY knows based on their existing skills
   (React implies JSX and Hooks, Docker implies containerization, Git implies version control)
4. For missing JD skills closely related to what they know, add them
5. Add soft skills from the JD that any developer would have

RULES:
- Each skill category should have 8-15 skills
- Front-load each category with JD-matching keywords
- Use EXACT terminology from the JD where the candidate has matching skills
- Never remove skills the candidate already lists

Respond with ONLY a JSON object:
{
    "programming_languages": ["skill1", "skill2"],
    "technical_skills": ["skill1", "skill2"],
    "developer_tools": ["tool1", "tool2"],
    "keywords_prioritized": ["keyword1", "keyword2"],
    "skills_added": ["skill1", "skill2"]
}`)
	return sb.String()
}

func buildRewritePrompt(bullets, targetKeywords []string, contextNote string) string {
	var sb strings.Builder
	sb.WriteString("Rewrite these bullet points to MAXIMIZE ATS keyword matching.\n\n")
	sb.WriteString("ORIGINAL BULLET POINTS:\n")
	for _, b := range bullets {
		fmt.Fprintf(&sb, "- %s\n", b)
	}
	sb.WriteString("\nTARGET KEYWORDS TO INJECT (include as many as possible):\n")
	fmt.Fprintf(&sb, "%s\n\n", strings.Join(targetKeywords, ", "))
	fmt.Fprintf(&sb, "CONTEXT: %s\n\n", contextNote)
	sb.WriteString(`INSTRUCTIONS:
1. Each bullet MUST be 12-20 words (optimal ATS length)
2. Start each bullet with a STRONG ACTION VERB: Developed, Implemented, Engineered, Designed, Built, Optimized
3. Include at least 2-3 keywords from the target list in each bullet
4. Use EXACT keyword phrases where possible (e.g., "REST API" not just "API")
5. Include metrics where possible: "reduced by X%", "handled X+ requests"
6. Make implicit skills explicit, but DO NOT fabricate features
7. Keep one rewritten bullet per original bullet, in order

Respond with ONLY a JSON object:
{
    "rewritten_bullets": ["bullet1", "bullet2"],
    "keywords_injected": ["keyword1", "keyword2"]
}`)
	return sb.String()
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func firstProjects(projects []types.Project, n int) []types.Project {
	if len(projects) <= n {
		return projects
	}
	return projects[:n]
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
