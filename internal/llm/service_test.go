package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// fakeClient returns a canned response without touching the network.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error              { return nil }

func TestExtractKeywords_ParsesCategories(t *testing.T) {
	client := &fakeClient{response: `{
		"keywords": ["backend developer"],
		"skills": ["api design"],
		"technologies": ["go", "postgresql"],
		"soft_skills": ["communication"],
		"experience_requirements": ["2+ years"],
		"action_verbs": ["develop"],
		"methodologies": ["agile"]
	}`}
	service := NewService(client, 0)

	keywords, err := service.ExtractKeywords(context.Background(), "We need a backend developer.")
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "postgresql"}, keywords.Technologies)
	assert.Equal(t, []string{"backend developer"}, keywords.Keywords)
	assert.Equal(t, []string{"agile"}, keywords.Methodologies)
}

func TestExtractKeywords_MissingCategoriesAllowed(t *testing.T) {
	client := &fakeClient{response: `{"skills": ["testing"], "technologies": ["go"]}`}
	service := NewService(client, 0)

	keywords, err := service.ExtractKeywords(context.Background(), "jd text")
	require.NoError(t, err)

	assert.Empty(t, keywords.Keywords)
	assert.Equal(t, []string{"go"}, keywords.Technologies)
}

func TestExtractKeywords_WrongTypeRejected(t *testing.T) {
	client := &fakeClient{response: `{"keywords": "not a list"}`}
	service := NewService(client, 0)

	_, err := service.ExtractKeywords(context.Background(), "jd text")
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractKeywords_ModelErrorWrapped(t *testing.T) {
	cause := errors.New("quota exceeded")
	client := &fakeClient{err: cause}
	service := NewService(client, 0)

	_, err := service.ExtractKeywords(context.Background(), "jd text")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorIs(t, err, cause)
}

func TestExtractKeywords_PromptContainsJobDescription(t *testing.T) {
	client := &fakeClient{response: `{}`}
	service := NewService(client, 0)

	_, err := service.ExtractKeywords(context.Background(), "Looking for a Kubernetes platform engineer.")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Kubernetes platform engineer")
	assert.Contains(t, client.prompts[0], `"technologies"`)
}

func TestGenerateSummary_ParsesSummary(t *testing.T) {
	client := &fakeClient{response: `{
		"summary": "Results-driven developer with Go and PostgreSQL experience.",
		"keywords_included": ["Go", "PostgreSQL"]
	}`}
	service := NewService(client, 0)

	profile := &types.ProfileSnapshot{
		Skills: types.Skills{ProgrammingLanguages: []string{"Go"}},
	}
	keywords := &types.JDKeywordSet{Technologies: []string{"Go", "PostgreSQL"}}

	summary, err := service.GenerateSummary(context.Background(), profile, "jd text", keywords)
	require.NoError(t, err)
	assert.Equal(t, "Results-driven developer with Go and PostgreSQL experience.", summary)
}

func TestGenerateSummary_NoInternshipsMarkedFreshGraduate(t *testing.T) {
	client := &fakeClient{response: `{"summary": "s", "keywords_included": []}`}
	service := NewService(client, 0)

	profile := &types.ProfileSnapshot{}
	keywords := &types.JDKeywordSet{}

	_, err := service.GenerateSummary(context.Background(), profile, "jd", keywords)
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Fresh graduate/student")
}

func TestOptimizeSkills_KeepsOriginalsWhenOmitted(t *testing.T) {
	client := &fakeClient{response: `{"skills_added": ["REST APIs"], "keywords_prioritized": ["Go"]}`}
	service := NewService(client, 0)

	skills := types.Skills{
		ProgrammingLanguages: []string{"Go", "Python"},
		TechnicalSkills:      []string{"Docker"},
		DeveloperTools:       []string{"Git"},
	}
	keywords := &types.JDKeywordSet{Skills: []string{"REST APIs"}, Technologies: []string{"Go"}}

	result, err := service.OptimizeSkills(context.Background(), skills, keywords)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Python"}, result.ProgrammingLanguages)
	assert.Equal(t, []string{"Docker"}, result.TechnicalSkills)
	assert.Equal(t, []string{"Git"}, result.DeveloperTools)
	assert.Equal(t, []string{"REST APIs"}, result.SkillsAdded)
}

func TestOptimizeSkills_ParsesReorderedLists(t *testing.T) {
	client := &fakeClient{response: `{
		"programming_languages": ["Go", "Python"],
		"technical_skills": ["REST APIs", "Docker"],
		"developer_tools": ["Git", "GitHub"],
		"keywords_prioritized": ["Go", "REST APIs"],
		"skills_added": ["GitHub"]
	}`}
	service := NewService(client, 0)

	result, err := service.OptimizeSkills(context.Background(), types.Skills{}, &types.JDKeywordSet{})
	require.NoError(t, err)

	assert.Equal(t, []string{"REST APIs", "Docker"}, result.TechnicalSkills)
	assert.Equal(t, []string{"Go", "REST APIs"}, result.KeywordsPrioritized)
}

func TestRewriteBullets_ParsesResult(t *testing.T) {
	client := &fakeClient{response: `{
		"rewritten_bullets": ["Developed REST API service using Go, handling 1000+ requests per second"],
		"keywords_injected": ["REST API", "Go"]
	}`}
	service := NewService(client, 0)

	result, err := service.RewriteBullets(context.Background(),
		[]string{"Built an API"}, []string{"REST API", "Go"}, "Project: Gateway")
	require.NoError(t, err)

	assert.Len(t, result.RewrittenBullets, 1)
	assert.Equal(t, []string{"REST API", "Go"}, result.KeywordsInjected)
}

func TestRewriteBullets_FallsBackToOriginalsWhenEmpty(t *testing.T) {
	client := &fakeClient{response: `{"rewritten_bullets": [], "keywords_injected": []}`}
	service := NewService(client, 0)

	originals := []string{"Built an API", "Wrote tests"}
	result, err := service.RewriteBullets(context.Background(), originals, nil, "")
	require.NoError(t, err)

	assert.Equal(t, originals, result.RewrittenBullets)
}

func TestRewriteBullets_PromptContainsContext(t *testing.T) {
	client := &fakeClient{response: `{"rewritten_bullets": ["x"]}`}
	service := NewService(client, 0)

	_, err := service.RewriteBullets(context.Background(),
		[]string{"Built an API"}, []string{"Go"}, "Internship: Backend Intern at Acme")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Internship: Backend Intern at Acme")
	assert.Contains(t, client.prompts[0], "Built an API")
}
