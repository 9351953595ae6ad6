package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateKeywordMatch_ExactMatch(t *testing.T) {
	pct, matched, missing := CalculateKeywordMatch([]string{"python"}, []string{"python"})
	assert.Equal(t, 100.0, pct)
	assert.Equal(t, []string{"python"}, matched)
	assert.Empty(t, missing)
}

func TestCalculateKeywordMatch_EmptyJDKeywords(t *testing.T) {
	pct, matched, missing := CalculateKeywordMatch([]string{"python"}, nil)
	assert.Equal(t, 0.0, pct)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestCalculateKeywordMatch_NoProfileKeywords(t *testing.T) {
	pct, matched, missing := CalculateKeywordMatch(nil, []string{"python", "java"})
	assert.Equal(t, 0.0, pct)
	assert.Empty(t, matched)
	assert.Equal(t, []string{"python", "java"}, missing)
}

func TestCalculateKeywordMatch_SynonymCanonicalInProfile(t *testing.T) {
	// Profile has the canonical term, JD asks for the alias.
	pct, matched, _ := CalculateKeywordMatch([]string{"React"}, []string{"reactjs"})
	assert.Equal(t, 100.0, pct)
	assert.Equal(t, []string{"reactjs"}, matched)
}

func TestCalculateKeywordMatch_SynonymAliasInProfile(t *testing.T) {
	// Profile has the alias, JD asks for the canonical term.
	pct, matched, _ := CalculateKeywordMatch([]string{"reactjs"}, []string{"React"})
	assert.Equal(t, 100.0, pct)
	assert.Equal(t, []string{"React"}, matched)
}

func TestCalculateKeywordMatch_SubstringFallback(t *testing.T) {
	// "python developer" contains the profile variant "python".
	pct, matched, _ := CalculateKeywordMatch([]string{"python"}, []string{"python developer"})
	assert.Equal(t, 100.0, pct)
	assert.Equal(t, []string{"python developer"}, matched)
}

func TestCalculateKeywordMatch_CaseAndSeparatorInsensitive(t *testing.T) {
	pct, _, _ := CalculateKeywordMatch([]string{"Machine-Learning"}, []string{"machine learning"})
	assert.Equal(t, 100.0, pct)
}

func TestCalculateKeywordMatch_PartialMatch(t *testing.T) {
	pct, matched, missing := CalculateKeywordMatch(
		[]string{"python", "docker"},
		[]string{"python", "rust", "haskell", "docker"},
	)
	assert.Equal(t, 50.0, pct)
	assert.ElementsMatch(t, []string{"python", "docker"}, matched)
	assert.ElementsMatch(t, []string{"rust", "haskell"}, missing)
}

func TestCalculateKeywordMatch_PercentageBounds(t *testing.T) {
	pct, _, _ := CalculateKeywordMatch(
		[]string{"python"},
		[]string{"python", "rust", "haskell", "erlang", "cobol"},
	)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)
}

func TestCalculateKeywordMatch_Deterministic(t *testing.T) {
	profile := []string{"python", "react", "docker", "aws", "git"}
	jd := []string{"python", "reactjs", "kubernetes", "terraform", "github"}

	pct1, _, missing1 := CalculateKeywordMatch(profile, jd)
	for i := 0; i < 50; i++ {
		pct2, _, missing2 := CalculateKeywordMatch(profile, jd)
		assert.Equal(t, pct1, pct2)
		assert.Equal(t, missing1, missing2)
	}
}

func TestCalculateKeywordMatch_EndToEndSynonymScenario(t *testing.T) {
	// Profile skills ["Python","React"], JD skills ["python","reactjs"].
	pct, _, missing := CalculateKeywordMatch([]string{"Python", "React"}, []string{"python", "reactjs"})
	assert.Equal(t, 100.0, pct)
	assert.Empty(t, missing)
}
