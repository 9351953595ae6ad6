package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "python", Normalize("Python"))
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "react", Normalize("  React  "))
}

func TestNormalize_CollapsesHyphensAndUnderscores(t *testing.T) {
	assert.Equal(t, "ci cd pipeline", Normalize("CI-CD_pipeline"))
}

func TestVariants_IncludesNormalizedForm(t *testing.T) {
	variants := Variants("Kafka")
	assert.True(t, variants["kafka"])
}

func TestVariants_CanonicalToAlias(t *testing.T) {
	variants := Variants("React")
	assert.True(t, variants["reactjs"])
	assert.True(t, variants["react.js"])
	assert.True(t, variants["react js"])
}

func TestVariants_AliasToCanonical(t *testing.T) {
	variants := Variants("reactjs")
	assert.True(t, variants["react"])
}

func TestVariants_AliasToSiblingAlias(t *testing.T) {
	// "k8s" -> canonical "kubernetes"
	variants := Variants("k8s")
	assert.True(t, variants["kubernetes"])
}

func TestVariants_ShortTermsNotExpanded(t *testing.T) {
	variants := Variants("js")
	assert.Equal(t, map[string]bool{"js": true}, variants)
}

func TestVariants_Symmetry(t *testing.T) {
	// For every listed synonym pair, each side must reach the other.
	pairs := [][2]string{
		{"react", "reactjs"},
		{"node", "nodejs"},
		{"postgresql", "postgres"},
		{"aws", "amazon web services"},
		{"kubernetes", "k8s"},
		{"c++", "cpp"},
	}
	for _, pair := range pairs {
		assert.True(t, Variants(pair[0])[Normalize(pair[1])], "%s should reach %s", pair[0], pair[1])
		assert.True(t, Variants(pair[1])[Normalize(pair[0])], "%s should reach %s", pair[1], pair[0])
	}
}

func TestVariants_UnknownTerm(t *testing.T) {
	variants := Variants("Erlang")
	assert.Equal(t, map[string]bool{"erlang": true}, variants)
}
