package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_GetModel_ConfiguredTier(t *testing.T) {
	config := DefaultGeminiConfig()
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestConfig_GetModel_FallsBackToStandard(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierAdvanced))
}

func TestConfig_GetModel_FallsBackToLite(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierAdvanced))
}

func TestConfig_GetModel_Unconfigured(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", config.GetModel(TierStandard))
}

func TestConfig_WithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultGeminiConfig()
	modified := original.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "custom-model", modified.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-pro", original.GetModel(TierAdvanced))
}
