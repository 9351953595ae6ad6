package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("GEMINI_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 90, cfg.TargetScore)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 30*time.Second, cfg.LaTeXTimeout)
	assert.Equal(t, 30*time.Second, cfg.PandocTimeout)
	assert.True(t, cfg.UseBrowser)
	assert.False(t, cfg.Verbose)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("TARGET_SCORE", "85")
	t.Setenv("MAX_ATTEMPTS", "5")
	t.Setenv("LATEX_TIMEOUT_SECONDS", "60")
	t.Setenv("USE_BROWSER", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 85, cfg.TargetScore)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.LaTeXTimeout)
	assert.False(t, cfg.UseBrowser)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_TargetScoreOutOfRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TARGET_SCORE", "150")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TARGET_SCORE")
}

func TestLoad_InvalidInt(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_ATTEMPTS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_ATTEMPTS")
}
