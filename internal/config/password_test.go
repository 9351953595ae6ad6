package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	_, err := NewPasswordConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt cost out of range")
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, cfg.VerifyPassword("Sup3rSecret!", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
}

func TestVerifyPassword_PepperMismatch(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "side-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("Sup3rSecret!", hash))
	assert.False(t, plain.VerifyPassword("Sup3rSecret!", hash))
}
