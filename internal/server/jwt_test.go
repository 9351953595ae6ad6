package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakash/ats-cv-generator/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
}

func TestValidateAccessToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong token type")
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	require.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:     "different-secret",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  -time.Minute,
		RefreshTTL: 24 * time.Hour,
	})

	pair, err := svc.GenerateTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := testJWTService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateAccessToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}
