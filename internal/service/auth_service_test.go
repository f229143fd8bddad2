package service

import (
	"testing"
	"time"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() *AuthService {
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	// Redis is only needed for session bookkeeping, not for token tests.
	return NewAuthService(cfg, nil)
}

func TestCheckPasswordComparesVerbatim(t *testing.T) {
	auth := newAuthFixture()

	assert.NoError(t, auth.CheckPassword("os10", "os10"))
	assert.ErrorIs(t, auth.CheckPassword("os10", "OS10"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.CheckPassword("os10", ""), ErrInvalidCredentials)
}

func TestAuthorizeByStatus(t *testing.T) {
	auth := newAuthFixture()

	assert.NoError(t, auth.Authorize(&model.UserAccount{Status: model.StatusApproved}))
	assert.ErrorIs(t, auth.Authorize(&model.UserAccount{Status: model.StatusPending}), ErrAccountPending)
	assert.ErrorIs(t, auth.Authorize(&model.UserAccount{Status: model.StatusBlocked}), ErrAccountBlocked)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	auth := newAuthFixture()

	token, err := auth.GenerateAdminToken("instructor")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAdmin, claims.TokenType)
	assert.Equal(t, "instructor", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	auth := newAuthFixture()
	token, err := auth.GenerateAdminToken("instructor")
	require.NoError(t, err)

	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}, nil)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth := newAuthFixture()
	_, err := auth.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
