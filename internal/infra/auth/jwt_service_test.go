package auth

import (
	"testing"
	"time"

	"goalazo/config"
	"goalazo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func newTestAuthUser() *entity.AuthenticatedUser {
	return &entity.AuthenticatedUser{
		ID:               42,
		Name:             "alice",
		IsAdmin:          false,
		IsAutoGenerated:  false,
		RegistrationDate: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestJWTService_New(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("test_token_secret", time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_New_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "token signing secret")
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("test_token_secret", time.Hour))
	require.NoError(t, err)

	user := newTestAuthUser()
	token, err := svc.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.IsAdmin, claims.IsAdmin)
	assert.Equal(t, user.IsAutoGenerated, claims.IsAutoGenerated)
	assert.True(t, user.RegistrationDate.Equal(claims.RegistrationDate))

	authUser := claims.AuthUser()
	require.NotNil(t, authUser)
	assert.Equal(t, user.ID, authUser.ID)
	assert.Empty(t, authUser.Token)
}

func TestJWTService_Validate_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("test_token_secret", time.Hour))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6NDJ9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, validateErr := svc.Validate(tc.token)
			assert.Error(t, validateErr)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTConfig("issuer_secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newJWTConfig("another_secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(newTestAuthUser())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	// A negative TTL makes the token expired the moment it is issued.
	svc, err := NewJWTService(newJWTConfig("test_token_secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(newTestAuthUser())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
