package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-at-least-32-characters!!",
			AccessTokenExpiry: expiry,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))

	token, err := manager.GenerateAccessToken("admin@store.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@store.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager(testConfig(-time.Minute))

	token, err := manager.GenerateAccessToken("admin@store.com", true)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig(time.Hour)).GenerateAccessToken("admin@store.com", true)
	require.NoError(t, err)

	other := testConfig(time.Hour)
	other.JWT.Secret = "a-different-secret-32-characters!!!!"
	_, err = NewJWTManager(other).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
	assert.Empty(t, ExtractTokenFromHeader("Bearer "))
}

func TestPasswordHashAndVerify(t *testing.T) {
	manager := NewPasswordManager(testConfig(time.Hour))

	hash, err := manager.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, manager.VerifyPassword("correct horse battery staple", hash))
	assert.Error(t, manager.VerifyPassword("wrong", hash))
}
