// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{Secret: secret, TokenExpiry: time.Hour},
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testConfig("test-secret"))

	token, err := issuer.IssueCredential("user@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ValidateCredential(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "user:user@example.com", claims.Subject)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestValidateCredentialRejectsTampering(t *testing.T) {
	issuer := NewTokenIssuer(testConfig("test-secret"))
	other := NewTokenIssuer(testConfig("other-secret"))

	token, err := issuer.IssueCredential("user@example.com", false)
	require.NoError(t, err)

	_, err = other.ValidateCredential(token)
	assert.Error(t, err)

	_, err = issuer.ValidateCredential("not.a.token")
	assert.Error(t, err)
}

func TestValidateCredentialRejectsExpired(t *testing.T) {
	cfg := testConfig("test-secret")
	cfg.JWT.TokenExpiry = -time.Minute
	issuer := NewTokenIssuer(cfg)

	token, err := issuer.IssueCredential("user@example.com", false)
	require.NoError(t, err)

	_, err = issuer.ValidateCredential(token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, len(hash) > 0)
}
