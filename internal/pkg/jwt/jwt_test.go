package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestAccessToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateAccessToken(42, "dana@example.com", "admin", testSecret, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateAccessToken(tokenString, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "bloodbridge", claims.Issuer)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateAccessToken(1, "user@example.com", "user", testSecret, 15)
	assert.NoError(t, err)

	claims, err := ValidateAccessToken(tokenString, "a-different-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestAccessToken_Expired(t *testing.T) {
	tokenString, err := GenerateAccessToken(1, "user@example.com", "user", testSecret, -1)
	assert.NoError(t, err)

	claims, err := ValidateAccessToken(tokenString, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestAccessToken_Garbage(t *testing.T) {
	claims, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateRefreshToken(7, "token-abc-123", testSecret, 7)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateRefreshToken(tokenString, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-abc-123", claims.TokenID)
}

func TestRefreshToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateRefreshToken(7, "token-abc-123", testSecret, 7)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(tokenString, "a-different-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestRefreshToken_NotValidAsAccessToken(t *testing.T) {
	tokenString, err := GenerateRefreshToken(7, "token-abc-123", testSecret, 7)
	assert.NoError(t, err)

	// Same signing secret, but the claim shape differs.
	claims, err := ValidateAccessToken(tokenString, testSecret)
	if err == nil {
		assert.Zero(t, claims.Email)
		assert.Zero(t, claims.Role)
	}
}

func TestGetExpiryTime(t *testing.T) {
	expiry := GetExpiryTime(7)
	expected := time.Now().Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, expiry, 5*time.Second)
}
