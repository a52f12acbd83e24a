package utils

import (
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
}

func TestAdminJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateAdminJWT("admin", secret, 24)
	require.NoError(t, err)

	subject, err := ParseAdminJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestParseAdminJWT_Expired(t *testing.T) {
	secret := "test-secret"

	now := time.Now().Add(-48 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ParseAdminJWT(tokenString, secret)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, constvars.ErrDevAuthTokenExpired)
}

func TestParseAdminJWT_Tampered(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateAdminJWT("admin", secret, 24)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = ParseAdminJWT(tampered, secret)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestParseAdminJWT_WrongSecret(t *testing.T) {
	token, err := GenerateAdminJWT("admin", "secret-a", 24)
	require.NoError(t, err)

	_, err = ParseAdminJWT(token, "secret-b")
	assert.Error(t, err)
}
