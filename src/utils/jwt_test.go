package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "u1", "admin@nmitmock.ac", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWTRejects(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("empty", func(t *testing.T) {
		_, err := ParseJWT(secret, "")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT([]byte("other"), "u1", "a@b.c", "admin", time.Hour)
		require.NoError(t, err)
		_, err = ParseJWT(secret, token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateJWT(secret, "u1", "a@b.c", "admin", -time.Minute)
		require.NoError(t, err)
		_, err = ParseJWT(secret, token)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{UserID: "u1"})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ParseJWT(secret, raw)
		assert.Error(t, err)
	})

	t.Run("unique jti per token", func(t *testing.T) {
		a, _ := GenerateJWT(secret, "u1", "a@b.c", "admin", time.Hour)
		b, _ := GenerateJWT(secret, "u1", "a@b.c", "admin", time.Hour)
		ca, err := ParseJWT(secret, a)
		require.NoError(t, err)
		cb, err := ParseJWT(secret, b)
		require.NoError(t, err)
		assert.NotEqual(t, ca.ID, cb.ID)
	})
}
