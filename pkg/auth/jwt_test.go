package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-hs256"

func TestValidateToken(t *testing.T) {
	config := JWTConfig{SecretKey: testSecret, Audience: []string{"authenticated"}}

	generator, err := NewJWTGenerator(config, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(config)
	require.NoError(t, err)

	t.Run("round-trips a valid token", func(t *testing.T) {
		token, err := generator.GenerateToken("user-123", "u@example.com", "authenticated")
		require.NoError(t, err)

		claims, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "u@example.com", claims.Email)
		assert.Equal(t, "authenticated", claims.Role)
	})

	t.Run("strips a Bearer prefix", func(t *testing.T) {
		token, err := generator.GenerateToken("user-123", "u@example.com", "authenticated")
		require.NoError(t, err)

		_, err = validator.ValidateToken("Bearer " + token)
		assert.NoError(t, err)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := NewJWTGenerator(JWTConfig{SecretKey: "different-secret", Audience: []string{"authenticated"}}, time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateToken("user-123", "u@example.com", "authenticated")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired, err := NewJWTGenerator(config, -time.Minute)
		require.NoError(t, err)
		token, err := expired.GenerateToken("user-123", "u@example.com", "authenticated")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		_, err := validator.ValidateToken("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("rejects a wrong audience", func(t *testing.T) {
		anon, err := NewJWTGenerator(JWTConfig{SecretKey: testSecret, Audience: []string{"anon"}}, time.Hour)
		require.NoError(t, err)
		token, err := anon.GenerateToken("user-123", "u@example.com", "anon")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})
}
