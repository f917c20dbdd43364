package utils

import (
	"beauty-clinic-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestParseAccessToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Unix()

	t.Run("Admin Token", func(t *testing.T) {
		token, err := GenerateAccessToken("user-1", true, testSecret, expiry)
		require.NoError(t, err)

		claims, err := ParseAccessToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("Missing Admin Claim Means Customer", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":  "user-2",
			"exp": expiry,
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		claims, err := ParseAccessToken(token, testSecret)
		require.NoError(t, err)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateAccessToken("user-1", true, "other-secret", expiry)
		require.NoError(t, err)

		_, err = ParseAccessToken(token, testSecret)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateAccessToken("user-1", false, testSecret, time.Now().Add(-time.Minute).Unix())
		require.NoError(t, err)

		_, err = ParseAccessToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("Token Without Id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"isAdmin": true,
			"exp":     expiry,
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ParseAccessToken(token, testSecret)
		assert.Error(t, err)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Basic abc")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Bearer ")
	assert.Error(t, err)
}
