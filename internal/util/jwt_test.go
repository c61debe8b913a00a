package util

import (
	"testing"
	"time"

	"cinequiz_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Email: "ada@example.com",
		Role:  model.Member,
	}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret-test-secret-test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Member, claims.Role)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "ada@example.com", Role: model.Member}
	token, err := GenerateJWT(user, "secret-one-secret-one-secret-one", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-two-secret-two-secret-two")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "ada@example.com", Role: model.Member}
	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret-test-secret-test-secret")
	assert.Error(t, err)
}
