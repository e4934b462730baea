package util

import (
	"testing"
	"time"

	"nihongo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "aki@example.com", Role: model.Student}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "aki@example.com", claims.Email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "aki@example.com", Role: model.Admin}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "some-other-secret-entirely-123456")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "aki@example.com", Role: model.Student}
	user.ID = 2

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}
