package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/skillsync/internal/lib/jwt"
)

func TestJWTMaker_GenerateAndParse(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)

	token, err := maker.GenerateToken("42", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTMaker_WrongSecret(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	other := jwt.NewJWTMaker("other-secret", time.Hour)

	token, err := maker.GenerateToken("42", "user")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", -time.Minute)

	token, err := maker.GenerateToken("42", "user")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTMaker_GarbageToken(t *testing.T) {
	maker := jwt.NewJWTMaker("test-secret", time.Hour)

	_, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
}
