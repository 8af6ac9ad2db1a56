package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := Sign(secret, 7, "admin", DefaultTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign([]byte("right-secret"), 1, "admin", DefaultTTL)
	require.NoError(t, err)

	_, err = Parse([]byte("wrong-secret"), token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := Sign(secret, 1, "admin", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("test-secret"), "definitely.not.a.jwt")
	assert.Error(t, err)
}
