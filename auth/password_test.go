package auth

import (
	"testing"

	"folioBackend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong"), utils.ErrorInvalidCredentials)
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	assert.ErrorIs(t, VerifyPassword("not-a-bcrypt-hash", "anything"), utils.ErrorInvalidCredentials)
}
