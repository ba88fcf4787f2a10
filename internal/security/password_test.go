package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("pw1", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("pw1")
	require.NoError(t, err)
	b, err := HashPassword("pw1")
	require.NoError(t, err)

	// Same password, different salt, different digest.
	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordBadHash(t *testing.T) {
	assert.False(t, VerifyPassword("pw1", []byte("not-a-bcrypt-hash")))
}
