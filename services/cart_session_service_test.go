package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSessionIDMintsWhenMissing(t *testing.T) {
	token, minted := EnsureSessionID("")
	assert.True(t, minted)

	_, err := uuid.Parse(token)
	require.NoError(t, err)
}

func TestEnsureSessionIDIsIdempotent(t *testing.T) {
	first, _ := EnsureSessionID("")

	second, minted := EnsureSessionID(first)
	assert.False(t, minted)
	assert.Equal(t, first, second)

	// And again: the token is never rotated once established.
	third, minted := EnsureSessionID(second)
	assert.False(t, minted)
	assert.Equal(t, first, third)
}

func TestEnsureSessionIDReplacesMalformedToken(t *testing.T) {
	for _, bad := range []string{"not-a-uuid", "12345", "cart-abc"} {
		token, minted := EnsureSessionID(bad)
		assert.True(t, minted, "token %q should be replaced", bad)
		assert.NotEqual(t, bad, token)

		_, err := uuid.Parse(token)
		assert.NoError(t, err)
	}
}

func TestEnsureSessionIDTokensAreUnique(t *testing.T) {
	a, _ := EnsureSessionID("")
	b, _ := EnsureSessionID("")
	assert.NotEqual(t, a, b)
}
