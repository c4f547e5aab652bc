package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	plain, digest, expiresAt, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEmpty(t, plain)
	assert.NotEqual(t, plain, digest)
	assert.Equal(t, HashResetToken(plain), digest)
	assert.WithinDuration(t, time.Now().Add(ResetTokenTTL), expiresAt, 5*time.Second)
}

func TestGenerateResetToken_Unique(t *testing.T) {
	first, _, _, err := GenerateResetToken()
	require.NoError(t, err)
	second, _, _, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashResetToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
	// hex-encoded sha256
	assert.Len(t, HashResetToken("abc"), 64)
}
