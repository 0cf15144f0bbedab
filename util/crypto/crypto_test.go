package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("kamehameha")
	require.NoError(t, err)
	assert.NotEqual(t, "kamehameha", hash)
	assert.True(t, CheckPasswordHash(hash, "kamehameha"))
	assert.False(t, CheckPasswordHash(hash, "Kamehameha"))
	assert.False(t, CheckPasswordHash(hash, ""))
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("kamehameha")
	require.NoError(t, err)
	second, err := HashPassword("kamehameha")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
