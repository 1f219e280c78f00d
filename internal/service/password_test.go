package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPasswordHasher_HashAndVerify проверяет цикл хеширования и проверки пароля
func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// Arrange
	hasher := NewPasswordHasher()

	// Act
	hash, err := hasher.Hash("securepass")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, "securepass", hash, "Hash must not contain the cleartext password")
	assert.True(t, hasher.Verify(hash, "securepass"))
	assert.False(t, hasher.Verify(hash, "wrongpass"))
	assert.False(t, hasher.Verify(hash, ""))
}

// TestPasswordHasher_HashesDiffer проверяет, что повторное хеширование дает другой хеш
// (bcrypt использует случайную соль)
func TestPasswordHasher_HashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("securepass")
	require.NoError(t, err)

	second, err := hasher.Hash("securepass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
