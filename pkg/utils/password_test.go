package utils_test

import (
	"testing"

	"bookmydoc-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	assert.True(t, utils.ComparePassword(hash, "secret123"))
	assert.False(t, utils.ComparePassword(hash, "secret124"))
	assert.False(t, utils.ComparePassword("not-a-hash", "secret123"))
}
