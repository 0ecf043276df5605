package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(20)
	require.NoError(t, err)
	require.Len(t, a, 40)

	b, err := GenerateRandomToken(20)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
