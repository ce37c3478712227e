package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSafe(t *testing.T) {
	got, err := URLSafe(8)
	require.NoError(t, err)
	// 8 байт → 11 символов base64 без паддинга
	assert.Len(t, got, 11)
	assert.NotContains(t, got, "=")
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, "+")
}

func TestURLSafe_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := URLSafe(8)
		require.NoError(t, err)
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}
