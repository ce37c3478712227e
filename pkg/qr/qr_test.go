package qr

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSignature первые байты любого корректного PNG файла
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestEncodeBase64PNG(t *testing.T) {
	encoded, err := EncodeBase64PNG("https://example.com/p/abc123", DefaultSize)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngSignature, raw[:8])
}

func TestEncodeBase64PNG_DefaultSize(t *testing.T) {
	encoded, err := EncodeBase64PNG("https://example.com", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
}
