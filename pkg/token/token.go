package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// URLSafe генерирует криптографически стойкий URL-safe токен из n случайных байт
// Используется для публичных slug профилей (8 байт → 11 символов)
func URLSafe(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
