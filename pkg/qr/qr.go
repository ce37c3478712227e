package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultSize размер стороны QR изображения в пикселях
const DefaultSize = 256

// EncodeBase64PNG кодирует content в QR и возвращает PNG как base64 строку
// Результат встраивается в страницы как data URI и хранится в БД
func EncodeBase64PNG(content string, size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("qr: failed to encode content: %w", err)
	}

	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return "", fmt.Errorf("qr: failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("qr: failed to encode png: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
