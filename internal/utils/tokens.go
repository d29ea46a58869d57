package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 бит по умолчанию
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewLinkCode — короткий код для deep-link привязки Telegram.
// Дефисы убираем: код попадает в параметр /start.
func NewLinkCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
