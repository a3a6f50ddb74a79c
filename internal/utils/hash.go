package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey
// and returns it hex-encoded.
//
// The server stores password reset tokens only in this form, so a leaked
// cache never exposes a usable token.
//
// Example usage:
//
//	key := utils.HashString(resetToken, cfg.App.HashKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// RandomToken returns n random bytes from crypto/rand encoded as hex.
func RandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid token length: %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
