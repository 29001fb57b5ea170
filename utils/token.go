package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns a 256-bit random token, hex encoded.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
