package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns an ID of the form "<prefix>_<n random chars>" where
// the random part is drawn from [a-z0-9] using crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("id length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random id: %w", err)
		}
		buf[i] = idAlphabet[n.Int64()]
	}

	return prefix + "_" + string(buf), nil
}

// ValidateIDFormat reports whether id is "<expectedPrefix>_<suffix>" with a
// non-empty [a-z0-9] suffix.
func ValidateIDFormat(id, expectedPrefix string) bool {
	prefixLen := len(expectedPrefix) + 1
	if len(id) <= prefixLen {
		return false
	}
	if id[:prefixLen] != expectedPrefix+"_" {
		return false
	}
	for _, char := range id[prefixLen:] {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
