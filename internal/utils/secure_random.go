package utils

import (
	"crypto/rand"
	"math/big"
)

const alphanumericCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSecureRandomString returns a cryptographically secure random string
// of the given length drawn from an uppercase alphanumeric charset.
func GenerateSecureRandomString(length int) (string, error) {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(alphanumericCharset)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = alphanumericCharset[idx.Int64()]
	}
	return string(result), nil
}
