package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// GenerateRefreshToken returns a new opaque refresh token together with the
// hash that should be persisted. Only the hash is ever stored.
func GenerateRefreshToken() (token string, hash string, err error) {
	token, err = GenerateSecureRandomString(64)
	if err != nil {
		return "", "", err
	}
	return token, HashRefreshToken(token), nil
}

// HashRefreshToken computes the SHA-256 hex digest of a refresh token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshToken reports whether the given token matches the stored
// hash, using a constant-time comparison.
func CompareRefreshToken(token string, storedHash string) bool {
	computed := HashRefreshToken(token)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
