package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

const shortHashLen = 12

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// ShortHash is a truncated HashString, enough to correlate log lines without
// printing the raw value
func ShortHash(input string) string {
	return HashString(input)[:shortHashLen]
}
