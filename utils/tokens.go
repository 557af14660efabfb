// utils/tokens.go
package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateToken returns a 256-bit random token, hex encoded, for embedding
// in QR code URLs. Not guessable, not enumerable.
func GenerateToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random bytes for token")
	}
	return hex.EncodeToString(buf)
}

// GenerateGuid returns a random v4 UUID string. Used for customer device
// identifiers and as primary keys.
func GenerateGuid() string {
	return uuid.NewString()
}
