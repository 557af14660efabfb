// utils/auth.go
package utils

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

func bcryptCost() int {
	if env := os.Getenv("BCRYPT_COST"); env != "" {
		if c, err := strconv.Atoi(env); err == nil && c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			return c
		}
	}
	return defaultBcryptCost
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
	return string(bytes), err
}

// Check password. Returns false for malformed hashes rather than erroring;
// bcrypt's comparison is constant-time relative to the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
