package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 10
	// bcrypt only reads the first 72 bytes of its input.
	maxPasswordBytes = 72
)

// HashPassword returns a salted bcrypt hash of plaintext. Input past 72 bytes
// is ignored, as bcrypt would ignore it anyway.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches hash.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plaintext)) == nil
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
