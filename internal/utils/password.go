package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the plaintext password.
//
// bcrypt embeds a random salt in the produced hash, so two calls with the
// same password yield different hashes; comparison must go through
// [CheckPassword]. The default cost is used — raise it only after measuring
// login latency.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
//
// Returns:
//   - (true, nil) on a match
//   - (false, nil) on a clean mismatch
//   - (false, err) when the stored hash is malformed
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password hash: %w", err)
}
