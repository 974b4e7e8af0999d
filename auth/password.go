package auth

import (
	"folioBackend/utils"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// The mismatch is reported as an invalid-credentials error so handlers never
// leak whether the username or the password was wrong.
func VerifyPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return utils.ErrorInvalidCredentials
	}

	return nil
}
