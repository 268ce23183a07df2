package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrNoAdminPassword is returned when no admin password hash is configured.
var ErrNoAdminPassword = errors.New("admin password hash not configured")

// HashPassword returns a bcrypt hash suitable for the admin_password_hash
// config key.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ValidateHash checks that hash looks like a bcrypt hash.
func ValidateHash(hash string) error {
	if hash == "" {
		return ErrNoAdminPassword
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("admin password hash: %w", err)
	}
	return nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
