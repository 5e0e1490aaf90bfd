// Package security bundles password hashing and access-token handling.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/pkg/errs"
)

// HashPassword derives a bcrypt digest from a plaintext password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches a stored digest.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
