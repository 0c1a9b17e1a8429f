package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN = errors.New("PIN must be 4 to 8 digits")
)

// bcryptPrefixes identify stored PINs that were hashed with HashPIN.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsHashedPIN reports whether a stored PIN is a bcrypt hash.
func IsHashedPIN(stored string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return true
		}
	}
	return false
}

// VerifyPIN compares an entered PIN with the stored one.
//
// Plain stored PINs are compared with exact string equality (in constant time).
// Hashed PINs are checked with bcrypt. An empty stored PIN never matches.
func VerifyPIN(stored, entered string) bool {
	if stored == "" {
		return false
	}
	if IsHashedPIN(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(entered)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(entered)) == 1
}

// ValidatePIN checks that a new PIN is a short numeric string.
func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return ErrInvalidPIN
		}
	}
	return nil
}

// HashPIN returns the bcrypt hash of pin for storage.
func HashPIN(pin string) (string, error) {
	if err := ValidatePIN(pin); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hashed), nil
}
