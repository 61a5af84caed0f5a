package validation

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lowercases an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail validates email format and length
// Uses Go's built-in net/mail parser which follows RFC 5322
func ValidateEmail(email string) error {
	if email == "" {
		return Errorf("email", "email address is required")
	}

	// RFC 5321: total max 254 with @
	if len(email) > 254 {
		return Errorf("email", "email address is too long (max 254 characters)")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Errorf("email", "invalid email address format")
	}

	return nil
}
