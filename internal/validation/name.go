package validation

import (
	"strings"
	"unicode/utf8"
)

// ValidateName validates a display name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return Errorf("name", "name is required")
	}

	if utf8.RuneCountInString(trimmed) > 100 {
		return Errorf("name", "name is too long (max 100 characters)")
	}

	return nil
}

// MaxLength rejects values longer than max runes.
func MaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return Errorf(field, "%s is too long (max %d characters)", field, max)
	}
	return nil
}
