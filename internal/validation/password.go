package validation

// MinPasswordLength is the shortest accepted admin password.
const MinPasswordLength = 6

// ValidatePassword validates a new admin password
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return Errorf("newPassword", "password must be at least %d characters", MinPasswordLength)
	}

	// bcrypt silently truncates passwords longer than 72 bytes
	if len(password) > 72 {
		return Errorf("newPassword", "password must not exceed 72 characters")
	}

	return nil
}
