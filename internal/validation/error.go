package validation

import "fmt"

// Error is a client-facing validation failure. Handlers answer it with 400.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf builds a validation Error for field.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required returns an Error naming every empty value in fields.
// fields alternates name, value: Required("email", email, "password", pw).
func Required(fields ...string) error {
	var missing []string
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			missing = append(missing, fields[i])
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return Errorf(missing[0], "%s is required", missing[0])
	default:
		return Errorf(missing[0], "all fields are required (missing: %v)", missing)
	}
}
