package accounts

import "errors"

// ValidationError rejects malformed registration input. The reason is safe
// to surface to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrUserNotFound is returned when no record matches the login email
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the submitted password does
	// not match the stored hash
	ErrInvalidCredentials = errors.New("invalid credentials")
)
