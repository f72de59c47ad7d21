package models

// ValidationError reports a missing or malformed required field. It is raised
// before any store access and maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
