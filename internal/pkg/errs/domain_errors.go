package errs

import "errors"

// Error categories shared by every layer. Concrete errors are marked with one
// of these so handlers can map them to a status without knowing the entity.
var (
	// Malformed wire identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Well-formed identifier, no matching document
	ErrNotFound = errors.New("not found")

	// Payload violates the entity's field contract
	ErrValidation = errors.New("validation failed")

	// Bad admin credentials
	ErrUnauthorized = errors.New("unauthorized")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Validation returns a new validation error with the given message.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

// NotFound returns a new not-found error with the given message.
func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}
