package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity does not exist in the
	// store. Repositories return it from their Find methods; callers match
	// with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateEmail indicates that a user with the same email already exists.
	// It surfaces the store's uniqueness constraint; application code never
	// pre-checks, so concurrent registrations are resolved by the database.
	ErrDuplicateEmail = errors.New("email already exists")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
