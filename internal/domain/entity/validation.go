package entity

import (
	"fmt"
	"net/mail"
	"strings"
)

// maxEmailLength follows RFC 5321's limit on address length.
const maxEmailLength = 254

// ValidateEmail validates the format of an email address.
// It checks that the address is non-empty, within the RFC length limit,
// parseable as a bare address (no display name), and has a non-empty domain.
// Returns a ValidationError if the address is invalid.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}

	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("email must not exceed %d characters", maxEmailLength),
		}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return &ValidationError{Field: "email", Message: "email format is invalid"}
	}

	// Reject display-name forms like "Alice <alice@example.com>"
	if addr.Address != email {
		return &ValidationError{Field: "email", Message: "email format is invalid"}
	}

	// mail.ParseAddress accepts local domains like "user@localhost";
	// require a dotted domain to match what the provider-facing app expects.
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return &ValidationError{Field: "email", Message: "email domain is invalid"}
	}

	return nil
}
