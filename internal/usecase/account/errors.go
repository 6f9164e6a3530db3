// Package account provides use cases for registration, login, and profile
// retrieval. It owns the credential flow: passwords are hashed before they
// reach the store, and tokens are issued only after a successful verify.
package account

import "errors"

// Sentinel errors for account use case operations.
var (
	// ErrUserNotFound indicates that no user exists for the given email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the password did not match.
	// The login contract distinguishes this from ErrUserNotFound; the
	// frontend shows different screens for the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
