// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User and SavedArticle, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account. Identity is the email address,
// which is unique across the store. PasswordHash is an opaque bcrypt
// digest; plaintext passwords never reach the persistence layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
