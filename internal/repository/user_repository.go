package repository

import (
	"context"

	"newskeep/internal/domain/entity"
)

type UserRepository interface {
	// Create persists a new user and fills in the generated ID.
	// Returns entity.ErrDuplicateEmail when the email is already registered.
	// The uniqueness check is left entirely to the store's constraint, so a
	// race between two concurrent registrations is resolved by exactly one
	// of them succeeding.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail retrieves a user by email.
	// Returns entity.ErrNotFound if no user with that email exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID retrieves a user by ID.
	// Returns entity.ErrNotFound if no user with that ID exists.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}
