// Package repository defines the persistence interfaces consumed by the
// usecase layer. Concrete adapters live under internal/infra/adapter.
package repository

import (
	"context"

	"newskeep/internal/domain/entity"
)

type ArticleRepository interface {
	// Create persists a saved article and fills in the generated ID.
	// The owning UserID must already be attached by the caller.
	Create(ctx context.Context, article *entity.SavedArticle) error
	// ListByOwner retrieves all articles saved by the given user in
	// insertion order.
	ListByOwner(ctx context.Context, userID int64) ([]*entity.SavedArticle, error)
}
