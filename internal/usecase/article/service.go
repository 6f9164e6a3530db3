// Package article implements saving and listing a user's articles.
package article

import (
	"context"
	"strings"
	"time"

	"newskeep/internal/domain/entity"
	"newskeep/internal/repository"
)

// SaveInput carries the article fields a client may submit. The owner is
// never part of the input; it comes from the verified token identity.
type SaveInput struct {
	Title       string
	ImageURL    string
	Description string
	URL         string
	SourceName  string
	Author      string
	PublishedAt time.Time
}

type Service struct {
	Articles repository.ArticleRepository
}

// Save persists an article for the given owner. Title is the only
// required field.
func (s *Service) Save(ctx context.Context, ownerID int64, in SaveInput) (*entity.SavedArticle, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}

	a := &entity.SavedArticle{
		UserID:      ownerID,
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		URL:         in.URL,
		SourceName:  in.SourceName,
		Author:      in.Author,
		PublishedAt: in.PublishedAt,
	}
	if err := s.Articles.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListByOwner returns the owner's saved articles in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.SavedArticle, error) {
	return s.Articles.ListByOwner(ctx, ownerID)
}
