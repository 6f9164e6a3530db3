// Package article provides the HTTP handler for saving articles to a
// user's personal list.
package article

import (
	"time"

	"newskeep/internal/domain/entity"
)

// DTO is the JSON shape of a saved article. The field names follow the
// client contract, which uses the provider's camelCase keys.
type DTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	ImgURL      string     `json:"imgUrl,omitempty"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	Source      string     `json:"source,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	SavedAt     time.Time  `json:"savedAt"`
}

// FromEntity converts a stored article to its response shape.
func FromEntity(a *entity.SavedArticle) DTO {
	dto := DTO{
		ID:          a.ID,
		Title:       a.Title,
		ImgURL:      a.ImageURL,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.SourceName,
		Author:      a.Author,
		SavedAt:     a.CreatedAt,
	}
	if !a.PublishedAt.IsZero() {
		published := a.PublishedAt
		dto.PublishedAt = &published
	}
	return dto
}

// SaveRequest is the JSON body for POST /save-article. The owner is
// taken from the bearer token, never from the body.
type SaveRequest struct {
	Title       string `json:"title"`
	ImgURL      string `json:"imgUrl"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
}
