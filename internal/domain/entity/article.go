package entity

import "time"

// SavedArticle represents an article a user stored on their personal list.
// Only Title is required; the remaining fields mirror whatever the news
// provider returned and may be empty. UserID references the owning User and
// is always derived from the verified token identity, never client input.
type SavedArticle struct {
	ID          int64
	UserID      int64
	Title       string
	ImageURL    string
	Description string
	URL         string
	SourceName  string
	Author      string
	PublishedAt time.Time
	CreatedAt   time.Time
}
