package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newskeep/internal/domain/entity"
	"newskeep/internal/repository"
)

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.SavedArticle) error {
	const query = `
INSERT INTO saved_articles (user_id, title, img_url, description, url, source, author, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.UserID, article.Title, article.ImageURL, article.Description,
		article.URL, article.SourceName, article.Author, nullableTime(article.PublishedAt)).
		Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// ListByOwner returns the user's saved articles in insertion order.
// Ordering by id rather than published_at preserves save order, matching
// the listing contract.
func (repo *ArticleRepo) ListByOwner(ctx context.Context, userID int64) ([]*entity.SavedArticle, error) {
	const query = `
SELECT id, user_id, title, img_url, description, url, source, author, published_at, created_at
FROM saved_articles
WHERE user_id = $1
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.SavedArticle, 0, 20)
	for rows.Next() {
		var article entity.SavedArticle
		var publishedAt sql.NullTime
		if err := rows.Scan(&article.ID, &article.UserID, &article.Title,
			&article.ImageURL, &article.Description, &article.URL,
			&article.SourceName, &article.Author, &publishedAt, &article.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByOwner: Scan: %w", err)
		}
		if publishedAt.Valid {
			article.PublishedAt = publishedAt.Time
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// nullableTime maps the zero time to NULL so absent publishedAt values are
// stored as NULL rather than 0001-01-01.
func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
