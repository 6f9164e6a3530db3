package db

import "database/sql"

// MigrateUp creates the application schema if it does not already exist.
// The unique index on users.email backs the DuplicateEmail contract: the
// constraint, not application code, decides concurrent registration races.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    created_at    TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS saved_articles (
    id           SERIAL PRIMARY KEY,
    user_id      INTEGER NOT NULL REFERENCES users(id),
    title        TEXT NOT NULL,
    img_url      TEXT,
    description  TEXT,
    url          TEXT,
    source       TEXT,
    author       TEXT,
    published_at TIMESTAMPTZ,
    created_at   TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	// ListByOwner always filters on user_id
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_saved_articles_user_id ON saved_articles(user_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
