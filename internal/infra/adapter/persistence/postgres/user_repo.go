package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newskeep/internal/domain/entity"
	"newskeep/internal/repository"
)

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

// uniqueViolation is the SQLSTATE Postgres reports when an insert hits a
// unique constraint. The users.email index resolves concurrent registration
// races: exactly one insert succeeds, the other lands here.
const uniqueViolation = "23505"

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (email, password_hash, name)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.Name).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, email, password_hash, name, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, email), "FindByEmail")
}

func (repo *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, email, password_hash, name, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (repo *UserRepo) scanOne(row *sql.Row, op string) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
