package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"newskeep/internal/domain/entity"
)

func TestUserRepo_Create(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice@example.com", "$2a$10$digest", "Alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	repo := NewUserRepo(mockDB)
	user := &entity.User{Email: "alice@example.com", PasswordHash: "$2a$10$digest", Name: "Alice"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID != 7 {
		t.Errorf("ID = %d, want 7", user.ID)
	}
	if !user.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", user.CreatedAt, createdAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_email_key",
		})

	repo := NewUserRepo(mockDB)
	user := &entity.User{Email: "alice@example.com", PasswordHash: "h", Name: "Alice"}
	err = repo.Create(context.Background(), user)
	if !errors.Is(err, entity.ErrDuplicateEmail) {
		t.Fatalf("Create = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserRepo_Create_OtherError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	repo := NewUserRepo(mockDB)
	err = repo.Create(context.Background(), &entity.User{Email: "a@b.com", PasswordHash: "h", Name: "A"})
	if err == nil {
		t.Fatal("Create = nil, want error")
	}
	if errors.Is(err, entity.ErrDuplicateEmail) {
		t.Error("non-unique-violation error mapped to ErrDuplicateEmail")
	}
}

func TestUserRepo_FindByEmail(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow(int64(3), "bob@example.com", "$2a$10$digest", "Bob", createdAt)
	mock.ExpectQuery("FROM users").
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	repo := NewUserRepo(mockDB)
	user, err := repo.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("FindByEmail returned nil user")
	}
	if user.ID != 3 || user.Email != "bob@example.com" || user.Name != "Bob" {
		t.Errorf("user = %+v", user)
	}
}

func TestUserRepo_FindByEmail_NotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}))

	repo := NewUserRepo(mockDB)
	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("FindByEmail = %v, want entity.ErrNotFound", err)
	}
	if user != nil {
		t.Errorf("user = %+v, want nil", user)
	}
}

func TestUserRepo_FindByID(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow(int64(3), "bob@example.com", "$2a$10$digest", "Bob", createdAt)
	mock.ExpectQuery("FROM users").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := NewUserRepo(mockDB)
	user, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user == nil || user.Email != "bob@example.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestUserRepo_FindByID_NotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer func() { _ = mockDB.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}))

	repo := NewUserRepo(mockDB)
	user, err := repo.FindByID(context.Background(), 99)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("FindByID = %v, want entity.ErrNotFound", err)
	}
	if user != nil {
		t.Errorf("user = %+v, want nil", user)
	}
}
