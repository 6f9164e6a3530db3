package account

import (
	"context"
	"errors"
	"fmt"

	"newskeep/internal/domain/entity"
	"newskeep/internal/repository"
	"newskeep/internal/service/auth"
)

// RegisterInput represents the input parameters for registering a new user.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput represents the input parameters for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string
	Name  string
}

// Profile aggregates a user's identity with their saved articles.
type Profile struct {
	Email    string
	Name     string
	Articles []*entity.SavedArticle
}

// Service provides account management use cases. It delegates persistence to
// the repositories and credential work to the auth primitives.
type Service struct {
	Users    repository.UserRepository
	Articles repository.ArticleRepository
	Hasher   *auth.Hasher
	Tokens   *auth.TokenService
}

// Register creates a new user with a hashed password.
// Returns a ValidationError for missing or malformed fields and
// entity.ErrDuplicateEmail when the email is already registered. There is no
// application-level duplicate pre-check; the store's uniqueness constraint
// decides races between concurrent registrations.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return err
	}
	if in.Password == "" {
		return &entity.ValidationError{Field: "password", Message: "is required"}
	}
	if in.Name == "" {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}

	digest, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        in.Email,
		PasswordHash: digest,
		Name:         in.Name,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a bearer token.
// Returns ErrUserNotFound when the email is unknown and
// ErrInvalidCredentials when the password does not match.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.Users.FindByEmail(ctx, in.Email)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.Hasher.Verify(in.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(auth.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, Name: user.Name}, nil
}

// Profile returns the user's identity and saved articles.
// Returns ErrUserNotFound when the user no longer exists; tokens are not
// revoked when a user is deleted, so a valid token can outlive its account.
func (s *Service) Profile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	articles, err := s.Articles.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list saved articles: %w", err)
	}

	return &Profile{
		Email:    user.Email,
		Name:     user.Name,
		Articles: articles,
	}, nil
}
