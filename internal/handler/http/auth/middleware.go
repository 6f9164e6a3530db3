// Package auth guards protected HTTP endpoints with bearer token
// authentication.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"newskeep/internal/domain/entity"
	"newskeep/internal/handler/http/respond"
	"newskeep/internal/repository"
	authsvc "newskeep/internal/service/auth"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID int64
	Email  string
}

// Middleware authenticates requests on protected endpoints.
//
// A request passes when all of the following hold:
//  1. The Authorization header carries a "Bearer <token>" value.
//  2. The token verifies against the signing secret and is not expired.
//  3. The account the token was issued for still exists.
//
// On success the identity is attached to the request context; handlers
// read it with IdentityFrom. Ownership is always derived from the
// verified identity, never from request parameters.
type Middleware struct {
	Tokens *authsvc.TokenService
	Users  repository.UserRepository
}

// Require wraps next so it only runs for authenticated requests.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			RecordAuthAttempt("missing_token")
			respond.Error(w, http.StatusUnauthorized, err)
			return
		}

		claims, err := m.Tokens.Verify(token)
		if err != nil {
			RecordAuthAttempt("invalid_token")
			respond.Error(w, http.StatusUnauthorized, errors.New("invalid or expired token"))
			return
		}

		user, err := m.Users.FindByID(r.Context(), claims.UserID)
		if errors.Is(err, entity.ErrNotFound) {
			// Valid token for an account that no longer exists
			RecordAuthAttempt("unknown_user")
			respond.Error(w, http.StatusNotFound, errors.New("user not found"))
			return
		}
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		RecordAuthAttempt("success")
		ctx := context.WithValue(r.Context(), ctxIdentity, Identity{UserID: user.ID, Email: user.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom returns the authenticated identity stored in ctx by
// Require. The second return is false when the request did not pass
// through the middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}

func bearerToken(authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authz, prefix)
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}
