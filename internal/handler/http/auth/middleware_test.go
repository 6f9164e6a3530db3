package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newskeep/internal/domain/entity"
	"newskeep/internal/handler/http/auth"
	authsvc "newskeep/internal/service/auth"
)

type stubUserRepo struct {
	byID    map[int64]*entity.User
	findErr error
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, entity.ErrNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, entity.ErrNotFound
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newMiddleware(users *stubUserRepo) (*auth.Middleware, *authsvc.TokenService) {
	tokens := authsvc.NewTokenService(testSecret, time.Hour)
	return &auth.Middleware{Tokens: tokens, Users: users}, tokens
}

func TestMiddleware_Require(t *testing.T) {
	users := &stubUserRepo{byID: map[int64]*entity.User{
		7: {ID: 7, Email: "alice@example.com", Name: "Alice"},
	}}
	mw, tokens := newMiddleware(users)

	token, err := tokens.Issue(authsvc.Claims{UserID: 7, Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotIdentity auth.Identity
	var called bool
	handler := mw.Require(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotIdentity, called = auth.IdentityFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !called {
		t.Fatal("next handler not reached")
	}
	if gotIdentity.UserID != 7 || gotIdentity.Email != "alice@example.com" {
		t.Errorf("identity = %+v", gotIdentity)
	}
}

func TestMiddleware_Require_Rejects(t *testing.T) {
	users := &stubUserRepo{byID: map[int64]*entity.User{
		7: {ID: 7, Email: "alice@example.com"},
	}}
	mw, tokens := newMiddleware(users)

	goodToken, _ := tokens.Issue(authsvc.Claims{UserID: 7, Email: "alice@example.com"})
	otherTokens := authsvc.NewTokenService([]byte("ffffffffffffffffffffffffffffffff"), time.Hour)
	forgedToken, _ := otherTokens.Issue(authsvc.Claims{UserID: 7, Email: "alice@example.com"})
	goneToken, _ := tokens.Issue(authsvc.Claims{UserID: 99, Email: "gone@example.com"})

	tests := []struct {
		name     string
		authz    string
		wantCode int
	}{
		{name: "no header", authz: "", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", authz: "Basic dXNlcjpwYXNz", wantCode: http.StatusUnauthorized},
		{name: "empty token", authz: "Bearer ", wantCode: http.StatusUnauthorized},
		{name: "garbage token", authz: "Bearer not.a.jwt", wantCode: http.StatusUnauthorized},
		{name: "wrong signing key", authz: "Bearer " + forgedToken, wantCode: http.StatusUnauthorized},
		{name: "account deleted", authz: "Bearer " + goneToken, wantCode: http.StatusNotFound},
		{name: "valid", authz: "Bearer " + goodToken, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.authz != "" {
				req.Header.Set("Authorization", tt.authz)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestMiddleware_Require_ExpiredToken(t *testing.T) {
	users := &stubUserRepo{byID: map[int64]*entity.User{7: {ID: 7}}}
	tokens := authsvc.NewTokenService(testSecret, -time.Minute)
	mw := &auth.Middleware{Tokens: authsvc.NewTokenService(testSecret, time.Hour), Users: users}

	expired, _ := tokens.Issue(authsvc.Claims{UserID: 7, Email: "alice@example.com"})
	handler := mw.Require(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
}

func TestIdentityFrom_Absent(t *testing.T) {
	if _, ok := auth.IdentityFrom(context.Background()); ok {
		t.Error("IdentityFrom on a bare context should report absence")
	}
}
