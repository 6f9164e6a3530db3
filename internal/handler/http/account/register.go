package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"newskeep/internal/domain/entity"
	"newskeep/internal/handler/http/respond"
	accountUC "newskeep/internal/usecase/account"
)

type RegisterHandler struct{ Svc *accountUC.Service }

// ServeHTTP creates a new account. Duplicate emails come back as 409;
// the database uniqueness constraint is the arbiter, so concurrent
// registrations of the same email cannot both succeed.
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	err := h.Svc.Register(r.Context(), accountUC.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	switch {
	case err == nil:
		respond.Message(w, http.StatusCreated, "user registered")
	case errors.Is(err, entity.ErrDuplicateEmail):
		respond.Error(w, http.StatusConflict, errors.New("email already registered"))
	default:
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, vErr)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
