package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"newskeep/internal/handler/http/respond"
	accountUC "newskeep/internal/usecase/account"
)

type LoginHandler struct{ Svc *accountUC.Service }

// ServeHTTP exchanges credentials for a bearer token. An unknown email
// is 404 and a wrong password is 401; the split mirrors the frontend's
// distinct error screens.
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	result, err := h.Svc.Login(r.Context(), accountUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, LoginResponse{Token: result.Token, Name: result.Name})
	case errors.Is(err, accountUC.ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, errors.New("user not found"))
	case errors.Is(err, accountUC.ErrInvalidCredentials):
		respond.Error(w, http.StatusUnauthorized, errors.New("incorrect password"))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
