package account

import (
	"errors"
	"net/http"

	"newskeep/internal/handler/http/article"
	"newskeep/internal/handler/http/auth"
	"newskeep/internal/handler/http/respond"
	accountUC "newskeep/internal/usecase/account"
)

type ProfileHandler struct{ Svc *accountUC.Service }

// ServeHTTP returns the authenticated user's profile with their saved
// articles in the order they were saved.
func (h ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	profile, err := h.Svc.Profile(r.Context(), identity.UserID)
	switch {
	case err == nil:
		articles := make([]article.DTO, 0, len(profile.Articles))
		for _, a := range profile.Articles {
			articles = append(articles, article.FromEntity(a))
		}
		respond.JSON(w, http.StatusOK, ProfileResponse{
			Email:    profile.Email,
			Name:     profile.Name,
			Articles: articles,
		})
	case errors.Is(err, accountUC.ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, errors.New("user not found"))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
