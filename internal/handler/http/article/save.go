package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"newskeep/internal/domain/entity"
	"newskeep/internal/handler/http/auth"
	"newskeep/internal/handler/http/respond"
	articleUC "newskeep/internal/usecase/article"
)

type SaveHandler struct{ Svc *articleUC.Service }

// ServeHTTP saves an article for the authenticated user.
func (h SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	var publishedAt time.Time
	if req.PublishedAt != "" {
		var err error
		publishedAt, err = time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, errors.New("publishedAt must be in RFC3339 format"))
			return
		}
	}

	saved, err := h.Svc.Save(r.Context(), identity.UserID, articleUC.SaveInput{
		Title:       req.Title,
		ImageURL:    req.ImgURL,
		Description: req.Description,
		URL:         req.URL,
		SourceName:  req.Source,
		Author:      req.Author,
		PublishedAt: publishedAt,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, vErr)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, FromEntity(saved))
}
