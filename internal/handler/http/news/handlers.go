// Package news provides HTTP handlers for the news proxy endpoints.
package news

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"newskeep/internal/domain/entity"
	"newskeep/internal/handler/http/respond"
	"newskeep/internal/infra/newsapi"
	newsUC "newskeep/internal/usecase/news"
)

type AllNewsHandler struct{ Svc *newsUC.Service }

// ServeHTTP searches all indexed articles and answers with the
// response envelope. Provider failures are reported inside the
// envelope with a 500 status.
func (h AllNewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	env := h.Svc.Everything(r.Context(), newsUC.EverythingParams{
		Q:        r.URL.Query().Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	recordProxyRequest("all_news", env.Success)
	respond.JSON(w, env.Status, env)
}

type TopHeadlinesHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns current headlines in the response envelope.
func (h TopHeadlinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	env := h.Svc.TopHeadlines(r.Context(), newsUC.TopHeadlinesParams{
		Category: r.URL.Query().Get("category"),
		Language: r.URL.Query().Get("language"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	recordProxyRequest("top_headlines", env.Success)
	respond.JSON(w, env.Status, env)
}

type SearchHandler struct{ Svc *newsUC.Service }

// ServeHTTP forwards a search to the provider and relays its payload
// verbatim. Unlike the envelope endpoints, q is required here.
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := h.Svc.Search(r.Context(), newsUC.SearchParams{
		Q:        r.URL.Query().Get("q"),
		Language: r.URL.Query().Get("language"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		recordProxyRequest("search", false)
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, vErr)
			return
		}
		// Both failure bodies are fixed strings the frontend matches on;
		// the underlying cause only goes to the log.
		var pErr *newsapi.ProviderError
		if errors.As(err, &pErr) {
			slog.Error("search rejected by provider",
				slog.String("code", pErr.Code),
				slog.String("error", respond.SanitizeError(pErr)))
			respond.Message(w, http.StatusInternalServerError, "Failed to fetch search results.")
			return
		}
		slog.Error("search request failed",
			slog.String("error", respond.SanitizeError(err)))
		respond.Message(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	recordProxyRequest("search", true)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// queryInt reads an integer query parameter. Absent or malformed
// values come back as 0 so the service applies its defaults, matching
// the forgiving behavior clients already rely on.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
