package news

import (
	"net/http"

	newsUC "newskeep/internal/usecase/news"
)

// Register wires the news proxy routes into mux. All three are public.
func Register(mux *http.ServeMux, svc *newsUC.Service) {
	mux.Handle("GET /all-news", AllNewsHandler{svc})
	mux.Handle("GET /api/top-headlines", TopHeadlinesHandler{svc})
	mux.Handle("GET /api/search", SearchHandler{svc})
}
