package article

import (
	"net/http"

	"newskeep/internal/handler/http/auth"
	articleUC "newskeep/internal/usecase/article"
)

// Register wires the article routes into mux. Saving requires a bearer
// token.
func Register(mux *http.ServeMux, svc *articleUC.Service, mw *auth.Middleware) {
	mux.Handle("POST /save-article", mw.Require(SaveHandler{svc}))
}
