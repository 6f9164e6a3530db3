package account

import (
	"net/http"

	"newskeep/internal/handler/http/auth"
	accountUC "newskeep/internal/usecase/account"
)

// Register wires the account routes into mux. Registration and login
// are public; the profile endpoint requires a bearer token.
func Register(mux *http.ServeMux, svc *accountUC.Service, mw *auth.Middleware) {
	mux.Handle("POST /register", RegisterHandler{svc})
	mux.Handle("POST /login", LoginHandler{svc})
	mux.Handle("GET /profile", mw.Require(ProfileHandler{svc}))
}
