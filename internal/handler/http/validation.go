package http

import (
	"errors"
	"net/http"

	"newskeep/internal/handler/http/respond"
)

const (
	// maxAuthHeaderBytes caps the Authorization header. Bearer tokens
	// stay well under 1KB; anything near this limit is garbage input.
	maxAuthHeaderBytes = 8192

	// maxPathBytes caps the URI path length.
	maxPathBytes = 2048
)

// InputValidation rejects requests with oversized headers or paths
// before they reach routing. Body size is enforced separately by
// LimitRequestBody.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				respond.Error(w, http.StatusBadRequest, errors.New("authorization header too large"))
				return
			}
			if len(r.URL.Path) > maxPathBytes {
				respond.Error(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
