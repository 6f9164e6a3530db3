package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the built frontend bundle from dir. Paths that
// do not match a file fall back to index.html so client-side routing
// survives hard reloads and deep links.
func StaticHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
