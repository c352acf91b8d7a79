package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WithSPA serves the dashboard's static frontend alongside the API.
// Unknown non-API paths fall through to index.html for client-side
// routing.
func WithSPA(apiHandler http.Handler, webDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(webDir))
	indexPath := filepath.Join(webDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-store")

		cleanPath := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if cleanPath != "" && cleanPath != "." {
			fullPath := filepath.Join(webDir, cleanPath)
			if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		if _, err := os.Stat(indexPath); err != nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("index.html not found"))
			return
		}
		http.ServeFile(w, r, indexPath)
	})
}
