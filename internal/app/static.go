package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler serves the built marketing site. Paths that do not map to a
// file fall back to index.html so client-side routes resolve after a reload.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		rel := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
		full := filepath.Join(dir, rel)
		if !strings.HasPrefix(full, filepath.Clean(dir)) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, index)
	}
}
