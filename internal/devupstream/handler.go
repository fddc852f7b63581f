// internal/devupstream/handler.go
package devupstream

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dealersite/pkg/tenants"
)

// RegisterRoutes serves the backend's site-info contract from a seeded
// directory so the site can run without the real backend.
func RegisterRoutes(r chi.Router, dir *tenants.MemoryDirectory, log *zap.SugaredLogger) {
	r.Get("/api/v1/site-info", func(w http.ResponseWriter, req *http.Request) {
		host := req.Header.Get("X-Forwarded-Host")
		if host == "" {
			host = req.Host
		}
		slug := req.URL.Query().Get("slug")
		info, ok := dir.Lookup(slug, host)
		if !ok {
			log.Debugw("site-info miss", "slug", slug, "host", host)
			writeJSON(w, map[string]any{"error": "Tenant not found"}, http.StatusNotFound)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, info, http.StatusOK)
	})
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
