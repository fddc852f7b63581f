package site

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BackendPrefixes are forwarded to the backend unchanged.
var BackendPrefixes = []string{
	"/api", "/static", "/admin", "/auth", "/dashboard", "/marketing",
	"/super_admin", "/settings", "/dealers", "/cases", "/service_bulletins",
}

// NewBackendProxy forwards requests to backendURL keeping the path, query and
// the visitor's Host, so the backend resolves the same tenant.
func NewBackendProxy(backendURL string, log *zap.SugaredLogger) (http.Handler, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", backendURL)
	}
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Host = pr.In.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Warnw("backend proxy", "path", r.URL.Path, "host", r.Host, "err", err)
			http.Error(w, "upstream_unreachable", http.StatusBadGateway)
		},
	}, nil
}

// MountBackend routes every BackendPrefixes path to h.
func MountBackend(r chi.Router, h http.Handler) {
	for _, p := range BackendPrefixes {
		r.Handle(p, h)
		r.Handle(p+"/*", h)
	}
}
