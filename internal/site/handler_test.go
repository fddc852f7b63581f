package site_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dealersite/internal/site"
	"dealersite/pkg/tenants"
)

type staticLoader struct {
	cfg  tenants.Config
	seen tenants.Request
}

func (s *staticLoader) Load(_ context.Context, req tenants.Request) tenants.Config {
	s.seen = req
	return s.cfg
}

func newRouter(loader site.ConfigLoader) http.Handler {
	r := chi.NewRouter()
	site.RegisterRoutes(r, loader, zap.NewNop().Sugar())
	return r
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = "acme.example.com"
	req.Header.Set("Cookie", "is_impersonating=true")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHomeRendersDefaults(t *testing.T) {
	loader := &staticLoader{cfg: tenants.Normalize(map[string]any{"identity": map[string]any{"name": "Acme Outdoor"}})}
	w := get(newRouter(loader), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "Welcome to Acme Outdoor")
	require.Contains(t, body, "Huge Selection")
	require.Contains(t, body, "Contact us for more information")
	require.Contains(t, body, "#3B82F6")
	require.Equal(t, "acme.example.com", loader.seen.Host)
	require.Equal(t, "is_impersonating=true", loader.seen.Cookie)
}

func TestHomeRendersThemeAndModules(t *testing.T) {
	page := "998877"
	cfg := tenants.Config{
		Name:           "Ken's Mowers",
		Modules:        tenants.Modules{ARI: true, Facebook: true},
		FacebookPageID: &page,
		Theme: tenants.Theme{
			HeroTitle:      "Cut Above",
			LogoURL:        "/static/logo.png",
			HeroShowLogo:   true,
			SocialFacebook: "https://facebook.example/kens",
			BrandLogos:     &tenants.BrandLogos{ByID: map[string]string{"0": "/static/stihl.png"}},
			BrandLogoURLs:  map[string]string{"0": "https://stihl.example"},
		},
	}
	body := get(newRouter(&staticLoader{cfg: cfg}), "/").Body.String()

	require.Contains(t, body, "Cut Above")
	require.Contains(t, body, `src="/static/logo.png"`)
	require.Contains(t, body, `data-module="ari"`)
	require.Contains(t, body, `data-page-id="998877"`)
	require.Contains(t, body, "https://facebook.example/kens")
	require.Contains(t, body, "https://stihl.example")
	require.Contains(t, body, "/static/stihl.png")
}

func TestContactPage(t *testing.T) {
	cfg := tenants.Fallback()
	cfg.Theme.ContactPhone = "555-0100"
	body := get(newRouter(&staticLoader{cfg: cfg}), "/contact").Body.String()
	require.Contains(t, body, "Contact Demo Dealer")
	require.Contains(t, body, "tel:555-0100")
}

func TestSiteConfigJSON(t *testing.T) {
	cfg := tenants.Normalize(map[string]any{"theme": map[string]any{"heroTitle": "A"}})
	w := get(newRouter(&staticLoader{cfg: cfg}), "/site-config.json")
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var got tenants.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, cfg, got)
}
