package devupstream_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dealersite/internal/devupstream"
	"dealersite/pkg/tenants"
)

func newServer(t *testing.T, seed string) *httptest.Server {
	t.Helper()
	log := zap.NewNop().Sugar()
	r := chi.NewRouter()
	devupstream.RegisterRoutes(r, tenants.NewMemoryDirectory(seed, log), log)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSiteInfoBySlugAndHost(t *testing.T) {
	srv := newServer(t, `[{"host":"acme.example.com","site_info":{"identity":{"name":"Acme","slug":"acme"},"is_active":true}}]`)

	resp, err := http.Get(srv.URL + "/api/v1/site-info?slug=acme")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Acme", tenants.Normalize(body).Name)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/site-info", nil)
	req.Header.Set("X-Forwarded-Host", "acme.example.com")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestSiteInfoUnknownTenant(t *testing.T) {
	srv := newServer(t, `[]`)
	resp, err := http.Get(srv.URL + "/api/v1/site-info?slug=nobody")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Tenant not found", body["error"])
}
