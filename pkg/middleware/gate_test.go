package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dealersite/pkg/middleware"
	"dealersite/pkg/siteinfo"
	"dealersite/pkg/tenants"
)

var resolver = tenants.Resolver{RootDomain: "pes.bentcrankshaft.com", ReferenceSlug: "demo"}

type stubChecker struct {
	status siteinfo.Status
	calls  int32
}

func (s *stubChecker) Status(context.Context, tenants.Request, tenants.Target) siteinfo.Status {
	atomic.AddInt32(&s.calls, 1)
	return s.status
}

func active(b bool) *stubChecker {
	return &stubChecker{status: siteinfo.Status{Active: b}}
}

func failing() *stubChecker {
	return &stubChecker{status: siteinfo.Status{Result: siteinfo.Result{Failure: siteinfo.FailureNetwork}}}
}

func serve(t *testing.T, checker siteinfo.StatusChecker, host, path, cookie string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.TenantGate(resolver, checker, zap.NewNop().Sugar()))
	r.HandleFunc("/*", func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		_, _ = w.Write([]byte("page"))
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, reached
}

func TestGateBlocksSuspendedTenant(t *testing.T) {
	w, reached := serve(t, active(false), "acme.pes.bentcrankshaft.com", "/", "")

	require.False(t, reached)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "3600", w.Header().Get("Retry-After"))
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	require.Contains(t, w.Body.String(), "support@bentcrankshaft.com")
	require.Contains(t, w.Body.String(), "Temporarily Unavailable")
}

func TestGateImpersonationBypassesSuspension(t *testing.T) {
	checker := active(false)
	w, reached := serve(t, checker, "acme.pes.bentcrankshaft.com", "/inventory", "session=x; is_impersonating=true")

	require.True(t, reached)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int32(0), atomic.LoadInt32(&checker.calls))
}

func TestGateAllowsActiveTenant(t *testing.T) {
	checker := active(true)
	w, reached := serve(t, checker, "acme.pes.bentcrankshaft.com", "/", "")
	require.True(t, reached)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int32(1), atomic.LoadInt32(&checker.calls))
}

func TestGateFailsOpen(t *testing.T) {
	w, reached := serve(t, failing(), "acme.pes.bentcrankshaft.com", "/", "")
	require.True(t, reached)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGateFailsOpenOnUpstreamTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer upstream.Close()
	client := siteinfo.NewClient(siteinfo.Options{BaseURL: upstream.URL, Timeout: 30 * time.Millisecond})

	start := time.Now()
	w, reached := serve(t, client, "acme.pes.bentcrankshaft.com", "/", "")
	require.True(t, reached)
	require.Equal(t, http.StatusOK, w.Code)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestGateBlocksViaRealClient(t *testing.T) {
	var gotSlug string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSlug = r.URL.Query().Get("slug")
		_, _ = w.Write([]byte(`{"is_active":false}`))
	}))
	defer upstream.Close()
	client := siteinfo.NewClient(siteinfo.Options{BaseURL: upstream.URL, Timeout: time.Second})

	w, reached := serve(t, client, "acme.pes.bentcrankshaft.com", "/", "")
	require.False(t, reached)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "acme", gotSlug)
}

func TestGateSkipsWithoutLookup(t *testing.T) {
	tests := []struct {
		name string
		host string
		path string
	}{
		{"api path", "acme.pes.bentcrankshaft.com", "/api/v1/inventory"},
		{"next assets", "acme.pes.bentcrankshaft.com", "/_next/static/chunk.js"},
		{"admin path", "acme.pes.bentcrankshaft.com", "/admin/settings"},
		{"static png", "acme.pes.bentcrankshaft.com", "/images/logo.PNG"},
		{"static font", "acme.pes.bentcrankshaft.com", "/fonts/inter.woff2"},
		{"root domain", "pes.bentcrankshaft.com", "/"},
		{"www alias", "www.pes.bentcrankshaft.com", "/"},
		{"localhost", "localhost:3000", "/"},
		{"ip address", "192.168.0.10:3000", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := active(false)
			w, reached := serve(t, checker, tt.host, tt.path, "")
			require.True(t, reached)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, int32(0), atomic.LoadInt32(&checker.calls))
		})
	}
}

func TestGateAdminRouteHeader(t *testing.T) {
	w, _ := serve(t, active(true), "acme.pes.bentcrankshaft.com", "/admin", "")
	require.Equal(t, "true", w.Header().Get("X-Is-Admin-Route"))

	w, _ = serve(t, active(true), "acme.pes.bentcrankshaft.com", "/administrator", "")
	require.Empty(t, w.Header().Get("X-Is-Admin-Route"))
}

func TestGateDecideStates(t *testing.T) {
	g := middleware.NewGate(resolver, active(false), zap.NewNop().Sugar())
	d := g.Decide(context.Background(), tenants.Request{Host: "acme.example.com", Path: "/"})
	require.Equal(t, middleware.GateBlocked, d.State)
	require.Equal(t, middleware.ReasonSuspended, d.Reason)

	d = g.Decide(context.Background(), tenants.Request{Host: "acme.example.com", Path: "/", Cookie: "is_impersonating=true"})
	require.Equal(t, middleware.GateAllowed, d.State)
	require.Equal(t, middleware.ReasonImpersonating, d.Reason)

	g = middleware.NewGate(resolver, failing(), zap.NewNop().Sugar())
	d = g.Decide(context.Background(), tenants.Request{Host: "acme.example.com", Path: "/"})
	require.Equal(t, middleware.GateAllowed, d.State)
	require.Equal(t, middleware.ReasonUnavailable, d.Reason)
	require.Equal(t, "allowed", d.State.String())
}
