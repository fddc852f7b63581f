// pkg/middleware/gate.go
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"dealersite/pkg/metrics"
	"dealersite/pkg/siteinfo"
	"dealersite/pkg/tenants"
)

// GateState is where a request stands in the suspension check.
type GateState int

const (
	GateUnchecked GateState = iota
	GateChecking
	GateAllowed
	GateBlocked
)

func (s GateState) String() string {
	switch s {
	case GateChecking:
		return "checking"
	case GateAllowed:
		return "allowed"
	case GateBlocked:
		return "blocked"
	default:
		return "unchecked"
	}
}

// Decision reasons, also used as the metrics label.
const (
	ReasonBypassPath    = "bypass_path"
	ReasonStaticAsset   = "static_asset"
	ReasonNotTenant     = "not_tenant_host"
	ReasonImpersonating = "impersonating"
	ReasonUnavailable   = "status_unavailable"
	ReasonSuspended     = "suspended"
	ReasonActive        = "active"
)

// Decision is the terminal state of the gate for one request.
type Decision struct {
	State  GateState
	Reason string
}

var (
	bypassPrefixes = []string{"/api", "/_next", "/admin"}
	staticAsset    = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|gif|svg|ico|css|js|woff|woff2|ttf|eot)$`)
)

// Gate blocks tenant-facing pages of suspended tenants.
type Gate struct {
	resolver tenants.Resolver
	checker  siteinfo.StatusChecker
	log      *zap.SugaredLogger
}

func NewGate(resolver tenants.Resolver, checker siteinfo.StatusChecker, log *zap.SugaredLogger) *Gate {
	return &Gate{resolver: resolver, checker: checker, log: log}
}

// TenantGate is the middleware form of NewGate(...).Handler.
func TenantGate(resolver tenants.Resolver, checker siteinfo.StatusChecker, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return NewGate(resolver, checker, log).Handler
}

// Decide runs the state machine for req. It only blocks on an explicit
// is_active=false; lookup failures fail open.
func (g *Gate) Decide(ctx context.Context, req tenants.Request) Decision {
	if isBypassPath(req.Path) {
		return Decision{State: GateAllowed, Reason: ReasonBypassPath}
	}
	if staticAsset.MatchString(req.Path) {
		return Decision{State: GateAllowed, Reason: ReasonStaticAsset}
	}
	target := g.resolver.Resolve(req.Host)
	if target.Kind != tenants.KindTenant {
		return Decision{State: GateAllowed, Reason: ReasonNotTenant}
	}
	if req.Impersonating() {
		return Decision{State: GateAllowed, Reason: ReasonImpersonating}
	}

	// GateChecking
	st := g.checker.Status(ctx, req, target)
	if !st.OK() {
		g.log.Warnw("tenant status check failed, allowing request",
			"host", req.Host, "slug", target.Slug, "reason", string(st.Failure),
			"status", st.StatusCode, "err", st.Err, "reqid", req.RequestID)
		return Decision{State: GateAllowed, Reason: ReasonUnavailable}
	}
	if !st.Active {
		return Decision{State: GateBlocked, Reason: ReasonSuspended}
	}
	return Decision{State: GateAllowed, Reason: ReasonActive}
}

func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := tenants.RequestFrom(r, RequestIDFrom(r.Context()))
		d := g.Decide(r.Context(), req)
		metrics.GateDecisions.WithLabelValues(d.State.String(), d.Reason).Inc()
		if d.State == GateBlocked {
			g.log.Infow("tenant suspended", "host", req.Host, "path", req.Path, "reqid", req.RequestID)
			WriteSuspended(w)
			return
		}
		if hasPrefix(req.Path, "/admin") {
			w.Header().Set("X-Is-Admin-Route", "true")
		}
		next.ServeHTTP(w, r)
	})
}

func isBypassPath(p string) bool {
	for _, pre := range bypassPrefixes {
		if hasPrefix(p, pre) {
			return true
		}
	}
	return false
}

// hasPrefix matches whole path segments: /api and /api/x, not /apiary.
func hasPrefix(p, pre string) bool {
	return p == pre || strings.HasPrefix(p, pre+"/")
}
