package tenants

import (
	"net/http"
	"strings"
)

// ImpersonationCookie is set by the admin backend while an operator views a
// tenant site as that tenant.
const ImpersonationCookie = "is_impersonating"

// Request is the explicit per-request context the resolver, gate and fetcher
// work from. It carries no framework state.
type Request struct {
	Host      string
	Path      string
	Cookie    string // raw Cookie header, forwarded verbatim
	RequestID string
}

// RequestFrom captures the tenant-relevant parts of an inbound request.
func RequestFrom(r *http.Request, requestID string) Request {
	return Request{
		Host:      r.Host,
		Path:      r.URL.Path,
		Cookie:    r.Header.Get("Cookie"),
		RequestID: requestID,
	}
}

// Impersonating reports whether the impersonation cookie is set to "true".
func (r Request) Impersonating() bool {
	for _, part := range strings.Split(r.Cookie, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && name == ImpersonationCookie && strings.TrimSpace(value) == "true" {
			return true
		}
	}
	return false
}
