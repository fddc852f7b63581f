// pkg/tenants/memory.go
package tenants

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// SiteInfo is a raw site-info document as the backend serves it.
type SiteInfo = map[string]any

// MemoryDirectory is a seeded, read-only set of site-info documents keyed by
// slug and host. It backs the dev upstream; the production backend owns the
// real data.
type MemoryDirectory struct {
	log    *zap.SugaredLogger
	bySlug map[string]SiteInfo
	byHost map[string]SiteInfo
}

// NewMemoryDirectory parses a TENANT_SEED_JSON value:
//
//	[{"host":"acme.example.com","site_info":{"identity":{"name":"Acme","slug":"acme"},"is_active":true}}]
//
// When seed is empty a single active "demo" tenant is installed for localhost.
func NewMemoryDirectory(seed string, log *zap.SugaredLogger) *MemoryDirectory {
	d := &MemoryDirectory{log: log, bySlug: map[string]SiteInfo{}, byHost: map[string]SiteInfo{}}
	if seed != "" {
		var entries []struct {
			Host     string   `json:"host"`
			SiteInfo SiteInfo `json:"site_info"`
		}
		if err := json.Unmarshal([]byte(seed), &entries); err != nil {
			log.Warnw("tenant seed ignored", "err", err)
		}
		for _, e := range entries {
			d.Add(e.Host, e.SiteInfo)
		}
		return d
	}
	demo := SiteInfo{
		"identity":  map[string]any{"name": "Demo Dealer", "slug": "demo"},
		"is_active": true,
		"theme":     map[string]any{"primaryColor": "#2563EB", "heroShowLogo": true},
		"integrations": map[string]any{
			"ari":      map[string]any{"enabled": true},
			"pos":      map[string]any{"enabled": true, "provider": "ideal"},
			"facebook": map[string]any{"enabled": false},
		},
	}
	for _, h := range []string{"localhost", "localhost:3000", "localhost:5000", "web:5000"} {
		d.Add(h, demo)
	}
	return d
}

// Add registers a document under its host and under identity.slug if present.
func (d *MemoryDirectory) Add(host string, info SiteInfo) {
	if host != "" {
		d.byHost[strings.ToLower(host)] = info
	}
	if id, ok := info["identity"].(map[string]any); ok {
		if slug, ok := id["slug"].(string); ok && slug != "" {
			d.bySlug[strings.ToLower(slug)] = info
		}
	}
}

// Lookup prefers an explicit slug, then the forwarded host with and without port.
func (d *MemoryDirectory) Lookup(slug, host string) (SiteInfo, bool) {
	if slug != "" {
		info, ok := d.bySlug[strings.ToLower(slug)]
		return info, ok
	}
	host = strings.ToLower(host)
	if info, ok := d.byHost[host]; ok {
		return info, true
	}
	if info, ok := d.byHost[stripPort(host)]; ok {
		return info, true
	}
	return nil, false
}
