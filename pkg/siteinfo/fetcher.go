package siteinfo

import (
	"context"

	"go.uber.org/zap"

	"dealersite/pkg/metrics"
	"dealersite/pkg/tenants"
)

// Fetcher produces the canonical tenant config for a request. It never
// returns an error: upstream trouble degrades to the fallback config.
type Fetcher struct {
	client   *Client
	resolver tenants.Resolver
	fallback tenants.Config
	log      *zap.SugaredLogger
}

func NewFetcher(client *Client, resolver tenants.Resolver, fallback tenants.Config, log *zap.SugaredLogger) *Fetcher {
	return &Fetcher{client: client, resolver: resolver, fallback: fallback, log: log}
}

// Load resolves the tenant for req, fetches its site-info fresh and
// normalizes it.
func (f *Fetcher) Load(ctx context.Context, req tenants.Request) tenants.Config {
	target := f.resolver.Resolve(req.Host)
	res := f.client.Fetch(ctx, "config", req, target)
	if !res.OK() {
		metrics.ConfigFallbacks.Inc()
		f.log.Warnw("site config unavailable, serving fallback",
			"host", req.Host, "target", target.Host, "slug", target.Slug,
			"reason", string(res.Failure), "status", res.StatusCode, "err", res.Err, "reqid", req.RequestID)
		return f.fallbackCopy()
	}
	return tenants.Normalize(res.Raw)
}

// fallbackCopy deep-copies the fallback config for one request.
func (f *Fetcher) fallbackCopy() tenants.Config {
	cfg := f.fallback
	if f.fallback.FacebookPageID != nil {
		id := *f.fallback.FacebookPageID
		cfg.FacebookPageID = &id
	}
	if f.fallback.Theme.BrandLogoURLs != nil {
		cfg.Theme.BrandLogoURLs = make(map[string]string, len(f.fallback.Theme.BrandLogoURLs))
		for k, v := range f.fallback.Theme.BrandLogoURLs {
			cfg.Theme.BrandLogoURLs[k] = v
		}
	}
	return cfg
}
