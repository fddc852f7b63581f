// pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string // dealer-site

	// Upstream site-info API (tenant config + status) and the backend origin
	// that non-page paths are proxied to.
	UpstreamURL     string
	BackendURL      string
	ProxyBackend    bool
	UpstreamTimeout time.Duration

	// Tenant resolution policy
	RootDomain    string
	ReferenceSlug string

	// Optional YAML override for the fallback tenant config.
	FallbackFile string

	// Dev upstream (seeded site-info)
	DevUpstreamAddr string
	TenantSeedJSON  string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:             env("DEALERSITE_ENV", "dev"),
		HTTPAddr:        env("DEALERSITE_HTTP_ADDR", ":3000"),
		UpstreamURL:     strings.TrimRight(env("UPSTREAM_URL", "http://web:5000/api/v1"), "/"),
		BackendURL:      strings.TrimRight(env("BACKEND_URL", "http://web:5000"), "/"),
		ProxyBackend:    envBool("PROXY_BACKEND", true),
		UpstreamTimeout: envDur("UPSTREAM_TIMEOUT_MS", 3000) * time.Millisecond,
		RootDomain:      strings.ToLower(env("ROOT_DOMAIN", "pes.bentcrankshaft.com")),
		ReferenceSlug:   env("REFERENCE_TENANT_SLUG", "demo"),
		FallbackFile:    env("FALLBACK_CONFIG_FILE", ""),
		DevUpstreamAddr: env("DEVUPSTREAM_ADDR", ":5000"),
		TenantSeedJSON:  env("TENANT_SEED_JSON", ""),
	}
	if cfg.UpstreamTimeout <= 0 {
		log.Println("[WARN] UPSTREAM_TIMEOUT_MS must be positive, using 3000")
		cfg.UpstreamTimeout = 3 * time.Second
	}
	return cfg
}

// Prod reports whether the service runs with production logging and behaviour.
func (c Config) Prod() bool { return c.Env == "prod" }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		b, _ := strconv.ParseBool(v)
		return b
	}
	return def
}
func envDur(k string, def int) time.Duration {
	if v := os.Getenv(k); v != "" {
		i, _ := strconv.Atoi(v)
		return time.Duration(i)
	}
	return time.Duration(def)
}
