package tenants

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackAccent is a neutral gray so a degraded page never looks like a
// real dealer's branding.
const FallbackAccent = "#4B5563"

// Fallback is served whenever the upstream config cannot be fetched: a
// generic demo dealer with the ARI parts lookup and POS module enabled.
func Fallback() Config {
	return Config{
		Name: "Demo Dealer",
		Slug: "demo",
		Modules: Modules{
			ARI: true,
			POS: "ideal",
		},
		Theme: Theme{
			PrimaryColor: FallbackAccent,
			HeroShowLogo: true,
		},
	}
}

// LoadFallback reads a YAML override for the fallback config. Fields missing
// from the file keep their Fallback() values. An empty path returns Fallback().
func LoadFallback(path string) (Config, error) {
	cfg := Fallback()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read fallback config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Fallback(), fmt.Errorf("parse fallback config %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = "Demo Dealer"
	}
	return cfg, nil
}
