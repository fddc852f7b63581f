// internal/site/handler.go
package site

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dealersite/pkg/middleware"
	"dealersite/pkg/tenants"
)

//go:embed templates/*.html
var templateFS embed.FS

// ConfigLoader supplies the canonical config for a request.
type ConfigLoader interface {
	Load(ctx context.Context, req tenants.Request) tenants.Config
}

type pages struct {
	loader ConfigLoader
	log    *zap.SugaredLogger
	home   *template.Template
	detail *template.Template
}

// view is what templates render from: the config plus values derived with
// their point-of-use defaults.
type view struct {
	Config   tenants.Config
	Accent   string
	Heading  string
	Tagline  string
	ShowLogo bool
	Features []tenants.Feature
	Address  string
	Social   []tenants.SocialLink
	Brands   []tenants.BrandLogo

	FacebookPage string
}

func newView(cfg tenants.Config) view {
	v := view{
		Config:   cfg,
		Accent:   cfg.Theme.Accent(),
		Heading:  cfg.Theme.HeroHeading(cfg.Name),
		Tagline:  cfg.Theme.HeroSubheading(),
		ShowLogo: cfg.Theme.ShowHeroLogo(),
		Features: cfg.Theme.Features(),
		Address:  cfg.Theme.AddressLine(),
		Social:   cfg.Theme.SocialLinks(),
		Brands:   cfg.Theme.BrandEntries(),
	}
	if cfg.FacebookPageID != nil {
		v.FacebookPage = *cfg.FacebookPageID
	}
	return v
}

// RegisterRoutes mounts the tenant-facing pages. Every page loads the
// tenant config fresh before rendering.
func RegisterRoutes(r chi.Router, loader ConfigLoader, log *zap.SugaredLogger) {
	p := &pages{
		loader: loader,
		log:    log,
		home:   template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/home.html")),
		detail: template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/contact.html")),
	}
	r.Get("/", p.render(p.home))
	r.Get("/contact", p.render(p.detail))
	r.Get("/site-config.json", func(w http.ResponseWriter, req *http.Request) {
		cfg := p.load(req)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(cfg)
	})
}

func (p *pages) load(r *http.Request) tenants.Config {
	return p.loader.Load(r.Context(), tenants.RequestFrom(r, middleware.RequestIDFrom(r.Context())))
}

func (p *pages) render(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := newView(p.load(r))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := t.ExecuteTemplate(w, "layout", v); err != nil {
			p.log.Errorw("render page", "path", r.URL.Path, "slug", v.Config.Slug, "err", err)
		}
	}
}
