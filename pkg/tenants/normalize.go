package tenants

import (
	"strings"

	jmes "github.com/jmespath/go-jmespath"
)

const (
	DefaultName         = "Dealer Site"
	DefaultPOS          = "none"
	DefaultPrimaryColor = "#3B82F6"
)

// rule binds one canonical field to the upstream paths that may carry it.
// Paths are tried in order: current (camelCase) convention first, then legacy
// snake_case. The first path holding a usable value wins.
type rule struct {
	field string
	paths []*jmes.JMESPath
	set   func(c *Config, v any) bool
}

func paths(exprs ...string) []*jmes.JMESPath {
	out := make([]*jmes.JMESPath, len(exprs))
	for i, e := range exprs {
		out[i] = jmes.MustCompile(e)
	}
	return out
}

func str(dst func(*Config) *string) func(*Config, any) bool {
	return func(c *Config, v any) bool {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		*dst(c) = s
		return true
	}
}

func boolean(dst func(*Config) *bool) func(*Config, any) bool {
	return func(c *Config, v any) bool {
		b, ok := v.(bool)
		if !ok {
			return false
		}
		*dst(c) = b
		return true
	}
}

func themeStr(camel, snake string, dst func(*Theme) *string) rule {
	return rule{
		field: snake,
		paths: paths("theme."+camel, "theme."+snake),
		set:   str(func(c *Config) *string { return dst(&c.Theme) }),
	}
}

var rules = []rule{
	{field: "name", paths: paths("identity.name"), set: str(func(c *Config) *string { return &c.Name })},
	{field: "slug", paths: paths("identity.slug"), set: str(func(c *Config) *string { return &c.Slug })},
	{field: "modules.ari", paths: paths("integrations.ari.enabled"), set: boolean(func(c *Config) *bool { return &c.Modules.ARI })},
	{field: "modules.pos", paths: paths("integrations.pos.provider"), set: str(func(c *Config) *string { return &c.Modules.POS })},
	{field: "modules.facebook", paths: paths("integrations.facebook.enabled"), set: boolean(func(c *Config) *bool { return &c.Modules.Facebook })},
	{
		field: "facebookPageId",
		paths: paths("integrations.facebook.pageId", "integrations.facebook.page_id"),
		set: func(c *Config, v any) bool {
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}
			c.FacebookPageID = &s
			return true
		},
	},

	themeStr("primaryColor", "primary_color", func(t *Theme) *string { return &t.PrimaryColor }),
	themeStr("logoUrl", "logo_url", func(t *Theme) *string { return &t.LogoURL }),

	themeStr("heroTitle", "hero_title", func(t *Theme) *string { return &t.HeroTitle }),
	themeStr("heroTagline", "hero_tagline", func(t *Theme) *string { return &t.HeroTagline }),
	{
		field: "hero_show_logo",
		paths: paths("theme.heroShowLogo", "theme.hero_show_logo"),
		set:   boolean(func(c *Config) *bool { return &c.Theme.HeroShowLogo }),
	},

	themeStr("featInventoryTitle", "feat_inventory_title", func(t *Theme) *string { return &t.FeatInventoryTitle }),
	themeStr("featInventoryText", "feat_inventory_text", func(t *Theme) *string { return &t.FeatInventoryText }),
	themeStr("featPartsTitle", "feat_parts_title", func(t *Theme) *string { return &t.FeatPartsTitle }),
	themeStr("featPartsText", "feat_parts_text", func(t *Theme) *string { return &t.FeatPartsText }),
	themeStr("featServiceTitle", "feat_service_title", func(t *Theme) *string { return &t.FeatServiceTitle }),
	themeStr("featServiceText", "feat_service_text", func(t *Theme) *string { return &t.FeatServiceText }),

	themeStr("contactPhone", "contact_phone", func(t *Theme) *string { return &t.ContactPhone }),
	themeStr("contactEmail", "contact_email", func(t *Theme) *string { return &t.ContactEmail }),
	themeStr("contactAddress", "contact_address", func(t *Theme) *string { return &t.ContactAddress }),
	themeStr("contactText", "contact_text", func(t *Theme) *string { return &t.ContactText }),

	themeStr("socialFacebook", "social_facebook", func(t *Theme) *string { return &t.SocialFacebook }),
	themeStr("socialInstagram", "social_instagram", func(t *Theme) *string { return &t.SocialInstagram }),
	themeStr("socialTwitter", "social_twitter", func(t *Theme) *string { return &t.SocialTwitter }),
	themeStr("socialYoutube", "social_youtube", func(t *Theme) *string { return &t.SocialYoutube }),
	themeStr("socialLinkedin", "social_linkedin", func(t *Theme) *string { return &t.SocialLinkedin }),
	themeStr("socialBluesky", "social_bluesky", func(t *Theme) *string { return &t.SocialBluesky }),

	{
		field: "brand_logos",
		paths: paths("theme.brandLogos", "theme.brand_logos"),
		set: func(c *Config, v any) bool {
			b, ok := brandLogos(v)
			if ok {
				c.Theme.BrandLogos = b
			}
			return ok
		},
	},
	{
		field: "brand_logo_urls",
		paths: paths("theme.brandLogoUrls", "theme.brand_logo_urls"),
		set: func(c *Config, v any) bool {
			m, ok := stringMap(v)
			if ok {
				c.Theme.BrandLogoURLs = m
			}
			return ok
		},
	},
}

// Defaults returns the config produced for an empty upstream payload.
func Defaults() Config {
	return Config{
		Name:    DefaultName,
		Modules: Modules{POS: DefaultPOS},
		Theme: Theme{
			PrimaryColor: DefaultPrimaryColor,
			HeroShowLogo: true,
		},
	}
}

// Normalize turns a decoded site-info payload into the canonical Config.
// It does no I/O and is deterministic; a payload that is not a JSON object
// yields Defaults().
func Normalize(raw any) Config {
	cfg := Defaults()
	doc, ok := raw.(map[string]any)
	if !ok {
		return cfg
	}
	for _, r := range rules {
		for _, p := range r.paths {
			v, err := p.Search(doc)
			if err != nil || v == nil {
				continue
			}
			if r.set(&cfg, v) {
				break
			}
		}
	}
	// Click-through URLs are only meaningful next to the keyed logo shape.
	if cfg.Theme.BrandLogos == nil || cfg.Theme.BrandLogos.ByID == nil {
		cfg.Theme.BrandLogoURLs = nil
	}
	return cfg
}

// brandLogos accepts the legacy list of URLs or the current id->URL map.
// Non-string members are dropped.
func brandLogos(v any) (*BrandLogos, bool) {
	switch t := v.(type) {
	case []any:
		list := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && s != "" {
				list = append(list, s)
			}
		}
		return &BrandLogos{List: list}, true
	case map[string]any:
		m, _ := stringMap(t)
		return &BrandLogos{ByID: m}, true
	}
	return nil, false
}

func stringMap(v any) (map[string]string, bool) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(src))
	for k, it := range src {
		if s, ok := it.(string); ok && s != "" {
			out[k] = s
		}
	}
	return out, true
}
