package tenants

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Config is the canonical tenant configuration every page renders from.
// It is built once per request and treated as read-only afterwards.
type Config struct {
	Name           string  `json:"name" yaml:"name"`
	Slug           string  `json:"slug" yaml:"slug"`
	Modules        Modules `json:"modules" yaml:"modules"`
	FacebookPageID *string `json:"facebookPageId,omitempty" yaml:"facebookPageId,omitempty"`
	Theme          Theme   `json:"theme" yaml:"theme"`
}

// Modules gate optional page sections.
type Modules struct {
	ARI      bool   `json:"ari" yaml:"ari"`
	POS      string `json:"pos" yaml:"pos"`
	Facebook bool   `json:"facebook" yaml:"facebook"`
}

// Theme is a flat bag of presentation fields. Empty strings mean "not set";
// use the accessor methods to get the rendered value with its default applied.
type Theme struct {
	PrimaryColor string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`

	HeroTitle    string `json:"hero_title,omitempty" yaml:"hero_title,omitempty"`
	HeroTagline  string `json:"hero_tagline,omitempty" yaml:"hero_tagline,omitempty"`
	HeroShowLogo bool   `json:"hero_show_logo" yaml:"hero_show_logo"`

	FeatInventoryTitle string `json:"feat_inventory_title,omitempty" yaml:"feat_inventory_title,omitempty"`
	FeatInventoryText  string `json:"feat_inventory_text,omitempty" yaml:"feat_inventory_text,omitempty"`
	FeatPartsTitle     string `json:"feat_parts_title,omitempty" yaml:"feat_parts_title,omitempty"`
	FeatPartsText      string `json:"feat_parts_text,omitempty" yaml:"feat_parts_text,omitempty"`
	FeatServiceTitle   string `json:"feat_service_title,omitempty" yaml:"feat_service_title,omitempty"`
	FeatServiceText    string `json:"feat_service_text,omitempty" yaml:"feat_service_text,omitempty"`

	ContactPhone   string `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`
	ContactAddress string `json:"contact_address,omitempty" yaml:"contact_address,omitempty"`
	ContactText    string `json:"contact_text,omitempty" yaml:"contact_text,omitempty"`

	SocialFacebook  string `json:"social_facebook,omitempty" yaml:"social_facebook,omitempty"`
	SocialInstagram string `json:"social_instagram,omitempty" yaml:"social_instagram,omitempty"`
	SocialTwitter   string `json:"social_twitter,omitempty" yaml:"social_twitter,omitempty"`
	SocialYoutube   string `json:"social_youtube,omitempty" yaml:"social_youtube,omitempty"`
	SocialLinkedin  string `json:"social_linkedin,omitempty" yaml:"social_linkedin,omitempty"`
	SocialBluesky   string `json:"social_bluesky,omitempty" yaml:"social_bluesky,omitempty"`

	BrandLogos    *BrandLogos       `json:"brand_logos,omitempty" yaml:"-"`
	BrandLogoURLs map[string]string `json:"brand_logo_urls,omitempty" yaml:"brand_logo_urls,omitempty"`
}

// BrandLogos holds one of two shapes: the legacy ordered list of image URLs
// or the current id->image URL map. At most one of List/ByID is set.
type BrandLogos struct {
	List []string
	ByID map[string]string
}

// MarshalJSON encodes the list shape as an array and the map shape as an object.
func (b BrandLogos) MarshalJSON() ([]byte, error) {
	if b.ByID != nil {
		return json.Marshal(b.ByID)
	}
	if b.List != nil {
		return json.Marshal(b.List)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts either shape.
func (b *BrandLogos) UnmarshalJSON(data []byte) error {
	*b = BrandLogos{}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		b.List = list
		return nil
	}
	var byID map[string]string
	if err := json.Unmarshal(data, &byID); err != nil {
		return err
	}
	b.ByID = byID
	return nil
}

// BrandLogo is one renderable carousel entry.
type BrandLogo struct {
	ID       string
	ImageURL string
	LinkURL  string
}

// Feature is one of the three home page feature cards.
type Feature struct {
	Key   string
	Title string
	Text  string
}

// SocialLink is a configured social network profile.
type SocialLink struct {
	Network string
	Label   string
	URL     string
}

const (
	DefaultAccent         = "#2563EB"
	DefaultHeroTagline    = "Your Premium Destination for Power Equipment, Parts, and Service."
	DefaultAddressLine    = "Contact us for more information"
	defaultInvTitle       = "Huge Selection"
	defaultInvText        = "Browse our wide range of mowers, chainsaws, and blowers from top brands."
	defaultPartsTitle     = "Genuine Parts"
	defaultPartsText      = "Find the exact part you need with our detailed diagrams."
	defaultServiceTitle   = "Expert Service"
	defaultServiceText    = "Our certified technicians are ready to keep your equipment running like new."
	heroHeadingNamePrefix = "Welcome to "
)

// Accent is the primary color used for buttons and highlights.
func (t Theme) Accent() string { return or(t.PrimaryColor, DefaultAccent) }

// HeroHeading falls back to a welcome line built from the tenant name.
func (t Theme) HeroHeading(tenantName string) string {
	return or(t.HeroTitle, heroHeadingNamePrefix+tenantName)
}

func (t Theme) HeroSubheading() string { return or(t.HeroTagline, DefaultHeroTagline) }

// ShowHeroLogo reports whether the hero should render the logo image.
func (t Theme) ShowHeroLogo() bool { return t.HeroShowLogo && t.LogoURL != "" }

func (t Theme) Features() []Feature {
	return []Feature{
		{Key: "inventory", Title: or(t.FeatInventoryTitle, defaultInvTitle), Text: or(t.FeatInventoryText, defaultInvText)},
		{Key: "parts", Title: or(t.FeatPartsTitle, defaultPartsTitle), Text: or(t.FeatPartsText, defaultPartsText)},
		{Key: "service", Title: or(t.FeatServiceTitle, defaultServiceTitle), Text: or(t.FeatServiceText, defaultServiceText)},
	}
}

func (t Theme) AddressLine() string { return or(t.ContactAddress, DefaultAddressLine) }

// SocialLinks returns only the networks that have a URL, in a fixed order.
func (t Theme) SocialLinks() []SocialLink {
	all := []SocialLink{
		{Network: "facebook", Label: "Facebook", URL: t.SocialFacebook},
		{Network: "instagram", Label: "Instagram", URL: t.SocialInstagram},
		{Network: "twitter", Label: "X (Twitter)", URL: t.SocialTwitter},
		{Network: "youtube", Label: "YouTube", URL: t.SocialYoutube},
		{Network: "linkedin", Label: "LinkedIn", URL: t.SocialLinkedin},
		{Network: "bluesky", Label: "Bluesky", URL: t.SocialBluesky},
	}
	out := all[:0]
	for _, l := range all {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

// BrandEntries flattens either brand logo shape into carousel entries.
// List entries keep their order and use their index as id; map entries are
// ordered by numeric id when every id is an integer, lexically otherwise.
// Click-through URLs only apply to the map shape.
func (t Theme) BrandEntries() []BrandLogo {
	if t.BrandLogos == nil {
		return nil
	}
	var out []BrandLogo
	if t.BrandLogos.ByID != nil {
		for _, id := range sortedIDs(t.BrandLogos.ByID) {
			img := t.BrandLogos.ByID[id]
			if img == "" {
				continue
			}
			out = append(out, BrandLogo{ID: id, ImageURL: img, LinkURL: t.BrandLogoURLs[id]})
		}
		return out
	}
	for i, img := range t.BrandLogos.List {
		if img == "" {
			continue
		}
		out = append(out, BrandLogo{ID: strconv.Itoa(i), ImageURL: img})
	}
	return out
}

func sortedIDs(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	numeric := true
	for id := range m {
		ids = append(ids, id)
		if _, err := strconv.Atoi(id); err != nil {
			numeric = false
		}
	}
	if numeric {
		sort.Slice(ids, func(i, j int) bool {
			a, _ := strconv.Atoi(ids[i])
			b, _ := strconv.Atoi(ids[j])
			return a < b
		})
	} else {
		sort.Strings(ids)
	}
	return ids
}

func or(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
