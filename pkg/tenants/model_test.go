package tenants_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dealersite/pkg/tenants"
)

func TestThemeDefaultsAtPointOfUse(t *testing.T) {
	var th tenants.Theme
	require.Equal(t, "#2563EB", th.Accent())
	require.Equal(t, "Welcome to Acme", th.HeroHeading("Acme"))
	require.Equal(t, tenants.DefaultHeroTagline, th.HeroSubheading())
	require.Equal(t, "Contact us for more information", th.AddressLine())
	require.False(t, th.ShowHeroLogo())
	require.Empty(t, th.SocialLinks())
	require.Empty(t, th.BrandEntries())

	feats := th.Features()
	require.Len(t, feats, 3)
	require.Equal(t, "Huge Selection", feats[0].Title)
	require.Equal(t, "Genuine Parts", feats[1].Title)
	require.Equal(t, "Expert Service", feats[2].Title)
}

func TestThemeOverridesDefaults(t *testing.T) {
	th := tenants.Theme{
		PrimaryColor:   "#000000",
		HeroTitle:      "Mow Better",
		LogoURL:        "/static/logo.png",
		HeroShowLogo:   true,
		FeatPartsTitle: "OEM Parts",
		SocialTwitter:  "https://x.example/acme",
		SocialBluesky:  "https://bsky.example/acme",
	}
	require.Equal(t, "#000000", th.Accent())
	require.Equal(t, "Mow Better", th.HeroHeading("Acme"))
	require.True(t, th.ShowHeroLogo())
	require.Equal(t, "OEM Parts", th.Features()[1].Title)
	require.Equal(t, "Find the exact part you need with our detailed diagrams.", th.Features()[1].Text)

	links := th.SocialLinks()
	require.Len(t, links, 2)
	require.Equal(t, "twitter", links[0].Network)
	require.Equal(t, "bluesky", links[1].Network)
}

func TestBrandEntriesOrdering(t *testing.T) {
	th := tenants.Theme{BrandLogos: &tenants.BrandLogos{ByID: map[string]string{"10": "j", "2": "b", "1": "a"}}}
	var ids []string
	for _, e := range th.BrandEntries() {
		ids = append(ids, e.ID)
	}
	require.Equal(t, []string{"1", "2", "10"}, ids)

	th = tenants.Theme{BrandLogos: &tenants.BrandLogos{ByID: map[string]string{"stihl": "s", "echo": "e"}}}
	require.Equal(t, "echo", th.BrandEntries()[0].ID)

	th = tenants.Theme{BrandLogos: &tenants.BrandLogos{List: []string{"x", "", "y"}}}
	entries := th.BrandEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "2", entries[1].ID)
}

func TestBrandLogosJSONRoundTripKeepsShape(t *testing.T) {
	var cfg tenants.Config
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","theme":{"brand_logos":{"0":"u"}}}`), &cfg))
	require.NotNil(t, cfg.Theme.BrandLogos)
	require.Equal(t, map[string]string{"0": "u"}, cfg.Theme.BrandLogos.ByID)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","theme":{"brand_logos":["u"]}}`), &cfg))
	require.Equal(t, []string{"u"}, cfg.Theme.BrandLogos.List)
	require.Nil(t, cfg.Theme.BrandLogos.ByID)
}
