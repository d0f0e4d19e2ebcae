// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package seo

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/fecauca/fecauca-web/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullTitle(t *testing.T) {
	assert.Equal(t, "Catálogo | FECAUCA", FullTitle("Catálogo"))
	assert.Equal(t, "Política de Privacidad | FECAUCA", FullTitle("Política de Privacidad | FECAUCA"))
	assert.Equal(t, "Post | Blog FECAUCA", FullTitle("Post | Blog FECAUCA"))
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://fecauca.com", "https://cdn.example/x.png", "https://cdn.example/x.png"},
		{"https://fecauca.com", "/images/a.png", "https://fecauca.com/images/a.png"},
		{"https://fecauca.com", "images/a.png", "https://fecauca.com/images/a.png"},
		{"https://fecauca.com/", "/blog", "https://fecauca.com/blog"},
		{"https://fecauca.com", "", "https://fecauca.com/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AbsoluteURL(tt.base, tt.ref), tt.ref)
	}
}

func tagMap(tags []Tag) map[string]Tag {
	m := make(map[string]Tag, len(tags))
	for _, tg := range tags {
		m[tg.Key] = tg
	}
	return m
}

func TestMetaResolve(t *testing.T) {
	head := Meta{
		Title:       "Catálogo",
		Description: "Desc",
		Keywords:    []string{"a", "b"},
		Image:       "/img/x.png",
		Path:        "/productos",
	}.Resolve("https://fecauca.com")

	assert.Equal(t, "Catálogo | FECAUCA", head.Title)
	assert.Equal(t, "https://fecauca.com/productos", head.Canonical)
	assert.Empty(t, head.JSONLD)

	tags := tagMap(head.Tags)
	assert.Equal(t, "a, b", tags["keywords"].Content)
	assert.Equal(t, "website", tags["og:type"].Content)
	assert.Equal(t, "property", tags["og:url"].Attr)
	assert.Equal(t, "https://fecauca.com/productos", tags["og:url"].Content)
	assert.Equal(t, "https://fecauca.com/img/x.png", tags["og:image"].Content)
	assert.Equal(t, "https://fecauca.com/img/x.png", tags["twitter:image"].Content)
	assert.Equal(t, "summary_large_image", tags["twitter:card"].Content)
	assert.Equal(t, "es_CO", tags["og:locale"].Content)
	assert.Equal(t, "2.4419;-76.6063", tags["geo.position"].Content)
	assert.Equal(t, "2.4419, -76.6063", tags["ICBM"].Content)
	assert.Equal(t, "Popayán", tags["geo.placename"].Content)
}

func TestMetaResolve_Defaults(t *testing.T) {
	head := Meta{Title: "X", Path: "/"}.Resolve("https://fecauca.com")
	tags := tagMap(head.Tags)

	_, hasKeywords := tags["keywords"]
	assert.False(t, hasKeywords)
	assert.Equal(t, site.DefaultImage, tags["og:image"].Content)
	assert.Equal(t, "https://fecauca.com/", head.Canonical)
}

func TestJSONLD(t *testing.T) {
	assert.Empty(t, JSONLD())
	assert.Empty(t, JSONLD(nil))

	single := JSONLD(FAQPage([]site.QA{{Question: "¿Q?", Answer: "A"}}))
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(single), &obj))
	assert.Equal(t, "FAQPage", obj["@type"])

	crumbs := BreadcrumbList("https://fecauca.com", []site.Crumb{{Name: "Inicio", URL: "/"}, {Name: "Blog", URL: "/blog"}})
	multi := JSONLD(nil, crumbs, FAQPage(nil))
	var arr []map[string]any
	require.NoError(t, json.Unmarshal([]byte(multi), &arr))
	require.Len(t, arr, 2)
	assert.Equal(t, "BreadcrumbList", arr[0]["@type"])
}

func TestJSONLD_EscapesScriptTerminator(t *testing.T) {
	out := JSONLD(FAQPage([]site.QA{{Question: "</script><script>alert(1)</script>", Answer: "a & b"}}))
	assert.NotContains(t, out, "</script>")
	assert.Contains(t, out, `\u003c/script\u003e`)
	assert.Contains(t, out, `a \u0026 b`)
}

func TestBreadcrumbList(t *testing.T) {
	b := BreadcrumbList("https://fecauca.com", site.BlogPostCrumbs("Post", "/blog/1"))
	require.Len(t, b.Items, 3)
	assert.Equal(t, ListItem{Type: "ListItem", Position: 3, Name: "Post", Item: "https://fecauca.com/blog/1"}, b.Items[2])
	assert.Equal(t, "https://fecauca.com/", b.Items[0].Item)
}

func TestLocalBusiness(t *testing.T) {
	lb := LocalBusiness("https://fecauca.com", site.CompanyInfo())
	data, err := json.Marshal(lb)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "HardwareStore", got["@type"])
	assert.Equal(t, "FECAUCA - Ferretería Eléctrica del Cauca", got["name"])

	hours := got["openingHoursSpecification"].([]any)
	require.Len(t, hours, 2)
	assert.IsType(t, []any{}, hours[0].(map[string]any)["dayOfWeek"])
	assert.Equal(t, "Saturday", hours[1].(map[string]any)["dayOfWeek"])

	geo := got["geo"].(map[string]any)
	assert.InDelta(t, 2.4419, geo["latitude"], 1e-9)
	assert.Len(t, got["sameAs"], 3)
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap("https://fecauca.com", []SitemapEntry{
		{Path: "/", Priority: 1},
		{Path: "/blog/a&b", LastMod: "2024-01-02"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, string(out), "https://fecauca.com/blog/a&amp;b")

	var parsed struct {
		URLs []struct {
			Loc      string `xml:"loc"`
			LastMod  string `xml:"lastmod"`
			Priority string `xml:"priority"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(out, &parsed))
	require.Len(t, parsed.URLs, 2)
	assert.Equal(t, "https://fecauca.com/", parsed.URLs[0].Loc)
	assert.Equal(t, "1.0", parsed.URLs[0].Priority)
	assert.Empty(t, parsed.URLs[1].Priority)
	assert.Equal(t, "2024-01-02", parsed.URLs[1].LastMod)
}
