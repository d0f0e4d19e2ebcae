// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package site

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_NavigationOrder(t *testing.T) {
	got := Routes()
	want := []Route{
		{"/", "Inicio"},
		{"/productos", "Catálogo"},
		{"/servicios", "Servicios"},
		{"/blog", "Blog"},
		{"/nosotros", "Nosotros"},
		{"/contacto", "Contacto"},
	}
	assert.Equal(t, want, got)
}

func TestAccessorsReturnCopies(t *testing.T) {
	r := Routes()
	r[0].Label = "changed"
	assert.Equal(t, "Inicio", Routes()[0].Label)

	p := Products()
	p[0].Features[0] = "changed"
	assert.Equal(t, "Certificado RETIE", Products()[0].Features[0])

	c := CompanyInfo()
	c.Opening[0].Days[0] = "Sunday"
	assert.Equal(t, "Monday", CompanyInfo().Opening[0].Days[0])

	pg, ok := PageFor(PathProducts)
	require.True(t, ok)
	pg.Breadcrumbs[0].Name = "changed"
	again, _ := PageFor(PathProducts)
	assert.Equal(t, "Inicio", again.Breadcrumbs[0].Name)
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/573205190242", WhatsAppLink(""))

	link := WhatsAppLink(MsgDefault)
	assert.Equal(t,
		"https://wa.me/573205190242?text=Hola%20FECAUCA%20%F0%9F%92%A1%20Quisiera%20una%20cotizaci%C3%B3n",
		link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, MsgDefault, u.Query().Get("text"))
}

func TestWhatsAppLink_EscapesReservedCharacters(t *testing.T) {
	msg := "a+b & c=d / ¿?"
	u, err := url.Parse(WhatsAppLink(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Breaker 1P (Schneider)", "Breaker%201P%20(Schneider)"},
		{"¡Hola! it's *nuevo*", "%C2%A1Hola!%20it's%20*nuevo*"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"100% (28)", "100%25%20(28)"},
		{"-_.~", "-_.~"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeComponent(tt.in), tt.in)
	}

	link := WhatsAppLink(ProductQuoteMessage(Products()[1]))
	assert.Contains(t, link, "%20(Schneider%20Electric)")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, ProductQuoteMessage(Products()[1]), u.Query().Get("text"))
}

func TestProductQuoteMessage(t *testing.T) {
	p := Products()[1]
	assert.Equal(t, "Hola FECAUCA, me interesa cotizar: Breaker Enchufable 1P 20A (Schneider Electric)", ProductQuoteMessage(p))
}

func TestShareLinks(t *testing.T) {
	share := ShareLink(PostShareText("Hola", "https://fecauca.com/blog/1"))
	u, err := url.Parse(share)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "Hola - https://fecauca.com/blog/1", u.Query().Get("text"))

	fb, err := url.Parse(FacebookShareLink("https://fecauca.com/blog/1"))
	require.NoError(t, err)
	assert.Equal(t, "https://fecauca.com/blog/1", fb.Query().Get("u"))
}

func TestFilterProducts(t *testing.T) {
	tests := []struct {
		name     string
		category string
		brand    string
		wantIDs  []int
	}{
		{name: "all", category: CategoryAll, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "empty category means all", wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "cables", category: "cables", wantIDs: []int{1, 5}},
		{name: "brand only", brand: "Ilumax", wantIDs: []int{3, 6}},
		{name: "category and brand", category: "proteccion", brand: "Legrand", wantIDs: []int{7}},
		{name: "no match", category: "solar", brand: "3M", wantIDs: []int{}},
		{name: "unknown category", category: "plomeria", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(tt.category, tt.brand)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestProductCategories(t *testing.T) {
	cats := ProductCategories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryAll, cats[0].ID)
	assert.True(t, IsProductCategory("solar"))
	assert.False(t, IsProductCategory("plomeria"))

	for _, p := range Products() {
		assert.True(t, IsProductCategory(p.Category), p.Name)
		assert.Contains(t, Brands(), p.Brand, p.Name)
	}
}

func TestPages_CoverEveryRoute(t *testing.T) {
	paths := map[string]bool{}
	for _, p := range Pages() {
		assert.NotEmpty(t, p.Title, p.Path)
		assert.NotEmpty(t, p.Description, p.Path)
		assert.Greater(t, p.Priority, 0.0, p.Path)
		paths[p.Path] = true
	}
	for _, want := range []string{"/", "/nosotros", "/productos", "/servicios", "/garantia", "/privacidad", "/blog", "/valor", "/clientes", "/faq", "/contacto"} {
		assert.True(t, paths[want], want)
	}
	for _, r := range Routes() {
		assert.True(t, paths[r.Path], "navigation route %s has no page", r.Path)
	}
}

func TestContentCounts(t *testing.T) {
	assert.Len(t, Services(), 3)
	assert.Len(t, FAQ(), 6)
	assert.Len(t, HomeFAQ(), 5)
	assert.Len(t, Testimonials(), 3)
	assert.Len(t, Personas(), 4)
	assert.Len(t, Differentials(), 7)
	assert.Len(t, Testimonials()[0].Stars(), 5)
}

func TestSocialLinks_SkipsEmpty(t *testing.T) {
	links := CompanyInfo().Social.Links()
	assert.Equal(t, []string{
		"https://facebook.com/FECAUCA",
		"https://instagram.com/FECAUCA",
		"https://tiktok.com/@FECAUCA",
	}, links)
}

func TestBlogPostCrumbs(t *testing.T) {
	c := BlogPostCrumbs("Hola", "/blog/abc")
	require.Len(t, c, 3)
	assert.Equal(t, Crumb{Name: "Hola", URL: "/blog/abc"}, c[2])
}
