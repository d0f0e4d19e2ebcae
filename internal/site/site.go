// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package site holds the static catalog of the storefront: navigation, company
// details, products, services and marketing copy. All data is value data built
// at init; accessors hand out copies so callers cannot mutate shared state.
package site

import "slices"

const (
	// Name is the brand name used in titles and Open Graph.
	Name = "FECAUCA"
	// LegalName is the business name published in structured data.
	LegalName = "FECAUCA - Ferretería Eléctrica del Cauca"
	// DefaultURL is the public origin of the site.
	DefaultURL = "https://fecauca.com"
	// DefaultImage is used when a page has no image of its own.
	DefaultImage = "https://fecauca.com/images/logo-fecauca.png"
	// Locale is the Open Graph locale.
	Locale = "es_CO"
	// MapsURL points to the store on Google Maps.
	MapsURL = "https://maps.app.goo.gl/g9B4KW6NtEanoG1a9"
)

// Route is a navigation entry.
type Route struct {
	Path  string
	Label string
}

// Social holds the public social profiles. Empty values are not rendered.
type Social struct {
	Facebook  string
	Instagram string
	TikTok    string
	YouTube   string
}

// Links returns the non-empty profile URLs in display order.
func (s Social) Links() []string {
	out := make([]string, 0, 4)
	for _, u := range []string{s.Facebook, s.Instagram, s.TikTok, s.YouTube} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// OpeningHours is one schema.org OpeningHoursSpecification row.
type OpeningHours struct {
	Days   []string
	Opens  string
	Closes string
}

// Company is the business identity shown in the footer, contact page and
// LocalBusiness structured data.
type Company struct {
	Address       string
	StreetAddress string
	Locality      string
	Region        string
	PostalCode    string
	Country       string
	Email         string
	Phone         string
	Hours         string
	Latitude      float64
	Longitude     float64
	PriceRange    string
	Description   string
	Opening       []OpeningHours
	AreaServed    []Area
	Social        Social
}

// Area is a served city or state.
type Area struct {
	Type string // "City" or "State"
	Name string
}

var routes = []Route{
	{Path: "/", Label: "Inicio"},
	{Path: "/productos", Label: "Catálogo"},
	{Path: "/servicios", Label: "Servicios"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/nosotros", Label: "Nosotros"},
	{Path: "/contacto", Label: "Contacto"},
}

var company = Company{
	Address:       "Carrera 11 # 2N-50, Barrio Modelo, Popayán",
	StreetAddress: "Carrera 11 # 2N-50, Barrio Modelo",
	Locality:      "Popayán",
	Region:        "Cauca",
	PostalCode:    "190003",
	Country:       "CO",
	Email:         "info@fecauca.com",
	Phone:         "+57 320 519 0242",
	Hours:         "Lun - Vie: 8:00 AM - 6:00 PM | Sáb: 8:00 AM - 1:00 PM",
	Latitude:      2.4419,
	Longitude:     -76.6063,
	PriceRange:    "$$",
	Description:   "Distribuidores de materiales eléctricos certificados en Popayán. Cables, iluminación LED, breakers Schneider Electric. Envío gratis, garantía de fábrica.",
	Opening: []OpeningHours{
		{Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, Opens: "08:00", Closes: "18:00"},
		{Days: []string{"Saturday"}, Opens: "08:00", Closes: "14:00"},
	},
	AreaServed: []Area{
		{Type: "City", Name: "Popayán"},
		{Type: "State", Name: "Cauca"},
	},
	Social: Social{
		Facebook:  "https://facebook.com/FECAUCA",
		Instagram: "https://instagram.com/FECAUCA",
		TikTok:    "https://tiktok.com/@FECAUCA",
	},
}

// Routes returns the main navigation.
func Routes() []Route {
	return slices.Clone(routes)
}

// CompanyInfo returns the business identity.
func CompanyInfo() Company {
	c := company
	c.Opening = make([]OpeningHours, len(company.Opening))
	for i, o := range company.Opening {
		o.Days = slices.Clone(o.Days)
		c.Opening[i] = o
	}
	c.AreaServed = slices.Clone(company.AreaServed)
	return c
}
