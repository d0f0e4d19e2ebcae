// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package seo

import (
	"encoding/json"

	"github.com/fecauca/fecauca-web/internal/site"
)

const schemaContext = "https://schema.org"

// ListItem is one BreadcrumbList element.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbListSchema is a schema.org BreadcrumbList.
type BreadcrumbListSchema struct {
	Context string     `json:"@context"`
	Type    string     `json:"@type"`
	Items   []ListItem `json:"itemListElement"`
}

// BreadcrumbList builds the trail with absolute item URLs.
func BreadcrumbList(siteURL string, crumbs []site.Crumb) BreadcrumbListSchema {
	items := make([]ListItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     AbsoluteURL(siteURL, c.URL),
		}
	}
	return BreadcrumbListSchema{Context: schemaContext, Type: "BreadcrumbList", Items: items}
}

type answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer answer `json:"acceptedAnswer"`
}

// FAQPageSchema is a schema.org FAQPage.
type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []question `json:"mainEntity"`
}

// FAQPage builds the rich-snippet FAQ.
func FAQPage(items []site.QA) FAQPageSchema {
	qs := make([]question, len(items))
	for i, it := range items {
		qs[i] = question{
			Type:           "Question",
			Name:           it.Question,
			AcceptedAnswer: answer{Type: "Answer", Text: it.Answer},
		}
	}
	return FAQPageSchema{Context: schemaContext, Type: "FAQPage", MainEntity: qs}
}

type postalAddress struct {
	Type     string `json:"@type"`
	Street   string `json:"streetAddress"`
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
	Postal   string `json:"postalCode"`
	Country  string `json:"addressCountry"`
}

type geoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type openingHours struct {
	Type      string `json:"@type"`
	DayOfWeek any    `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

type place struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// LocalBusinessSchema is the HardwareStore description of the company.
type LocalBusinessSchema struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Description  string         `json:"description"`
	Address      postalAddress  `json:"address"`
	Geo          geoCoordinates `json:"geo"`
	URL          string         `json:"url"`
	Telephone    string         `json:"telephone"`
	PriceRange   string         `json:"priceRange"`
	OpeningHours []openingHours `json:"openingHoursSpecification"`
	AreaServed   []place        `json:"areaServed"`
	SameAs       []string       `json:"sameAs,omitempty"`
}

// LocalBusiness builds the store schema from the company record.
func LocalBusiness(siteURL string, c site.Company) LocalBusinessSchema {
	hours := make([]openingHours, len(c.Opening))
	for i, o := range c.Opening {
		var days any = o.Days
		if len(o.Days) == 1 {
			days = o.Days[0]
		}
		hours[i] = openingHours{Type: "OpeningHoursSpecification", DayOfWeek: days, Opens: o.Opens, Closes: o.Closes}
	}
	areas := make([]place, len(c.AreaServed))
	for i, a := range c.AreaServed {
		areas[i] = place{Type: a.Type, Name: a.Name}
	}

	return LocalBusinessSchema{
		Context:     schemaContext,
		Type:        "HardwareStore",
		Name:        site.LegalName,
		Image:       site.DefaultImage,
		Description: c.Description,
		Address: postalAddress{
			Type:     "PostalAddress",
			Street:   c.StreetAddress,
			Locality: c.Locality,
			Region:   c.Region,
			Postal:   c.PostalCode,
			Country:  c.Country,
		},
		Geo:          geoCoordinates{Type: "GeoCoordinates", Latitude: c.Latitude, Longitude: c.Longitude},
		URL:          siteURL,
		Telephone:    c.Phone,
		PriceRange:   c.PriceRange,
		OpeningHours: hours,
		AreaServed:   areas,
		SameAs:       c.Social.Links(),
	}
}

// JSONLD serializes schemas for a ld+json script element: one schema as an
// object, several as an array, none as "". Nil entries are skipped. The
// encoder escapes <, > and & so the output cannot close the script element.
func JSONLD(schemas ...any) string {
	kept := make([]any, 0, len(schemas))
	for _, s := range schemas {
		if s != nil {
			kept = append(kept, s)
		}
	}

	var v any
	switch len(kept) {
	case 0:
		return ""
	case 1:
		v = kept[0]
	default:
		v = kept
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
