// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package seo builds the search and social metadata of the site: head tags,
// schema.org JSON-LD and the sitemap.
package seo

import (
	"strconv"
	"strings"

	"github.com/fecauca/fecauca-web/internal/site"
)

// Meta is the SEO description of one rendered page.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	// Image may be relative; it is made absolute against the site URL.
	Image string
	// Path is the canonical path of the page, e.g. "/blog/1".
	Path string
	// Type is the Open Graph type; empty means "website".
	Type    string
	Schemas []any
}

// Tag is one <meta> element. Attr is "name" or "property".
type Tag struct {
	Attr    string
	Key     string
	Content string
}

// FullTitle appends the brand unless the title already names it.
func FullTitle(title string) string {
	if strings.Contains(title, site.Name) {
		return title
	}
	return title + " | " + site.Name
}

// AbsoluteURL resolves ref against base. Refs starting with "http" are kept.
func AbsoluteURL(base, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	base = strings.TrimRight(base, "/")
	if strings.HasPrefix(ref, "/") {
		return base + ref
	}
	return base + "/" + ref
}

// Head is the resolved head data of a page.
type Head struct {
	Title     string
	Canonical string
	Tags      []Tag
	JSONLD    string
}

// Resolve computes the head for m against siteURL.
func (m Meta) Resolve(siteURL string) Head {
	title := FullTitle(m.Title)
	canonical := AbsoluteURL(siteURL, m.Path)

	image := m.Image
	if image == "" {
		image = site.DefaultImage
	}
	image = AbsoluteURL(siteURL, image)

	ogType := m.Type
	if ogType == "" {
		ogType = "website"
	}

	company := site.CompanyInfo()
	lat := strconv.FormatFloat(company.Latitude, 'f', -1, 64)
	lng := strconv.FormatFloat(company.Longitude, 'f', -1, 64)

	tags := []Tag{
		{"name", "title", title},
		{"name", "description", m.Description},
	}
	if len(m.Keywords) > 0 {
		tags = append(tags, Tag{"name", "keywords", strings.Join(m.Keywords, ", ")})
	}
	tags = append(tags,
		Tag{"property", "og:type", ogType},
		Tag{"property", "og:url", canonical},
		Tag{"property", "og:title", title},
		Tag{"property", "og:description", m.Description},
		Tag{"property", "og:image", image},
		Tag{"property", "og:site_name", site.Name},
		Tag{"property", "og:locale", site.Locale},
		Tag{"name", "twitter:card", "summary_large_image"},
		Tag{"name", "twitter:url", canonical},
		Tag{"name", "twitter:title", title},
		Tag{"name", "twitter:description", m.Description},
		Tag{"name", "twitter:image", image},
		Tag{"name", "geo.region", "CO-CAU"},
		Tag{"name", "geo.placename", company.Locality},
		Tag{"name", "geo.position", lat + ";" + lng},
		Tag{"name", "ICBM", lat + ", " + lng},
	)

	return Head{
		Title:     title,
		Canonical: canonical,
		Tags:      tags,
		JSONLD:    JSONLD(m.Schemas...),
	}
}
