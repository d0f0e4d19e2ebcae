// SPDX-License-Identifier: MIT

package seo

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntry is one <url> element. Zero Priority omits the element.
type SitemapEntry struct {
	Path     string
	LastMod  string
	Priority float64
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

// Sitemap renders a sitemaps.org urlset for entries, resolved against siteURL.
func Sitemap(siteURL string, entries []SitemapEntry) ([]byte, error) {
	set := urlset{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		u := sitemapURL{Loc: AbsoluteURL(siteURL, e.Path), LastMod: e.LastMod}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(e.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	return append(out, '\n'), nil
}
