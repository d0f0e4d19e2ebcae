// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package prerender

import (
	"html"
	"regexp"
	"strings"
)

// OpenGraphMarker is the comment in the base document after which the Twitter
// card block is injected.
const OpenGraphMarker = "<!-- Open Graph / Facebook / WhatsApp -->"

var (
	reTitle         = regexp.MustCompile(`<title>.*?</title>`)
	reDescription   = regexp.MustCompile(`<meta name="description" content=".*?"`)
	reOGTitle       = regexp.MustCompile(`<meta property="og:title" content=".*?"`)
	reOGDescription = regexp.MustCompile(`<meta property="og:description" content=".*?"`)
	reOGImage       = regexp.MustCompile(`<meta property="og:image" content=".*?"`)
	reOGURL         = regexp.MustCompile(`<meta property="og:url" content=".*?"`)
	reCanonical     = regexp.MustCompile(`<link rel="canonical" href=".*?"`)
)

// postHead carries the per-post values written into the base document.
type postHead struct {
	Title       string
	Description string
	Image       string
	URL         string
	JSONLD      string
}

// replaceFirst substitutes the first match of re with repl, taken literally.
func replaceFirst(doc string, re *regexp.Regexp, repl string) string {
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return doc
	}
	return doc[:loc[0]] + repl + doc[loc[1]:]
}

// rewriteDocument returns base with its head metadata replaced by h. Values
// are HTML-escaped; tags missing from base are left alone.
func rewriteDocument(base string, h postHead) string {
	title := html.EscapeString(h.Title)
	desc := html.EscapeString(h.Description)
	image := html.EscapeString(h.Image)
	url := html.EscapeString(h.URL)

	doc := base
	doc = replaceFirst(doc, reTitle, "<title>"+title+"</title>")
	doc = replaceFirst(doc, reDescription, `<meta name="description" content="`+desc+`"`)
	doc = replaceFirst(doc, reOGTitle, `<meta property="og:title" content="`+title+`"`)
	doc = replaceFirst(doc, reOGDescription, `<meta property="og:description" content="`+desc+`"`)
	doc = replaceFirst(doc, reOGImage, `<meta property="og:image" content="`+image+`"`)
	doc = replaceFirst(doc, reOGURL, `<meta property="og:url" content="`+url+`"`)
	doc = replaceFirst(doc, reCanonical, `<link rel="canonical" href="`+url+`"`)

	twitter := "\n" +
		`  <meta name="twitter:card" content="summary_large_image" />` + "\n" +
		`  <meta name="twitter:title" content="` + title + `" />` + "\n" +
		`  <meta name="twitter:description" content="` + desc + `" />` + "\n" +
		`  <meta name="twitter:image" content="` + image + `" />` + "\n"
	doc = strings.Replace(doc, OpenGraphMarker, OpenGraphMarker+"\n"+twitter, 1)

	if h.JSONLD != "" {
		script := `<script type="application/ld+json">` + h.JSONLD + "</script>\n"
		doc = strings.Replace(doc, "</head>", script+"</head>", 1)
	}
	return doc
}
