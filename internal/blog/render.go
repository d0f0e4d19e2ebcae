// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"bytes"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	reInlineHeader = regexp.MustCompile(`([^\n])###`)
	reInlineItem   = regexp.MustCompile(`([^\n])- `)
	reBlockSplit   = regexp.MustCompile(`\n+`)
)

var (
	markdown      = goldmark.New()
	contentPolicy = newContentPolicy()
	angleEscaper  = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	return p
}

// RenderContent turns the markup of a post body into sanitized HTML.
// Sheet editors write "### " headers and "- " items inline, often with
// literal "\n" sequences, so the body is first split into one block per
// line and then rendered as markdown. Markup typed as HTML is shown as text.
func RenderContent(content string) template.HTML {
	src := normalizeContent(content)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		buf.Reset()
		buf.WriteString("<p>" + html.EscapeString(content) + "</p>")
	}
	//nolint:gosec // output of the sanitizer
	return template.HTML(contentPolicy.Sanitize(buf.String()))
}

// normalizeContent returns markdown with every line as its own block.
// Consecutive items stay in one tight list.
func normalizeContent(content string) string {
	text := strings.ReplaceAll(content, `\n`, "\n")
	text = reInlineHeader.ReplaceAllString(text, "$1\n\n###")
	text = reInlineItem.ReplaceAllString(text, "$1\n- ")

	var b strings.Builder
	prevItem := false
	for _, block := range reBlockSplit.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		item := strings.HasPrefix(block, "- ")
		if b.Len() > 0 {
			if item && prevItem {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(angleEscaper.Replace(block))
		prevItem = item
	}
	return b.String()
}

// ReadingMinutes estimates reading time at 200 words per minute, at least 1.
func ReadingMinutes(content string) int {
	words := len(strings.Fields(strings.ReplaceAll(content, `\n`, " ")))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
