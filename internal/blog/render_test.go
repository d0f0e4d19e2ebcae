// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderContent_Blocks(t *testing.T) {
	src := `Intro con **negrita** y *cursiva*.\n### Paso uno\n- primero\n- segundo\nCierre`
	doc := parseFragment(t, string(RenderContent(src)))

	assert.Equal(t, 2, doc.Find("p").Length())
	assert.Equal(t, "Paso uno", doc.Find("h3").Text())
	assert.Equal(t, 1, doc.Find("ul").Length())
	assert.Equal(t, 2, doc.Find("ul li").Length())
	assert.Equal(t, "negrita", doc.Find("p strong").Text())
	assert.Equal(t, "cursiva", doc.Find("p em").Text())
}

func TestRenderContent_InlineHeaderAndItemsSplit(t *testing.T) {
	doc := parseFragment(t, string(RenderContent("Texto### Titulo- a- b")))

	assert.Equal(t, "Texto", doc.Find("p").First().Text())
	assert.Equal(t, "Titulo", doc.Find("h3").Text())
	assert.Equal(t, 2, doc.Find("li").Length())
}

func TestRenderContent_Links(t *testing.T) {
	doc := parseFragment(t, string(RenderContent("Ver [la norma](https://example.com/retie?a=1&b=2)")))

	a := doc.Find("a")
	require.Equal(t, 1, a.Length())
	assert.Equal(t, "la norma", a.Text())
	href, _ := a.Attr("href")
	assert.Equal(t, "https://example.com/retie?a=1&b=2", href)
	target, _ := a.Attr("target")
	assert.Equal(t, "_blank", target)
	rel, _ := a.Attr("rel")
	assert.Contains(t, rel, "noopener")
	assert.Contains(t, rel, "noreferrer")
}

func TestRenderContent_EscapesAndSanitizes(t *testing.T) {
	out := string(RenderContent(`<script>alert(1)</script> [x](javascript:alert(1)) <b onclick="x">b</b>`))

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<b onclick")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderContent_TightListAndPlainText(t *testing.T) {
	src := `Costos & beneficios\n- **uno**\n- dos\nFinal <i>sin</i> etiquetas`
	doc := parseFragment(t, string(RenderContent(src)))

	assert.Equal(t, "Costos & beneficios", doc.Find("p").First().Text())
	assert.Equal(t, 2, doc.Find("ul > li").Length())
	assert.Zero(t, doc.Find("li p").Length())
	assert.Equal(t, "uno", doc.Find("li strong").Text())
	assert.Zero(t, doc.Find("i").Length())
	assert.Equal(t, "Final <i>sin</i> etiquetas", doc.Find("p").Last().Text())
}

func TestRenderContent_Empty(t *testing.T) {
	assert.Empty(t, string(RenderContent("")))
	assert.Empty(t, string(RenderContent(`\n\n`)))
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadingMinutes(""))
	assert.Equal(t, 1, ReadingMinutes("uno dos tres"))
	assert.Equal(t, 2, ReadingMinutes(strings.Repeat("palabra ", 201)))
	assert.Equal(t, 2, ReadingMinutes(strings.Repeat(`palabra\n`, 400)))
}
