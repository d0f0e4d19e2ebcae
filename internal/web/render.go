// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/seo"
	"github.com/fecauca/fecauca-web/internal/site"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

var pageNames = []string{
	"home", "about", "products", "services", "warranty", "privacy",
	"blog", "post", "value", "clients", "faq", "contact",
}

// ctaMessages are the WhatsApp messages reachable from templates by key.
var ctaMessages = map[string]string{
	"default":  site.MsgDefault,
	"services": site.MsgServices,
	"warranty": site.MsgWarranty,
	"faq":      site.MsgFAQSupport,
	"contact":  site.MsgContact,
	"question": site.MsgQuestion,
}

var funcs = template.FuncMap{
	"cta": func(key string) string {
		return site.WhatsAppLink(ctaMessages[key])
	},
	"quote": func(p site.Product) string {
		return site.WhatsAppLink(site.ProductQuoteMessage(p))
	},
	"content": blog.RenderContent,
	"minutes": blog.ReadingMinutes,
	"join":    strings.Join,
	"postURL": postPath,
}

// views holds one template set per page, each layered over the layout.
type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

type navItem struct {
	site.Route
	Active bool
}

// pageData is the root value of every page template.
type pageData struct {
	Head     seo.Head
	JSONLD   template.JS
	Nav      []navItem
	Company  site.Company
	MapsURL  string
	WhatsApp string
	Year     int
	Data     any
}

func navFor(path string) []navItem {
	routes := site.Routes()
	out := make([]navItem, len(routes))
	for i, r := range routes {
		active := r.Path == path
		if r.Path != site.PathHome && strings.HasPrefix(path, r.Path+"/") {
			active = true
		}
		out[i] = navItem{Route: r, Active: active}
	}
	return out
}

// render executes page into a buffer so template errors never leave a
// half-written response.
func (s *Server) render(name string, meta seo.Meta, data any) ([]byte, error) {
	t, ok := s.views.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	head := meta.Resolve(s.siteURL)
	pd := pageData{
		Head: head,
		// seo.JSONLD escapes "<", so the block cannot terminate the script.
		JSONLD:   template.JS(head.JSONLD), //nolint:gosec
		Nav:      navFor(meta.Path),
		Company:  site.CompanyInfo(),
		MapsURL:  site.MapsURL,
		WhatsApp: site.WhatsAppLink(site.MsgDefault),
		Year:     time.Now().Year(),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", pd); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, name string, meta seo.Meta, data any) {
	body, err := s.render(name, meta, data)
	if err != nil {
		s.renderFailed(w, r, err)
		return
	}
	writeHTML(w, body)
}

func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.WithContext(r.Context(), s.logger)
	logger.Error().Err(err).
		Str(log.FieldEvent, "web.render_failed").
		Str(log.FieldPath, r.URL.Path).
		Msg("page render failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
