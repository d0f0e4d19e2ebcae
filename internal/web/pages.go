// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/seo"
	"github.com/fecauca/fecauca-web/internal/site"
)

// MsgNoPosts is shown when a blog search matches nothing.
const MsgNoPosts = "No se encontraron artículos con esa búsqueda."

// pageMeta builds the SEO metadata of a registered page, adding its
// breadcrumb trail as JSON-LD.
func (s *Server) pageMeta(path string, extra ...any) seo.Meta {
	p, _ := site.PageFor(path)
	m := seo.Meta{
		Title:       p.Title,
		Description: p.Description,
		Keywords:    p.Keywords,
		Path:        path,
	}
	m.Schemas = append(m.Schemas, extra...)
	if len(p.Breadcrumbs) > 0 {
		m.Schemas = append(m.Schemas, seo.BreadcrumbList(s.siteURL, p.Breadcrumbs))
	}
	return m
}

func (s *Server) handleStatic(name, path string, data func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d any
		if data != nil {
			d = data(r)
		}
		s.writePage(w, r, name, s.pageMeta(path), d)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	faq := site.HomeFAQ()
	meta := s.pageMeta(site.PathHome,
		seo.LocalBusiness(s.siteURL, site.CompanyInfo()),
		seo.FAQPage(faq),
	)
	s.writePage(w, r, "home", meta, map[string]any{
		"HeroQuote":     site.WhatsAppLink(site.MsgHeroQuote),
		"Categories":    site.ProductCategories()[1:],
		"Brands":        site.Brands(),
		"Differentials": site.Differentials(),
		"Testimonials":  site.Testimonials(),
		"FAQ":           faq,
	})
}

type productsView struct {
	Categories []site.ProductCategory
	Brands     []string
	Products   []site.Product
	Category   string
	Brand      string
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("categoria")
	if !site.IsProductCategory(category) {
		category = site.CategoryAll
	}
	brand := r.URL.Query().Get("marca")

	s.writePage(w, r, "products", s.pageMeta(site.PathProducts), productsView{
		Categories: site.ProductCategories(),
		Brands:     site.Brands(),
		Products:   site.FilterProducts(category, brand),
		Category:   category,
		Brand:      brand,
	})
}

type blogView struct {
	Posts      []blog.Post
	Categories []string
	Search     string
	Category   string
	Empty      string
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	key := r.URL.RequestURI()
	if body, ok := s.pages.Get(key); ok {
		writeHTML(w, body)
		return
	}
	gen := s.pages.Generation()

	q := blog.Query{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("categoria"),
	}
	if q.Category == "" {
		q.Category = blog.CategoryAll
	}
	posts := s.posts.Posts(r.Context())
	view := blogView{
		Posts:      blog.FilterPosts(posts, q),
		Categories: blog.Categories(posts),
		Search:     q.Search,
		Category:   q.Category,
	}
	if len(view.Posts) == 0 {
		view.Empty = MsgNoPosts
	}

	body, err := s.render("blog", s.pageMeta(site.PathBlog), view)
	if err != nil {
		s.renderFailed(w, r, err)
		return
	}
	s.pages.Add(gen, key, body)
	writeHTML(w, body)
}

type postView struct {
	Post          blog.Post
	Minutes       int
	ShareWhatsApp string
	ShareFacebook string
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := r.URL.Path
	if body, ok := s.pages.Get(key); ok {
		writeHTML(w, body)
		return
	}
	gen := s.pages.Generation()

	post, ok := s.posts.PostByID(r.Context(), id)
	if !ok {
		http.Redirect(w, r, site.PathBlog, http.StatusFound)
		return
	}

	path := postPath(post.ID)
	pageURL := seo.AbsoluteURL(s.siteURL, path)
	meta := seo.Meta{
		Title:       post.Title + " | Blog " + site.Name,
		Description: post.Excerpt,
		Image:       post.Image,
		Path:        path,
		Type:        "article",
		Schemas: []any{
			seo.BreadcrumbList(s.siteURL, site.BlogPostCrumbs(post.Title, path)),
		},
	}

	body, err := s.render("post", meta, postView{
		Post:          post,
		Minutes:       blog.ReadingMinutes(post.Content),
		ShareWhatsApp: site.ShareLink(site.PostShareText(post.Title, pageURL)),
		ShareFacebook: site.FacebookShareLink(pageURL),
	})
	if err != nil {
		s.renderFailed(w, r, err)
		return
	}
	s.pages.Add(gen, key, body)
	writeHTML(w, body)
}

func postPath(id string) string {
	return site.PathBlog + "/" + url.PathEscape(strings.TrimSpace(id))
}
