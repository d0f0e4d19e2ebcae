// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package web serves the FECAUCA site: server-rendered pages, the read-only
// JSON API, static assets and probe endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/bus"
	"github.com/fecauca/fecauca-web/internal/health"
	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/metrics"
	"github.com/fecauca/fecauca-web/internal/site"
	"github.com/fecauca/fecauca-web/internal/web/middleware"
)

// DefaultPageCacheSize bounds the rendered blog page cache.
const DefaultPageCacheSize = 256

// DefaultPageCacheTTL bounds how long a rendered blog page is served
// without consulting the blog store.
const DefaultPageCacheTTL = 30 * time.Second

// PostStore is the read side of the blog used by the handlers.
type PostStore interface {
	Posts(ctx context.Context) []blog.Post
	PostByID(ctx context.Context, id string) (blog.Post, bool)
}

// Subscriber is satisfied by bus.Bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (bus.Subscriber, error)
}

// Options configures a Server.
type Options struct {
	// SiteURL is the public origin for canonical and Open Graph URLs.
	SiteURL string
	Blog    PostStore
	Health  *health.Manager
	// Events delivers blog.TopicPostsUpdated; nil disables page cache purging.
	Events        Subscriber
	PageCacheSize int
	// PageCacheTTL should not exceed the blog's shortest cache TTL, so an
	// expired post list is reloaded on the next render.
	PageCacheTTL time.Duration
	Stack        middleware.StackConfig
	// APIOrigins are the CORS origins of the JSON API.
	APIOrigins []string
	Logger     *zerolog.Logger
}

// Server renders the site.
type Server struct {
	siteURL string
	posts   PostStore
	health  *health.Manager
	events  Subscriber
	logger  zerolog.Logger
	views   *views
	pages   *pageCache
	router  chi.Router

	mu   sync.Mutex
	sub  bus.Subscriber
	done chan struct{}
}

// New builds the router and parses the embedded templates.
func New(opts Options) (*Server, error) {
	if opts.Blog == nil {
		return nil, errors.New("web: blog store is required")
	}
	if opts.SiteURL == "" {
		opts.SiteURL = site.DefaultURL
	}
	if opts.Health == nil {
		opts.Health = health.NewManager("")
	}
	size := opts.PageCacheSize
	if size <= 0 {
		size = DefaultPageCacheSize
	}

	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	ttl := opts.PageCacheTTL
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}
	pages, err := newPageCache(size, ttl)
	if err != nil {
		return nil, err
	}

	s := &Server{
		siteURL: opts.SiteURL,
		posts:   opts.Blog,
		health:  opts.Health,
		events:  opts.Events,
		views:   v,
		pages:   pages,
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With().Str(log.FieldComponent, "web").Logger()
	} else {
		s.logger = log.WithComponent("web")
	}
	s.router = s.routes(opts.Stack, opts.APIOrigins)
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(stack middleware.StackConfig, apiOrigins []string) chi.Router {
	r := middleware.NewRouter(stack)

	r.Get("/healthz", s.health.ServeHealth)
	r.Get("/readyz", s.health.ServeReady)

	static, _ := fs.Sub(assetsFS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(static))))

	r.Get(site.PathHome, s.handleHome)
	r.Get(site.PathAbout, s.handleStatic("about", site.PathAbout, func(*http.Request) any {
		return map[string]any{"Values": site.Values()}
	}))
	r.Get(site.PathProducts, s.handleProducts)
	r.Get(site.PathServices, s.handleStatic("services", site.PathServices, func(*http.Request) any {
		return map[string]any{
			"Services":       site.Services(),
			"Zones":          site.Zones(),
			"Municipalities": site.Municipalities(),
		}
	}))
	r.Get(site.PathWarranty, s.handleStatic("warranty", site.PathWarranty, func(*http.Request) any {
		return map[string]any{"Steps": site.WarrantySteps()}
	}))
	r.Get(site.PathPrivacy, s.handleStatic("privacy", site.PathPrivacy, nil))
	r.Get(site.PathBlog, s.handleBlog)
	r.Get(site.PathBlog+"/{id}", s.handleBlogPost)
	r.Get(site.PathValue, s.handleStatic("value", site.PathValue, func(*http.Request) any {
		return map[string]any{"Differentials": site.Differentials(), "Workflow": site.Workflow()}
	}))
	r.Get(site.PathClients, s.handleStatic("clients", site.PathClients, func(*http.Request) any {
		return map[string]any{"Personas": site.Personas()}
	}))
	r.Get(site.PathFAQ, s.handleStatic("faq", site.PathFAQ, func(*http.Request) any {
		return map[string]any{"Questions": site.FAQ()}
	}))
	r.Get(site.PathContact, s.handleStatic("contact", site.PathContact, nil))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(apiOrigins))
		r.Get("/posts", s.handleAPIPosts)
		r.Get("/posts/{id}", s.handleAPIPost)
		r.Get("/categories", s.handleAPICategories)
		r.Get("/products", s.handleAPIProducts)
	})

	return r
}

// Start subscribes to post list updates and purges the page cache on each.
// It returns once the subscription is in place.
func (s *Server) Start(ctx context.Context) error {
	if s.events == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		return nil
	}

	sub, err := s.events.Subscribe(ctx, blog.TopicPostsUpdated)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", blog.TopicPostsUpdated, err)
	}
	s.sub = sub
	s.done = make(chan struct{})

	go s.purgeLoop(ctx, sub, s.done)
	return nil
}

func (s *Server) purgeLoop(ctx context.Context, sub bus.Subscriber, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.C():
			if !ok {
				return
			}
			n := s.pages.Purge()
			metrics.IncPageCachePurge()
			ev := s.logger.Debug().Str(log.FieldEvent, "web.page_cache_purged").Int("entries", n)
			if upd, ok := msg.(blog.PostsUpdated); ok {
				ev = ev.Int("posts", upd.Count).Str(log.FieldSource, upd.Source)
			}
			ev.Msg("blog pages invalidated")
		}
	}
}

// Close releases the update subscription and waits for the purge loop.
func (s *Server) Close() error {
	s.mu.Lock()
	sub, done := s.sub, s.done
	s.sub, s.done = nil, nil
	s.mu.Unlock()

	if sub == nil {
		return nil
	}
	err := sub.Close()
	<-done
	return err
}

// pageCache holds rendered blog pages for at most ttl. Expiry hands the
// request back to the blog store, whose own TTL decides whether the sheet is
// fetched again. The generation counter keeps a render that started before a
// purge from repopulating the cache with stale posts.
type pageCache struct {
	mu  sync.Mutex
	gen uint64
	ttl time.Duration
	now func() time.Time
	lru *lru.Cache[string, pageEntry]
}

type pageEntry struct {
	body    []byte
	expires time.Time
}

func newPageCache(size int, ttl time.Duration) (*pageCache, error) {
	c, err := lru.New[string, pageEntry](size)
	if err != nil {
		return nil, fmt.Errorf("page cache: %w", err)
	}
	return &pageCache{ttl: ttl, now: time.Now, lru: c}, nil
}

func (c *pageCache) Get(key string) ([]byte, bool) {
	e, ok := c.lru.Get(key)
	if ok && !c.now().Before(e.expires) {
		c.lru.Remove(key)
		ok = false
	}
	metrics.RecordCacheResult("pages", ok)
	if !ok {
		return nil, false
	}
	return e.body, true
}

func (c *pageCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Add stores body unless a purge happened since gen was taken.
func (c *pageCache) Add(gen uint64, key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.lru.Add(key, pageEntry{body: body, expires: c.now().Add(c.ttl)})
}

// Purge drops every entry and returns how many there were.
func (c *pageCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.lru.Len()
	c.gen++
	c.lru.Purge()
	return n
}

func (c *pageCache) Len() int {
	return c.lru.Len()
}
