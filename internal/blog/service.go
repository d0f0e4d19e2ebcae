// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fecauca/fecauca-web/internal/bus"
	"github.com/fecauca/fecauca-web/internal/cache"
	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/metrics"
	"github.com/fecauca/fecauca-web/internal/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// TopicPostsUpdated is published whenever the served post list changes.
const TopicPostsUpdated = "blog.posts.updated"

const cacheKey = "blog:posts"

// Values of PostsUpdated.Source and the blog.source span attribute.
const (
	SourceSheet    = "sheet"
	SourceFallback = "fallback"
)

// PostsUpdated is the payload of TopicPostsUpdated.
type PostsUpdated struct {
	Count  int
	Source string
	At     time.Time
}

// Status reports the state of the last load.
type Status struct {
	LastFetch     time.Time `json:"last_fetch"`
	LastError     string    `json:"last_error,omitempty"`
	UsingFallback bool      `json:"using_fallback"`
	Count         int       `json:"count"`
}

// Options configures a Service.
type Options struct {
	Source      Source
	Cache       cache.Cache
	Bus         bus.Publisher
	TTL         time.Duration
	FallbackTTL time.Duration
	// Fallback defaults to FallbackPosts.
	Fallback func() []Post
	Logger   *zerolog.Logger
}

type cacheEntry struct {
	Posts    []Post `json:"posts"`
	Fallback bool   `json:"fallback"`
}

// Service serves the post list, caching loads and collapsing concurrent
// misses into one fetch. It never returns an error to callers: any failure
// yields the fallback list.
type Service struct {
	cache       cache.Cache
	bus         bus.Publisher
	ttl         time.Duration
	fallbackTTL time.Duration
	fallback    func() []Post
	logger      zerolog.Logger
	group       singleflight.Group

	mu       sync.RWMutex
	source   Source
	status   Status
	lastHash uint64
}

// NewService creates a Service. Nil Cache means no caching.
func NewService(opts Options) *Service {
	s := &Service{
		cache:       opts.Cache,
		bus:         opts.Bus,
		ttl:         opts.TTL,
		fallbackTTL: opts.FallbackTTL,
		fallback:    opts.Fallback,
		source:      opts.Source,
	}
	if s.cache == nil {
		s.cache = cache.NewNoOpCache()
	}
	if s.fallback == nil {
		s.fallback = FallbackPosts
	}
	if s.ttl <= 0 {
		s.ttl = 5 * time.Minute
	}
	if s.fallbackTTL <= 0 || s.fallbackTTL > s.ttl {
		s.fallbackTTL = s.ttl
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With().Str(log.FieldComponent, "blog").Logger()
	} else {
		s.logger = log.WithComponent("blog")
	}
	return s
}

// Posts returns the current list in sheet order.
func (s *Service) Posts(ctx context.Context) []Post {
	if data, ok := s.cache.Get(cacheKey); ok {
		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err == nil {
			metrics.RecordCacheResult("blog", true)
			return entry.Posts
		}
		s.logger.Warn().Str("event", "blog.cache_corrupt").Msg("discarding undecodable cache entry")
		s.cache.Delete(cacheKey)
	}
	metrics.RecordCacheResult("blog", false)

	// The shared load must not die with the request that happened to start it.
	loadCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.load(loadCtx), nil
	})
	posts, _ := v.([]Post)
	return clonePosts(posts)
}

// PostByID looks id up in the current list.
func (s *Service) PostByID(ctx context.Context, id string) (Post, bool) {
	return FindByID(s.Posts(ctx), id)
}

// Status returns the outcome of the last load.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Invalidate drops the cached list so the next read reloads it.
func (s *Service) Invalidate() {
	s.cache.Delete(cacheKey)
}

// SetSource swaps the source and invalidates the cache.
func (s *Service) SetSource(src Source) {
	s.mu.Lock()
	s.source = src
	s.mu.Unlock()
	s.Invalidate()
}

func (s *Service) currentSource() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Service) load(ctx context.Context) []Post {
	ctx, span := telemetry.Tracer("blog").Start(ctx, "blog.load")
	defer span.End()

	start := time.Now()
	posts, err := s.fetch(ctx)
	metrics.RecordBlogFetch(err == nil, time.Since(start))

	source := SourceSheet
	ttl := s.ttl
	if err != nil {
		reason := fallbackReason(err)
		s.logger.Warn().
			Err(err).
			Str("event", "blog.fallback").
			Str("reason", reason).
			Msg("sheet unusable, serving built-in posts")
		metrics.RecordBlogFallback(reason)
		posts = s.fallback()
		source = SourceFallback
		ttl = s.fallbackTTL
	}
	fallback := source == SourceFallback

	if data, mErr := json.Marshal(cacheEntry{Posts: posts, Fallback: fallback}); mErr == nil {
		s.cache.Set(cacheKey, data, ttl)
	}

	metrics.SetBlogPosts(len(posts), fallback)
	span.SetAttributes(telemetry.BlogAttributes(source, len(posts), fallback)...)

	changed := s.record(posts, err, fallback)
	if changed {
		s.publish(ctx, len(posts), source)
	}
	return posts
}

func (s *Service) fetch(ctx context.Context) ([]Post, error) {
	src := s.currentSource()
	if src == nil {
		return nil, ErrNoRows
	}
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		if p.ID != "" {
			posts = append(posts, p)
		}
	}
	if len(posts) == 0 {
		return nil, ErrNoRows
	}
	return posts, nil
}

// record stores the load status and reports whether the list content changed.
func (s *Service) record(posts []Post, err error, fallback bool) bool {
	h := hashPosts(posts)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = Status{
		LastFetch:     time.Now(),
		UsingFallback: fallback,
		Count:         len(posts),
	}
	if err != nil {
		s.status.LastError = err.Error()
	}
	changed := h != s.lastHash
	s.lastHash = h
	return changed
}

func (s *Service) publish(ctx context.Context, count int, source string) {
	if s.bus == nil {
		return
	}
	evt := PostsUpdated{Count: count, Source: source, At: time.Now()}
	if err := s.bus.Publish(ctx, TopicPostsUpdated, evt); err != nil {
		s.logger.Warn().Err(err).Str("event", "blog.publish_failed").Msg("could not announce post update")
		return
	}
	s.logger.Info().
		Str("event", "blog.posts_updated").
		Str("source", source).
		Int("count", count).
		Msg("post list changed")
}

func hashPosts(posts []Post) uint64 {
	data, err := json.Marshal(posts)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

func clonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}
