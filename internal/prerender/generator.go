// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package prerender writes one static HTML document per blog post into the
// build output so crawlers and link previews see post-specific metadata
// without running JavaScript. It also writes the sitemap.
package prerender

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/fsutil"
	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/metrics"
	"github.com/fecauca/fecauca-web/internal/seo"
	"github.com/fecauca/fecauca-web/internal/site"
	"github.com/fecauca/fecauca-web/internal/telemetry"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
)

// ErrBaseDocumentMissing is returned when <dist>/index.html does not exist.
var ErrBaseDocumentMissing = errors.New("base document not found")

const (
	SourceCSV      = "csv"
	SourceFallback = "fallback"

	postPriority = 0.6
)

// Generator produces the static blog documents.
type Generator struct {
	// Source provides the posts. Nil means the built-in list.
	Source  blog.Source
	DistDir string
	SiteURL string
	Logger  *zerolog.Logger
}

// Result summarises a run.
type Result struct {
	Source    string
	Posts     int
	Generated int
	Skipped   int
	Sitemap   string
	Duration  time.Duration
}

// Run generates <dist>/blog/<id>/index.html for every post with an id and a
// title, then <dist>/sitemap.xml. Source failures fall back to the built-in
// list; only a missing base document or a write failure is an error.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	logger := g.logger()
	siteURL := g.SiteURL
	if siteURL == "" {
		siteURL = site.DefaultURL
	}

	ctx, span := telemetry.Tracer("prerender").Start(ctx, "prerender.run")
	defer span.End()

	res := Result{}
	posts, source := g.loadPosts(ctx, logger)
	res.Source = source
	res.Posts = len(posts)

	indexPath := filepath.Join(g.DistDir, "index.html")
	baseBytes, err := os.ReadFile(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s (build the site first)", ErrBaseDocumentMissing, indexPath)
		} else {
			err = fmt.Errorf("read base document: %w", err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "base document")
		return res, err
	}
	base := string(baseBytes)

	blogRoot := filepath.Join(g.DistDir, "blog")
	if err := os.MkdirAll(blogRoot, 0o755); err != nil {
		return res, fmt.Errorf("create blog dir: %w", err)
	}

	entries := pageEntries()
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if p.ID == "" || p.Title == "" {
			res.Skipped++
			metrics.IncPrerenderSkipped("incomplete")
			continue
		}

		dir, err := fsutil.SegmentDir(blogRoot, p.ID)
		if err != nil {
			res.Skipped++
			metrics.IncPrerenderSkipped("unsafe_id")
			logger.Warn().
				Err(err).
				Str("event", "prerender.skip").
				Str(log.FieldPostID, p.ID).
				Msg("post id cannot be used as a directory name")
			continue
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create post dir: %w", err)
		}

		postPath := "/blog/" + url.PathEscape(p.ID)
		doc := rewriteDocument(base, g.headFor(siteURL, postPath, p))
		if err := writeFile(filepath.Join(dir, "index.html"), []byte(doc)); err != nil {
			return res, err
		}
		metrics.IncPrerenderPage("post")
		res.Generated++
		entries = append(entries, seo.SitemapEntry{Path: postPath, LastMod: lastMod(p.Date), Priority: postPriority})

		logger.Debug().
			Str("event", "prerender.page_written").
			Str(log.FieldPostID, p.ID).
			Str(log.FieldPath, postPath).
			Msg("post document written")
	}

	sitemap, err := seo.Sitemap(siteURL, entries)
	if err != nil {
		return res, err
	}
	res.Sitemap = filepath.Join(g.DistDir, "sitemap.xml")
	if err := writeFile(res.Sitemap, sitemap); err != nil {
		return res, err
	}
	metrics.IncPrerenderPage("sitemap")

	res.Duration = time.Since(start)
	metrics.MarkPrerenderRun()
	span.SetAttributes(telemetry.PrerenderAttributes(g.DistDir, res.Generated, res.Skipped)...)

	logger.Info().
		Str("event", "prerender.done").
		Str(log.FieldSource, res.Source).
		Int("posts", res.Posts).
		Int("generated", res.Generated).
		Int("skipped", res.Skipped).
		Dur("duration", res.Duration).
		Msg("static blog documents generated")

	return res, nil
}

func (g *Generator) logger() zerolog.Logger {
	if g.Logger != nil {
		return g.Logger.With().Str(log.FieldComponent, "prerender").Str(log.FieldDistDir, g.DistDir).Logger()
	}
	return log.Derive(func(c *zerolog.Context) {
		*c = c.Str(log.FieldComponent, "prerender").Str(log.FieldDistDir, g.DistDir)
	})
}

// loadPosts returns the posts to generate and their origin.
func (g *Generator) loadPosts(ctx context.Context, logger zerolog.Logger) ([]blog.Post, string) {
	if g.Source == nil {
		return blog.PrerenderFallback(), SourceFallback
	}

	posts, err := g.Source.Fetch(ctx)
	if err == nil && !hasUsable(posts) {
		err = blog.ErrNoRows
	}
	if err != nil {
		logger.Warn().
			Err(err).
			Str("event", "prerender.fallback").
			Msg("could not load posts from the sheet, using built-in posts")
		return blog.PrerenderFallback(), SourceFallback
	}

	logger.Info().Str("event", "prerender.posts_loaded").Int("posts", len(posts)).Msg("loaded posts from sheet")
	return posts, SourceCSV
}

func hasUsable(posts []blog.Post) bool {
	for _, p := range posts {
		if p.ID != "" && p.Title != "" {
			return true
		}
	}
	return false
}

func (g *Generator) headFor(siteURL, postPath string, p blog.Post) postHead {
	postURL := seo.AbsoluteURL(siteURL, postPath)
	image := p.Image
	if image == "" {
		image = site.DefaultImage
	}
	crumbs := seo.BreadcrumbList(siteURL, site.BlogPostCrumbs(p.Title, postPath))

	return postHead{
		Title:       p.Title + " | " + site.Name + " Blog",
		Description: p.Excerpt,
		Image:       seo.AbsoluteURL(siteURL, image),
		URL:         postURL,
		JSONLD:      seo.JSONLD(crumbs),
	}
}

func pageEntries() []seo.SitemapEntry {
	pages := site.Pages()
	out := make([]seo.SitemapEntry, 0, len(pages))
	for _, p := range pages {
		out = append(out, seo.SitemapEntry{Path: p.Path, Priority: p.Priority})
	}
	return out
}

// lastMod keeps dates already in W3C date form.
func lastMod(date string) string {
	if _, err := time.Parse(time.DateOnly, date); err == nil {
		return date
	}
	return ""
}

func writeFile(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending %s: %w", path, err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
