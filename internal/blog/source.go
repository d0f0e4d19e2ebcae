// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fecauca/fecauca-web/internal/platform/httpx"
	"github.com/fecauca/fecauca-web/internal/resilience"
	"github.com/fecauca/fecauca-web/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// maxSheetBytes caps the CSV body read from the sheet host.
const maxSheetBytes = 8 << 20

// Source yields the raw post list.
type Source interface {
	Fetch(ctx context.Context) ([]Post, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Post, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]Post, error) { return f(ctx) }

// GuardedSource stops calling Source while its breaker is open; the service
// then serves the fallback without waiting on a dead sheet.
type GuardedSource struct {
	Source  Source
	Breaker *resilience.CircuitBreaker
}

func (g GuardedSource) Fetch(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := g.Breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		posts, err = g.Source.Fetch(ctx)
		return err
	})
	return posts, err
}

// HTTPSource downloads the published CSV export of the sheet.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource builds a traced source for sheetURL.
func NewHTTPSource(sheetURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    sheetURL,
		Client: httpx.NewClient(timeout, httpx.WithTracing("blog.sheet")),
	}
}

// Fetch downloads and parses the sheet. Non-2xx answers yield a *SourceError
// that matches ErrUpstream.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Post, error) {
	ctx, span := telemetry.Tracer("blog").Start(ctx, "blog.fetch_sheet")
	defer span.End()
	if u, err := url.Parse(s.URL); err == nil {
		span.SetAttributes(attribute.String(telemetry.BlogSheetHostKey, u.Host))
	}

	posts, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sheet fetch failed")
		span.SetAttributes(telemetry.ErrorAttributes(err, fallbackReason(err))...)
		return nil, err
	}
	span.SetAttributes(attribute.Int(telemetry.BlogPostsKey, len(posts)))
	return posts, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &SourceError{URL: s.URL, Err: err}
	}
	req.Header.Set("Accept", "text/csv")

	client := s.Client
	if client == nil {
		client = httpx.NewClient(0)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{URL: s.URL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &SourceError{URL: s.URL, Status: resp.StatusCode}
	}

	posts, err := ParseCSV(io.LimitReader(resp.Body, maxSheetBytes))
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	return posts, nil
}
