// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package health

import (
	"context"
	"fmt"
	"time"

	"github.com/fecauca/fecauca-web/internal/blog"
)

// BlogStatusSource is satisfied by *blog.Service.
type BlogStatusSource interface {
	Status() blog.Status
}

// BlogChecker reports the state of the post list. The fallback list keeps the
// blog usable, so it never reports unhealthy.
type BlogChecker struct {
	src    BlogStatusSource
	maxAge time.Duration
	now    func() time.Time
}

// NewBlogChecker creates a checker that flags loads older than maxAge.
func NewBlogChecker(src BlogStatusSource, maxAge time.Duration) *BlogChecker {
	return &BlogChecker{src: src, maxAge: maxAge, now: time.Now}
}

func (c *BlogChecker) Name() string { return "blog" }

func (c *BlogChecker) Check(_ context.Context) CheckResult {
	st := c.src.Status()

	switch {
	case st.LastFetch.IsZero():
		return CheckResult{Status: StatusHealthy, Message: "not loaded yet"}
	case st.UsingFallback:
		return CheckResult{
			Status:  StatusDegraded,
			Message: fmt.Sprintf("serving %d built-in posts", st.Count),
			Error:   st.LastError,
		}
	case c.maxAge > 0 && c.now().Sub(st.LastFetch) > c.maxAge:
		return CheckResult{Status: StatusDegraded, Message: "post list is stale"}
	default:
		return CheckResult{Status: StatusHealthy, Message: fmt.Sprintf("%d posts from sheet", st.Count)}
	}
}

// Pinger is satisfied by remote cache backends.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// CacheChecker pings a remote cache. A failing cache only slows the site
// down, so failures are reported as degraded.
type CacheChecker struct {
	backend string
	pinger  Pinger
}

// NewCacheChecker creates a checker. A nil pinger means an in-process cache.
func NewCacheChecker(backend string, pinger Pinger) *CacheChecker {
	return &CacheChecker{backend: backend, pinger: pinger}
}

func (c *CacheChecker) Name() string { return "cache" }

func (c *CacheChecker) Check(ctx context.Context) CheckResult {
	if c.pinger == nil {
		return CheckResult{Status: StatusHealthy, Message: c.backend + " (in-process)"}
	}
	if err := c.pinger.HealthCheck(ctx); err != nil {
		return CheckResult{Status: StatusDegraded, Message: c.backend, Error: err.Error()}
	}
	return CheckResult{Status: StatusHealthy, Message: c.backend + " reachable"}
}

// FuncChecker adapts a function to Checker.
type FuncChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewFuncChecker wraps fn under name.
func NewFuncChecker(name string, fn func(ctx context.Context) CheckResult) *FuncChecker {
	return &FuncChecker{name: name, fn: fn}
}

func (c *FuncChecker) Name() string { return c.name }

func (c *FuncChecker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }
