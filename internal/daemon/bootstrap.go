// SPDX-License-Identifier: MIT

// Package daemon wires the site server together and owns its lifecycle.
package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/bus"
	"github.com/fecauca/fecauca-web/internal/cache"
	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/fecauca/fecauca-web/internal/health"
	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/resilience"
	"github.com/fecauca/fecauca-web/internal/telemetry"
	"github.com/fecauca/fecauca-web/internal/web"
	"github.com/fecauca/fecauca-web/internal/web/middleware"
)

// ServiceName identifies the process in logs and traces.
const ServiceName = "fecauca-web"

// Runtime is a fully wired daemon, ready for App.Run.
type Runtime struct {
	Manager Manager
	Blog    *blog.Service
	Web     *web.Server
	Health  *health.Manager
	Bus     *bus.MemoryBus
	Cache   cache.Cache
}

// sheetFailureThreshold is the number of consecutive sheet failures that
// open the breaker.
const sheetFailureThreshold = 3

// SourceFor returns the post source for the blog settings; an empty sheet
// URL means the built-in list.
func SourceFor(s config.BlogSettings) blog.Source {
	if s.SheetURL == "" {
		return nil
	}
	return blog.GuardedSource{
		Source:  blog.NewHTTPSource(s.SheetURL, s.FetchTimeout),
		Breaker: resilience.NewCircuitBreaker("sheet", sheetFailureThreshold, 2*s.FallbackTTL),
	}
}

// Bootstrap builds every component from cfg and registers their shutdown
// hooks. The web server is subscribed to post updates before it returns.
func Bootstrap(ctx context.Context, cfg config.AppConfig) (*Runtime, error) {
	logger := log.WithComponent("daemon")

	if err := health.PerformStartupChecks(cfg); err != nil {
		return nil, err
	}

	trusted, err := middleware.ParseCIDRs(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	tracer, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Tracing.Environment,
		ExporterType:   cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		logger.Warn().Err(err).
			Str(log.FieldEvent, "telemetry.init_failed").
			Msg("telemetry initialization failed, continuing without tracing")
		tracer = nil
	}
	tracingService := ""
	if tracer != nil && cfg.Tracing.Enabled {
		tracingService = ServiceName
	}

	store := cache.New(ctx, cfg.Cache, logger)
	events := bus.NewMemoryBus()

	svc := blog.NewService(blog.Options{
		Source:      SourceFor(cfg.Blog),
		Cache:       store,
		Bus:         events,
		TTL:         cfg.Blog.CacheTTL,
		FallbackTTL: cfg.Blog.FallbackTTL,
	})

	hm := health.NewManager(cfg.Version)
	hm.RegisterChecker(health.NewBlogChecker(svc, 2*cfg.Blog.CacheTTL))
	pinger, _ := store.(cache.Pinger)
	hm.RegisterChecker(health.NewCacheChecker(cfg.Cache.Backend, pinger))

	rpm := 0
	if cfg.RateLimit.Enabled {
		rpm = cfg.RateLimit.RequestsPerMinute
	}

	srv, err := web.New(web.Options{
		SiteURL:       cfg.SiteURL,
		Blog:          svc,
		Health:        hm,
		Events:        events,
		PageCacheSize: cfg.Cache.PageEntries,
		PageCacheTTL:  cfg.Blog.FallbackTTL,
		Stack: middleware.StackConfig{
			EnableSecurityHeaders: true,
			CSP:                   middleware.DefaultCSP,
			TrustedProxies:        trusted,
			EnableMetrics:         true,
			TracingService:        tracingService,
			EnableLogging:         true,
			RequestsPerMinute:     rpm,
		},
		APIOrigins: []string{cfg.SiteURL},
	})
	if err != nil {
		return nil, fmt.Errorf("web server: %w", err)
	}

	mgr, err := NewManager(config.ServerConfigFor(cfg), Deps{
		Logger:         logger,
		APIHandler:     srv.Handler(),
		MetricsHandler: promhttp.Handler(),
		MetricsAddr:    config.MetricsAddr(cfg),
	})
	if err != nil {
		return nil, err
	}

	// Registration order is the reverse of teardown order.
	if tracer != nil {
		mgr.RegisterShutdownHook("telemetry", tracer.Shutdown)
	}
	if closer, ok := store.(io.Closer); ok {
		mgr.RegisterShutdownHook("cache", func(context.Context) error { return closer.Close() })
	}
	mgr.RegisterShutdownHook("bus", func(context.Context) error { return events.Close() })
	mgr.RegisterShutdownHook("web", func(context.Context) error { return srv.Close() })

	if err := srv.Start(ctx); err != nil {
		_ = events.Close()
		return nil, err
	}

	logger.Info().
		Str(log.FieldEvent, "daemon.bootstrapped").
		Str("cache_backend", cfg.Cache.Backend).
		Bool("tracing", tracingService != "").
		Bool("sheet", cfg.Blog.SheetURL != "").
		Msg("components wired")

	return &Runtime{
		Manager: mgr,
		Blog:    svc,
		Web:     srv,
		Health:  hm,
		Bus:     events,
		Cache:   store,
	}, nil
}

// WaitForShutdown returns a context cancelled on SIGINT or SIGTERM.
func WaitForShutdown() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
