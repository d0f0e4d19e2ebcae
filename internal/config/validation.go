// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/fecauca/fecauca-web/internal/validate"
	"github.com/rs/zerolog"
)

var httpSchemes = []string{"http", "https"}

// Validate checks a resolved AppConfig. The returned error wraps ErrInvalidConfig.
func Validate(cfg AppConfig) error {
	v := validate.New()

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil || cfg.LogLevel == "" {
		v.AddError("LogLevel", "unknown log level", cfg.LogLevel)
	}

	v.URL("SiteURL", cfg.SiteURL, httpSchemes)
	v.Path("DistDir", cfg.DistDir)

	v.NotEmpty("Server.Listen", cfg.Server.Listen)
	v.Duration("Server.ReadTimeout", cfg.Server.ReadTimeout, time.Second)
	v.Duration("Server.WriteTimeout", cfg.Server.WriteTimeout, time.Second)
	v.Duration("Server.IdleTimeout", cfg.Server.IdleTimeout, time.Second)
	v.Duration("Server.ShutdownTimeout", cfg.Server.ShutdownTimeout, time.Second)
	v.Positive("Server.MaxHeaderBytes", cfg.Server.MaxHeaderBytes)
	for _, cidr := range cfg.Server.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			v.AddError("Server.TrustedProxies", "invalid CIDR", cidr)
		}
	}

	v.URL("Blog.SheetURL", cfg.Blog.SheetURL, httpSchemes)
	v.Duration("Blog.FetchTimeout", cfg.Blog.FetchTimeout, 100*time.Millisecond)
	v.Duration("Blog.CacheTTL", cfg.Blog.CacheTTL, time.Second)
	v.Duration("Blog.FallbackTTL", cfg.Blog.FallbackTTL, time.Second)
	if cfg.Blog.FallbackTTL > cfg.Blog.CacheTTL {
		v.AddError("Blog.FallbackTTL", "must not exceed Blog.CacheTTL", cfg.Blog.FallbackTTL)
	}

	v.OneOf("Cache.Backend", cfg.Cache.Backend, []string{CacheBackendMemory, CacheBackendRedis, CacheBackendNone})
	if cfg.Cache.Backend == CacheBackendRedis {
		v.NotEmpty("Cache.RedisAddr", cfg.Cache.RedisAddr)
		v.Range("Cache.RedisDB", cfg.Cache.RedisDB, 0, 15)
	}
	v.Range("Cache.PageEntries", cfg.Cache.PageEntries, 1, 100000)

	if cfg.RateLimit.Enabled {
		v.Range("RateLimit.RequestsPerMinute", cfg.RateLimit.RequestsPerMinute, 1, 1000000)
	}

	if cfg.Tracing.Enabled {
		v.OneOf("Tracing.Exporter", cfg.Tracing.Exporter, []string{"grpc", "http"})
		v.NotEmpty("Tracing.Endpoint", cfg.Tracing.Endpoint)
		v.FloatRange("Tracing.SampleRate", cfg.Tracing.SampleRate, 0, 1)
	}

	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
