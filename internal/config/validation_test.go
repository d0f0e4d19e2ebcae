// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{
			name:    "bad log level",
			mutate:  func(c *AppConfig) { c.LogLevel = "loud" },
			wantErr: "LogLevel",
		},
		{
			name:    "relative site url",
			mutate:  func(c *AppConfig) { c.SiteURL = "fecauca.com" },
			wantErr: "SiteURL",
		},
		{
			name:    "sheet url scheme",
			mutate:  func(c *AppConfig) { c.Blog.SheetURL = "file:///etc/passwd" },
			wantErr: "Blog.SheetURL",
		},
		{
			name:    "dist dir escapes",
			mutate:  func(c *AppConfig) { c.DistDir = "../dist" },
			wantErr: "DistDir",
		},
		{
			name:    "fallback ttl above cache ttl",
			mutate:  func(c *AppConfig) { c.Blog.FallbackTTL = time.Hour },
			wantErr: "Blog.FallbackTTL",
		},
		{
			name:    "bad trusted proxy",
			mutate:  func(c *AppConfig) { c.Server.TrustedProxies = []string{"10.0.0.1"} },
			wantErr: "Server.TrustedProxies",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *AppConfig) { c.Cache.Backend = "memcached" },
			wantErr: "Cache.Backend",
		},
		{
			name: "redis without address",
			mutate: func(c *AppConfig) {
				c.Cache.Backend = CacheBackendRedis
				c.Cache.RedisAddr = ""
			},
			wantErr: "Cache.RedisAddr",
		},
		{
			name:    "rate limit zero",
			mutate:  func(c *AppConfig) { c.RateLimit.RequestsPerMinute = 0 },
			wantErr: "RateLimit.RequestsPerMinute",
		},
		{
			name: "rate limit zero but disabled",
			mutate: func(c *AppConfig) {
				c.RateLimit.Enabled = false
				c.RateLimit.RequestsPerMinute = 0
			},
		},
		{
			name: "tracing sample rate",
			mutate: func(c *AppConfig) {
				c.Tracing.Enabled = true
				c.Tracing.SampleRate = 2
			},
			wantErr: "Tracing.SampleRate",
		},
		{
			name: "tracing exporter",
			mutate: func(c *AppConfig) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "zipkin"
			},
			wantErr: "Tracing.Exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
