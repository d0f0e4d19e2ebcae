// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "time"

// Cache backends understood by internal/cache.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// DefaultSheetURL is the published spreadsheet (CSV export) feeding the blog.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1b9sJU00lrgra--jg1hL_zNXPFjyLXc_LcEUk78k4KJ0/export?format=csv"

// AppConfig is the fully resolved runtime configuration.
type AppConfig struct {
	Version  string
	LogLevel string

	// SiteURL is the public origin used for canonical and Open Graph URLs.
	SiteURL string
	// DistDir is the built static site the prerender job rewrites.
	DistDir string

	Server    ServerSettings
	Blog      BlogSettings
	Cache     CacheSettings
	RateLimit RateLimitSettings
	Tracing   TracingSettings
}

// ServerSettings holds listener addresses and HTTP timeouts.
type ServerSettings struct {
	Listen          string
	MetricsListen   string // empty disables the metrics listener
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int
	// TrustedProxies lists CIDRs allowed to set X-Forwarded-Proto.
	TrustedProxies []string
}

// BlogSettings configures the spreadsheet-backed blog source.
type BlogSettings struct {
	SheetURL     string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	FallbackTTL  time.Duration
}

// CacheSettings selects the cache backend.
type CacheSettings struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PageEntries   int
}

// RateLimitSettings configures per-IP rate limiting.
type RateLimitSettings struct {
	Enabled           bool
	RequestsPerMinute int
}

// TracingSettings configures OpenTelemetry export.
type TracingSettings struct {
	Enabled     bool
	Exporter    string
	Endpoint    string
	SampleRate  float64
	Environment string
}

// FileConfig is the YAML representation. Pointer fields distinguish "absent"
// from the zero value so that the file only overrides what it names.
type FileConfig struct {
	LogLevel  string          `yaml:"logLevel,omitempty"`
	SiteURL   string          `yaml:"siteUrl,omitempty"`
	DistDir   string          `yaml:"distDir,omitempty"`
	Server    ServerFile      `yaml:"server,omitempty"`
	Blog      BlogFile        `yaml:"blog,omitempty"`
	Cache     CacheFile       `yaml:"cache,omitempty"`
	RateLimit RateLimitFile   `yaml:"rateLimit,omitempty"`
	Tracing   TracingFileConf `yaml:"tracing,omitempty"`
}

// ServerFile is the YAML form of ServerSettings.
type ServerFile struct {
	Listen          string   `yaml:"listen,omitempty"`
	MetricsListen   *string  `yaml:"metricsListen,omitempty"`
	ReadTimeout     string   `yaml:"readTimeout,omitempty"`
	WriteTimeout    string   `yaml:"writeTimeout,omitempty"`
	IdleTimeout     string   `yaml:"idleTimeout,omitempty"`
	ShutdownTimeout string   `yaml:"shutdownTimeout,omitempty"`
	MaxHeaderBytes  *int     `yaml:"maxHeaderBytes,omitempty"`
	TrustedProxies  []string `yaml:"trustedProxies,omitempty"`
}

// BlogFile is the YAML form of BlogSettings.
type BlogFile struct {
	SheetURL     string `yaml:"sheetUrl,omitempty"`
	FetchTimeout string `yaml:"fetchTimeout,omitempty"`
	CacheTTL     string `yaml:"cacheTtl,omitempty"`
	FallbackTTL  string `yaml:"fallbackTtl,omitempty"`
}

// CacheFile is the YAML form of CacheSettings.
type CacheFile struct {
	Backend       string `yaml:"backend,omitempty"`
	RedisAddr     string `yaml:"redisAddr,omitempty"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	RedisDB       *int   `yaml:"redisDb,omitempty"`
	PageEntries   *int   `yaml:"pageEntries,omitempty"`
}

// RateLimitFile is the YAML form of RateLimitSettings.
type RateLimitFile struct {
	Enabled           *bool `yaml:"enabled,omitempty"`
	RequestsPerMinute *int  `yaml:"requestsPerMinute,omitempty"`
}

// TracingFileConf is the YAML form of TracingSettings.
type TracingFileConf struct {
	Enabled     *bool    `yaml:"enabled,omitempty"`
	Exporter    string   `yaml:"exporter,omitempty"`
	Endpoint    string   `yaml:"endpoint,omitempty"`
	SampleRate  *float64 `yaml:"sampleRate,omitempty"`
	Environment string   `yaml:"environment,omitempty"`
}
