// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // keys the last Load consulted
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Path returns the configuration file path (may be empty).
func (l *Loader) Path() string {
	return l.configPath
}

func (l *Loader) envString(key, defaultVal string) string {
	key = EnvPrefix + key
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	key = EnvPrefix + key
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseBool(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	key = EnvPrefix + key
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

func (l *Loader) envDuration(key string, defaultVal time.Duration) time.Duration {
	key = EnvPrefix + key
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseDuration(key, defaultVal)
}

func (l *Loader) envFloat(key string, defaultVal float64) float64 {
	key = EnvPrefix + key
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseFloat(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := mergeFileConfig(&cfg, fileCfg); err != nil {
			return cfg, fmt.Errorf("merge file config: %w", err)
		}
	}

	l.mergeEnvConfig(&cfg)
	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		LogLevel: "info",
		SiteURL:  "https://fecauca.com",
		DistDir:  "dist",
		Server: ServerSettings{
			Listen:          ":8080",
			MetricsListen:   ":9090",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxHeaderBytes:  1 << 20,
		},
		Blog: BlogSettings{
			SheetURL:     DefaultSheetURL,
			FetchTimeout: 10 * time.Second,
			CacheTTL:     5 * time.Minute,
			FallbackTTL:  30 * time.Second,
		},
		Cache: CacheSettings{
			Backend:     CacheBackendMemory,
			RedisAddr:   "localhost:6379",
			PageEntries: 256,
		},
		RateLimit: RateLimitSettings{
			Enabled:           true,
			RequestsPerMinute: 600,
		},
		Tracing: TracingSettings{
			Exporter:    "grpc",
			Endpoint:    "localhost:4317",
			SampleRate:  1.0,
			Environment: "production",
		},
	}
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields cause an error wrapping ErrUnknownConfigField.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(cfg *AppConfig, f *FileConfig) error {
	setString(&cfg.LogLevel, f.LogLevel)
	setString(&cfg.SiteURL, f.SiteURL)
	setString(&cfg.DistDir, f.DistDir)

	setString(&cfg.Server.Listen, f.Server.Listen)
	if f.Server.MetricsListen != nil {
		cfg.Server.MetricsListen = strings.TrimSpace(*f.Server.MetricsListen)
	}
	if f.Server.MaxHeaderBytes != nil {
		cfg.Server.MaxHeaderBytes = *f.Server.MaxHeaderBytes
	}
	if len(f.Server.TrustedProxies) > 0 {
		cfg.Server.TrustedProxies = splitList(strings.Join(f.Server.TrustedProxies, ","))
	}

	setString(&cfg.Blog.SheetURL, f.Blog.SheetURL)

	setString(&cfg.Cache.Backend, f.Cache.Backend)
	setString(&cfg.Cache.RedisAddr, f.Cache.RedisAddr)
	setString(&cfg.Cache.RedisPassword, f.Cache.RedisPassword)
	if f.Cache.RedisDB != nil {
		cfg.Cache.RedisDB = *f.Cache.RedisDB
	}
	if f.Cache.PageEntries != nil {
		cfg.Cache.PageEntries = *f.Cache.PageEntries
	}

	if f.RateLimit.Enabled != nil {
		cfg.RateLimit.Enabled = *f.RateLimit.Enabled
	}
	if f.RateLimit.RequestsPerMinute != nil {
		cfg.RateLimit.RequestsPerMinute = *f.RateLimit.RequestsPerMinute
	}

	if f.Tracing.Enabled != nil {
		cfg.Tracing.Enabled = *f.Tracing.Enabled
	}
	setString(&cfg.Tracing.Exporter, f.Tracing.Exporter)
	setString(&cfg.Tracing.Endpoint, f.Tracing.Endpoint)
	setString(&cfg.Tracing.Environment, f.Tracing.Environment)
	if f.Tracing.SampleRate != nil {
		cfg.Tracing.SampleRate = *f.Tracing.SampleRate
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"server.readTimeout", f.Server.ReadTimeout, &cfg.Server.ReadTimeout},
		{"server.writeTimeout", f.Server.WriteTimeout, &cfg.Server.WriteTimeout},
		{"server.idleTimeout", f.Server.IdleTimeout, &cfg.Server.IdleTimeout},
		{"server.shutdownTimeout", f.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
		{"blog.fetchTimeout", f.Blog.FetchTimeout, &cfg.Blog.FetchTimeout},
		{"blog.cacheTtl", f.Blog.CacheTTL, &cfg.Blog.CacheTTL},
		{"blog.fallbackTtl", f.Blog.FallbackTTL, &cfg.Blog.FallbackTTL},
	}
	for _, d := range durations {
		if strings.TrimSpace(d.raw) == "" {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.LogLevel = l.envString("LOG_LEVEL", cfg.LogLevel)
	cfg.SiteURL = l.envString("SITE_URL", cfg.SiteURL)
	cfg.DistDir = l.envString("DIST_DIR", cfg.DistDir)

	cfg.Server.Listen = l.envString("LISTEN", cfg.Server.Listen)
	cfg.Server.MetricsListen = l.envString("METRICS_LISTEN", cfg.Server.MetricsListen)
	cfg.Server.ReadTimeout = l.envDuration("READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = l.envDuration("WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = l.envDuration("IDLE_TIMEOUT", cfg.Server.IdleTimeout)
	cfg.Server.ShutdownTimeout = l.envDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	if raw := l.envString("TRUSTED_PROXIES", ""); raw != "" {
		cfg.Server.TrustedProxies = splitList(raw)
	}

	cfg.Blog.SheetURL = l.envString("BLOG_SHEET_URL", cfg.Blog.SheetURL)
	cfg.Blog.FetchTimeout = l.envDuration("BLOG_FETCH_TIMEOUT", cfg.Blog.FetchTimeout)
	cfg.Blog.CacheTTL = l.envDuration("BLOG_CACHE_TTL", cfg.Blog.CacheTTL)
	cfg.Blog.FallbackTTL = l.envDuration("BLOG_FALLBACK_TTL", cfg.Blog.FallbackTTL)

	cfg.Cache.Backend = l.envString("CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.RedisAddr = l.envString("REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.Cache.RedisPassword = l.envString("REDIS_PASSWORD", cfg.Cache.RedisPassword)
	cfg.Cache.RedisDB = l.envInt("REDIS_DB", cfg.Cache.RedisDB)
	cfg.Cache.PageEntries = l.envInt("PAGE_CACHE_SIZE", cfg.Cache.PageEntries)

	cfg.RateLimit.Enabled = l.envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RequestsPerMinute = l.envInt("RATE_LIMIT_RPM", cfg.RateLimit.RequestsPerMinute)

	cfg.Tracing.Enabled = l.envBool("TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = l.envString("TRACING_EXPORTER", cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = l.envString("TRACING_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SampleRate = l.envFloat("TRACING_SAMPLE_RATE", cfg.Tracing.SampleRate)
	cfg.Tracing.Environment = l.envString("ENVIRONMENT", cfg.Tracing.Environment)
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
