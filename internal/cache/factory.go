// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package cache

import (
	"context"
	"time"

	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/rs/zerolog"
)

const janitorInterval = time.Minute

// New builds the backend named in cfg. An unreachable Redis degrades to the
// memory cache so the site keeps serving.
func New(ctx context.Context, cfg config.CacheSettings, logger zerolog.Logger) Cache {
	switch cfg.Backend {
	case config.CacheBackendNone:
		return NewNoOpCache()
	case config.CacheBackendRedis:
		rc, err := NewRedisCache(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err == nil {
			return rc
		}
		logger.Warn().
			Err(err).
			Str("event", "cache.redis_fallback").
			Str("addr", cfg.RedisAddr).
			Msg("redis unavailable, using memory cache")
	}
	return NewMemoryCache(janitorInterval)
}

// Pinger is implemented by backends with a reachable remote.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
