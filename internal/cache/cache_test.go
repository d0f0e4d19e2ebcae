// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(0)

	c.Set("k", []byte("v"), time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, 1, stats.CurrentSize)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(0)
	in := []byte("abc")
	c.Set("k", in, time.Minute)
	in[0] = 'X'

	got, _ := c.Get("k")
	got[1] = 'Y'

	again, _ := c.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache(0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", []byte("v"), time.Second)
	_, ok := c.Get("k")
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	assert.Equal(t, 1, c.deleteExpired())
	assert.Equal(t, int64(1), c.Stats().Evictions)
	assert.Equal(t, 0, c.Stats().CurrentSize)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(0)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Stats().CurrentSize)
}

func TestMemoryCache_JanitorStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewMemoryCache(5 * time.Millisecond)
	c.Set("k", []byte("v"), time.Millisecond)

	require.Eventually(t, func() bool {
		return c.Stats().CurrentSize == 0
	}, time.Second, 5*time.Millisecond)

	c.Stop()
	c.Stop()
	require.NoError(t, c.Close())
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	c.Set("k", []byte("v"), time.Minute)
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, CacheStats{}, c.Stats())
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr()}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestRedisCache_SetGet(t *testing.T) {
	mr, c := setupMiniRedis(t)

	c.Set("k", []byte(`{"a":1}`), time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
	assert.True(t, mr.Exists("fecauca:k"))

	_, ok = c.Get("missing")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
}

func TestRedisCache_TTL(t *testing.T) {
	mr, c := setupMiniRedis(t)

	c.Set("k", []byte("v"), time.Second)
	mr.FastForward(2 * time.Second)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestRedisCache_ClearOnlyOwnKeys(t *testing.T) {
	mr, c := setupMiniRedis(t)
	require.NoError(t, mr.Set("other:key", "keep"))

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)
	c.Delete("a")
	assert.False(t, mr.Exists("fecauca:a"))

	c.Clear()
	assert.False(t, mr.Exists("fecauca:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	mr, c := setupMiniRedis(t)
	mr.Close()

	c.Set("k", []byte("v"), time.Minute)
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Error(t, c.HealthCheck(context.Background()))
}

func TestNew_SelectsBackend(t *testing.T) {
	none := New(context.Background(), config.CacheSettings{Backend: config.CacheBackendNone}, zerolog.Nop())
	assert.IsType(t, noOpCache{}, none)

	mem := New(context.Background(), config.CacheSettings{Backend: config.CacheBackendMemory}, zerolog.Nop())
	require.IsType(t, &MemoryCache{}, mem)
	mem.(*MemoryCache).Stop()

	mr := miniredis.RunT(t)
	rc := New(context.Background(), config.CacheSettings{Backend: config.CacheBackendRedis, RedisAddr: mr.Addr()}, zerolog.Nop())
	require.IsType(t, &RedisCache{}, rc)
	_, isPinger := rc.(Pinger)
	assert.True(t, isPinger)
	require.NoError(t, rc.(*RedisCache).Close())
}

func TestNew_RedisUnavailableFallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	c := New(context.Background(), config.CacheSettings{Backend: config.CacheBackendRedis, RedisAddr: addr}, zerolog.Nop())
	require.IsType(t, &MemoryCache{}, c)
	c.(*MemoryCache).Stop()
}
