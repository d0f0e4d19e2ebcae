// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/fecauca/fecauca-web/internal/log"
)

func reserveListenAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve listen addr: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func waitForListen(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return errors.New("listen timeout")
}

func testServerConfig(addr string) config.ServerConfig {
	return config.ServerConfig{
		ListenAddr:      addr,
		ReadTimeout:     1 * time.Second,
		WriteTimeout:    1 * time.Second,
		IdleTimeout:     10 * time.Second,
		MaxHeaderBytes:  1 << 20,
		ShutdownTimeout: 2 * time.Second,
	}
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestNewManager_Validation(t *testing.T) {
	tests := []struct {
		name string
		deps Deps
		want error
	}{
		{"ok", Deps{Logger: log.WithComponent("test"), APIHandler: http.NotFoundHandler()}, nil},
		{"missing logger", Deps{Logger: zerolog.Nop(), APIHandler: http.NotFoundHandler()}, ErrMissingLogger},
		{"missing handler", Deps{Logger: log.WithComponent("test")}, ErrMissingAPIHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, err := NewManager(testServerConfig("127.0.0.1:0"), tt.deps)
			if tt.want == nil {
				require.NoError(t, err)
				assert.NotNil(t, mgr)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestManager_ServesSiteAndMetrics(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	addr, metricsAddr := reserveListenAddr(t), reserveListenAddr(t)
	mgr, err := NewManager(testServerConfig(addr), Deps{
		Logger: log.WithComponent("test"),
		APIHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("site"))
		}),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("metrics"))
		}),
		MetricsAddr: metricsAddr,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errChan := make(chan error, 1)
	go func() { errChan <- mgr.Start(ctx) }()

	require.NoError(t, waitForListen(addr, 2*time.Second))
	require.NoError(t, waitForListen(metricsAddr, 2*time.Second))

	code, body := get(t, "http://"+addr+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "site", body)
	_, body = get(t, "http://"+metricsAddr+"/metrics")
	assert.Equal(t, "metrics", body)

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after context cancellation")
	}
}

func TestManager_ShutdownHooksRunLIFO(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	addr := reserveListenAddr(t)
	mgr, err := NewManager(testServerConfig(addr), Deps{
		Logger:     log.WithComponent("test"),
		APIHandler: http.NotFoundHandler(),
	})
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string, err error) ShutdownHook {
		return func(context.Context) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return err
		}
	}
	boom := errors.New("boom")
	mgr.RegisterShutdownHook("telemetry", record("telemetry", nil))
	mgr.RegisterShutdownHook("cache", record("cache", boom))
	mgr.RegisterShutdownHook("web", record("web", nil))

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- mgr.Start(ctx) }()
	require.NoError(t, waitForListen(addr, 2*time.Second))
	cancel()

	select {
	case err := <-errChan:
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "hook cache")
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"web", "cache", "telemetry"}, order)

	// A second shutdown is a no-op.
	assert.NoError(t, mgr.Shutdown(context.Background()))
}

func TestManager_ShutdownBeforeStart(t *testing.T) {
	mgr, err := NewManager(testServerConfig("127.0.0.1:0"), Deps{
		Logger:     log.WithComponent("test"),
		APIHandler: http.NotFoundHandler(),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, mgr.Shutdown(context.Background()), ErrManagerNotStarted)
}

func TestManager_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	addr := reserveListenAddr(t)
	mgr, err := NewManager(testServerConfig(addr), Deps{
		Logger:     log.WithComponent("test"),
		APIHandler: http.NotFoundHandler(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- mgr.Start(ctx) }()
	require.NoError(t, waitForListen(addr, 2*time.Second))

	assert.ErrorIs(t, mgr.Start(ctx), ErrManagerAlreadyStarted)

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return")
	}
}

func TestManager_ListenFailureShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	mgr, err := NewManager(testServerConfig(ln.Addr().String()), Deps{
		Logger:     log.WithComponent("test"),
		APIHandler: http.NotFoundHandler(),
	})
	require.NoError(t, err)

	hookRan := make(chan struct{})
	mgr.RegisterShutdownHook("probe", func(context.Context) error {
		close(hookRan)
		return nil
	})

	errChan := make(chan error, 1)
	go func() { errChan <- mgr.Start(context.Background()) }()

	select {
	case err := <-errChan:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "site server")
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after listen failure")
	}
	select {
	case <-hookRan:
	default:
		t.Fatal("shutdown hooks did not run")
	}
}
