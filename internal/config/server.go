// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header's keys and values
	MaxHeaderBytes int

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown
	ShutdownTimeout time.Duration
}

const minShutdownTimeout = 3 * time.Second

// ServerConfigFor derives the site listener settings from cfg.
func ServerConfigFor(cfg AppConfig) ServerConfig {
	shutdown := cfg.Server.ShutdownTimeout
	if shutdown < minShutdownTimeout {
		shutdown = minShutdownTimeout
	}
	return ServerConfig{
		ListenAddr:      cfg.Server.Listen,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		MaxHeaderBytes:  cfg.Server.MaxHeaderBytes,
		ShutdownTimeout: shutdown,
	}
}

// MetricsAddr returns the metrics listen address, or "" when disabled.
// "off", "false" and "disabled" turn the listener off explicitly.
func MetricsAddr(cfg AppConfig) string {
	addr := strings.TrimSpace(cfg.Server.MetricsListen)
	switch strings.ToLower(addr) {
	case "off", "false", "disabled", "none":
		return ""
	}
	return addr
}
