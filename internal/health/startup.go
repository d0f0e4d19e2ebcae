// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package health

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/fecauca/fecauca-web/internal/log"
)

// PerformStartupChecks validates listen addresses before the server starts.
func PerformStartupChecks(cfg config.AppConfig) error {
	logger := log.WithComponent("startup-check")
	logger.Info().Str("event", "startup.checks_begin").Msg("running pre-flight startup checks")

	if err := checkListenAddr("listen", cfg.Server.Listen); err != nil {
		return err
	}
	if addr := config.MetricsAddr(cfg); addr != "" {
		if err := checkListenAddr("metricsListen", addr); err != nil {
			return err
		}
		if addr == cfg.Server.Listen {
			return fmt.Errorf("metricsListen must differ from listen (%s)", addr)
		}
	}

	logger.Info().Str("event", "startup.checks_passed").Msg("all startup checks passed")
	return nil
}

func checkListenAddr(field, addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s: invalid address %q: %w", field, addr, err)
	}
	return nil
}

// CheckDistDir verifies that dir exists, is a directory and is writable.
func CheckDistDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("ok"), 0o600); err != nil {
		return fmt.Errorf("directory is not writable: %s (error: %w)", dir, err)
	}
	_ = os.Remove(testFile)
	return nil
}
