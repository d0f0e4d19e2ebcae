// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"github.com/spf13/cobra"

	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/fecauca/fecauca-web/internal/daemon"
	xglog "github.com/fecauca/fecauca-web/internal/log"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the site server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loader, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger := xglog.WithComponent("daemon")
			logger.Info().
				Str(xglog.FieldEvent, "config.loaded").
				Str("path", loader.Path()).
				Str("listen", cfg.Server.Listen).
				Str("metrics", config.MetricsAddr(cfg)).
				Msg("configuration loaded")

			ctx, stop := daemon.WaitForShutdown()
			defer stop()

			rt, err := daemon.Bootstrap(ctx, cfg)
			if err != nil {
				return err
			}
			holder := config.NewHolder(cfg, loader)
			return daemon.NewApp(logger, rt.Manager, holder, rt.Blog).Run(ctx)
		},
	}
}
