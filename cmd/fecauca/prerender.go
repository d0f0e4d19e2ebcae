// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fecauca/fecauca-web/internal/daemon"
	"github.com/fecauca/fecauca-web/internal/health"
	xglog "github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/prerender"
)

type prerenderOptions struct {
	distDir   string
	siteURL   string
	offline   bool
	checkDist bool
}

func newPrerenderCmd(root *rootOptions) *cobra.Command {
	opts := &prerenderOptions{}
	cmd := &cobra.Command{
		Use:   "prerender",
		Short: "Write per-post blog documents and sitemap.xml into the built site",
		Long: "Reads the built index.html, writes blog/<id>/index.html for every post with " +
			"post-specific SEO tags, and regenerates sitemap.xml. Posts come from the " +
			"configured sheet, or the built-in list when it is unreachable.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := root.loadConfig()
			if err != nil {
				return err
			}
			if opts.distDir != "" {
				cfg.DistDir = opts.distDir
			}
			if opts.siteURL != "" {
				cfg.SiteURL = opts.siteURL
			}
			if opts.checkDist {
				if err := health.CheckDistDir(cfg.DistDir); err != nil {
					return err
				}
			}

			logger := xglog.WithComponent("prerender")
			gen := &prerender.Generator{
				DistDir: cfg.DistDir,
				SiteURL: cfg.SiteURL,
				Logger:  &logger,
			}
			if !opts.offline {
				gen.Source = daemon.SourceFor(cfg.Blog)
			}

			res, err := gen.Run(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", res.Source)
			fmt.Fprintf(out, "posts: %d generated, %d skipped\n", res.Generated, res.Skipped)
			fmt.Fprintf(out, "sitemap: %s\n", res.Sitemap)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.distDir, "dist", "", "built site directory (overrides distDir)")
	cmd.Flags().StringVar(&opts.siteURL, "site-url", "", "public site origin (overrides siteUrl)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "skip the sheet and use the built-in posts")
	cmd.Flags().BoolVar(&opts.checkDist, "check-dist", false, "verify the dist directory is writable first")
	return cmd
}
