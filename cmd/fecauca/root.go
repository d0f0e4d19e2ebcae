// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fecauca/fecauca-web/internal/config"
	xglog "github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/version"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "fecauca",
		Short:         "FECAUCA site server and blog prerender",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to config file (YAML); FECAUCA_* variables override it")

	cmd.AddCommand(
		newServeCmd(opts),
		newPrerenderCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig loads ENV > file > defaults and reconfigures logging with the
// result.
func (o *rootOptions) loadConfig() (config.AppConfig, *config.Loader, error) {
	loader := config.NewLoader(strings.TrimSpace(o.configPath), version.Version)
	cfg, err := loader.Load()
	if err != nil {
		return config.AppConfig{}, nil, err
	}
	xglog.Reconfigure(xglog.Config{
		Level:   cfg.LogLevel,
		Service: "fecauca-web",
		Version: cfg.Version,
	})
	return cfg, loader, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.String())
		},
	}
}
