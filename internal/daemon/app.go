// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/config"
	"github.com/fecauca/fecauca-web/internal/log"
)

// BlogReloader is the part of blog.Service a config reload touches.
type BlogReloader interface {
	SetSource(src blog.Source)
}

// App owns the long-lived runtime lifecycle (config watcher, reload wiring)
// and delegates server management to Manager.
type App struct {
	logger       zerolog.Logger
	manager      Manager
	cfgHolder    *config.Holder
	blog         BlogReloader
	reloadSignal os.Signal
}

// NewApp creates a new App orchestrator. cfgHolder and blog may be nil.
func NewApp(logger zerolog.Logger, manager Manager, cfgHolder *config.Holder, blog BlogReloader) *App {
	return &App{
		logger:       logger,
		manager:      manager,
		cfgHolder:    cfgHolder,
		blog:         blog,
		reloadSignal: syscall.SIGHUP,
	}
}

// Run starts all owned background subsystems and blocks until ctx is cancelled or a fatal error occurs.
func (a *App) Run(ctx context.Context) error {
	if a.manager == nil {
		return ErrMissingManager
	}

	g, ctx := errgroup.WithContext(ctx)

	// Config watcher is best-effort: startup should not fail if watcher cannot be started.
	if a.cfgHolder != nil {
		if err := a.cfgHolder.StartWatcher(ctx); err != nil {
			a.logger.Warn().Err(err).Str(log.FieldEvent, "config.watcher_start_failed").Msg("failed to start config watcher")
		}
		defer a.cfgHolder.Stop()

		applyCh := make(chan config.AppConfig, 1)
		a.cfgHolder.RegisterListener(applyCh)
		current := a.cfgHolder.Get()

		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case next := <-applyCh:
					a.apply(current, next)
					current = next
				}
			}
		})
	}

	if a.cfgHolder != nil && a.reloadSignal != nil {
		g.Go(func() error {
			hupChan := make(chan os.Signal, 1)
			signal.Notify(hupChan, a.reloadSignal)
			defer signal.Stop(hupChan)

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-hupChan:
					a.logger.Info().
						Str(log.FieldEvent, "config.reload_signal").
						Str("signal", a.reloadSignal.String()).
						Msg("received reload signal, reloading config")

					if err := a.cfgHolder.Reload(context.Background()); err != nil {
						a.logger.Warn().
							Err(err).
							Str(log.FieldEvent, "config.reload_failed").
							Msg("config reload failed")
					}
				}
			}
		})
	}

	g.Go(func() error {
		err := a.manager.Start(ctx)
		if err != nil {
			_ = a.manager.Shutdown(context.Background())
		}
		return err
	})

	return g.Wait()
}

// apply pushes the settings that can change without a restart. Listener
// addresses, cache backend and tracing need a restart and are only logged.
func (a *App) apply(prev, next config.AppConfig) {
	if next.LogLevel != prev.LogLevel {
		log.SetLevel(next.LogLevel)
	}
	if a.blog != nil && next.Blog != prev.Blog {
		a.blog.SetSource(SourceFor(next.Blog))
		a.logger.Info().
			Str(log.FieldEvent, "blog.source_reloaded").
			Bool("sheet", next.Blog.SheetURL != "").
			Msg("blog source replaced")
	}
	if next.Server.Listen != prev.Server.Listen ||
		next.Server.MetricsListen != prev.Server.MetricsListen ||
		next.Cache != prev.Cache ||
		next.Tracing != prev.Tracing {
		a.logger.Warn().
			Str(log.FieldEvent, "config.restart_required").
			Msg("some changed settings take effect after a restart")
	}
}
