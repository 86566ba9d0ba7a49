package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/elys-network/poolboard/internal/config"
	"github.com/elys-network/poolboard/internal/datafetcher"
	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/view"
	"github.com/elys-network/poolboard/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var (
		poolsFile string
		port      string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pool table over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(func(cfg *config.AppConfig) {
				if poolsFile != "" {
					cfg.Data.PoolsFile = poolsFile
				}
				if port != "" {
					cfg.Web.Port = port
				}
			})
			if err != nil {
				return err
			}

			logger.Initialize(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
			defer logger.Close()
			log.Info().Msg("Poolboard starting...")

			store := datafetcher.NewPoolStore(nil)
			if cfg.Data.PoolsFile != "" {
				if err := store.Reload(cfg.Data.PoolsFile); err != nil {
					return err
				}
			} else {
				log.Warn().Msg("No pool file configured; serving an empty table until one is uploaded.")
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			server, err := web.NewWebServer(web.Options{
				Port:        cfg.Web.Port,
				SessionTTL:  cfg.Web.SessionTTL,
				MaxSessions: cfg.Web.MaxSessions,
				View: view.Config{
					PageSize:    cfg.View.PageSize,
					SwapBaseURL: cfg.View.SwapBaseURL,
				},
				Pools:    store,
				Registry: registry,
			})
			if err != nil {
				return err
			}

			go reloadOnHangup(cmd.Context(), store, cfg.Data.PoolsFile)

			log.Info().Str("port", cfg.Web.Port).Str("url", "http://localhost:"+cfg.Web.Port).Msg("Starting pool dashboard")
			if err := server.Start(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("Web server stopped with error")
				return err
			}
			log.Info().Msg("Poolboard stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&poolsFile, "pools", "", "pool snapshot JSON file (overrides config)")
	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides config)")
	return cmd
}

// reloadOnHangup re-reads the pool file on every SIGHUP until ctx is done.
func reloadOnHangup(ctx context.Context, store *datafetcher.PoolStore, path string) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if path == "" {
				log.Warn().Msg("SIGHUP received but no pool file is configured")
				continue
			}
			log.Info().Str("path", path).Msg("SIGHUP received, reloading pools")
			// Reload logs the failure and keeps serving the previous set.
			_ = store.Reload(path)
		}
	}
}
