package main

import (
	"fmt"

	"github.com/elys-network/poolboard/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	pageSize   int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "poolboard",
		Short:         "Sortable, paginated liquidity pool table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&opts.pageSize, "page-size", 0, "rows added by each show more (overrides config)")

	root.AddCommand(serveCmd(opts))
	root.AddCommand(renderCmd(opts))
	return root
}

// load reads the configuration and applies the command line overrides on top of it.
func (o *rootOptions) load(apply func(cfg *config.AppConfig)) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.pageSize != 0 {
		cfg.View.PageSize = o.pageSize
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
