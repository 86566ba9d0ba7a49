package main

import (
	"fmt"

	"github.com/elys-network/poolboard/internal/config"
	"github.com/elys-network/poolboard/internal/datafetcher"
	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/render"
	"github.com/elys-network/poolboard/internal/types"
	"github.com/elys-network/poolboard/internal/view"
	"github.com/spf13/cobra"
)

func renderCmd(root *rootOptions) *cobra.Command {
	var (
		poolsFile string
		format    string
		sorts     []string
		more      int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the pool table once to stdout",
		Example: `  poolboard render --pools pools.json --sort fees
  poolboard render --pools pools.json --sort volume --sort volume --more 2 --format html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr so stdout only carries the table.
			logger.Initialize(logger.Options{Level: "warn", Console: cmd.ErrOrStderr()})

			cfg, err := root.load(func(cfg *config.AppConfig) {
				if poolsFile != "" {
					cfg.Data.PoolsFile = poolsFile
				}
			})
			if err != nil {
				return err
			}
			logger.Initialize(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.File, Console: cmd.ErrOrStderr()})
			defer logger.Close()

			if cfg.Data.PoolsFile == "" {
				return fmt.Errorf("no pool file given: use --pools or POOLS_FILE")
			}
			if more < 0 {
				return fmt.Errorf("--more must not be negative, got %d", more)
			}

			renderer, err := render.New(format)
			if err != nil {
				return err
			}

			set, err := datafetcher.LoadPoolsFromFile(cfg.Data.PoolsFile)
			if err != nil {
				return err
			}

			v := view.New(view.Config{
				PageSize:    cfg.View.PageSize,
				SwapBaseURL: cfg.View.SwapBaseURL,
			})
			v.SetPools(set)

			// Selections apply in order, so repeating a field toggles its direction.
			for _, name := range sorts {
				field, err := types.ParseSortField(name)
				if err != nil {
					return err
				}
				v.SelectSort(field)
			}
			for i := 0; i < more; i++ {
				if !v.ShowMore() {
					break
				}
			}

			return renderer.Render(cmd.OutOrStdout(), v.Snapshot())
		},
	}
	cmd.Flags().StringVar(&poolsFile, "pools", "", "pool snapshot JSON file (overrides config)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or html")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "select a sort column (liquidity, volume, fees, yield); repeatable")
	cmd.Flags().IntVar(&more, "more", 0, "press show more this many times")
	return cmd
}
