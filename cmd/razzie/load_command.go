package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"razzie/internal/config"
	"razzie/internal/ingest"
	"razzie/internal/movie"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load <csv-file>",
		Short: "Bulk-load award records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *movie.Store) error {
				path, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				loader := ingest.NewLoader(store, logger, cfg.DelimiterRune())
				summary, err := loader.LoadFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d records (%d skipped)\n", summary.Loaded, summary.Skipped)
				return nil
			})
		},
	}
}
