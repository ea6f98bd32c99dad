package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"razzie/internal/api"
	"razzie/internal/config"
	"razzie/internal/movie"
)

func newIntervalsCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Show min/max win intervals per producer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *movie.Store) error {
				svc := api.NewAwardsService(store)
				response, err := svc.Intervals(cmd.Context())
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, response)
				}
				if len(response.Min) == 0 && len(response.Max) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No producer has won more than once")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Shortest gap between wins:")
				fmt.Fprintln(cmd.OutOrStdout(), renderIntervalTable(response.Min))
				fmt.Fprintln(cmd.OutOrStdout(), "Longest gap between wins:")
				fmt.Fprintln(cmd.OutOrStdout(), renderIntervalTable(response.Max))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")
	return cmd
}

func renderIntervalTable(entries []api.IntervalEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Producer,
			strconv.Itoa(entry.Interval),
			strconv.Itoa(entry.PreviousWin),
			strconv.Itoa(entry.FollowingWin),
		})
	}
	return renderTable(
		[]string{"Producer", "Interval", "Previous Win", "Following Win"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}
