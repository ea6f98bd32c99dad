package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"razzie/internal/api"
	"razzie/internal/config"
	"razzie/internal/movie"
)

func newMoviesCommand(ctx *commandContext) *cobra.Command {
	moviesCmd := &cobra.Command{
		Use:   "movies",
		Short: "Inspect stored award records",
	}
	moviesCmd.AddCommand(newMoviesListCommand(ctx))
	moviesCmd.AddCommand(newMoviesShowCommand(ctx))
	return moviesCmd
}

func newMoviesListCommand(ctx *commandContext) *cobra.Command {
	var (
		yearFlag    int
		winnersFlag bool
		pageFlag    int
		sizeFlag    int
		jsonFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List award records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *movie.Store) error {
				filter := movie.Filter{
					Year:     yearFlag,
					Page:     pageFlag,
					PageSize: sizeFlag,
					Sort:     movie.SortByYear,
				}
				if winnersFlag {
					winner := true
					filter.Winner = &winner
				}

				svc := api.NewMovieService(store)
				response, err := svc.List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, response)
				}
				if len(response.Items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No records")
					return nil
				}
				rendered := renderTable(
					[]string{"ID", "Year", "Title", "Producers", "Winner"},
					buildMovieRows(response.Items),
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				fmt.Fprintf(cmd.OutOrStdout(), "Page %d/%d (%d records)\n",
					response.Pagination.Page, response.Pagination.TotalPages, response.Pagination.Total)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&yearFlag, "year", 0, "Filter by film year")
	cmd.Flags().BoolVar(&winnersFlag, "winners", false, "Show winners only")
	cmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	cmd.Flags().IntVar(&sizeFlag, "page-size", 25, "Records per page")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newMoviesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one award record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			return ctx.withStore(func(cfg *config.Config, store *movie.Store) error {
				svc := api.NewMovieService(store)
				item, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeJSON(cmd, api.MovieResponse{Movie: item})
			})
		},
	}
}

func buildMovieRows(items []api.MovieItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		winner := ""
		if item.Winner {
			winner = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			strconv.Itoa(item.Year),
			item.Title,
			item.Producers,
			winner,
		})
	}
	return rows
}
