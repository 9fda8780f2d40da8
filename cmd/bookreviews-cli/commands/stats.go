package commands

import (
	"fmt"

	"bookreviews-backend/lib/serviceutil"
	"bookreviews-backend/services/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statsBook *int64

func init() {
	statsBook = statsCmd.Flags().Int64("book", 0, "Restrict the breakdown to one book id.")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats [--book <id>]",
	Short: "Shows the review sentiment breakdown, catalog-wide or for one book.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		var stats catalog.SentimentStats
		var err error
		if *statsBook != 0 {
			stats, err = service.SentimentBreakdownForBook(cmd.Context(), *statsBook)
		} else {
			stats, err = service.SentimentBreakdown(cmd.Context())
		}
		if err != nil {
			serviceutil.Fatal("failed to compute stats", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Books", "Reviews", "Positive", "Negative", "Neutral"})
		t.AppendRow(table.Row{
			stats.Books,
			stats.Reviews,
			fmt.Sprintf("%d (%.1f%%)", stats.Positive, stats.PositivePercent()),
			fmt.Sprintf("%d (%.1f%%)", stats.Negative, stats.NegativePercent()),
			fmt.Sprintf("%d (%.1f%%)", stats.Neutral, stats.NeutralPercent()),
		})
		t.Render()
	},
}
