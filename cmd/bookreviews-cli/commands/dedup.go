package commands

import (
	"fmt"
	"log/slog"

	"bookreviews-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	dedupReport    *bool
	dedupThreshold *float64
)

func init() {
	dedupReport = dedupCmd.Flags().Bool("report", false, "Only report near-duplicate titles instead of deleting exact duplicates.")
	dedupThreshold = dedupCmd.Flags().Float64("threshold", 0.92, "Similarity cutoff for the near-duplicate report.")
	rootCmd.AddCommand(dedupCmd)
}

var dedupCmd = &cobra.Command{
	Use:   "dedup [--report] [--threshold <0..1>]",
	Short: "Collapses duplicate books, or reports near-duplicate titles for manual cleanup.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		ctx := cmd.Context()

		if *dedupReport {
			pairs, err := service.FindNearDuplicateBooks(ctx, *dedupThreshold)
			if err != nil {
				serviceutil.Fatal("failed to find near-duplicates", err)
			}

			t := newTable()
			t.AppendHeader(table.Row{"ID", "Title", "ID", "Title", "Similarity"})
			for _, pair := range pairs {
				t.AppendRow(table.Row{
					pair.A.ID,
					pair.A.Title,
					pair.B.ID,
					pair.B.Title,
					fmt.Sprintf("%.3f", pair.Similarity),
				})
			}
			t.Render()
			return
		}

		deleted, err := service.DeleteDuplicateBooks(ctx)
		if err != nil {
			serviceutil.Fatal("failed to delete duplicate books", err)
		}
		slog.Info("dedup finished", "deleted", deleted)
	},
}
