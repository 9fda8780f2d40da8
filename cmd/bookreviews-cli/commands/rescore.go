package commands

import (
	"log/slog"

	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var rescoreStrategy *string

func init() {
	rescoreStrategy = rescoreCmd.Flags().String("strategy", "vader", "Sentiment strategy to apply, \"vader\" or \"lexicon\".")
	rootCmd.AddCommand(rescoreCmd)
}

var rescoreCmd = &cobra.Command{
	Use:   "rescore [--strategy <vader|lexicon>]",
	Short: "Re-runs sentiment analysis over every stored review.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		updated, err := service.RescoreReviews(cmd.Context(), sentiment.FromName(*rescoreStrategy))
		if err != nil {
			serviceutil.Fatal("failed to rescore reviews", err)
		}
		slog.Info("rescore finished", "strategy", *rescoreStrategy, "updated", updated)
	},
}
