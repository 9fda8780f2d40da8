package commands

import (
	"errors"
	"log/slog"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchAuthor *string

func init() {
	searchAuthor = searchCmd.Flags().String("author", "", "Author name to disambiguate the title query.")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <title> [--author <name>]",
	Short: "Resolves a title query against Goodreads and shows the matched book, without storing anything.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := goodreads.NewClient(goodreads.ClientOptions{})
		ctx := cmd.Context()

		id, err := client.FindBookID(ctx, args[0], *searchAuthor)
		if errors.Is(err, goodreads.ErrNoMatch) {
			slog.Warn("no matching book found", "query", args[0])
			return
		}
		if err != nil {
			serviceutil.Fatal("failed to search", err)
		}

		meta, err := client.FetchBookMetadata(ctx, id)
		if err != nil {
			serviceutil.Fatal("failed to fetch book metadata", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRow(table.Row{"External ID", meta.ExternalID})
		t.AppendRow(table.Row{"Title", meta.Title})
		t.AppendRow(table.Row{"Author", meta.Author})
		if meta.AverageRating != nil {
			t.AppendRow(table.Row{"Average Rating", meta.AverageRating.String()})
		}
		if meta.NumRatings != nil {
			t.AppendRow(table.Row{"Ratings", *meta.NumRatings})
		}
		if meta.NumReviews != nil {
			t.AppendRow(table.Row{"Reviews", *meta.NumReviews})
		}
		t.AppendRow(table.Row{"URL", meta.ExternalURL})
		t.Render()
	},
}
