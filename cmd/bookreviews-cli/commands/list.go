package commands

import (
	"bookreviews-backend/lib/serviceutil"
	"bookreviews-backend/services/catalog/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every book in the catalog with its stored review count.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		_, database := openService(cfg)
		defer database.Close()

		ctx := cmd.Context()
		qry := db.New(database)

		books, err := qry.ListBooks(ctx)
		if err != nil {
			serviceutil.Fatal("failed to list books", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Title", "Author", "Rating", "Reviews"})
		for _, book := range books {
			count, err := qry.CountReviewsForBook(ctx, book.ID)
			if err != nil {
				serviceutil.Fatal("failed to count reviews", err)
			}
			t.AppendRow(table.Row{
				book.ID,
				book.Title,
				book.Author.String,
				book.AverageRating.String,
				count,
			})
		}
		t.Render()
	},
}
