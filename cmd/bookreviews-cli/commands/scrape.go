package commands

import (
	"errors"
	"log/slog"
	"regexp"
	"time"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/serviceutil"
	"bookreviews-backend/services/catalog/db"

	"github.com/spf13/cobra"
)

// a bare numeric argument is a Goodreads book id, not a title
var externalIDRegex = regexp.MustCompile(`^\d+$`)

var (
	scrapeAll        *bool
	scrapeAuthor     *string
	scrapeMaxReviews *int
)

func init() {
	scrapeAll = scrapeCmd.Flags().Bool("all", false, "Scrape every stored book instead of a single query.")
	scrapeAuthor = scrapeCmd.Flags().String("author", "", "Author name to disambiguate the title query.")
	scrapeMaxReviews = scrapeCmd.Flags().Int("max-reviews", goodreads.UnboundedReviews, "Stop harvesting after this many reviews per book.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [title or external id] [--all] [--author <name>] [--max-reviews <n>]",
	Short: "Scrapes metadata and reviews for a title query, an external id, or every stored book.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		service, database := openService(cfg)
		defer database.Close()

		ctx := cmd.Context()
		t1 := time.Now()

		if *scrapeAll {
			stats, err := service.ScrapeAll(ctx, *scrapeMaxReviews)
			if err != nil {
				serviceutil.Fatal("failed to scrape books", err)
			}
			slog.Info(
				"scrape finished",
				"books", stats.Books,
				"failed", stats.Failed,
				"reviews", stats.Reviews,
				"seconds", time.Since(t1).Seconds(),
			)
			return
		}

		if len(args) == 0 {
			serviceutil.Fatal("no title given", errors.New("provide a title, an external id, or pass --all"))
		}

		var book db.Book
		var saved int
		var err error
		if externalIDRegex.MatchString(args[0]) {
			book, saved, err = service.ScrapeExternal(ctx, args[0], *scrapeMaxReviews)
		} else {
			book, saved, err = service.ScrapeByQuery(ctx, args[0], *scrapeAuthor, *scrapeMaxReviews)
		}
		if errors.Is(err, goodreads.ErrNoMatch) {
			slog.Warn("no matching book found", "query", args[0])
			return
		}
		if err != nil {
			serviceutil.Fatal("failed to scrape book", err)
		}

		slog.Info(
			"scrape finished",
			"title", book.Title,
			"author", book.Author.String,
			"reviews", saved,
			"seconds", time.Since(t1).Seconds(),
		)
	},
}
