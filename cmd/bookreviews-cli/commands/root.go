package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"bookreviews-backend/lib/configutil"
	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/lib/serviceutil"
	"bookreviews-backend/lib/sqliteutil"
	"bookreviews-backend/services/catalog"
	"bookreviews-backend/services/catalog/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	Database sqliteutil.Config `json:"database"`
	// sentiment strategy, "vader" (default) or "lexicon"
	Sentiment string `json:"sentiment"`
	// show the browser window while harvesting reviews
	Headful bool `json:"headful"`
}

var rootCmd = &cobra.Command{
	Use:   "bookreviews-cli",
	Short: "bookreviews-cli scrapes book metadata and reviews into a catalog database.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func openService(cfg Config) (catalog.Service, *sql.DB) {
	database, err := cfg.Database.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}

	client := goodreads.NewClient(goodreads.ClientOptions{})
	service := catalog.NewService(database, catalog.ServiceOptions{
		Locator: client,
		Books:   client,
		Reviews: goodreads.NewHarvester(goodreads.HarvesterOptions{
			Headless: !cfg.Headful,
		}),
		Scorer: sentiment.FromName(cfg.Sentiment),
	})
	return service, database
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
