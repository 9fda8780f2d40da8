package catalog

import (
	"context"
	"testing"
	"time"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/lib/testutil"
	"bookreviews-backend/services/catalog/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestCreateOrUpdateBookFillsOnlyGaps(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	// first pass only knows the title and author
	first, err := service.CreateOrUpdateBook(ctx, &goodreads.BookMetadata{
		Title:  "The Hobbit",
		Author: "J.R.R. Tolkien",
	})
	require.NoError(t, err)
	require.False(t, first.Description.Valid)
	require.False(t, first.ExternalID.Valid)

	// second pass carries the full page; it must land on the same row
	// via the normalized (title, author) pair and fill the gaps
	second, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "5907", second.ExternalID.String)
	require.Equal(t, "Bilbo Baggins is a hobbit.", second.Description.String)
	require.Equal(t, "4.28", second.AverageRating.String)
	require.EqualValues(t, 3745197, second.NumRatings.Int64)

	count, err := db.New(setup.DB).CountBooks(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestCreateOrUpdateBookKeepsExistingValues(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	first, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)

	// a later scrape with a different description must not overwrite
	// what is already stored
	conflicting := hobbitMetadata(t)
	conflicting.Description = "A different blurb from a different page."
	conflicting.CoverImageURL = "https://images.gr-assets.test/other.jpg"

	second, err := service.CreateOrUpdateBook(ctx, conflicting)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Bilbo Baggins is a hobbit.", second.Description.String)
	require.Equal(t, "https://images.gr-assets.test/hobbit.jpg", second.CoverImageUrl.String)
}

func TestCreateOrUpdateBookMatchesByTitleWhenAuthorUnknown(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	first, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)

	second, err := service.CreateOrUpdateBook(ctx, &goodreads.BookMetadata{
		Title: "The Hobbit (Illustrated)",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestCreateOrUpdateBookDistinctAuthorsStaySeparate(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	first, err := service.CreateOrUpdateBook(ctx, &goodreads.BookMetadata{
		Title:  "Collected Stories",
		Author: "Author One",
	})
	require.NoError(t, err)

	second, err := service.CreateOrUpdateBook(ctx, &goodreads.BookMetadata{
		Title:  "Collected Stories",
		Author: "Author Two",
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	count, err := db.New(setup.DB).CountBooks(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}
