package catalog

import (
	"context"
	"testing"
	"time"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/lib/testutil"
	"bookreviews-backend/services/catalog/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeLocator struct {
	id  string
	err error
}

func (f fakeLocator) FindBookID(ctx context.Context, title, author string) (string, error) {
	return f.id, f.err
}

type fakeFetcher struct {
	meta *goodreads.BookMetadata
	err  error
}

func (f fakeFetcher) FetchBookMetadata(ctx context.Context, externalID string) (*goodreads.BookMetadata, error) {
	return f.meta, f.err
}

type fakeHarvester struct {
	records []goodreads.ReviewRecord
	err     error
}

func (f fakeHarvester) FetchReviews(ctx context.Context, externalID string, target int) ([]goodreads.ReviewRecord, error) {
	return f.records, f.err
}

func decimalPtr(t *testing.T, value string) *decimal.Decimal {
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return &d
}

func int64Ptr(n int64) *int64 {
	return &n
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func hobbitMetadata(t *testing.T) *goodreads.BookMetadata {
	return &goodreads.BookMetadata{
		ExternalID:    "5907",
		ExternalURL:   "https://www.goodreads.com/book/show/5907",
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		AverageRating: decimalPtr(t, "4.28"),
		NumRatings:    int64Ptr(3745197),
		NumReviews:    int64Ptr(58812),
		CoverImageURL: "https://images.gr-assets.test/hobbit.jpg",
		Description:   "Bilbo Baggins is a hobbit.",
	}
}

func hobbitReviews() []goodreads.ReviewRecord {
	rating5, _ := decimal.NewFromString("5")
	rating2, _ := decimal.NewFromString("2")
	return []goodreads.ReviewRecord{
		{
			ReviewerName: "Alice Reader",
			Rating:       &rating5,
			Text:         "I love this book, it's great",
			Date:         timePtr(time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)),
		},
		{
			ReviewerName: "Bob",
			Rating:       &rating2,
			Text:         "Terrible, boring, and confusing",
			Date:         timePtr(time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func TestScrapeByQuery(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{
		Locator: fakeLocator{id: "5907"},
		Books:   fakeFetcher{meta: hobbitMetadata(t)},
		Reviews: fakeHarvester{records: hobbitReviews()},
		Scorer:  sentiment.NewLexiconScorer(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	book, saved, err := service.ScrapeByQuery(ctx, "The Hobbit by J.R.R. Tolkien", "", goodreads.UnboundedReviews)
	require.NoError(t, err)
	require.Equal(t, 2, saved)
	require.Equal(t, "The Hobbit", book.Title)
	require.Equal(t, "the hobbit", book.NormalizedTitle)
	require.Equal(t, "J.R.R. Tolkien", book.Author.String)
	require.Equal(t, "5907", book.ExternalID.String)
	require.Equal(t, "4.28", book.AverageRating.String)

	reviews, err := db.New(setup.DB).ListReviewsForBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, "Positive", reviews[0].SentimentLabel)
	require.Equal(t, float64(2), reviews[0].SentimentScore)
	require.Equal(t, "2024-01-14", reviews[0].ReviewDate.String)
	require.Equal(t, "Negative", reviews[1].SentimentLabel)
	require.Equal(t, float64(-3), reviews[1].SentimentScore)

	// a second run of the same pipeline must be a no-op: the book
	// matches on external id and every review matches on its stored
	// (reviewer, date) pair
	book2, saved2, err := service.ScrapeByQuery(ctx, "The Hobbit by J.R.R. Tolkien", "", goodreads.UnboundedReviews)
	require.NoError(t, err)
	require.Equal(t, 0, saved2)
	require.Equal(t, book.ID, book2.ID)

	count, err := db.New(setup.DB).CountBooks(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestScrapeByQueryNoMatch(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{
		Locator: fakeLocator{err: goodreads.ErrNoMatch},
		Books:   fakeFetcher{},
		Reviews: fakeHarvester{},
		Scorer:  sentiment.NewLexiconScorer(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, _, err := service.ScrapeByQuery(ctx, "No Such Book", "", goodreads.UnboundedReviews)
	require.ErrorIs(t, err, goodreads.ErrNoMatch)

	count, err := db.New(setup.DB).CountBooks(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestSaveReviewsAnonymousAlwaysInserts(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	book, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)

	// no date, so the durable (reviewer, date) check cannot apply and
	// both passes insert
	records := []goodreads.ReviewRecord{
		{ReviewerName: "Unknown", Text: "No name, no date, still a review."},
	}
	require.Equal(t, 1, service.SaveReviews(ctx, book.ID, records))
	require.Equal(t, 1, service.SaveReviews(ctx, book.ID, records))

	count, err := db.New(setup.DB).CountReviewsForBook(ctx, book.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestScrapeAllContinuesPastFailures(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	seed := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})
	_, err := seed.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)
	_, err = seed.CreateOrUpdateBook(ctx, &goodreads.BookMetadata{
		ExternalID: "234225",
		Title:      "Dune",
		Author:     "Frank Herbert",
	})
	require.NoError(t, err)

	// the fetcher only ever answers with the hobbit, the harvester
	// fails every time; both books fail but the batch still finishes
	service := NewService(setup.DB, ServiceOptions{
		Locator: fakeLocator{id: "5907"},
		Books:   fakeFetcher{meta: hobbitMetadata(t)},
		Reviews: fakeHarvester{err: context.DeadlineExceeded},
		Scorer:  sentiment.NewLexiconScorer(),
	})

	stats, err := service.ScrapeAll(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Books)
	require.Equal(t, 2, stats.Failed)
	require.Equal(t, 0, stats.Reviews)
}

type stubScorer struct {
	label sentiment.Label
	score float64
}

func (s stubScorer) Score(text string) (sentiment.Label, float64) {
	return s.label, s.score
}

func TestRescoreReviews(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	book, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)
	require.Equal(t, 2, service.SaveReviews(ctx, book.ID, hobbitReviews()))

	updated, err := service.RescoreReviews(ctx, stubScorer{label: sentiment.LabelNeutral, score: 0.5})
	require.NoError(t, err)
	require.Equal(t, 2, updated)

	reviews, err := db.New(setup.DB).ListReviewsForBook(ctx, book.ID)
	require.NoError(t, err)
	for _, review := range reviews {
		require.Equal(t, "Neutral", review.SentimentLabel)
		require.Equal(t, 0.5, review.SentimentScore)
	}

	// already at the stub's values, nothing left to rewrite
	updated, err = service.RescoreReviews(ctx, stubScorer{label: sentiment.LabelNeutral, score: 0.5})
	require.NoError(t, err)
	require.Equal(t, 0, updated)
}

func TestSentimentBreakdown(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	book, err := service.CreateOrUpdateBook(ctx, hobbitMetadata(t))
	require.NoError(t, err)

	records := append(hobbitReviews(), goodreads.ReviewRecord{
		ReviewerName: "Carol",
		Text:         "It is a book with pages.",
		Date:         timePtr(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.Equal(t, 3, service.SaveReviews(ctx, book.ID, records))

	stats, err := service.SentimentBreakdown(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Books)
	require.EqualValues(t, 3, stats.Reviews)
	require.EqualValues(t, 1, stats.Positive)
	require.EqualValues(t, 1, stats.Negative)
	require.EqualValues(t, 1, stats.Neutral)
	require.InDelta(t, 33.3, stats.PositivePercent(), 0.1)

	perBook, err := service.SentimentBreakdownForBook(ctx, book.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, perBook.Books)
	require.EqualValues(t, 3, perBook.Reviews)

	empty, err := service.SentimentBreakdownForBook(ctx, book.ID+1)
	require.NoError(t, err)
	require.EqualValues(t, 0, empty.Reviews)
	require.Zero(t, empty.PositivePercent())
}

func TestScrapeByQueryEmptyTitle(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, ServiceOptions{Scorer: sentiment.NewLexiconScorer()})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, _, err := service.ScrapeByQuery(ctx, "   ", "", goodreads.UnboundedReviews)
	require.ErrorIs(t, err, ErrEmptyTitle)
}
