package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/lib/textutil"
	"bookreviews-backend/services/catalog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog")

// Locator resolves a (title, author) pair to an external book id.
type Locator interface {
	FindBookID(ctx context.Context, title, author string) (string, error)
}

// MetadataFetcher retrieves the structured book page for an external id.
type MetadataFetcher interface {
	FetchBookMetadata(ctx context.Context, externalID string) (*goodreads.BookMetadata, error)
}

// ReviewHarvester collects up to target reviews for an external id.
type ReviewHarvester interface {
	FetchReviews(ctx context.Context, externalID string, target int) ([]goodreads.ReviewRecord, error)
}

type Service struct {
	db      *sql.DB
	qry     *db.Queries
	locator Locator
	books   MetadataFetcher
	reviews ReviewHarvester
	scorer  sentiment.Scorer
}

type ServiceOptions struct {
	Locator Locator
	Books   MetadataFetcher
	Reviews ReviewHarvester
	Scorer  sentiment.Scorer
}

func NewService(database *sql.DB, opts ServiceOptions) Service {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = sentiment.NewVaderScorer()
	}
	return Service{
		db:      database,
		qry:     db.New(database),
		locator: opts.Locator,
		books:   opts.Books,
		reviews: opts.Reviews,
		scorer:  scorer,
	}
}

// SaveReviews persists harvested reviews for a book inside a single
// transaction, skipping reviews whose (reviewer, date) pair is already
// stored. A persistence failure rolls the whole batch back and is
// reported as zero saved rows so that one broken book cannot abort a
// batch run.
func (s Service) SaveReviews(ctx context.Context, bookID int64, records []goodreads.ReviewRecord) int {
	ctx, span := tracer.Start(ctx, "SaveReviews")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("book_id", bookID),
		attribute.Int("records", len(records)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "failed to start review transaction", "book_id", bookID, "err", err)
		return 0
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	now := time.Now().Unix()
	saved := 0

	for _, record := range records {
		reviewDate := ""
		if record.Date != nil {
			reviewDate = record.Date.Format(time.DateOnly)
		}

		// the (reviewer, date) pair is only meaningful when both are
		// known; anonymous or undated reviews always insert
		if record.ReviewerName != "" && reviewDate != "" {
			_, err := txqry.GetReviewByReviewerDate(ctx, db.GetReviewByReviewerDateParams{
				BookID:       bookID,
				ReviewerName: nullString(record.ReviewerName),
				ReviewDate:   nullString(reviewDate),
			})
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				slog.WarnContext(ctx, "failed to check for existing review", "book_id", bookID, "err", err)
				return 0
			}
		}

		label, score := s.scorer.Score(record.Text)

		_, err := txqry.CreateReview(ctx, db.CreateReviewParams{
			BookID:         bookID,
			ReviewerName:   nullString(record.ReviewerName),
			Rating:         nullDecimal(record.Rating),
			ReviewText:     nullString(record.Text),
			ReviewDate:     nullString(reviewDate),
			SentimentScore: score,
			SentimentLabel: string(label),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.WarnContext(ctx, "failed to save review", "book_id", bookID, "err", err)
			return 0
		}
		saved++
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "failed to commit reviews", "book_id", bookID, "err", err)
		return 0
	}

	slog.InfoContext(ctx, "saved reviews", "book_id", bookID, "saved", saved, "skipped", len(records)-saved)
	return saved
}

// ErrEmptyTitle rejects scrape queries that clean down to nothing.
var ErrEmptyTitle = errors.New("empty title")

// ScrapeExternal runs the pipeline for a known external id: fetch
// metadata, upsert the book, harvest and persist reviews. A harvest
// failure still reports the stored book alongside the error.
func (s Service) ScrapeExternal(ctx context.Context, externalID string, maxReviews int) (db.Book, int, error) {
	ctx, span := tracer.Start(ctx, "ScrapeExternal")
	defer span.End()
	span.SetAttributes(attribute.String("external_id", externalID))

	meta, err := s.books.FetchBookMetadata(ctx, externalID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Book{}, 0, err
	}
	stored, err := s.CreateOrUpdateBook(ctx, meta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Book{}, 0, err
	}

	records, err := s.reviews.FetchReviews(ctx, externalID, maxReviews)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return stored, 0, err
	}

	return stored, s.SaveReviews(ctx, stored.ID, records), nil
}

// ScrapeBook refreshes metadata and harvests reviews for one stored
// book, locating its external id first when the row does not carry one.
func (s Service) ScrapeBook(ctx context.Context, book db.Book, maxReviews int) (int, error) {
	ctx, span := tracer.Start(ctx, "ScrapeBook")
	defer span.End()
	span.SetAttributes(attribute.Int64("book_id", book.ID), attribute.String("title", book.Title))

	externalID := book.ExternalID.String
	if externalID == "" {
		id, err := s.locator.FindBookID(ctx, book.Title, book.Author.String)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
		externalID = id
	}

	_, saved, err := s.ScrapeExternal(ctx, externalID, maxReviews)
	return saved, err
}

// ScrapeByQuery runs the full pipeline for a free-form title query:
// locate, fetch metadata, upsert, harvest, persist. Returns ErrNoMatch
// (wrapped) when the query resolves to nothing.
func (s Service) ScrapeByQuery(ctx context.Context, query, author string, maxReviews int) (db.Book, int, error) {
	ctx, span := tracer.Start(ctx, "ScrapeByQuery")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	title := textutil.CleanTitle(query, author)
	if title == "" {
		return db.Book{}, 0, ErrEmptyTitle
	}

	externalID, err := s.locator.FindBookID(ctx, title, author)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Book{}, 0, err
	}

	return s.ScrapeExternal(ctx, externalID, maxReviews)
}

// ScrapeStats summarizes a batch run.
type ScrapeStats struct {
	Books   int
	Failed  int
	Reviews int
}

// ScrapeAll iterates every stored book that carries an external id and
// scrapes it. A failing book is logged and skipped so the batch always
// runs to completion.
func (s Service) ScrapeAll(ctx context.Context, maxReviews int) (ScrapeStats, error) {
	ctx, span := tracer.Start(ctx, "ScrapeAll")
	defer span.End()

	books, err := s.qry.ListBooksWithExternalID(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ScrapeStats{}, err
	}

	var stats ScrapeStats
	for _, book := range books {
		saved, err := s.ScrapeBook(ctx, book, maxReviews)
		if err != nil {
			slog.WarnContext(
				ctx, "failed to scrape book",
				"book_id", book.ID,
				"title", book.Title,
				"err", err,
			)
			stats.Failed++
			continue
		}
		stats.Books++
		stats.Reviews += saved
	}

	slog.InfoContext(
		ctx, "batch scrape finished",
		"books", stats.Books,
		"failed", stats.Failed,
		"reviews", stats.Reviews,
	)
	return stats, nil
}
