package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"bookreviews-backend/lib/scrapers/goodreads"
	"bookreviews-backend/lib/textutil"
	"bookreviews-backend/services/catalog/db"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CreateOrUpdateBook upserts scraped metadata into the catalog. An
// existing row is matched by external id first, then by the normalized
// (title, author) pair, then by normalized title alone when the author
// is unknown. Fields already present on the stored row always win;
// incoming values only fill gaps.
func (s Service) CreateOrUpdateBook(ctx context.Context, meta *goodreads.BookMetadata) (db.Book, error) {
	ctx, span := tracer.Start(ctx, "CreateOrUpdateBook")
	defer span.End()
	span.SetAttributes(
		attribute.String("title", meta.Title),
		attribute.String("external_id", meta.ExternalID),
	)

	normalizedTitle := textutil.NormalizeTitle(meta.Title)
	normalizedAuthor := textutil.NormalizeAuthor(meta.Author)

	existing, found, err := s.findExistingBook(ctx, meta.ExternalID, normalizedTitle, normalizedAuthor)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Book{}, err
	}

	if !found {
		created, err := s.qry.CreateBook(ctx, db.CreateBookParams{
			Title:            meta.Title,
			NormalizedTitle:  normalizedTitle,
			Author:           nullString(meta.Author),
			NormalizedAuthor: nullString(normalizedAuthor),
			Description:      nullString(meta.Description),
			AverageRating:    nullDecimal(meta.AverageRating),
			NumRatings:       nullInt64(meta.NumRatings),
			NumReviews:       nullInt64(meta.NumReviews),
			CoverImageUrl:    nullString(meta.CoverImageURL),
			ExternalID:       nullString(meta.ExternalID),
			ExternalUrl:      nullString(meta.ExternalURL),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return db.Book{}, err
		}
		slog.InfoContext(ctx, "created book", "id", created.ID, "title", created.Title)
		return created, nil
	}

	merged, changed := mergeBook(existing, meta, normalizedTitle, normalizedAuthor)
	if !changed {
		return existing, nil
	}

	err = s.qry.UpdateBook(ctx, db.UpdateBookParams{
		Title:            merged.Title,
		NormalizedTitle:  merged.NormalizedTitle,
		Author:           merged.Author,
		NormalizedAuthor: merged.NormalizedAuthor,
		Description:      merged.Description,
		PublishedDate:    merged.PublishedDate,
		AverageRating:    merged.AverageRating,
		NumRatings:       merged.NumRatings,
		NumReviews:       merged.NumReviews,
		CoverImageUrl:    merged.CoverImageUrl,
		ExternalID:       merged.ExternalID,
		ExternalUrl:      merged.ExternalUrl,
		InfoLink:         merged.InfoLink,
		Isbn:             merged.Isbn,
		ID:               merged.ID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return db.Book{}, err
	}

	slog.InfoContext(ctx, "updated book", "id", merged.ID, "title", merged.Title)
	return merged, nil
}

func (s Service) findExistingBook(ctx context.Context, externalID, normalizedTitle, normalizedAuthor string) (db.Book, bool, error) {
	if externalID != "" {
		book, err := s.qry.GetBookByExternalID(ctx, nullString(externalID))
		if err == nil {
			return book, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return db.Book{}, false, err
		}
	}

	if normalizedAuthor != "" {
		book, err := s.qry.GetBookByNormalizedTitleAuthor(ctx, db.GetBookByNormalizedTitleAuthorParams{
			NormalizedTitle:  normalizedTitle,
			NormalizedAuthor: nullString(normalizedAuthor),
		})
		if err == nil {
			return book, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return db.Book{}, false, err
		}
		return db.Book{}, false, nil
	}

	book, err := s.qry.GetBookByNormalizedTitle(ctx, normalizedTitle)
	if err == nil {
		return book, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return db.Book{}, false, err
	}
	return db.Book{}, false, nil
}

// mergeBook fills empty fields of the stored row from the incoming
// metadata, never overwriting a value that is already set.
func mergeBook(existing db.Book, meta *goodreads.BookMetadata, normalizedTitle, normalizedAuthor string) (db.Book, bool) {
	merged := existing
	changed := false

	if merged.Title == "" && meta.Title != "" {
		merged.Title = meta.Title
		merged.NormalizedTitle = normalizedTitle
		changed = true
	}
	if fillString(&merged.Author, meta.Author) {
		merged.NormalizedAuthor = nullString(normalizedAuthor)
		changed = true
	}
	changed = fillString(&merged.Description, meta.Description) || changed
	changed = fillString(&merged.CoverImageUrl, meta.CoverImageURL) || changed
	changed = fillString(&merged.ExternalID, meta.ExternalID) || changed
	changed = fillString(&merged.ExternalUrl, meta.ExternalURL) || changed

	if meta.AverageRating != nil && !merged.AverageRating.Valid {
		merged.AverageRating = nullDecimal(meta.AverageRating)
		changed = true
	}
	if meta.NumRatings != nil && !merged.NumRatings.Valid {
		merged.NumRatings = nullInt64(meta.NumRatings)
		changed = true
	}
	if meta.NumReviews != nil && !merged.NumReviews.Valid {
		merged.NumReviews = nullInt64(meta.NumReviews)
		changed = true
	}

	return merged, changed
}

func fillString(dst *sql.NullString, value string) bool {
	if value == "" || (dst.Valid && dst.String != "") {
		return false
	}
	*dst = sql.NullString{String: value, Valid: true}
	return true
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
