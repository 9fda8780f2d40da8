package catalog

import (
	"context"
	"log/slog"

	"bookreviews-backend/services/catalog/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DeleteDuplicateBooks collapses books sharing the same normalized
// (title, author) key down to the earliest-created row, removing the
// later rows and their reviews. Returns the number of books deleted.
func (s Service) DeleteDuplicateBooks(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "DeleteDuplicateBooks")
	defer span.End()

	groups, err := s.qry.ListDuplicateBookGroups(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	deleted := 0
	for _, group := range groups {
		books, err := txqry.ListBooksByNormalizedKey(ctx, db.ListBooksByNormalizedKeyParams{
			NormalizedTitle:  group.NormalizedTitle,
			NormalizedAuthor: group.NormalizedAuthor,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}

		// rows come back ordered by id, the first one is the keeper
		for _, book := range books[1:] {
			err := txqry.DeleteReviewsForBook(ctx, book.ID)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
			err = txqry.DeleteBook(ctx, book.ID)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
			slog.InfoContext(ctx, "deleted duplicate book", "id", book.ID, "title", book.Title)
			deleted++
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("deleted", deleted))
	return deleted, nil
}

// NearDuplicatePair is a pair of distinct books whose normalized titles
// are suspiciously similar without being equal.
type NearDuplicatePair struct {
	A          db.Book
	B          db.Book
	Similarity float64
}

// FindNearDuplicateBooks reports book pairs whose normalized titles
// score at or above threshold under Jaro-Winkler similarity. Exact
// matches are excluded since DeleteDuplicateBooks already handles
// those; this is a report for manual cleanup, nothing is modified.
func (s Service) FindNearDuplicateBooks(ctx context.Context, threshold float64) ([]NearDuplicatePair, error) {
	ctx, span := tracer.Start(ctx, "FindNearDuplicateBooks")
	defer span.End()
	span.SetAttributes(attribute.Float64("threshold", threshold))

	books, err := s.qry.ListBooks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var pairs []NearDuplicatePair
	for i := 0; i < len(books); i++ {
		for j := i + 1; j < len(books); j++ {
			if books[i].NormalizedTitle == books[j].NormalizedTitle {
				continue
			}
			similarity := matchr.JaroWinkler(books[i].NormalizedTitle, books[j].NormalizedTitle, false)
			if similarity >= threshold {
				pairs = append(pairs, NearDuplicatePair{
					A:          books[i],
					B:          books[j],
					Similarity: similarity,
				})
			}
		}
	}

	return pairs, nil
}
