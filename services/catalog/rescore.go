package catalog

import (
	"context"
	"log/slog"
	"time"

	"bookreviews-backend/lib/sentiment"
	"bookreviews-backend/services/catalog/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RescoreReviews re-runs sentiment analysis over every stored review
// with the given scorer, rewriting rows whose label or score changed.
// Used when switching scoring strategies after the fact.
func (s Service) RescoreReviews(ctx context.Context, scorer sentiment.Scorer) (int, error) {
	ctx, span := tracer.Start(ctx, "RescoreReviews")
	defer span.End()

	reviews, err := s.qry.ListReviews(ctx)
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

	now := time.Now().Unix()
	updated := 0

	for _, review := range reviews {
		label, score := scorer.Score(review.ReviewText.String)
		if string(label) == review.SentimentLabel && score == review.SentimentScore {
			continue
		}

		err := txqry.UpdateReviewSentiment(ctx, db.UpdateReviewSentimentParams{
			SentimentScore: score,
			SentimentLabel: string(label),
			UpdatedAt:      now,
			ID:             review.ID,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
		updated++
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("updated", updated))
	slog.InfoContext(ctx, "rescored reviews", "total", len(reviews), "updated", updated)
	return updated, nil
}
