package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SentimentStats is a review sentiment breakdown, either catalog-wide
// or scoped to one book.
type SentimentStats struct {
	Books    int64
	Reviews  int64
	Positive int64
	Negative int64
	Neutral  int64
}

// PositivePercent and friends report each label's share of the total,
// 0 when there are no reviews.
func (s SentimentStats) PositivePercent() float64 { return percent(s.Positive, s.Reviews) }
func (s SentimentStats) NegativePercent() float64 { return percent(s.Negative, s.Reviews) }
func (s SentimentStats) NeutralPercent() float64  { return percent(s.Neutral, s.Reviews) }

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func (s *SentimentStats) tally(label string, count int64) {
	s.Reviews += count
	switch label {
	case "Positive":
		s.Positive += count
	case "Negative":
		s.Negative += count
	default:
		s.Neutral += count
	}
}

func (s Service) SentimentBreakdown(ctx context.Context) (SentimentStats, error) {
	ctx, span := tracer.Start(ctx, "SentimentBreakdown")
	defer span.End()

	stats := SentimentStats{}

	books, err := s.qry.CountBooks(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SentimentStats{}, err
	}
	stats.Books = books

	rows, err := s.qry.CountReviewsByLabel(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SentimentStats{}, err
	}
	for _, row := range rows {
		stats.tally(row.SentimentLabel, row.Count)
	}

	return stats, nil
}

func (s Service) SentimentBreakdownForBook(ctx context.Context, bookID int64) (SentimentStats, error) {
	ctx, span := tracer.Start(ctx, "SentimentBreakdownForBook")
	defer span.End()
	span.SetAttributes(attribute.Int64("book_id", bookID))

	rows, err := s.qry.CountReviewsByLabelForBook(ctx, bookID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SentimentStats{}, err
	}

	stats := SentimentStats{Books: 1}
	for _, row := range rows {
		stats.tally(row.SentimentLabel, row.Count)
	}
	return stats, nil
}
