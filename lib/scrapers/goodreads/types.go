package goodreads

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookMetadata is the structured form of a Goodreads book page. Every
// field except ExternalID may be absent when the page omits it.
type BookMetadata struct {
	ExternalID    string
	ExternalURL   string
	Title         string
	Author        string
	AverageRating *decimal.Decimal
	NumRatings    *int64
	NumReviews    *int64
	CoverImageURL string
	Description   string
}

// ReviewRecord is a single review card parsed off the reviews page.
type ReviewRecord struct {
	ReviewerName string
	Rating       *decimal.Decimal
	Text         string
	Date         *time.Time
}

// sessionKey identifies a review within one harvesting session:
// reviewer, date and the first 100 characters of text. The "load more"
// control re-renders earlier cards, so every batch is parsed in full
// and repeats are dropped on this key.
type sessionKey struct {
	reviewer string
	date     string
	text     string
}

func (r ReviewRecord) sessionKey() sessionKey {
	name := r.ReviewerName
	if name == "" {
		name = "Unknown"
	}
	date := ""
	if r.Date != nil {
		date = r.Date.Format(time.DateOnly)
	}
	text := r.Text
	if len(text) > 100 {
		text = text[:100]
	}
	return sessionKey{reviewer: name, date: date, text: text}
}

func BookURL(externalID string) string {
	return fmt.Sprintf("https://www.goodreads.com/book/show/%s", externalID)
}

func ReviewsURL(externalID string) string {
	return fmt.Sprintf("https://www.goodreads.com/book/show/%s/reviews", externalID)
}
