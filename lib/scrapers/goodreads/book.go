package goodreads

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"bookreviews-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

var numberTokenRegex = regexp.MustCompile(`[\d,]+`)

// FetchBookMetadata retrieves and parses the canonical book page for
// an external id. Individual fields missing from the page are left
// empty; the call only fails as a whole when the request itself fails.
func (c *Client) FetchBookMetadata(ctx context.Context, externalID string) (*BookMetadata, error) {
	ctx, span := tracer.Start(ctx, "FetchBookMetadata")
	defer span.End()
	span.SetAttributes(attribute.String("external_id", externalID))

	res, err := c.http.R().
		SetContext(ctx).
		Get("/book/show/" + externalID)
	if err != nil {
		return nil, fmt.Errorf("fetch book page: %w", err)
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetch book page: status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse book page: %w", err)
	}

	meta := parseBookDocument(doc, externalID)
	slog.DebugContext(
		ctx, "scraped book metadata",
		"external_id", externalID,
		"title", meta.Title,
		"author", meta.Author,
	)
	return meta, nil
}

func parseBookDocument(doc *goquery.Document, externalID string) *BookMetadata {
	meta := &BookMetadata{
		ExternalID:  externalID,
		ExternalURL: BookURL(externalID),
	}

	meta.Title = htmlutil.Text(doc.Find("h1.Text__title1").First())

	// two alternate page layouts for the author, first match wins
	author := doc.Find("span.ContributorLink__name").First()
	if author.Length() > 0 {
		meta.Author = htmlutil.Text(author)
	} else {
		meta.Author = htmlutil.Text(doc.Find("span.Text__title3 a").First())
	}

	ratingText := htmlutil.Text(doc.Find("div.RatingStatistics__rating").First())
	if ratingText != "" {
		if rating, err := decimal.NewFromString(ratingText); err == nil {
			meta.AverageRating = &rating
		}
	}

	stats := doc.Find("div.RatingStatistics__meta").First()
	if stats.Length() > 0 {
		meta.NumRatings = parseLabeledCount(stats.Find("span[data-testid='ratingsCount']").First())
		meta.NumReviews = parseLabeledCount(stats.Find("span[data-testid='reviewsCount']").First())
	}

	meta.CoverImageURL = doc.Find("img.ResponsiveImage").First().AttrOr("src", "")
	meta.Description = htmlutil.Text(doc.Find("div[data-testid='description']").First())

	return meta
}

// parseLabeledCount extracts the first numeric token from a statistics
// label like "1,048,576 ratings", stripping thousands separators.
func parseLabeledCount(sel *goquery.Selection) *int64 {
	if sel.Length() == 0 {
		return nil
	}
	token := numberTokenRegex.FindString(sel.Text())
	if token == "" {
		return nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(token, ",", ""), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
