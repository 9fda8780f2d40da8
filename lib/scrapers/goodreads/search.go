package goodreads

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"bookreviews-backend/lib/htmlutil"
	"bookreviews-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// ErrNoMatch is returned when the search surface yields no candidate
// scoring above zero. It is an expected result, not a failure.
var ErrNoMatch = errors.New("no matching book found")

var bookShowRegex = regexp.MustCompile(`/book/show/(\d+)`)

// substrings marking derivative works that must never be selected
var derivativeMarkers = []string{"study guide", "summary"}

// FindBookID searches Goodreads for (title, author) and returns the
// external id of the best-matching candidate. Network and parse
// failures degrade to ErrNoMatch; the locator never fails hard.
func (c *Client) FindBookID(ctx context.Context, title, author string) (string, error) {
	ctx, span := tracer.Start(ctx, "FindBookID")
	defer span.End()

	searchQuery := title
	if author != "" {
		searchQuery = title + " " + author
	}
	span.SetAttributes(attribute.String("query", searchQuery))
	slog.DebugContext(ctx, "searching goodreads", "query", searchQuery)

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", searchQuery).
		Get("/search")
	if err != nil {
		slog.WarnContext(ctx, "goodreads search request failed", "err", err)
		return "", ErrNoMatch
	}
	if res.StatusCode() >= 400 {
		slog.WarnContext(ctx, "goodreads search returned an error status", "status", res.StatusCode())
		return "", ErrNoMatch
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		slog.WarnContext(ctx, "failed to parse search results page", "err", err)
		return "", ErrNoMatch
	}

	id, score := matchSearchDocument(doc, title, author)
	if id == "" || score <= 0 {
		slog.InfoContext(ctx, "no good match found", "query", searchQuery)
		return "", ErrNoMatch
	}

	slog.InfoContext(ctx, "best match found", "external_id", id, "score", score)
	return id, nil
}

type searchCandidate struct {
	externalID string
	title      string
	author     string
}

// matchSearchDocument ranks candidate rows of a search results page.
// Exact normalized equality is worth 10 per field, substring
// containment 5; ties keep the first-seen candidate.
func matchSearchDocument(doc *goquery.Document, title, author string) (string, int) {
	targetTitle := textutil.NormalizeTitle(title)
	targetAuthor := textutil.NormalizeAuthor(author)

	bestID := ""
	bestScore := -1

	for _, candidate := range parseSearchResults(doc) {
		score := 0

		candidateTitle := textutil.NormalizeTitle(candidate.title)
		if targetTitle == candidateTitle {
			score += 10
		} else if strings.Contains(candidateTitle, targetTitle) {
			score += 5
		}

		candidateAuthor := textutil.NormalizeAuthor(candidate.author)
		if targetAuthor != "" && targetAuthor == candidateAuthor {
			score += 10
		} else if targetAuthor != "" && strings.Contains(candidateAuthor, targetAuthor) {
			score += 5
		}

		if score > bestScore {
			bestScore = score
			bestID = candidate.externalID
		}
	}

	return bestID, bestScore
}

func parseSearchResults(doc *goquery.Document) []searchCandidate {
	var candidates []searchCandidate

	doc.Find("table.tableList tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a.bookTitle").First()
		if link.Length() == 0 {
			return
		}

		title := htmlutil.Text(link)
		lower := strings.ToLower(title)
		for _, marker := range derivativeMarkers {
			if strings.Contains(lower, marker) {
				return
			}
		}

		groups := bookShowRegex.FindStringSubmatch(link.AttrOr("href", ""))
		if len(groups) < 2 {
			return
		}

		candidates = append(candidates, searchCandidate{
			externalID: groups[1],
			title:      title,
			author:     htmlutil.Text(row.Find("a.authorName").First()),
		})
	})

	return candidates
}
