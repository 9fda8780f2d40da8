package goodreads

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"bookreviews-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/mazen160/go-random"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// UnboundedReviews disables the target count: harvesting runs until
// the "load more" control disappears.
const UnboundedReviews = -1

const (
	reviewCardSelector = "article.ReviewCard"
	loadMoreSelector   = `span[data-testid="loadMore"]`
)

var ratingLabelRegex = regexp.MustCompile(`Rating\s*([\d.]+)\s*out\s*of\s*5`)

// the reviews page renders dates as localized long dates
const reviewDateLayout = "January 2, 2006"

type HarvesterOptions struct {
	Headless bool
	// bounded wait for the first review card, exceeding it is fatal
	// for the current book. defaults to 10s.
	InitialWait time.Duration
	// bounded wait for the "load more" control, exceeding it means
	// harvesting is complete. defaults to 6s.
	LoadMoreWait time.Duration
}

// Harvester pages through the dynamically-loaded review list of a book
// by repeatedly activating the "load more" control. Each call owns one
// browser session, released before the call returns.
type Harvester struct {
	opts HarvesterOptions
}

func NewHarvester(opts HarvesterOptions) *Harvester {
	if opts.InitialWait == 0 {
		opts.InitialWait = time.Second * 10
	}
	if opts.LoadMoreWait == 0 {
		opts.LoadMoreWait = time.Second * 6
	}
	return &Harvester{opts: opts}
}

func (h *Harvester) FetchReviews(ctx context.Context, externalID string, target int) ([]ReviewRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchReviews")
	defer span.End()
	span.SetAttributes(
		attribute.String("external_id", externalID),
		attribute.Int("target", target),
	)

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"),
	)
	if !h.opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	pageURL := ReviewsURL(externalID)
	err := chromedp.Run(browserCtx, chromedp.Navigate(pageURL))
	if err != nil {
		return nil, fmt.Errorf("open reviews page: %w", err)
	}

	// the initial render must produce at least one card, anything else
	// means the session is unusable for this book
	waitCtx, cancelWait := context.WithTimeout(browserCtx, h.opts.InitialWait)
	err = chromedp.Run(waitCtx, chromedp.WaitVisible(reviewCardSelector, chromedp.ByQuery))
	cancelWait()
	if err != nil {
		return nil, fmt.Errorf("wait for review cards: %w", err)
	}

	seen := map[sessionKey]struct{}{}
	var records []ReviewRecord

	for batch := 1; ; batch++ {
		var pageHTML string
		err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery))
		if err != nil {
			return nil, fmt.Errorf("read page html: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
		if err != nil {
			return nil, fmt.Errorf("parse reviews page: %w", err)
		}

		// every batch re-renders the full list, so the whole page is
		// parsed each round and repeats drop out on the session key
		added := 0
		for _, record := range parseReviewCards(doc) {
			key := record.sessionKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			records = append(records, record)
			added++

			if target != UnboundedReviews && len(records) >= target {
				slog.InfoContext(
					ctx, "review target reached",
					"external_id", externalID,
					"count", len(records),
				)
				return records, nil
			}
		}
		slog.DebugContext(
			ctx, "parsed review batch",
			"external_id", externalID,
			"batch", batch,
			"new", added,
			"total", len(records),
		)

		if !h.loadMoreReviews(browserCtx) {
			break
		}
		// let the appended cards settle before re-parsing
		time.Sleep(politeDelay(time.Second * 2))
	}

	slog.InfoContext(
		ctx, "finished harvesting reviews",
		"external_id", externalID,
		"count", len(records),
	)
	return records, nil
}

// loadMoreReviews activates the "load more" control. Returns false
// when the control is absent or never becomes visible, which marks the
// natural end of the list.
func (h *Harvester) loadMoreReviews(ctx context.Context) bool {
	waitCtx, cancel := context.WithTimeout(ctx, h.opts.LoadMoreWait)
	defer cancel()
	err := chromedp.Run(waitCtx, chromedp.WaitVisible(loadMoreSelector, chromedp.ByQuery))
	if err != nil {
		return false
	}

	// clicking through the CDP can land on an overlay; a scripted
	// click after scrolling retries past transient interception
	for attempt := 0; attempt < 3; attempt++ {
		err = chromedp.Run(ctx,
			chromedp.ScrollIntoView(loadMoreSelector, chromedp.ByQuery),
			chromedp.Sleep(politeDelay(time.Second)),
			chromedp.Evaluate(`document.querySelector('span[data-testid="loadMore"]').click()`, nil),
		)
		if err == nil {
			return true
		}
		time.Sleep(politeDelay(time.Second * 2))
	}
	return false
}

// politeDelay adds jitter so interactions don't fire on an exact
// cadence.
func politeDelay(base time.Duration) time.Duration {
	jitter, err := random.IntRange(0, 1000)
	if err != nil {
		jitter = 500
	}
	return base + time.Duration(jitter)*time.Millisecond
}

func parseReviewCards(doc *goquery.Document) []ReviewRecord {
	var records []ReviewRecord

	doc.Find(reviewCardSelector).Each(func(_ int, card *goquery.Selection) {
		record := ReviewRecord{
			Text: htmlutil.Text(card.Find("section[data-testid='contentContainer'], div[data-testid='contentContainer']").First()),
		}

		record.ReviewerName = htmlutil.Text(card.Find("div[data-testid='name'] a").First())
		if record.ReviewerName == "" {
			record.ReviewerName = "Unknown"
		}

		label := card.Find("span.RatingStars").First().AttrOr("aria-label", "")
		if groups := ratingLabelRegex.FindStringSubmatch(label); len(groups) == 2 {
			if rating, err := decimal.NewFromString(groups[1]); err == nil {
				record.Rating = &rating
			}
		}

		dateText := htmlutil.Text(card.Find("span.Text.Text__body3 a").First())
		if dateText != "" {
			if date, err := time.Parse(reviewDateLayout, dateText); err == nil {
				record.Date = &date
			}
		}

		records = append(records, record)
	})

	return records
}
