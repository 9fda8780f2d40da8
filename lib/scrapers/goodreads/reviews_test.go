package goodreads

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const reviewsPageFixture = `
<html><body>
<article class="ReviewCard">
  <div data-testid="name"><a href="/user/show/1">Alice Reader</a></div>
  <span class="RatingStars" aria-label="Rating 5 out of 5"></span>
  <span class="Text Text__body3"><a href="/review/show/100">January 14, 2024</a></span>
  <section data-testid="contentContainer">
    <span>An absolute delight from the first page to the last.</span>
  </section>
</article>
<article class="ReviewCard">
  <div data-testid="name"><a href="/user/show/2">Bob</a></div>
  <span class="RatingStars" aria-label="Rating 2 out of 5"></span>
  <span class="Text Text__body3"><a href="/review/show/101">March 3, 2023</a></span>
  <section data-testid="contentContainer">
    <span>Dragged in the middle. Not for me.</span>
  </section>
</article>
<article class="ReviewCard">
  <span class="RatingStars" aria-label="Rating 4.5 out of 5"></span>
  <section data-testid="contentContainer">
    <span>No name, no date, still a review.</span>
  </section>
</article>
</body></html>`

func reviewsFixtureDocument(t *testing.T) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(reviewsPageFixture))
	require.NoError(t, err)
	return doc
}

func TestParseReviewCards(t *testing.T) {
	records := parseReviewCards(reviewsFixtureDocument(t))

	rating5 := decimal.NewFromInt(5)
	rating2 := decimal.NewFromInt(2)
	rating45 := decimal.New(45, -1)
	date1 := time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC)

	// the last card has no reviewer block or date link, so it falls
	// back to "Unknown" and a nil date; its fractional star rating
	// still parses
	expected := []ReviewRecord{
		{
			ReviewerName: "Alice Reader",
			Rating:       &rating5,
			Text:         "An absolute delight from the first page to the last.",
			Date:         &date1,
		},
		{
			ReviewerName: "Bob",
			Rating:       &rating2,
			Text:         "Dragged in the middle. Not for me.",
			Date:         &date2,
		},
		{
			ReviewerName: "Unknown",
			Rating:       &rating45,
			Text:         "No name, no date, still a review.",
		},
	}

	diff := cmp.Diff(
		expected,
		records,
		cmp.Comparer(func(a, b decimal.Decimal) bool {
			return a.Equal(b)
		}),
	)
	if diff != "" {
		t.Fatal(diff)
	}
}

// parsing the same page twice must not duplicate anything once the
// session key filter is applied, mirroring what happens when "load
// more" re-renders earlier cards.
func TestSessionKeyDeduplicatesRepeatedBatches(t *testing.T) {
	seen := map[sessionKey]struct{}{}
	var records []ReviewRecord

	for i := 0; i < 2; i++ {
		for _, record := range parseReviewCards(reviewsFixtureDocument(t)) {
			key := record.sessionKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			records = append(records, record)
		}
	}

	require.Len(t, records, 3)
}

func TestSessionKeyTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 150)
	a := ReviewRecord{ReviewerName: "Carol", Text: long}
	b := ReviewRecord{ReviewerName: "Carol", Text: long + "tail beyond the window"}

	require.Equal(t, a.sessionKey(), b.sessionKey())
	require.Len(t, a.sessionKey().text, 100)
}

func TestNewHarvesterDefaults(t *testing.T) {
	h := NewHarvester(HarvesterOptions{Headless: true})
	require.Equal(t, time.Second*10, h.opts.InitialWait)
	require.Equal(t, time.Second*6, h.opts.LoadMoreWait)
}
