package goodreads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const bookPageFixture = `
<html><body>
<div class="BookPage">
  <h1 class="Text__title1">The Hobbit, or There and Back Again</h1>
  <div class="ContributorLinksList">
    <span class="ContributorLink__name">J.R.R. Tolkien</span>
  </div>
  <div class="RatingStatistics__rating">4.28</div>
  <div class="RatingStatistics__meta">
    <span data-testid="ratingsCount">3,745,197 ratings</span>
    <span data-testid="reviewsCount">58,812 reviews</span>
  </div>
  <img class="ResponsiveImage" src="https://images.gr-assets.test/hobbit.jpg"/>
  <div data-testid="description">
    <span>Bilbo Baggins is a hobbit who enjoys a comfortable life.</span>
  </div>
</div>
</body></html>`

func TestParseBookDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bookPageFixture))
	require.NoError(t, err)

	meta := parseBookDocument(doc, "5907")

	require.Equal(t, "5907", meta.ExternalID)
	require.Equal(t, "https://www.goodreads.com/book/show/5907", meta.ExternalURL)
	require.Equal(t, "The Hobbit, or There and Back Again", meta.Title)
	require.Equal(t, "J.R.R. Tolkien", meta.Author)
	require.Equal(t, "https://images.gr-assets.test/hobbit.jpg", meta.CoverImageURL)
	require.Equal(t, "Bilbo Baggins is a hobbit who enjoys a comfortable life.", meta.Description)

	require.NotNil(t, meta.AverageRating)
	require.Equal(t, "4.28", meta.AverageRating.String())
	require.NotNil(t, meta.NumRatings)
	require.EqualValues(t, 3745197, *meta.NumRatings)
	require.NotNil(t, meta.NumReviews)
	require.EqualValues(t, 58812, *meta.NumReviews)
}

// older pages carry the author in a different wrapper
func TestParseBookDocumentAuthorFallback(t *testing.T) {
	page := `
<html><body>
  <h1 class="Text__title1">Dune</h1>
  <span class="Text__title3"><a href="/author/show/58">Frank Herbert</a></span>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	meta := parseBookDocument(doc, "234225")

	require.Equal(t, "Dune", meta.Title)
	require.Equal(t, "Frank Herbert", meta.Author)
	require.Nil(t, meta.AverageRating)
	require.Nil(t, meta.NumRatings)
	require.Nil(t, meta.NumReviews)
	require.Empty(t, meta.CoverImageURL)
	require.Empty(t, meta.Description)
}

func TestFetchBookMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/book/show/5907", r.URL.Path)
		_, _ = w.Write([]byte(bookPageFixture))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL, Timeout: time.Second * 5})

	meta, err := client.FetchBookMetadata(context.Background(), "5907")
	require.NoError(t, err)
	require.Equal(t, "The Hobbit, or There and Back Again", meta.Title)
}

func TestFetchBookMetadataErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseUrl: server.URL, Timeout: time.Second * 5})

	_, err := client.FetchBookMetadata(context.Background(), "404404")
	require.Error(t, err)
}
