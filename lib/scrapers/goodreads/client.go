package goodreads

import (
	"time"

	"bookreviews-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/goodreads")

const baseURL = "https://www.goodreads.com"

// Client fetches the static surfaces of the Goodreads site: the search
// results page and the book metadata page. The dynamically-rendered
// reviews page is handled by Harvester instead.
type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// overrides the production site url, used by tests
	BaseUrl string
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	base := opts.BaseUrl
	if base == "" {
		base = baseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 15
	}

	client := resty.New()
	client.SetBaseURL(base)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/goodreads/http")

	return &Client{http: client}
}
