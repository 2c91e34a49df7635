package ufcstats

import (
	"context"
	"time"

	"fightstats/config"
	"fightstats/metrics"
	"fightstats/utils"

	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

// ErrFetch marks a page that could not be retrieved (transport failure or
// non-2xx status). Callers skip the page and carry on.
var ErrFetch = errors.New("page fetch failed")

// PageFetcher retrieves the raw markup behind a URL
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// NewFetcher builds the fetcher selected by cfg.FetchMode. The returned
// close func releases browser resources and is always safe to call.
func NewFetcher(cfg config.Config, logger *utils.Logger) (PageFetcher, func()) {
	if cfg.FetchMode == "browser" {
		b := NewBrowserFetcher(cfg, logger)
		return b, b.Close
	}
	return NewHTTPFetcher(cfg, logger), func() {}
}

// HTTPFetcher does plain GET requests through resty
type HTTPFetcher struct {
	client *resty.Client
	logger *utils.Logger
}

// NewHTTPFetcher creates a client with the configured timeout and a browser
// user agent. Retries are disabled; the collector decides what to retry.
func NewHTTPFetcher(cfg config.Config, logger *utils.Logger) *HTTPFetcher {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)
	return &HTTPFetcher{client: client, logger: logger}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "GET %s", pageURL), ErrFetch)
	}
	if !res.IsSuccess() {
		return "", errors.Wrapf(ErrFetch, "GET %s: status %d", pageURL, res.StatusCode())
	}
	return res.String(), nil
}

// BrowserFetcher renders pages in headless Chrome, for when the site starts
// serving markup that only exists after scripts run.
type BrowserFetcher struct {
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	timeout     time.Duration
	logger      *utils.Logger
}

// NewBrowserFetcher prepares a headless Chrome allocator; the browser itself
// starts on the first fetch.
func NewBrowserFetcher(cfg config.Config, logger *utils.Logger) *BrowserFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent(cfg.UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &BrowserFetcher{
		allocCtx:    allocCtx,
		cancelAlloc: cancel,
		timeout:     cfg.RequestTimeout,
		logger:      logger,
	}
}

func (b *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	// stop the tab early if the caller gives up
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var markup string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.OuterHTML("html", &markup, chromedp.ByQuery),
	)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "render %s", pageURL), ErrFetch)
	}
	return markup, nil
}

// Close shuts the browser down
func (b *BrowserFetcher) Close() {
	b.cancelAlloc()
}

// timedFetcher records fetch latency and outcome per page kind
type timedFetcher struct {
	next  PageFetcher
	stats *metrics.Scrape
}

func (t timedFetcher) fetch(ctx context.Context, kind, pageURL string) (string, error) {
	start := time.Now()
	markup, err := t.next.Fetch(ctx, pageURL)
	if t.stats != nil {
		t.stats.FetchLatency.Observe(time.Since(start).Seconds())
		if err != nil {
			t.stats.PageFailures.WithLabelValues(kind).Inc()
		} else {
			t.stats.PagesFetched.WithLabelValues(kind).Inc()
		}
	}
	return markup, err
}
