package ufcstats

import (
	"context"
	"net/url"
	"strings"

	"fightstats/config"
	"fightstats/metrics"
	"fightstats/models"
	"fightstats/storage"
	"fightstats/utils"

	"github.com/cockroachdb/errors"
)

// AllLetters is the default index range: a through z
func AllLetters() []string {
	letters := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}

// Collector walks roster pages letter by letter, scrapes every fighter detail
// page and checkpoints the growing result set to a CSV file.
type Collector struct {
	cfg     config.Config
	fetcher timedFetcher
	limiter *utils.RateLimiter
	stats   *metrics.Scrape
	logger  *utils.Logger
}

// NewCollector wires a collector; stats may be nil
func NewCollector(cfg config.Config, fetcher PageFetcher, stats *metrics.Scrape, logger *utils.Logger) *Collector {
	return &Collector{
		cfg:     cfg,
		fetcher: timedFetcher{next: fetcher, stats: stats},
		limiter: utils.NewRateLimiter(cfg.RequestDelay),
		stats:   stats,
		logger:  logger,
	}
}

// Run scrapes the given letters and returns every accepted record. The
// checkpoint file at outputPath is overwritten with the full buffer every
// CheckpointEvery detail pages and after each letter. Only checkpoint write
// failures and context cancellation stop the run early; the records gathered
// so far are returned either way.
func (c *Collector) Run(ctx context.Context, letters []string, outputPath string) ([]*models.FighterRecord, error) {
	if len(letters) == 0 {
		letters = AllLetters()
	}
	writer := storage.NewCSVWriter(outputPath, c.logger)
	tracker := utils.NewURLTracker()
	var fighters []*models.FighterRecord

	checkpoint := func() error {
		if err := writer.WriteFighters(fighters); err != nil {
			return errors.Wrap(err, "checkpoint")
		}
		if c.stats != nil {
			c.stats.CheckpointsWritten.Inc()
		}
		return nil
	}

	for _, letter := range letters {
		letter = strings.ToLower(strings.TrimSpace(letter))
		if letter == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fighters, errors.CombineErrors(err, checkpoint())
		}
		log := c.logger.With("letter", letter)

		log.Info("Fetching fighter list...")
		urls := c.FighterURLs(ctx, letter)
		log.Info("  Found %d fighter URLs.", len(urls))

		// repeats count towards the cadence too, so no more than
		// CheckpointEvery records are ever held only in memory
		for i, u := range urls {
			if tracker.Add(u) {
				if err := c.limiter.Wait(ctx); err != nil {
					return fighters, errors.CombineErrors(err, checkpoint())
				}
				if f := c.collect(ctx, u, log); f != nil {
					fighters = append(fighters, f)
				}
			} else {
				log.Debug("  Already scraped %s this run", u)
			}

			if (i+1)%c.cfg.CheckpointEvery == 0 {
				log.Info("  Scraped %d/%d fighters...", i+1, len(urls))
				if err := checkpoint(); err != nil {
					return fighters, err
				}
			}
		}

		log.Info("  Done. Total fighters so far: %d", len(fighters))
		if err := checkpoint(); err != nil {
			return fighters, err
		}
	}

	c.logger.Info("Visited %d unique fighter pages, kept %d fighters", tracker.Count(), len(fighters))
	return fighters, nil
}

// FighterURLs fetches one roster page and returns its detail links as
// absolute URLs. A failed fetch is logged and yields no URLs.
func (c *Collector) FighterURLs(ctx context.Context, letter string) []string {
	listingURL := c.cfg.ListingURL(letter)

	var markup string
	err := utils.RetryWithBackoff(ctx, c.cfg.ListingAttempts, func() error {
		var err error
		markup, err = c.fetcher.fetch(ctx, "listing", listingURL)
		return err
	}, c.logger)
	if err != nil {
		c.logger.Error("  Error fetching page for letter '%s': %v", letter, err)
		return nil
	}

	base, _ := url.Parse(listingURL)
	links := ListingURLs(markup)
	urls := make([]string, 0, len(links))
	for _, href := range links {
		urls = append(urls, resolve(base, href))
	}
	return urls
}

// collect scrapes one detail page and returns the record, or nil when the
// page failed or had no usable name
func (c *Collector) collect(ctx context.Context, fighterURL string, log *utils.Logger) *models.FighterRecord {
	fighter, err := c.ScrapeFighter(ctx, fighterURL)
	if err != nil {
		log.Warn("  Error fetching %s: %v", fighterURL, err)
		return nil
	}
	if !usableName(fighter.Name) {
		log.Debug("  Discarding %s: no fighter name", fighterURL)
		if c.stats != nil {
			c.stats.FightersDiscarded.Inc()
		}
		return nil
	}
	if c.stats != nil {
		c.stats.FightersCollected.Inc()
	}
	return fighter
}

// ScrapeFighter fetches and extracts a single detail page
func (c *Collector) ScrapeFighter(ctx context.Context, fighterURL string) (*models.FighterRecord, error) {
	markup, err := c.fetcher.fetch(ctx, "detail", fighterURL)
	if err != nil {
		return nil, err
	}
	return ExtractFighter(markup, fighterURL), nil
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func usableName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && name != placeholder && !strings.EqualFold(name, "unknown")
}
