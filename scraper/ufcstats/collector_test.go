package ufcstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fightstats/metrics"
	"fightstats/models"
	"fightstats/storage"
	"fightstats/utils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSite serves roster pages by letter and fighter detail pages by path.
// Letters without a listing answer 500, unknown detail paths 404.
func newSite(t *testing.T, listings map[string][]string, pages map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/statistics/fighters", func(w http.ResponseWriter, r *http.Request) {
		hrefs, ok := listings[r.URL.Query().Get("char")]
		if !ok {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(listingPage(hrefs...)))
	})
	mux.HandleFunc("/fighter-details/", func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// fakeSite serves three index letters:
//
//	a: 1 (ok), 2 (no name), 3 (404), 4 (ok)
//	b: 1 (already seen), 5 (ok)
//	c: listing page fails
func fakeSite(t *testing.T) *httptest.Server {
	return newSite(t,
		map[string][]string{
			"a": {"/fighter-details/1", "/fighter-details/2", "/fighter-details/3", "/fighter-details/4"},
			"b": {"/fighter-details/1", "/fighter-details/5"},
		},
		map[string]string{
			"/fighter-details/1": detailPage("Alpha One", "", "10-2-0"),
			"/fighter-details/2": detailPage("--", "", "1-0-0"),
			"/fighter-details/4": detailPage("Alpha Four", "The Fourth", "5-5-1"),
			"/fighter-details/5": detailPage("Bravo Five", "", "3-0-0"),
		})
}

// lagFetcher measures, before every detail fetch, how many collected
// fighters are not yet in the checkpoint file
type lagFetcher struct {
	next   PageFetcher
	output string
	stats  *metrics.Scrape
	maxLag int
}

func (l *lagFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if strings.Contains(pageURL, detailPathMarker) {
		saved := 0
		if fighters, err := storage.ReadFighters(l.output); err == nil {
			saved = len(fighters)
		}
		if lag := int(testutil.ToFloat64(l.stats.FightersCollected)) - saved; lag > l.maxLag {
			l.maxLag = lag
		}
	}
	return l.next.Fetch(ctx, pageURL)
}

func TestCollectorRun(t *testing.T) {
	srv := fakeSite(t)
	cfg := testConfig(srv.URL)
	cfg.CheckpointEvery = 2

	logger := utils.NewNopLogger()
	stats := metrics.NewScrape()
	c := NewCollector(cfg, NewHTTPFetcher(cfg, logger), stats, logger)

	out := filepath.Join(t.TempDir(), "data", "fighters.csv")
	fighters, err := c.Run(context.Background(), []string{"a", "B", "c"}, out)
	require.NoError(t, err)

	names := make([]string, len(fighters))
	for i, f := range fighters {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Alpha One", "Alpha Four", "Bravo Five"}, names)
	assert.Equal(t, srv.URL+"/fighter-details/1", fighters[0].SourceURL)

	saved, err := storage.ReadFighters(out)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "Bravo Five", saved[2].Name)
	assert.Equal(t, 1, saved[1].Draws.OrElse(0))

	assert.Equal(t, 3.0, testutil.ToFloat64(stats.FightersCollected))
	assert.Equal(t, 1.0, testutil.ToFloat64(stats.FightersDiscarded))
	assert.Equal(t, 2.0, testutil.ToFloat64(stats.PagesFetched.WithLabelValues("listing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(stats.PageFailures.WithLabelValues("listing")))
	assert.Equal(t, 4.0, testutil.ToFloat64(stats.PagesFetched.WithLabelValues("detail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(stats.PageFailures.WithLabelValues("detail")))
	// a: after page 2, page 4 and end of letter; b: after page 2 and end; c: end
	assert.Equal(t, 6.0, testutil.ToFloat64(stats.CheckpointsWritten))
}

func TestCollectorCancelledWritesCheckpoint(t *testing.T) {
	srv := fakeSite(t)
	cfg := testConfig(srv.URL)
	logger := utils.NewNopLogger()
	c := NewCollector(cfg, NewHTTPFetcher(cfg, logger), nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "fighters.csv")
	fighters, err := c.Run(ctx, []string{"a"}, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fighters)

	saved, err := storage.ReadFighters(out)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestScrapeFighter(t *testing.T) {
	srv := fakeSite(t)
	cfg := testConfig(srv.URL)
	logger := utils.NewNopLogger()
	c := NewCollector(cfg, NewHTTPFetcher(cfg, logger), nil, logger)

	f, err := c.ScrapeFighter(context.Background(), srv.URL+"/fighter-details/4")
	require.NoError(t, err)
	assert.Equal(t, "The Fourth", f.Nickname)
	assert.Equal(t, models.Some(5), f.Wins)

	_, err = c.ScrapeFighter(context.Background(), srv.URL+"/fighter-details/404")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestAllLetters(t *testing.T) {
	letters := AllLetters()
	require.Len(t, letters, 26)
	assert.Equal(t, "a", letters[0])
	assert.Equal(t, "z", letters[25])
}

func TestCollectorRepeatedURLKeepsCheckpointCadence(t *testing.T) {
	srv := newSite(t,
		map[string][]string{
			"a": {"/fighter-details/1", "/fighter-details/2"},
			"b": {"/fighter-details/5", "/fighter-details/1", "/fighter-details/6", "/fighter-details/7"},
		},
		map[string]string{
			"/fighter-details/1": detailPage("Alpha One", "", "1-0-0"),
			"/fighter-details/2": detailPage("Alpha Two", "", "1-0-0"),
			"/fighter-details/5": detailPage("Bravo Five", "", "1-0-0"),
			"/fighter-details/6": detailPage("Bravo Six", "", "1-0-0"),
			"/fighter-details/7": detailPage("Bravo Seven", "", "1-0-0"),
		})
	cfg := testConfig(srv.URL)
	cfg.CheckpointEvery = 2

	logger := utils.NewNopLogger()
	stats := metrics.NewScrape()
	out := filepath.Join(t.TempDir(), "fighters.csv")
	fetcher := &lagFetcher{next: NewHTTPFetcher(cfg, logger), output: out, stats: stats}
	c := NewCollector(cfg, fetcher, stats, logger)

	fighters, err := c.Run(context.Background(), []string{"a", "b"}, out)
	require.NoError(t, err)
	require.Len(t, fighters, 5)

	// the repeat of /1 sits on the second slot of "b" and still triggers a save
	assert.LessOrEqual(t, fetcher.maxLag, cfg.CheckpointEvery-1)
	// a: after 2 and end; b: after the repeat, after 7 and end
	assert.Equal(t, 5.0, testutil.ToFloat64(stats.CheckpointsWritten))

	saved, err := storage.ReadFighters(out)
	require.NoError(t, err)
	assert.Len(t, saved, 5)
}
