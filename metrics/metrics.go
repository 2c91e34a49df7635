// Package metrics exposes Prometheus counters for scrape runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fightstats"

// Scrape counts what a collector run did
type Scrape struct {
	registry *prometheus.Registry

	PagesFetched       *prometheus.CounterVec
	PageFailures       *prometheus.CounterVec
	FightersCollected  prometheus.Counter
	FightersDiscarded  prometheus.Counter
	CheckpointsWritten prometheus.Counter
	FetchLatency       prometheus.Histogram
}

// NewScrape registers the scrape metrics on a fresh registry
func NewScrape() *Scrape {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Scrape{
		registry: reg,
		PagesFetched: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "pages_fetched_total",
			Help:      "Pages retrieved successfully, by page kind (listing or detail).",
		}, []string{"kind"}),
		PageFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "page_failures_total",
			Help:      "Pages skipped after a transport failure or non-2xx status, by page kind.",
		}, []string{"kind"}),
		FightersCollected: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "fighters_collected_total",
			Help:      "Fighter records accepted into the run buffer.",
		}),
		FightersDiscarded: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "fighters_discarded_total",
			Help:      "Detail pages dropped because no fighter name could be recovered.",
		}),
		CheckpointsWritten: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "checkpoints_written_total",
			Help:      "Checkpoint file overwrites.",
		}),
		FetchLatency: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scrape",
			Name:      "fetch_seconds",
			Help:      "Latency of individual page fetches.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (s *Scrape) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
