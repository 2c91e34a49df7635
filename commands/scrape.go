package commands

import (
	"context"
	"net/http"
	"time"

	"fightstats/metrics"
	"fightstats/scraper/ufcstats"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	scrapeOutput      *string
	scrapeMetricsAddr *string
)

func init() {
	scrapeOutput = scrapeCmd.Flags().String("output", "", "Checkpoint file to write (defaults to output_file from config).")
	scrapeMetricsAddr = scrapeCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while scraping.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [letters...] [--output <path/to/fighters.csv>]",
	Short: "Scrapes fighter detail pages for the given index letters (all of a-z by default).",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		output := cfg.OutputFile
		if *scrapeOutput != "" {
			output = *scrapeOutput
		}
		addr := cfg.MetricsAddr
		if *scrapeMetricsAddr != "" {
			addr = *scrapeMetricsAddr
		}

		stats := metrics.NewScrape()
		if addr != "" {
			stop := serveMetrics(addr, stats)
			defer stop()
		}

		fetcher, closeFetcher := ufcstats.NewFetcher(cfg, logger)
		defer closeFetcher()

		collector := ufcstats.NewCollector(cfg, fetcher, stats, logger)

		logger.Info("UFC fighter scrape -> %s", output)
		t1 := time.Now()
		fighters, err := collector.Run(ctx, args, output)
		if err != nil {
			if ctx.Err() != nil {
				logger.Warn("Scrape interrupted, %d fighters saved to %s", len(fighters), output)
				return nil
			}
			return err
		}

		logger.Info("Scraping complete: %d fighters saved to %s in %s",
			len(fighters), output, time.Since(t1).Round(time.Second))
		return nil
	},
}

func serveMetrics(addr string, stats *metrics.Scrape) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", stats.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server: %v", err)
		}
	}()
	logger.Info("Serving metrics on %s/metrics", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
