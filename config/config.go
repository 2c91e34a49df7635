package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FIGHTSTATS_"

// Config holds all application-level configuration. It is built once and
// handed to each component; nothing reads it from global state.
type Config struct {
	// Source site
	BaseURL        string        `koanf:"base_url"`
	UserAgent      string        `koanf:"user_agent"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	FetchMode      string        `koanf:"fetch_mode"` // "http" or "browser"

	// Scraper
	RequestDelay    time.Duration `koanf:"request_delay"` // pause between detail-page fetches
	ListingAttempts int           `koanf:"listing_attempts"`
	CheckpointEvery int           `koanf:"checkpoint_every"`

	// Output
	OutputFile  string `koanf:"output_file"`
	MasterFile  string `koanf:"master_file"`
	PartialGlob string `koanf:"partial_glob"`

	// Database
	DatabaseDriver string `koanf:"database_driver"` // "sqlite" or "postgres"
	DatabaseURL    string `koanf:"database_url"`

	LogLevel    string `koanf:"log_level"`
	MetricsAddr string `koanf:"metrics_addr"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		BaseURL:         "http://www.ufcstats.com",
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		RequestTimeout:  15 * time.Second,
		FetchMode:       "http",
		RequestDelay:    150 * time.Millisecond,
		ListingAttempts: 1,
		CheckpointEvery: 20,
		OutputFile:      "data/fighters.csv",
		MasterFile:      "data/fighters_master.csv",
		PartialGlob:     "data/fighters*.csv",
		DatabaseDriver:  "sqlite",
		DatabaseURL:     "ufc_data.db",
		LogLevel:        "info",
	}
}

// Load layers defaults, an optional YAML file (FIGHTSTATS_CONFIG) and
// FIGHTSTATS_* environment variables, in increasing precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "load config file %s", path)
		}
	}

	// FIGHTSTATS_REQUEST_DELAY -> request_delay
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, errors.Wrap(err, "load config env")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base_url must not be empty")
	}
	if c.CheckpointEvery < 1 {
		return errors.Newf("checkpoint_every must be >= 1, got %d", c.CheckpointEvery)
	}
	if c.ListingAttempts < 1 {
		return errors.Newf("listing_attempts must be >= 1, got %d", c.ListingAttempts)
	}
	if c.RequestDelay < 0 {
		return errors.New("request_delay must not be negative")
	}
	switch c.FetchMode {
	case "http", "browser":
	default:
		return errors.Newf("unknown fetch_mode %q", c.FetchMode)
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return errors.Newf("unknown database_driver %q", c.DatabaseDriver)
	}
	return nil
}

// ListingURL is the roster page for one index letter
func (c Config) ListingURL(letter string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/statistics/fighters?char=" + strings.ToLower(letter) + "&page=all"
}
