package services

import (
	"path/filepath"
	"sort"

	"fightstats/models"
	"fightstats/storage"
	"fightstats/utils"

	"github.com/cockroachdb/errors"
)

// ConsolidateResult describes one merge
type ConsolidateResult struct {
	Files   []string
	Rows    int
	Unique  int
	Written string
}

// Consolidator merges partial scrape outputs into one master CSV
type Consolidator struct {
	logger *utils.Logger
}

// NewConsolidator creates a new Consolidator
func NewConsolidator(logger *utils.Logger) *Consolidator {
	return &Consolidator{logger: logger}
}

// Consolidate reads every file matching pattern (in lexical order, skipping
// masterPath itself), keeps the last record seen for each URL, sorts by name
// and overwrites masterPath. Later files win, so name partials so that newer
// runs sort after older ones. Returns storage.ErrNoInputFiles when nothing
// usable matched.
func (c *Consolidator) Consolidate(pattern, masterPath string) (ConsolidateResult, error) {
	var result ConsolidateResult

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return result, errors.Wrapf(err, "bad glob %q", pattern)
	}
	master := filepath.Clean(masterPath)
	for _, m := range matches {
		if filepath.Clean(m) != master {
			result.Files = append(result.Files, m)
		}
	}
	if len(result.Files) == 0 {
		c.logger.Warn("No fighter CSVs found to consolidate (%s)", pattern)
		return result, storage.ErrNoInputFiles
	}
	c.logger.Info("Found %d files: %v", len(result.Files), result.Files)

	var all []*models.FighterRecord
	read := 0
	for _, f := range result.Files {
		fighters, err := storage.ReadFighters(f)
		if err != nil {
			c.logger.Error("Error reading %s: %v", f, err)
			continue
		}
		read++
		all = append(all, fighters...)
	}
	if read == 0 {
		return result, storage.ErrNoInputFiles
	}

	merged := DedupeByURL(all)
	SortByName(merged)
	result.Rows = len(all)
	result.Unique = len(merged)
	c.logger.Info("Combined %d records into %d unique fighters.", result.Rows, result.Unique)

	if err := storage.NewCSVWriter(masterPath, c.logger).WriteFighters(merged); err != nil {
		return result, errors.Wrap(err, "write master")
	}
	result.Written = masterPath
	c.logger.Info("Saved master file to %s", masterPath)
	return result, nil
}

// DedupeByURL keeps only the last occurrence of each source URL, at the
// position of that last occurrence.
func DedupeByURL(fighters []*models.FighterRecord) []*models.FighterRecord {
	last := make(map[string]int, len(fighters))
	for i, f := range fighters {
		last[f.SourceURL] = i
	}
	out := make([]*models.FighterRecord, 0, len(last))
	for i, f := range fighters {
		if last[f.SourceURL] == i {
			out = append(out, f)
		}
	}
	return out
}

// SortByName orders fighters by name; equal names keep their relative order
func SortByName(fighters []*models.FighterRecord) {
	sort.SliceStable(fighters, func(i, j int) bool {
		return fighters[i].Name < fighters[j].Name
	})
}
