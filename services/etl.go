package services

import (
	"context"
	"os"

	"fightstats/storage"
	"fightstats/utils"

	"github.com/cockroachdb/errors"
)

// ETL loads the master CSV into the relational store: extract, clean, then
// a full-refresh replace of both tables.
type ETL struct {
	cleaner *DataCleaner
	repo    storage.FighterRepository
	logger  *utils.Logger
}

// NewETL creates a new ETL
func NewETL(repo storage.FighterRepository, logger *utils.Logger) *ETL {
	return &ETL{
		cleaner: NewDataCleaner(logger),
		repo:    repo,
		logger:  logger,
	}
}

// Run returns storage.ErrMasterMissing without touching the store when
// masterPath does not exist. If the process dies mid-load the transaction
// never commits and the previous contents survive.
func (e *ETL) Run(ctx context.Context, masterPath string) (storage.LoadResult, error) {
	if err := e.repo.EnsureSchema(ctx); err != nil {
		return storage.LoadResult{}, err
	}

	if _, err := os.Stat(masterPath); err != nil {
		if os.IsNotExist(err) {
			e.logger.Error("%s not found", masterPath)
			return storage.LoadResult{}, errors.Wrap(storage.ErrMasterMissing, masterPath)
		}
		return storage.LoadResult{}, errors.Wrapf(err, "stat %s", masterPath)
	}

	e.logger.Info("Extracting data from %s...", masterPath)
	raw, err := storage.ReadFighters(masterPath)
	if err != nil {
		return storage.LoadResult{}, err
	}

	e.logger.Info("Cleaning and transforming %d records...", len(raw))
	cleaned := e.cleaner.Clean(raw)

	e.logger.Info("Loading data into the store...")
	return e.repo.Replace(ctx, cleaned)
}
