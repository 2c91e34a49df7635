package storage

import (
	"context"

	"fightstats/models"

	"github.com/cockroachdb/errors"
)

// FighterSink receives full snapshots of the raw fighter buffer
type FighterSink interface {
	WriteFighters(fighters []*models.FighterRecord) error
}

// FighterRepository is the relational store of cleaned fighters
type FighterRepository interface {
	EnsureSchema(ctx context.Context) error
	Replace(ctx context.Context, fighters []*models.CleanedFighter) (LoadResult, error)
	LoadFighters(ctx context.Context) ([]*models.CleanedFighter, error)
	Close()
}

var (
	_ FighterSink       = (*CSVWriter)(nil)
	_ FighterRepository = (*FighterStore)(nil)
)

var (
	// ErrNoInputFiles means a consolidation glob matched nothing
	ErrNoInputFiles = errors.New("no fighter CSVs found")
	// ErrMasterMissing means the master CSV has not been produced yet
	ErrMasterMissing = errors.New("master fighter CSV not found")
)
