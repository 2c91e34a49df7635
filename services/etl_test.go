package services

import (
	"context"
	"path/filepath"
	"testing"

	"fightstats/models"
	"fightstats/storage"
	"fightstats/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *storage.FighterStore {
	t.Helper()
	store, err := storage.OpenFighterStore(context.Background(), "sqlite", ":memory:", utils.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestETLLoadsCleanedMaster(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	master := filepath.Join(dir, "fighters_master.csv")

	heavy := rawFighter("Heavy", 10, 2, 0)
	heavy.WeightLbs = models.Some(265)
	heavy.SLpM = models.Some(4.0)
	light := rawFighter("Light", 8, 8, 1)
	light.WeightLbs = models.Some(155)
	writePartial(t, master, heavy, light, rawFighter("Rookie", 0, 0, 0))

	store := openStore(t)
	res, err := NewETL(store, utils.NewNopLogger()).Run(ctx, master)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	got, err := store.LoadFighters(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Heavyweight", got[0].WeightClass)
	assert.Equal(t, "Lightweight", got[1].WeightClass)
	// light had no SLpM; the only value in the batch is 4.0
	assert.InDelta(t, 4.0, got[1].SLpM, 1e-12)
	assert.Equal(t, models.StanceOrthodox, got[1].Stance)
}

func TestETLMissingMaster(t *testing.T) {
	store := openStore(t)
	_, err := NewETL(store, utils.NewNopLogger()).Run(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, storage.ErrMasterMissing)
}

func TestFindFighter(t *testing.T) {
	roster := []*models.CleanedFighter{
		{Name: "Jon Jones"},
		{Name: "Jon Fitch"},
		{Name: "Israel Adesanya"},
	}

	f, err := FindFighter(roster, "jon  JONES")
	require.NoError(t, err)
	assert.Equal(t, "Jon Jones", f.Name)

	f, err = FindFighter(roster, "adesanya")
	require.NoError(t, err)
	assert.Equal(t, "Israel Adesanya", f.Name)

	_, err = FindFighter(roster, "jon")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = FindFighter(roster, "khabib")
	assert.ErrorIs(t, err, ErrFighterNotFound)
}
