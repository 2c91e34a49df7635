package services

import (
	"testing"

	"fightstats/models"
	"fightstats/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawFighter(name string, w, l, d int) *models.FighterRecord {
	r := &models.FighterRecord{Name: name, SourceURL: "u/" + name}
	r.SetRecord(models.Some(w), models.Some(l), models.Some(d))
	return r
}

func TestCleanFiltersUnusableRecords(t *testing.T) {
	noRecord := &models.FighterRecord{Name: "NoRecord", SourceURL: "u/none"}
	zero := rawFighter("Zero", 0, 0, 0)
	drawsOnly := rawFighter("Draws", 0, 0, 1)
	noDraws := &models.FighterRecord{Name: "NoDraws", SourceURL: "u/nd", Wins: models.Some(3), Losses: models.Some(1)}

	out := NewDataCleaner(utils.NewNopLogger()).Clean([]*models.FighterRecord{noRecord, zero, drawsOnly, noDraws})

	require.Len(t, out, 2)
	assert.Equal(t, "Draws", out[0].Name)
	assert.Equal(t, 1, out[0].TotalFights)
	assert.Zero(t, out[0].WinRate)

	assert.Equal(t, "NoDraws", out[1].Name)
	assert.Equal(t, 0, out[1].Draws)
	assert.Equal(t, 4, out[1].TotalFights)
	assert.InDelta(t, 0.75, out[1].WinRate, 1e-12)
}

func TestCleanImputesBatchMedian(t *testing.T) {
	a := rawFighter("A", 5, 0, 0)
	a.SLpM = models.Some(2.0)
	a.HeightCm = models.Some(170.0)
	b := rawFighter("B", 5, 5, 0)
	b.SLpM = models.Some(4.0)
	c := rawFighter("C", 1, 1, 0)
	c.HeightCm = models.Some(190.0)
	// filtered out before the median is taken
	dropped := rawFighter("Dropped", 0, 0, 0)
	dropped.SLpM = models.Some(100.0)

	out := NewDataCleaner(utils.NewNopLogger()).Clean([]*models.FighterRecord{a, b, c, dropped})
	require.Len(t, out, 3)

	// SLpM values in retained batch: 2, 4 -> median 3
	assert.InDelta(t, 3.0, out[2].SLpM, 1e-12)
	assert.InDelta(t, 2.0, out[0].SLpM, 1e-12)
	// height values: 170, 190 -> median 180
	assert.InDelta(t, 180.0, out[1].HeightCm, 1e-12)
	// no TD_Def values anywhere: fixed fallback
	assert.InDelta(t, 0.5, out[0].TDDef, 1e-12)

	for _, f := range out {
		assert.Equal(t, models.StanceOrthodox, f.Stance)
	}
}

func TestCleanKeepsKnownStance(t *testing.T) {
	r := rawFighter("Lefty", 3, 0, 0)
	r.Stance = models.Some(models.StanceSouthpaw)
	out := NewDataCleaner(utils.NewNopLogger()).Clean([]*models.FighterRecord{r})
	require.Len(t, out, 1)
	assert.Equal(t, models.StanceSouthpaw, out[0].Stance)
}

func TestWeightClass(t *testing.T) {
	cases := []struct {
		weight models.Opt[int]
		want   string
	}{
		{models.Some(115), "Strawweight"},
		{models.Some(116), "Flyweight"},
		{models.Some(135), "Bantamweight"},
		{models.Some(145), "Featherweight"},
		{models.Some(155), "Lightweight"},
		{models.Some(170), "Welterweight"},
		{models.Some(185), "Middleweight"},
		{models.Some(205), "Light Heavyweight"},
		{models.Some(265), "Heavyweight"},
		{models.None[int](), "Unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeightClass(tc.weight), tc.weight.String())
	}
	assert.Len(t, WeightClassNames(), 9)
}

func TestMedian(t *testing.T) {
	_, ok := median(nil)
	assert.False(t, ok)

	m, _ := median([]float64{3, 1, 2})
	assert.Equal(t, 2.0, m)
	m, _ = median([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, m)
}
