package services

import (
	"sort"

	"fightstats/models"
	"fightstats/utils"
)

// UnknownWeightClass is assigned when a fighter has no recorded weight
const UnknownWeightClass = "Unknown"

// weightClasses are inclusive upper bounds in ascending order; first match wins
var weightClasses = []struct {
	maxLbs int
	name   string
}{
	{115, "Strawweight"},
	{125, "Flyweight"},
	{135, "Bantamweight"},
	{145, "Featherweight"},
	{155, "Lightweight"},
	{170, "Welterweight"},
	{185, "Middleweight"},
	{205, "Light Heavyweight"},
}

const heavyweight = "Heavyweight"

// WeightClassNames lists every division from lightest to heaviest
func WeightClassNames() []string {
	names := make([]string, 0, len(weightClasses)+1)
	for _, wc := range weightClasses {
		names = append(names, wc.name)
	}
	return append(names, heavyweight)
}

// WeightClass buckets a body weight into a division
func WeightClass(weight models.Opt[int]) string {
	w, ok := weight.Get()
	if !ok {
		return UnknownWeightClass
	}
	for _, wc := range weightClasses {
		if w <= wc.maxLbs {
			return wc.name
		}
	}
	return heavyweight
}

// imputedColumn is one numeric column that gets median-filled. fallback is
// used only when no fighter in the batch has a value at all.
type imputedColumn struct {
	name     string
	get      func(r *models.FighterRecord) models.Opt[float64]
	set      func(c *models.CleanedFighter, v float64)
	fallback float64
}

var imputedColumns = []imputedColumn{
	{"Height_cm", func(r *models.FighterRecord) models.Opt[float64] { return r.HeightCm }, func(c *models.CleanedFighter, v float64) { c.HeightCm = v }, 178},
	{"Reach_cm", func(r *models.FighterRecord) models.Opt[float64] { return r.ReachCm }, func(c *models.CleanedFighter, v float64) { c.ReachCm = v }, 180},
	{"SLpM", func(r *models.FighterRecord) models.Opt[float64] { return r.SLpM }, func(c *models.CleanedFighter, v float64) { c.SLpM = v }, 0},
	{"Str_Acc", func(r *models.FighterRecord) models.Opt[float64] { return r.StrAcc }, func(c *models.CleanedFighter, v float64) { c.StrAcc = v }, 0.5},
	{"SApM", func(r *models.FighterRecord) models.Opt[float64] { return r.SApM }, func(c *models.CleanedFighter, v float64) { c.SApM = v }, 3.0},
	{"Str_Def", func(r *models.FighterRecord) models.Opt[float64] { return r.StrDef }, func(c *models.CleanedFighter, v float64) { c.StrDef = v }, 0.5},
	{"TD_Avg", func(r *models.FighterRecord) models.Opt[float64] { return r.TDAvg }, func(c *models.CleanedFighter, v float64) { c.TDAvg = v }, 0},
	{"TD_Acc", func(r *models.FighterRecord) models.Opt[float64] { return r.TDAcc }, func(c *models.CleanedFighter, v float64) { c.TDAcc = v }, 0},
	{"TD_Def", func(r *models.FighterRecord) models.Opt[float64] { return r.TDDef }, func(c *models.CleanedFighter, v float64) { c.TDDef = v }, 0.5},
	{"Sub_Avg", func(r *models.FighterRecord) models.Opt[float64] { return r.SubAvg }, func(c *models.CleanedFighter, v float64) { c.SubAvg = v }, 0},
}

// DataCleaner turns raw fighter records into analysis-ready rows
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean drops fighters without a usable record, fills missing stats with the
// median of the retained batch, defaults stance to Orthodox and derives win
// rate and weight class. The output has no absent stats.
func (c *DataCleaner) Clean(raw []*models.FighterRecord) []*models.CleanedFighter {
	kept := make([]*models.FighterRecord, 0, len(raw))
	for _, r := range raw {
		if r.Wins.Absent() || r.Losses.Absent() {
			c.logger.Debug("Skipping %s: no win/loss record", r.Name)
			continue
		}
		if totalFights(r) < 1 {
			c.logger.Debug("Skipping %s: no recorded fights", r.Name)
			continue
		}
		kept = append(kept, r)
	}

	medians := make([]float64, len(imputedColumns))
	for i, col := range imputedColumns {
		values := make([]float64, 0, len(kept))
		for _, r := range kept {
			if v, ok := col.get(r).Get(); ok {
				values = append(values, v)
			}
		}
		if m, ok := median(values); ok {
			medians[i] = m
		} else {
			medians[i] = col.fallback
			if len(kept) > 0 {
				c.logger.Warn("No values for %s in batch, using %.2f", col.name, col.fallback)
			}
		}
	}

	cleaned := make([]*models.CleanedFighter, 0, len(kept))
	for _, r := range kept {
		wins, _ := r.Wins.Get()
		losses, _ := r.Losses.Get()
		total := totalFights(r)

		f := &models.CleanedFighter{
			Name:        r.Name,
			Nickname:    r.Nickname,
			SourceURL:   r.SourceURL,
			Stance:      r.Stance.OrElse(models.StanceOrthodox),
			DOB:         r.DOB.OrElse(""),
			WeightLbs:   r.WeightLbs,
			Wins:        wins,
			Losses:      losses,
			Draws:       r.Draws.OrElse(0),
			TotalFights: total,
			WinRate:     float64(wins) / float64(total),
			WeightClass: WeightClass(r.WeightLbs),
		}
		for i, col := range imputedColumns {
			col.set(f, col.get(r).OrElse(medians[i]))
		}
		cleaned = append(cleaned, f)
	}

	c.logger.Info("Cleaned %d fighters from %d raw records", len(cleaned), len(raw))
	return cleaned
}

// totalFights counts an absent draw as zero
func totalFights(r *models.FighterRecord) int {
	return r.Wins.OrElse(0) + r.Losses.OrElse(0) + r.Draws.OrElse(0)
}

func median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}
