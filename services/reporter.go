package services

import (
	"fmt"
	"io"
	"sort"

	"fightstats/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintInsightReport renders the roster analytics as terminal tables
func PrintInsightReport(w io.Writer, report *models.InsightReport) {
	overview := newTable(w, "ROSTER OVERVIEW")
	overview.AppendRows([]table.Row{
		{"Fighters", report.TotalFighters},
		{"Average height", fmt.Sprintf("%.1f cm", report.AverageHeightCm)},
		{"Average reach", fmt.Sprintf("%.1f cm", report.AverageReachCm)},
		{"Average win rate", percent(report.AverageWinRate)},
	})
	overview.Render()

	classes := newTable(w, "FIGHTERS PER WEIGHT CLASS")
	classes.AppendHeader(table.Row{"Weight class", "Fighters"})
	for _, name := range append(WeightClassNames(), UnknownWeightClass) {
		if n := report.ByWeightClass[name]; n > 0 {
			classes.AppendRow(table.Row{name, n})
		}
	}
	classes.Render()

	stances := newTable(w, "STANCE DISTRIBUTION")
	stances.AppendHeader(table.Row{"Stance", "Fighters"})
	keys := make([]string, 0, len(report.ByStance))
	for k := range report.ByStance {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if report.ByStance[keys[i]] != report.ByStance[keys[j]] {
			return report.ByStance[keys[i]] > report.ByStance[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		stances.AppendRow(table.Row{k, report.ByStance[k]})
	}
	stances.Render()

	if len(report.TopWinRates) > 0 {
		best := newTable(w, fmt.Sprintf("TOP %d WIN RATES (%d+ FIGHTS)", len(report.TopWinRates), report.MinFights))
		best.AppendHeader(table.Row{"#", "Fighter", "Record", "Win rate", "Weight class"})
		for i, f := range report.TopWinRates {
			best.AppendRow(table.Row{i + 1, f.Name, record(f), percent(f.WinRate), f.WeightClass})
		}
		best.Render()
	}
}

// PrintMatchup renders a prediction with its per-category breakdown
func PrintMatchup(w io.Writer, res models.MatchupResult) {
	t := newTable(w, fmt.Sprintf("%s vs %s", res.FighterA, res.FighterB))
	t.AppendHeader(table.Row{"Category", res.FighterA, res.FighterB, "A wins category", "Advantage"})
	for _, cat := range models.Categories {
		s := res.Breakdown[cat]
		t.AppendRow(table.Row{cat, fmt.Sprintf("%.2f", s.FighterA), fmt.Sprintf("%.2f", s.FighterB), percent(s.Probability), advantageLabel(res, s.Advantage)})
	}
	t.AppendFooter(table.Row{"Win probability", percent(res.ProbA), percent(res.ProbB), "", ""})
	t.Render()

	fmt.Fprintf(w, "Predicted winner: %s (confidence %.1f%%)\n", res.PredictedWinner, res.ConfidencePercent)
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	return t
}

func advantageLabel(res models.MatchupResult, side models.Side) string {
	switch side {
	case models.SideA:
		return res.FighterA
	case models.SideB:
		return res.FighterB
	default:
		return string(models.Even)
	}
}

func record(f *models.CleanedFighter) string {
	return fmt.Sprintf("%d-%d-%d", f.Wins, f.Losses, f.Draws)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
