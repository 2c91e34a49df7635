package services

import (
	"sort"

	"fightstats/models"
	"fightstats/utils"
)

// InsightService computes roster analytics from the cleaned dataset
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate summarises the roster. TopWinRates holds up to top fighters with
// at least minFights bouts, best win rate first.
func (s *InsightService) Generate(fighters []*models.CleanedFighter, minFights, top int) *models.InsightReport {
	report := &models.InsightReport{
		ByWeightClass: make(map[string]int),
		ByStance:      make(map[string]int),
		MinFights:     minFights,
	}

	if len(fighters) == 0 {
		s.logger.Warn("No fighters to generate insights from")
		return report
	}

	var height, reach, winRate float64
	for _, f := range fighters {
		report.TotalFighters++
		height += f.HeightCm
		reach += f.ReachCm
		winRate += f.WinRate
		report.ByWeightClass[f.WeightClass]++
		report.ByStance[f.Stance]++
	}
	n := float64(report.TotalFighters)
	report.AverageHeightCm = height / n
	report.AverageReachCm = reach / n
	report.AverageWinRate = winRate / n

	eligible := make([]*models.CleanedFighter, 0, len(fighters))
	for _, f := range fighters {
		if f.TotalFights >= minFights {
			eligible = append(eligible, f)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].WinRate != eligible[j].WinRate {
			return eligible[i].WinRate > eligible[j].WinRate
		}
		return eligible[i].TotalFights > eligible[j].TotalFights
	})
	if len(eligible) > top {
		eligible = eligible[:top]
	}
	report.TopWinRates = eligible

	return report
}
