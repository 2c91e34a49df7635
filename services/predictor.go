package services

import (
	"math"

	"fightstats/models"
)

// Category weights of the combined score
const (
	strikingWeight   = 0.40
	grapplingWeight  = 0.30
	physicalWeight   = 0.15
	experienceWeight = 0.15
)

// Fighters with at least this many bouts keep their full win rate; fewer
// bouts pull the rate proportionally toward 0.5.
const experienceCap = 15.0

func sigmoid(x, scale float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x*scale))
}

func advantage(diff float64) models.Side {
	switch {
	case diff > 0:
		return models.SideA
	case diff < 0:
		return models.SideB
	default:
		return models.Even
	}
}

// netStriking is damage dealt minus damage absorbed per minute
func netStriking(f *models.CleanedFighter) float64 {
	return f.SLpM*f.StrAcc - f.SApM*(1-f.StrDef)
}

// grapplingScore is takedown and submission threat minus the opponent's
// effective takedowns after this fighter's own takedown defense.
func grapplingScore(f, opponent *models.CleanedFighter) float64 {
	return f.TDAvg*f.TDAcc + 0.5*f.SubAvg - opponent.TDAvg*opponent.TDAcc*(1-f.TDDef)
}

func adjustedWinRate(f *models.CleanedFighter) float64 {
	factor := math.Min(float64(f.TotalFights)/experienceCap, 1.0)
	return f.WinRate*factor + 0.5*(1-factor)
}

// Predict scores fighter a against fighter b across striking, grappling,
// physical and experience differentials. It is pure and deterministic.
func Predict(a, b *models.CleanedFighter) models.MatchupResult {
	breakdown := make(map[models.Category]models.CategoryScore, len(models.Categories))

	score := func(cat models.Category, sideA, sideB, diff, prob float64) {
		breakdown[cat] = models.CategoryScore{
			FighterA:    sideA,
			FighterB:    sideB,
			Diff:        diff,
			Probability: prob,
			Advantage:   advantage(diff),
		}
	}

	strikeA, strikeB := netStriking(a), netStriking(b)
	strikeDiff := strikeA - strikeB
	striking := sigmoid(strikeDiff, 0.8)
	score(models.Striking, strikeA, strikeB, strikeDiff, striking)

	grappleA, grappleB := grapplingScore(a, b), grapplingScore(b, a)
	grappleDiff := grappleA - grappleB
	grappling := sigmoid(grappleDiff, 0.8)
	score(models.Grappling, grappleA, grappleB, grappleDiff, grappling)

	// 10 cm of reach is worth 0.7 points, 10 cm of height 0.3
	physicalDiff := (a.ReachCm-b.ReachCm)/10*0.7 + (a.HeightCm-b.HeightCm)/10*0.3
	physical := sigmoid(physicalDiff, 1.0)
	score(models.Physical, a.ReachCm, b.ReachCm, physicalDiff, physical)

	expA, expB := adjustedWinRate(a), adjustedWinRate(b)
	expDiff := expA - expB
	experience := sigmoid(expDiff*5, 1.0)
	score(models.Experience, expA, expB, expDiff, experience)

	combined := striking*strikingWeight +
		grappling*grapplingWeight +
		physical*physicalWeight +
		experience*experienceWeight

	result := models.MatchupResult{
		FighterA:          a.Name,
		FighterB:          b.Name,
		ProbA:             combined,
		ProbB:             1 - combined,
		ConfidencePercent: math.Abs(combined-0.5) * 200,
		Breakdown:         breakdown,
	}
	// ties go to B
	if result.ProbA > result.ProbB {
		result.PredictedWinner = a.Name
	} else {
		result.PredictedWinner = b.Name
	}
	return result
}
