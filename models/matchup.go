package models

// Side identifies a corner in a matchup
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
	Even  Side = "Even"
)

// Category is one axis of the matchup scoring model
type Category string

const (
	Striking   Category = "Striking"
	Grappling  Category = "Grappling"
	Physical   Category = "Physical"
	Experience Category = "Experience"
)

// Categories lists the scoring axes in report order
var Categories = []Category{Striking, Grappling, Physical, Experience}

// CategoryScore holds the per-side raw scores for one axis, the raw
// differential and which side it favours.
type CategoryScore struct {
	FighterA    float64
	FighterB    float64
	Diff        float64
	Probability float64 // squashed probability that A wins this category
	Advantage   Side
}

// MatchupResult is the outcome of a single prediction call
type MatchupResult struct {
	FighterA          string
	FighterB          string
	ProbA             float64
	ProbB             float64
	PredictedWinner   string
	ConfidencePercent float64
	Breakdown         map[Category]CategoryScore
}

// InsightReport holds roster analytics computed from the cleaned dataset
type InsightReport struct {
	TotalFighters   int
	AverageHeightCm float64
	AverageReachCm  float64
	AverageWinRate  float64
	ByWeightClass   map[string]int
	ByStance        map[string]int
	TopWinRates     []*CleanedFighter
	MinFights       int
}
