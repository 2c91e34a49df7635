package models

// Stance values as they appear on the stats site
const (
	StanceOrthodox = "Orthodox"
	StanceSouthpaw = "Southpaw"
	StanceSwitch   = "Switch"
)

// FighterRecord is one fighter as extracted from a detail page or read back
// from a checkpoint CSV. Every numeric field is either a typed value or absent.
type FighterRecord struct {
	Name      string
	Nickname  string
	SourceURL string

	HeightCm  Opt[float64]
	ReachCm   Opt[float64]
	Stance    Opt[string]
	DOB       Opt[string]
	WeightLbs Opt[int]

	// Wins, Losses and Draws come from a single "W-L-D" token: all present or all absent
	Wins   Opt[int]
	Losses Opt[int]
	Draws  Opt[int]

	SLpM   Opt[float64]
	SApM   Opt[float64]
	StrAcc Opt[float64]
	StrDef Opt[float64]
	TDAvg  Opt[float64]
	TDAcc  Opt[float64]
	TDDef  Opt[float64]
	SubAvg Opt[float64]
}

// SetRecord stores a W-L-D triple, keeping the all-or-nothing invariant
func (r *FighterRecord) SetRecord(wins, losses, draws Opt[int]) {
	if wins.Absent() || losses.Absent() || draws.Absent() {
		r.Wins, r.Losses, r.Draws = None[int](), None[int](), None[int]()
		return
	}
	r.Wins, r.Losses, r.Draws = wins, losses, draws
}

// CleanedFighter is a FighterRecord after normalization: no absent stats,
// at least one recorded fight, and derived fields filled in.
type CleanedFighter struct {
	ID        int64
	Name      string
	Nickname  string
	SourceURL string
	Stance    string
	DOB       string

	HeightCm  float64
	ReachCm   float64
	WeightLbs Opt[int]

	Wins   int
	Losses int
	Draws  int

	SLpM   float64
	SApM   float64
	StrAcc float64
	StrDef float64
	TDAvg  float64
	TDAcc  float64
	TDDef  float64
	SubAvg float64

	TotalFights int
	WinRate     float64
	WeightClass string
}
