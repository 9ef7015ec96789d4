package models

import "time"

// Confidence is the 3-level summary of how strong a match's recommendations are.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Weight converts confidence to its ranking weight (high=3, medium=2, low=1).
func (c Confidence) Weight() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// ProbabilityEstimate holds the seven derived probabilities as integer
// percentages in [0,100]. Fields are independent per-market conversions; the
// 1X2 triple sums to exactly 100 only when the form-synthesis fallback set it.
type ProbabilityEstimate struct {
	HomeWin int `json:"homeWinProbability"`
	Draw    int `json:"drawProbability"`
	AwayWin int `json:"awayWinProbability"`
	Over25  int `json:"over25Probability"`
	Under25 int `json:"under25Probability"`
	BttsYes int `json:"bttsYesProbability"`
	BttsNo  int `json:"bttsNoProbability"`
}

// MaxOutcome returns the highest of the three 1X2 probabilities.
func (p ProbabilityEstimate) MaxOutcome() int {
	max := p.HomeWin
	if p.Draw > max {
		max = p.Draw
	}
	if p.AwayWin > max {
		max = p.AwayWin
	}
	return max
}

// AnalyzedMatch is the core's per-fixture output: estimate, ordered
// recommendations, up to three notes and a confidence level.
type AnalyzedMatch struct {
	FixtureID       int64                `json:"fixtureId"`
	Date            time.Time            `json:"date"`
	Kickoff         string               `json:"time"`
	League          LeagueRef            `json:"league"`
	Competition     *Competition         `json:"competition,omitempty"`
	HomeTeam        string               `json:"homeTeam"`
	AwayTeam        string               `json:"awayTeam"`
	Probabilities   ProbabilityEstimate  `json:"predictions"`
	Recommendations []string             `json:"recommendedBets"`
	Notes           []string             `json:"analysisNotes"`
	Confidence      Confidence           `json:"confidence"`
}

// Region returns the resolved competition region, or "" when unresolved.
func (m *AnalyzedMatch) Region() Region {
	if m.Competition == nil {
		return ""
	}
	return m.Competition.Region
}

// RegionBreakdown is the per-region statistics row, recomputed every run.
type RegionBreakdown struct {
	Region           Region `json:"region"`
	Label            string `json:"label"`
	Total            int    `json:"total"`
	HighConfidence   int    `json:"highConfidence"`
	MediumConfidence int    `json:"mediumConfidence"`
}

// RegionTop is the ranked sublist of one region.
type RegionTop struct {
	Region  Region           `json:"region"`
	Label   string           `json:"label"`
	Matches []*AnalyzedMatch `json:"matches"`
}
