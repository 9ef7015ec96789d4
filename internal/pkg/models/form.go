package models

// StreakType classifies a team's current run of results.
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakDraw StreakType = "draw"
)

// Streak is the current run of identical results, most recent first.
type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// TeamFormSummary condenses a team's recent results. Read-only input to the
// analysis core; one per side when available.
type TeamFormSummary struct {
	SampleSize      int     `json:"sampleSize"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	WinRate         float64 `json:"winRate"`
	DrawRate        float64 `json:"drawRate"`
	LossRate        float64 `json:"lossRate"`
	AvgGoalsFor     float64 `json:"avgGoalsFor"`
	AvgGoalsAgainst float64 `json:"avgGoalsAgainst"`
	GoalDiffAvg     float64 `json:"goalDifferenceAvg"`
	CurrentStreak   Streak  `json:"currentStreak"`
	RecentRecord    string  `json:"recentRecord"`
}

// HeadToHeadSummary condenses previous meetings between the two sides.
// Home/away counts are relative to the upcoming fixture's home team.
type HeadToHeadSummary struct {
	SampleSize    int     `json:"sampleSize"`
	HomeWins      int     `json:"homeWins"`
	AwayWins      int     `json:"awayWins"`
	Draws         int     `json:"draws"`
	AvgGoalsTotal float64 `json:"avgGoalsTotal"`
}

// SecondaryProbabilities is one entry of the secondary prediction source.
// Fields are percentages in [0,100]; zero means the source had no value.
type SecondaryProbabilities struct {
	Home    int `json:"homeWinProbability"`
	Draw    int `json:"drawProbability"`
	Away    int `json:"awayWinProbability"`
	Over25  int `json:"over25Probability"`
	Under25 int `json:"under25Probability"`
	BttsYes int `json:"bttsYesProbability"`
	BttsNo  int `json:"bttsNoProbability"`
}

// SecondaryBundle maps normalized "home|away" team-pair keys to secondary
// probabilities for one day of fixtures.
type SecondaryBundle map[string]SecondaryProbabilities

// Lookup finds probabilities for a team pair, falling back to the reversed
// pairing with home/away-dependent fields swapped.
func (b SecondaryBundle) Lookup(homeTeam, awayTeam string) (SecondaryProbabilities, bool) {
	if len(b) == 0 {
		return SecondaryProbabilities{}, false
	}
	if p, ok := b[TeamPairKey(homeTeam, awayTeam)]; ok {
		return p, true
	}
	if p, ok := b[TeamPairKey(awayTeam, homeTeam)]; ok {
		return SecondaryProbabilities{
			Home:    p.Away,
			Draw:    p.Draw,
			Away:    p.Home,
			Over25:  p.Over25,
			Under25: p.Under25,
			BttsYes: p.BttsYes,
			BttsNo:  p.BttsNo,
		}, true
	}
	return SecondaryProbabilities{}, false
}
