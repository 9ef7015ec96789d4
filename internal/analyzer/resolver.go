package analyzer

import (
	"math"

	"github.com/palpitebot/palpitebot/internal/markets"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// synthesisDrawCap bounds the synthesized draw probability; recent-form draw
// rates above this produce implausible 1X2 splits.
const synthesisDrawCap = 0.45

// probabilityFromPrice converts a decimal price into an implied probability
// percentage. Zero price means the outcome was not offered; prices below 1.0
// never occur at real bookmakers but the estimate's range contract still holds.
func probabilityFromPrice(price float64) int {
	if price <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(100 / price)))
}

// resolveProbabilities derives the 7-field estimate through the fallback
// chain: priced odds first, secondary-source backfill for fields the markets
// left empty, and form synthesis when the whole 1X2 triple is unresolved.
// A populated field is never overwritten by a later tier. The returned flag
// reports whether any secondary value was used.
func resolveProbabilities(
	canonical map[markets.Kind][]markets.Outcome,
	secondary models.SecondaryProbabilities,
	hasSecondary bool,
	homeForm, awayForm *models.TeamFormSummary,
) (models.ProbabilityEstimate, bool) {
	est := models.ProbabilityEstimate{
		HomeWin: probabilityFromPrice(markets.Price(canonical, markets.KindMatchWinner, markets.OutcomeHome)),
		Draw:    probabilityFromPrice(markets.Price(canonical, markets.KindMatchWinner, markets.OutcomeDraw)),
		AwayWin: probabilityFromPrice(markets.Price(canonical, markets.KindMatchWinner, markets.OutcomeAway)),
		Over25:  probabilityFromPrice(markets.Price(canonical, markets.KindGoalsOverUnder, markets.OutcomeOver25)),
		Under25: probabilityFromPrice(markets.Price(canonical, markets.KindGoalsOverUnder, markets.OutcomeUnder25)),
		BttsYes: probabilityFromPrice(markets.Price(canonical, markets.KindBothTeamsScore, markets.OutcomeYes)),
		BttsNo:  probabilityFromPrice(markets.Price(canonical, markets.KindBothTeamsScore, markets.OutcomeNo)),
	}

	secondaryUsed := false
	if hasSecondary {
		fields := []struct {
			dst *int
			src int
		}{
			{&est.HomeWin, secondary.Home},
			{&est.Draw, secondary.Draw},
			{&est.AwayWin, secondary.Away},
			{&est.Over25, secondary.Over25},
			{&est.Under25, secondary.Under25},
			{&est.BttsYes, secondary.BttsYes},
			{&est.BttsNo, secondary.BttsNo},
		}
		for _, f := range fields {
			if *f.dst != 0 || f.src <= 0 {
				continue
			}
			*f.dst = clampPercent(f.src)
			secondaryUsed = true
		}
	}

	if est.HomeWin == 0 && est.Draw == 0 && est.AwayWin == 0 && (homeForm != nil || awayForm != nil) {
		est.HomeWin, est.Draw, est.AwayWin = synthesizeFromForm(homeForm, awayForm)
	}

	return est, secondaryUsed
}

// synthesizeFromForm builds a 1X2 triple from recent form alone. This is the
// only path that guarantees home+draw+away == 100.
func synthesizeFromForm(homeForm, awayForm *models.TeamFormSummary) (home, draw, away int) {
	var homeDrawRate, awayDrawRate float64
	if homeForm != nil {
		homeDrawRate = homeForm.DrawRate
	}
	if awayForm != nil {
		awayDrawRate = awayForm.DrawRate
	}
	drawRate := (homeDrawRate + awayDrawRate) / 2
	if drawRate > synthesisDrawCap {
		drawRate = synthesisDrawCap
	}
	draw = int(math.Round(drawRate * 100))

	var homeScore, awayScore float64
	if homeForm != nil {
		homeScore += homeForm.WinRate + math.Max(homeForm.GoalDiffAvg, 0)
		awayScore += homeForm.LossRate * 0.6
	}
	if awayForm != nil {
		awayScore += awayForm.WinRate + math.Max(awayForm.GoalDiffAvg, 0)
		homeScore += awayForm.LossRate * 0.6
	}

	available := 100 - draw
	if total := homeScore + awayScore; total > 0 {
		home = int(math.Round(homeScore / total * float64(available)))
	} else {
		home = int(math.Round(float64(available) / 2))
	}
	away = available - home
	return home, draw, away
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
