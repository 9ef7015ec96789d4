package analyzer

import (
	"testing"

	"github.com/palpitebot/palpitebot/internal/markets"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

func TestProbabilityFromPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  int
	}{
		{1.80, 56},
		{3.60, 28},
		{4.20, 24},
		{2.05, 49},
		{2.00, 50},
		{1.00, 100},
		{0, 0},
		{-2.5, 0},
	}

	for _, tt := range tests {
		if got := probabilityFromPrice(tt.price); got != tt.want {
			t.Errorf("probabilityFromPrice(%.2f) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestResolveFromPricedOdds(t *testing.T) {
	canonical := map[markets.Kind][]markets.Outcome{
		markets.KindMatchWinner: {
			{Kind: markets.OutcomeHome, Price: 1.80},
			{Kind: markets.OutcomeDraw, Price: 3.60},
			{Kind: markets.OutcomeAway, Price: 4.20},
		},
		markets.KindGoalsOverUnder: {
			{Kind: markets.OutcomeOver25, Price: 2.05},
		},
	}

	est, secondaryUsed := resolveProbabilities(canonical, models.SecondaryProbabilities{}, false, nil, nil)

	if est.HomeWin != 56 || est.Draw != 28 || est.AwayWin != 24 {
		t.Errorf("1X2 = %d/%d/%d, want 56/28/24", est.HomeWin, est.Draw, est.AwayWin)
	}
	if est.Over25 != 49 {
		t.Errorf("over25 = %d, want 49", est.Over25)
	}
	if est.Under25 != 0 || est.BttsYes != 0 || est.BttsNo != 0 {
		t.Errorf("unpriced fields must stay 0, got %+v", est)
	}
	if secondaryUsed {
		t.Error("secondaryUsed must be false without a secondary source")
	}
}

func TestResolveSecondaryBackfill(t *testing.T) {
	canonical := map[markets.Kind][]markets.Outcome{
		markets.KindMatchWinner: {
			{Kind: markets.OutcomeHome, Price: 1.80},
		},
	}
	secondary := models.SecondaryProbabilities{
		Home:   80, // must not overwrite the priced 56
		Draw:   30,
		Over25: 120, // clamped to 100
	}

	est, secondaryUsed := resolveProbabilities(canonical, secondary, true, nil, nil)

	if est.HomeWin != 56 {
		t.Errorf("priced field overwritten: home = %d, want 56", est.HomeWin)
	}
	if est.Draw != 30 {
		t.Errorf("draw = %d, want 30 from secondary", est.Draw)
	}
	if est.Over25 != 100 {
		t.Errorf("over25 = %d, want clamped 100", est.Over25)
	}
	if est.AwayWin != 0 {
		t.Errorf("away = %d, secondary zero must stay unset", est.AwayWin)
	}
	if !secondaryUsed {
		t.Error("secondaryUsed must be true after backfill")
	}
}

func TestResolveSecondaryBlocksSynthesis(t *testing.T) {
	form := &models.TeamFormSummary{WinRate: 0.6, DrawRate: 0.2, LossRate: 0.2}
	secondary := models.SecondaryProbabilities{Draw: 30}

	est, _ := resolveProbabilities(nil, secondary, true, form, form)

	// One 1X2 field came from the secondary source, so form synthesis must
	// not run and home/away stay 0.
	if est.Draw != 30 || est.HomeWin != 0 || est.AwayWin != 0 {
		t.Errorf("1X2 = %d/%d/%d, want 0/30/0", est.HomeWin, est.Draw, est.AwayWin)
	}
}

func TestSynthesisSumsToHundred(t *testing.T) {
	homeForm := &models.TeamFormSummary{
		WinRate: 0.6, DrawRate: 0.2, LossRate: 0.2, GoalDiffAvg: 0.8,
	}
	awayForm := &models.TeamFormSummary{
		WinRate: 0.2, DrawRate: 0.4, LossRate: 0.4, GoalDiffAvg: -0.5,
	}

	est, _ := resolveProbabilities(nil, models.SecondaryProbabilities{}, false, homeForm, awayForm)

	if sum := est.HomeWin + est.Draw + est.AwayWin; sum != 100 {
		t.Errorf("synthesized 1X2 sums to %d, want exactly 100 (%d/%d/%d)",
			sum, est.HomeWin, est.Draw, est.AwayWin)
	}
	if est.Draw != 30 {
		t.Errorf("draw = %d, want 30 from averaged draw rates", est.Draw)
	}
	if est.HomeWin <= est.AwayWin {
		t.Errorf("stronger home form must dominate, got %d/%d", est.HomeWin, est.AwayWin)
	}
}

func TestSynthesisDrawCapAndEvenSplit(t *testing.T) {
	// Draw-heavy, winless form: draw rate capped, remainder split evenly.
	homeForm := &models.TeamFormSummary{DrawRate: 0.8, LossRate: 0}
	awayForm := &models.TeamFormSummary{DrawRate: 0.8, LossRate: 0}

	est, _ := resolveProbabilities(nil, models.SecondaryProbabilities{}, false, homeForm, awayForm)

	if est.Draw != 45 {
		t.Errorf("draw = %d, want capped 45", est.Draw)
	}
	if sum := est.HomeWin + est.Draw + est.AwayWin; sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
	if est.HomeWin != 28 || est.AwayWin != 27 {
		t.Errorf("even split = %d/%d, want 28/27", est.HomeWin, est.AwayWin)
	}
}

func TestSynthesisWithSingleForm(t *testing.T) {
	awayForm := &models.TeamFormSummary{
		WinRate: 0.8, DrawRate: 0.2, LossRate: 0, GoalDiffAvg: 1.5,
	}

	est, _ := resolveProbabilities(nil, models.SecondaryProbabilities{}, false, nil, awayForm)

	if sum := est.HomeWin + est.Draw + est.AwayWin; sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
	if est.AwayWin <= est.HomeWin {
		t.Errorf("in-form away side must dominate, got %d/%d", est.HomeWin, est.AwayWin)
	}
}

func TestSynthesisSkippedWithoutForm(t *testing.T) {
	est, _ := resolveProbabilities(nil, models.SecondaryProbabilities{}, false, nil, nil)

	if est != (models.ProbabilityEstimate{}) {
		t.Errorf("no inputs must yield a zero estimate, got %+v", est)
	}
}

func TestResolveFieldsAlwaysInRange(t *testing.T) {
	canonical := map[markets.Kind][]markets.Outcome{
		markets.KindMatchWinner: {
			{Kind: markets.OutcomeHome, Price: 0.5}, // implied 200%
		},
	}
	est, _ := resolveProbabilities(canonical, models.SecondaryProbabilities{Away: -10}, true, nil, nil)

	if est.HomeWin != 100 {
		t.Errorf("implied probability above 100 must clamp, got %d", est.HomeWin)
	}
	fields := []int{est.HomeWin, est.Draw, est.AwayWin, est.Over25, est.Under25, est.BttsYes, est.BttsNo}
	for i, v := range fields {
		if v < 0 || v > 100 {
			t.Errorf("field %d out of range: %d", i, v)
		}
	}
	if est.AwayWin != 0 {
		t.Errorf("negative secondary value must be ignored, got %d", est.AwayWin)
	}
}
