package analyzer

import (
	"fmt"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Recommendation and confidence thresholds. The values come from the original
// tuning of the recommendation engine; keep them named, not inlined.
const (
	strongFavoriteThreshold = 70
	favoriteThreshold       = 55
	goalsThreshold          = 60
	bttsThreshold           = 60

	highConfidencePoints   = 5
	mediumConfidencePoints = 3

	maxNotes = 3
)

// Qualitative form signals that earn a confidence point.
const (
	winStreakMin      = 3
	lossStreakMin     = 2
	h2hDominanceMin   = 3
	manyGoalsCombined = 3.2
	fewGoalsCombined  = 2.0
	h2hManyGoalsAvg   = 3.0
)

type scoreInput struct {
	Probabilities models.ProbabilityEstimate
	HomeTeam      string
	AwayTeam      string
	HomeForm      *models.TeamFormSummary
	AwayForm      *models.TeamFormSummary
	H2H           *models.HeadToHeadSummary
	SecondaryUsed bool
}

// scoreMatch turns an estimate plus form signals into recommendation text,
// qualitative notes and a confidence level. Emission order is fixed so output
// is deterministic for identical input.
func scoreMatch(in scoreInput) (recommendations, notes []string, confidence models.Confidence) {
	p := in.Probabilities
	points := 0

	favorite := in.HomeTeam
	favoritePct := p.HomeWin
	if p.AwayWin > p.HomeWin {
		favorite = in.AwayTeam
		favoritePct = p.AwayWin
	}
	switch {
	case favoritePct >= strongFavoriteThreshold:
		recommendations = append(recommendations, fmt.Sprintf("🏆 Forte favorito: %s (%d%%)", favorite, favoritePct))
		points += 3
	case favoritePct >= favoriteThreshold:
		recommendations = append(recommendations, fmt.Sprintf("✅ Favorito: %s (%d%%)", favorite, favoritePct))
		points += 2
	}

	// Over checked first; the two goal recommendations are mutually exclusive.
	if p.Over25 >= goalsThreshold {
		recommendations = append(recommendations, fmt.Sprintf("⚽ Over 2.5 golos (%d%%)", p.Over25))
		points += 2
	} else if p.Under25 >= goalsThreshold {
		recommendations = append(recommendations, fmt.Sprintf("🛡️ Under 2.5 golos (%d%%)", p.Under25))
		points += 2
	}

	if p.BttsYes >= bttsThreshold {
		recommendations = append(recommendations, fmt.Sprintf("🥅 Ambos marcam: SIM (%d%%)", p.BttsYes))
		points += 1
	} else if p.BttsNo >= bttsThreshold {
		recommendations = append(recommendations, fmt.Sprintf("🚫 Ambos marcam: NÃO (%d%%)", p.BttsNo))
		points += 1
	}

	notes, formPoints := buildNotes(in)
	points += formPoints

	confidence = models.ConfidenceLow
	if points >= highConfidencePoints {
		confidence = models.ConfidenceHigh
	} else if points >= mediumConfidencePoints {
		confidence = models.ConfidenceMedium
	}

	return recommendations, notes, confidence
}

// buildNotes emits qualitative notes in fixed order and returns the extra
// confidence points the first three signals carry. The note list is capped at
// maxNotes; points accrue even for notes dropped by the cap.
func buildNotes(in scoreInput) ([]string, int) {
	var notes []string
	points := 0

	if f := in.HomeForm; f != nil && f.CurrentStreak.Type == models.StreakWin && f.CurrentStreak.Count >= winStreakMin {
		notes = append(notes, fmt.Sprintf("🔥 %s vem de %d vitórias seguidas", in.HomeTeam, f.CurrentStreak.Count))
		points++
	}
	if f := in.AwayForm; f != nil && f.CurrentStreak.Type == models.StreakLoss && f.CurrentStreak.Count >= lossStreakMin {
		notes = append(notes, fmt.Sprintf("❄️ %s perdeu os últimos %d jogos", in.AwayTeam, f.CurrentStreak.Count))
		points++
	}
	if h := in.H2H; h != nil && h.HomeWins >= h2hDominanceMin {
		notes = append(notes, fmt.Sprintf("📊 Vantagem histórica do %s no confronto direto", in.HomeTeam))
		points++
	}

	if in.HomeForm != nil && in.AwayForm != nil {
		combined := in.HomeForm.AvgGoalsFor + in.AwayForm.AvgGoalsFor
		if combined >= manyGoalsCombined {
			notes = append(notes, "⚽ Equipas com média de golos elevada")
		} else if combined <= fewGoalsCombined {
			notes = append(notes, "🛡️ Equipas com poucos golos marcados")
		}
	}
	if h := in.H2H; h != nil && h.AvgGoalsTotal >= h2hManyGoalsAvg {
		notes = append(notes, "🎯 Confrontos diretos costumam ter muitos golos")
	}
	if in.SecondaryUsed {
		notes = append(notes, "🔮 Afinado com previsões Forebet")
	}

	if len(notes) > maxNotes {
		notes = notes[:maxNotes]
	}
	return notes, points
}
