package analyzer

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/palpitebot/palpitebot/internal/competitions"
	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(competitions.NewDefaultIndex(), config.AnalysisConfig{}, logger)
}

func matchWinnerQuote(home, draw, away string) models.RawMarketQuote {
	return models.RawMarketQuote{
		Name: "Match Winner",
		Values: []models.QuoteValue{
			{Label: "Home", Odd: home},
			{Label: "Draw", Odd: draw},
			{Label: "Away", Odd: away},
		},
	}
}

func TestAnalyzePricedFixture(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze(context.Background(), Input{
		Fixtures: []models.Fixture{
			{
				ID:       101,
				League:   models.LeagueRef{ID: 94},
				HomeTeam: "Benfica",
				AwayTeam: "Arouca",
				Quotes:   []models.RawMarketQuote{matchWinnerQuote("1.80", "3.60", "4.20")},
			},
		},
	})

	if result.TotalAnalyzed != 1 {
		t.Fatalf("totalAnalyzed = %d, want 1", result.TotalAnalyzed)
	}
	m := result.Matches[0]
	if m.Probabilities.HomeWin != 56 || m.Probabilities.Draw != 28 || m.Probabilities.AwayWin != 24 {
		t.Errorf("1X2 = %d/%d/%d, want 56/28/24",
			m.Probabilities.HomeWin, m.Probabilities.Draw, m.Probabilities.AwayWin)
	}
	if len(m.Recommendations) != 1 || m.Recommendations[0] != "✅ Favorito: Benfica (56%)" {
		t.Errorf("unexpected recommendations: %v", m.Recommendations)
	}
	if m.Competition == nil || m.Competition.Key != "primeira-liga" {
		t.Errorf("competition not resolved: %+v", m.Competition)
	}
	if m.Confidence != models.ConfidenceLow {
		t.Errorf("confidence = %s, want low with 2 points", m.Confidence)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := newTestAnalyzer(t)
	input := Input{
		Fixtures: []models.Fixture{
			{
				ID:       7,
				League:   models.LeagueRef{ID: 39},
				HomeTeam: "Arsenal",
				AwayTeam: "Chelsea",
				Quotes:   []models.RawMarketQuote{matchWinnerQuote("2.10", "3.30", "3.50")},
			},
		},
	}

	first := a.Analyze(context.Background(), input)
	second := a.Analyze(context.Background(), input)

	if first.Matches[0].Probabilities != second.Matches[0].Probabilities {
		t.Error("repeated runs over frozen input must produce identical estimates")
	}
	if first.Matches[0].Confidence != second.Matches[0].Confidence {
		t.Error("repeated runs over frozen input must produce identical confidence")
	}
}

func TestAnalyzeBatchCap(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(competitions.NewDefaultIndex(), config.AnalysisConfig{MaxFixtures: 2}, logger)

	fixtures := make([]models.Fixture, 5)
	for i := range fixtures {
		fixtures[i] = models.Fixture{ID: int64(i + 1), HomeTeam: "A", AwayTeam: "B"}
	}

	result := a.Analyze(context.Background(), Input{Fixtures: fixtures})
	if result.TotalAnalyzed != 2 {
		t.Errorf("totalAnalyzed = %d, want capped 2", result.TotalAnalyzed)
	}
}

func TestAnalyzeSecondaryBundleFlows(t *testing.T) {
	a := newTestAnalyzer(t)

	bundle := models.SecondaryBundle{
		models.TeamPairKey("Benfica", "Arouca"): {Home: 61, Draw: 22, Away: 17},
	}
	result := a.Analyze(context.Background(), Input{
		Fixtures: []models.Fixture{
			{ID: 1, HomeTeam: "Benfica", AwayTeam: "Arouca"},
		},
		Secondary: bundle,
	})

	m := result.Matches[0]
	if m.Probabilities.HomeWin != 61 {
		t.Errorf("home = %d, want 61 from secondary bundle", m.Probabilities.HomeWin)
	}
	found := false
	for _, note := range m.Notes {
		if note == "🔮 Afinado com previsões Forebet" {
			found = true
		}
	}
	if !found {
		t.Errorf("secondary note missing: %v", m.Notes)
	}
}

func TestAggregateSortStability(t *testing.T) {
	// Identical scores throughout: ranking must keep analysis order.
	matches := []*models.AnalyzedMatch{
		{FixtureID: 1, Confidence: models.ConfidenceLow},
		{FixtureID: 2, Confidence: models.ConfidenceLow},
		{FixtureID: 3, Confidence: models.ConfidenceLow},
	}

	result := aggregate(matches)

	for i, want := range []int64{1, 2, 3} {
		if result.BestMatches[i].FixtureID != want {
			t.Errorf("bestMatches[%d] = %d, want %d", i, result.BestMatches[i].FixtureID, want)
		}
	}
}

func TestAggregateRanking(t *testing.T) {
	low := &models.AnalyzedMatch{FixtureID: 1, Confidence: models.ConfidenceLow}
	high := &models.AnalyzedMatch{
		FixtureID:       2,
		Confidence:      models.ConfidenceHigh,
		Recommendations: []string{"a", "b"},
		Probabilities:   models.ProbabilityEstimate{HomeWin: 72},
	}
	medium := &models.AnalyzedMatch{
		FixtureID:       3,
		Confidence:      models.ConfidenceMedium,
		Recommendations: []string{"a"},
		Probabilities:   models.ProbabilityEstimate{HomeWin: 58},
	}

	result := aggregate([]*models.AnalyzedMatch{low, high, medium})

	if got := []int64{result.BestMatches[0].FixtureID, result.BestMatches[1].FixtureID, result.BestMatches[2].FixtureID}; got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Errorf("ranking = %v, want [2 3 1]", got)
	}
	if result.HighConfidenceCount != 1 || result.MediumConfidenceCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1",
			result.HighConfidenceCount, result.MediumConfidenceCount)
	}
}

func TestAggregateUnresolvedCompetitionSkipsRegions(t *testing.T) {
	europe := &competitions.NewDefaultIndex().Competitions()[0]
	resolved := &models.AnalyzedMatch{FixtureID: 1, Competition: europe, Confidence: models.ConfidenceHigh}
	unresolved := &models.AnalyzedMatch{FixtureID: 2, Confidence: models.ConfidenceHigh}

	result := aggregate([]*models.AnalyzedMatch{resolved, unresolved})

	if len(result.BestMatches) != 2 {
		t.Errorf("unresolved fixture must stay in the global list, got %d", len(result.BestMatches))
	}

	regionTotal := 0
	for _, row := range result.BreakdownByRegion {
		regionTotal += row.Total
	}
	if regionTotal != 1 {
		t.Errorf("region totals = %d, want 1 (unresolved fixture in no bucket)", regionTotal)
	}

	for _, top := range result.BestByRegion {
		for _, m := range top.Matches {
			if m.FixtureID == 2 {
				t.Error("unresolved fixture must not appear in region tops")
			}
		}
	}
}

func TestAggregateRegionViews(t *testing.T) {
	idx := competitions.NewDefaultIndex()
	var europeComp, southComp *models.Competition
	for i := range idx.Competitions() {
		c := &idx.Competitions()[i]
		switch {
		case europeComp == nil && c.Region == models.RegionEurope:
			europeComp = c
		case southComp == nil && c.Region == models.RegionSouthAmerica:
			southComp = c
		}
	}

	var matches []*models.AnalyzedMatch
	for i := int64(1); i <= 7; i++ {
		matches = append(matches, &models.AnalyzedMatch{
			FixtureID:   i,
			Competition: europeComp,
			Confidence:  models.ConfidenceMedium,
		})
	}
	matches = append(matches, &models.AnalyzedMatch{
		FixtureID:   100,
		Competition: southComp,
		Confidence:  models.ConfidenceHigh,
	})

	result := aggregate(matches)

	if len(result.BreakdownByRegion) != len(models.RegionOrder) {
		t.Fatalf("breakdown rows = %d, want one per region", len(result.BreakdownByRegion))
	}
	for i, row := range result.BreakdownByRegion {
		if row.Region != models.RegionOrder[i] {
			t.Errorf("breakdown[%d] = %s, want canonical order %s", i, row.Region, models.RegionOrder[i])
		}
	}

	europeRow := result.BreakdownByRegion[0]
	if europeRow.Region != models.RegionEurope || europeRow.Total != 7 || europeRow.MediumConfidence != 7 {
		t.Errorf("unexpected europe row: %+v", europeRow)
	}

	europeTop := result.BestByRegion[0]
	if len(europeTop.Matches) != 5 {
		t.Errorf("region top = %d matches, want capped 5", len(europeTop.Matches))
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze(context.Background(), Input{})

	if result.TotalAnalyzed != 0 || len(result.BestMatches) != 0 {
		t.Errorf("empty batch must yield an empty, valid result: %+v", result)
	}
	if len(result.BreakdownByRegion) != len(models.RegionOrder) {
		t.Errorf("breakdown must still list every region, got %d", len(result.BreakdownByRegion))
	}
}

func TestAnalyzeOne(t *testing.T) {
	a := newTestAnalyzer(t)

	fixture := &models.Fixture{
		ID:       42,
		League:   models.LeagueRef{Name: "La Liga", Country: "Spain"},
		HomeTeam: "Real Madrid",
		AwayTeam: "Getafe",
		Quotes:   []models.RawMarketQuote{matchWinnerQuote("1.30", "5.50", "9.00")},
	}

	m := a.AnalyzeOne(fixture, nil)
	if m == nil {
		t.Fatal("expected analyzed match")
	}
	if m.Competition == nil || m.Competition.Key != "la-liga" {
		t.Errorf("competition = %+v, want la-liga", m.Competition)
	}
	if m.Probabilities.HomeWin != 77 {
		t.Errorf("home = %d, want 77", m.Probabilities.HomeWin)
	}
	if len(m.Recommendations) == 0 || m.Recommendations[0] != "🏆 Forte favorito: Real Madrid (77%)" {
		t.Errorf("unexpected recommendations: %v", m.Recommendations)
	}
}
