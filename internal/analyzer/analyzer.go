// Package analyzer is the match analysis core: it fuses priced odds, the
// secondary prediction source and recent form into probability estimates,
// recommendations and confidence levels, then ranks the batch globally and
// per region.
package analyzer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/palpitebot/palpitebot/internal/competitions"
	"github.com/palpitebot/palpitebot/internal/markets"
	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Input is one batch of fixtures plus the optional secondary bundle for the
// same day. All inputs are read-only during a run.
type Input struct {
	Fixtures  []models.Fixture
	Secondary models.SecondaryBundle
}

// Analyzer runs per-fixture analysis across a bounded worker pool. Safe for
// concurrent use; it holds no per-run state.
type Analyzer struct {
	index       *competitions.Index
	logger      *slog.Logger
	maxFixtures int
	workers     int
}

func New(index *competitions.Index, cfg config.AnalysisConfig, logger *slog.Logger) *Analyzer {
	maxFixtures := cfg.MaxFixtures
	if maxFixtures <= 0 {
		maxFixtures = 120
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	return &Analyzer{
		index:       index,
		logger:      logger,
		maxFixtures: maxFixtures,
		workers:     workers,
	}
}

// Analyze processes the batch and returns the ranked result. Fixtures past
// the batch cap are skipped; a fixture whose analysis panics is dropped and
// the rest of the batch proceeds.
func (a *Analyzer) Analyze(ctx context.Context, input Input) *Result {
	fixtures := input.Fixtures
	if len(fixtures) > a.maxFixtures {
		a.logger.Warn("fixture batch capped",
			"received", len(fixtures),
			"cap", a.maxFixtures)
		fixtures = fixtures[:a.maxFixtures]
	}

	results := make([]*models.AnalyzedMatch, len(fixtures))
	sem := make(chan struct{}, a.workers)
	var wg sync.WaitGroup

	for i := range fixtures {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			results[i] = a.analyzeSafely(&fixtures[i], input.Secondary)
		}(i)
	}
	wg.Wait()

	analyzed := make([]*models.AnalyzedMatch, 0, len(results))
	for _, m := range results {
		if m != nil {
			analyzed = append(analyzed, m)
		}
	}

	result := aggregate(analyzed)
	a.logger.Info("batch analyzed",
		"fixtures", len(fixtures),
		"analyzed", result.TotalAnalyzed,
		"high", result.HighConfidenceCount,
		"medium", result.MediumConfidenceCount)
	return result
}

// AnalyzeOne analyzes a single fixture outside of batch ranking, for on-demand
// lookups.
func (a *Analyzer) AnalyzeOne(fixture *models.Fixture, secondary models.SecondaryBundle) *models.AnalyzedMatch {
	return a.analyzeSafely(fixture, secondary)
}

// analyzeSafely is the per-fixture boundary: a panic drops this fixture only.
func (a *Analyzer) analyzeSafely(fixture *models.Fixture, secondary models.SecondaryBundle) (match *models.AnalyzedMatch) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("fixture analysis failed",
				"fixtureId", fixture.ID,
				"home", fixture.HomeTeam,
				"away", fixture.AwayTeam,
				"panic", r)
			match = nil
		}
	}()
	return a.analyzeFixture(fixture, secondary)
}

func (a *Analyzer) analyzeFixture(fixture *models.Fixture, secondary models.SecondaryBundle) *models.AnalyzedMatch {
	competition := a.index.Identify(fixture.League)
	canonical := markets.Normalize(fixture.Quotes)
	secondaryProbs, hasSecondary := secondary.Lookup(fixture.HomeTeam, fixture.AwayTeam)

	estimate, secondaryUsed := resolveProbabilities(
		canonical, secondaryProbs, hasSecondary, fixture.HomeForm, fixture.AwayForm)

	recommendations, notes, confidence := scoreMatch(scoreInput{
		Probabilities: estimate,
		HomeTeam:      fixture.HomeTeam,
		AwayTeam:      fixture.AwayTeam,
		HomeForm:      fixture.HomeForm,
		AwayForm:      fixture.AwayForm,
		H2H:           fixture.H2H,
		SecondaryUsed: secondaryUsed,
	})

	return &models.AnalyzedMatch{
		FixtureID:       fixture.ID,
		Date:            fixture.Date,
		Kickoff:         fixture.Kickoff,
		League:          fixture.League,
		Competition:     competition,
		HomeTeam:        fixture.HomeTeam,
		AwayTeam:        fixture.AwayTeam,
		Probabilities:   estimate,
		Recommendations: recommendations,
		Notes:           notes,
		Confidence:      confidence,
	}
}
