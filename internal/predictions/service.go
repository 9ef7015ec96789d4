// Package predictions runs the full analysis pipeline: fetch the day's
// fixtures, pull the secondary predictions, analyze and render the messages.
package predictions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/palpitebot/palpitebot/internal/analyzer"
	"github.com/palpitebot/palpitebot/internal/fetcher"
	"github.com/palpitebot/palpitebot/internal/forebet"
	"github.com/palpitebot/palpitebot/internal/messages"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
	"github.com/palpitebot/palpitebot/internal/pkg/storage"
)

// Service assembles the pipeline behind the bot commands and the daily post.
type Service struct {
	fetcher  *fetcher.Client
	forebet  *forebet.Client
	analyzer *analyzer.Analyzer
	storage  storage.PredictionStorage
	logger   *slog.Logger
}

// New wires the pipeline. storage may be nil when history is disabled.
func New(fetcherClient *fetcher.Client, forebetClient *forebet.Client, matchAnalyzer *analyzer.Analyzer, store storage.PredictionStorage, logger *slog.Logger) *Service {
	return &Service{
		fetcher:  fetcherClient,
		forebet:  forebetClient,
		analyzer: matchAnalyzer,
		storage:  store,
		logger:   logger,
	}
}

// RunDaily analyzes a date's fixtures, records the run and returns the
// rendered channel post alongside the raw result.
func (s *Service) RunDaily(ctx context.Context, date time.Time) (string, *analyzer.Result, error) {
	started := time.Now()

	batch, err := s.fetcher.FetchMatches(ctx, date, "NS")
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	bundle := s.forebet.Bundle(ctx, date)

	result := s.analyzer.Analyze(ctx, analyzer.Input{
		Fixtures:  batch.Fixtures,
		Secondary: bundle,
	})

	message := messages.BuildDaily(messages.DailyInput{
		Date:            date,
		EligibleMatches: batch.SupportedFixtures,
		Result:          result,
	})

	s.storeRun(ctx, date, result)

	s.logger.Info("daily analysis finished",
		"date", date.Format("2006-01-02"),
		"fixtures", batch.SupportedFixtures,
		"analyzed", result.TotalAnalyzed,
		"highConfidence", result.HighConfidenceCount,
		"duration", time.Since(started).Round(time.Millisecond))
	return message, result, nil
}

// DailyMessage implements the listener's prediction service.
func (s *Service) DailyMessage(ctx context.Context, date time.Time) (string, error) {
	message, _, err := s.RunDaily(ctx, date)
	return message, err
}

// MatchMessage locates the next fixture for a free-text query and renders
// its analysis.
func (s *Service) MatchMessage(ctx context.Context, query string) (string, error) {
	fixture, err := s.fetcher.LocateFixture(ctx, query)
	if err != nil {
		return "", err
	}

	var bundle models.SecondaryBundle
	if !fixture.Date.IsZero() {
		bundle = s.forebet.Bundle(ctx, fixture.Date)
	}

	match := s.analyzer.AnalyzeOne(fixture, bundle)
	if match == nil {
		return "", fmt.Errorf("analysis failed for %s vs %s", fixture.HomeTeam, fixture.AwayTeam)
	}
	return messages.BuildMatchDetail(match), nil
}

// storeRun is best effort: a storage failure never blocks the post.
func (s *Service) storeRun(ctx context.Context, date time.Time, result *analyzer.Result) {
	if s.storage == nil || result.TotalAnalyzed == 0 {
		return
	}
	if _, err := s.storage.StoreRun(ctx, date, result.Matches); err != nil {
		s.logger.Error("failed to store prediction run", "error", err)
	}
}
