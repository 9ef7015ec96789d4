// Package storage persists prediction runs in PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Ensure PostgresPredictionStorage implements PredictionStorage
var _ PredictionStorage = (*PostgresPredictionStorage)(nil)

// StoredPrediction is one analyzed match as read back from the history table.
type StoredPrediction struct {
	RunDate         time.Time
	FixtureID       int64
	HomeTeam        string
	AwayTeam        string
	Competition     string
	Region          string
	Confidence      models.Confidence
	Recommendations []string
	StoredAt        time.Time
}

// PredictionStorage records daily analysis runs and serves history queries.
type PredictionStorage interface {
	StoreRun(ctx context.Context, runDate time.Time, matches []*models.AnalyzedMatch) (int, error)
	RecentHighConfidence(ctx context.Context, withinDays int) ([]StoredPrediction, error)
	Close() error
}

// PostgresPredictionStorage stores prediction runs in PostgreSQL.
type PostgresPredictionStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresPredictionStorage opens the connection and prepares the schema.
func NewPostgresPredictionStorage(cfg *config.PostgresConfig, logger *slog.Logger) (*PostgresPredictionStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	storage := &PostgresPredictionStorage{db: db, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("postgres prediction storage initialized")
	return storage, nil
}

func (s *PostgresPredictionStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS predictions (
		id SERIAL PRIMARY KEY,
		run_date DATE NOT NULL,
		fixture_id BIGINT NOT NULL,
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		competition VARCHAR(200) NOT NULL DEFAULT '',
		region VARCHAR(50) NOT NULL DEFAULT '',
		confidence VARCHAR(20) NOT NULL,
		home_win SMALLINT NOT NULL,
		draw SMALLINT NOT NULL,
		away_win SMALLINT NOT NULL,
		recommendations JSONB NOT NULL DEFAULT '[]',
		notes JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(run_date, fixture_id)
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_run_date ON predictions(run_date DESC);
	CREATE INDEX IF NOT EXISTS idx_predictions_confidence ON predictions(confidence);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// StoreRun inserts the matches of one analysis run. Re-running the same date
// is a no-op for fixtures already recorded. Returns the number of new rows.
func (s *PostgresPredictionStorage) StoreRun(ctx context.Context, runDate time.Time, matches []*models.AnalyzedMatch) (int, error) {
	query := `
	INSERT INTO predictions (
		run_date, fixture_id, home_team, away_team, competition, region,
		confidence, home_win, draw, away_win, recommendations, notes
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (run_date, fixture_id) DO NOTHING
	RETURNING id
	`

	inserted := 0
	for _, m := range matches {
		competition := m.League.Name
		region := ""
		if m.Competition != nil {
			competition = m.Competition.DisplayName
			region = string(m.Competition.Region)
		}

		recommendations, err := json.Marshal(m.Recommendations)
		if err != nil {
			return inserted, fmt.Errorf("failed to encode recommendations: %w", err)
		}
		notes, err := json.Marshal(m.Notes)
		if err != nil {
			return inserted, fmt.Errorf("failed to encode notes: %w", err)
		}

		var id int
		err = s.db.QueryRowContext(ctx, query,
			runDate.Format("2006-01-02"),
			m.FixtureID,
			m.HomeTeam,
			m.AwayTeam,
			competition,
			region,
			string(m.Confidence),
			m.Probabilities.HomeWin,
			m.Probabilities.Draw,
			m.Probabilities.AwayWin,
			recommendations,
			notes,
		).Scan(&id)

		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("failed to store prediction for fixture %d: %w", m.FixtureID, err)
		}
		inserted++
	}

	s.logger.Info("prediction run stored",
		"runDate", runDate.Format("2006-01-02"),
		"matches", len(matches),
		"inserted", inserted)
	return inserted, nil
}

// RecentHighConfidence returns the high-confidence picks of the last N days,
// newest run first.
func (s *PostgresPredictionStorage) RecentHighConfidence(ctx context.Context, withinDays int) ([]StoredPrediction, error) {
	query := `
	SELECT run_date, fixture_id, home_team, away_team, competition, region,
	       confidence, recommendations, created_at
	FROM predictions
	WHERE confidence = $1
	  AND run_date > NOW() - $2 * INTERVAL '1 day'
	ORDER BY run_date DESC, fixture_id
	`

	rows, err := s.db.QueryContext(ctx, query, string(models.ConfidenceHigh), withinDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent predictions: %w", err)
	}
	defer rows.Close()

	var predictions []StoredPrediction
	for rows.Next() {
		var p StoredPrediction
		var confidence string
		var recommendations []byte

		err := rows.Scan(
			&p.RunDate,
			&p.FixtureID,
			&p.HomeTeam,
			&p.AwayTeam,
			&p.Competition,
			&p.Region,
			&confidence,
			&recommendations,
			&p.StoredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}

		p.Confidence = models.Confidence(confidence)
		if err := json.Unmarshal(recommendations, &p.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return predictions, nil
}

// Close closes the database connection.
func (s *PostgresPredictionStorage) Close() error {
	return s.db.Close()
}
