// Package scheduler triggers the daily predictions post at a fixed UTC time.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
)

// Job runs one daily cycle for the given date.
type Job func(ctx context.Context, date time.Time) error

// Scheduler fires a job once per day at the configured wall-clock time.
type Scheduler struct {
	cfg    config.SchedulerConfig
	job    Job
	logger *slog.Logger
}

func New(cfg config.SchedulerConfig, job Job, logger *slog.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, job: job, logger: logger}
}

// Run blocks until the context ends, firing the job at each daily slot. A
// failed run is logged and the scheduler waits for the next slot.
func (s *Scheduler) Run(ctx context.Context) error {
	sendTime := s.cfg.DailySendTime
	if sendTime == "" {
		sendTime = "09:00"
	}
	if _, err := time.Parse("15:04", sendTime); err != nil {
		return fmt.Errorf("invalid daily_send_time %q: %w", sendTime, err)
	}

	if s.cfg.RunImmediately {
		s.fire(ctx)
	}

	for {
		next := NextRun(time.Now().UTC(), sendTime)
		s.logger.Info("next daily run scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	date := time.Now().UTC()
	if err := s.job(ctx, date); err != nil {
		s.logger.Error("daily run failed", "date", date.Format("2006-01-02"), "error", err)
	}
}

// NextRun returns the first instant strictly after now that matches the
// "HH:MM" wall-clock time in UTC.
func NextRun(now time.Time, sendTime string) time.Time {
	parsed, err := time.Parse("15:04", sendTime)
	if err != nil {
		parsed, _ = time.Parse("15:04", "09:00")
	}

	next := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
