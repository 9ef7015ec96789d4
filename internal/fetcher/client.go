// Package fetcher retrieves fixtures, odds and form data from the
// API-Football service and condenses them into the read-only inputs the
// analysis core consumes.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/palpitebot/palpitebot/internal/competitions"
	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// ErrRateLimited is returned when the API keeps answering 429 past the retry
// budget. Callers memoize the failure instead of hammering the quota further.
var ErrRateLimited = errors.New("api request quota exhausted")

// Cache lifetimes per data class. Odds move fastest.
const (
	teamFormTTL = 10 * time.Minute
	h2hTTL      = 15 * time.Minute
	oddsTTL     = 5 * time.Minute

	failureTTL          = time.Minute
	rateLimitFailureTTL = 2 * time.Minute
)

// Client is the API-Football client. Safe for concurrent use; the caches are
// shared across runs so scheduled and on-demand fetches reinforce each other.
type Client struct {
	cfg    config.FootballAPIConfig
	http   *http.Client
	index  *competitions.Index
	logger *slog.Logger

	teamFormCache *ttlCache[int, *models.TeamFormSummary]
	h2hCache      *ttlCache[[2]int, *models.HeadToHeadSummary]
	oddsCache     *ttlCache[int64, []models.RawMarketQuote]
}

func New(cfg config.FootballAPIConfig, index *competitions.Index, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		index:  index,
		logger: logger,

		teamFormCache: newTTLCache[int, *models.TeamFormSummary](),
		h2hCache:      newTTLCache[[2]int, *models.HeadToHeadSummary](),
		oddsCache:     newTTLCache[int64, []models.RawMarketQuote](),
	}
}

// get issues one API request with retry handling: 429 waits out the
// Retry-After header (clamped to 1..300s, doubling default), 5xx backs off
// with the same doubling schedule capped at 120s.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	attempt := 0
	wait := 30 * time.Second

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
		req.Header.Set("X-RapidAPI-Host", "v3.football.api-sports.io")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, 0, fmt.Errorf("request to %s failed: %w", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read response from %s: %w", path, err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			attempt++
			if attempt > c.cfg.MaxRetries {
				return nil, resp.StatusCode, ErrRateLimited
			}
			retryAfter := retryAfterDelay(resp.Header.Get("Retry-After"), wait)
			c.logger.Warn("rate limit hit, waiting before retry",
				"path", path,
				"wait", retryAfter)
			if err := sleepCtx(ctx, retryAfter); err != nil {
				return nil, resp.StatusCode, err
			}
			wait *= 2

		case resp.StatusCode >= 500 && attempt < c.cfg.MaxRetries:
			attempt++
			backoff := wait
			if backoff > 120*time.Second {
				backoff = 120 * time.Second
			}
			c.logger.Warn("server error, backing off",
				"path", path,
				"status", resp.StatusCode,
				"wait", backoff)
			if err := sleepCtx(ctx, backoff); err != nil {
				return nil, resp.StatusCode, err
			}
			wait *= 2

		default:
			return body, resp.StatusCode, nil
		}
	}
}

// retryAfterDelay interprets a Retry-After header value, clamped to 1..300s.
func retryAfterDelay(header string, fallback time.Duration) time.Duration {
	delay := fallback
	if header != "" {
		if seconds, err := strconv.ParseFloat(header, 64); err == nil {
			delay = time.Duration(seconds) * time.Second
		}
	}
	if delay < time.Second {
		delay = time.Second
	}
	if delay > 300*time.Second {
		delay = 300 * time.Second
	}
	return delay
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
