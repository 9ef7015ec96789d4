// Package forebet scrapes the Forebet daily predictions page and exposes the
// result as the secondary probability bundle the analysis core consumes.
package forebet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/palpitebot/palpitebot/internal/pkg/config"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

const (
	urlTemplate = "%s/en/football-tips-and-predictions-for-%s"

	// After a failed page load, skip that date for a while instead of
	// re-launching a browser per fixture.
	failureBackoff = 180 * time.Second

	pageSettle = 3 * time.Second
)

// chromeMu serializes Chrome usage so only one instance runs at a time.
var chromeMu sync.Mutex

// Client scrapes and caches Forebet predictions per date. Safe for concurrent
// use.
type Client struct {
	cfg    config.ForebetConfig
	logger *slog.Logger

	mu       sync.Mutex
	cache    map[string]models.SecondaryBundle
	failures map[string]time.Time
}

func New(cfg config.ForebetConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:      cfg,
		logger:   logger,
		cache:    make(map[string]models.SecondaryBundle),
		failures: make(map[string]time.Time),
	}
}

// Bundle returns the day's predictions keyed by team pair. Returns nil when
// scraping is disabled, recently failed for this date, or yields nothing:
// the analysis simply runs without the secondary source.
func (c *Client) Bundle(ctx context.Context, date time.Time) models.SecondaryBundle {
	if !c.cfg.Enabled {
		return nil
	}
	iso := date.UTC().Format("2006-01-02")

	c.mu.Lock()
	if bundle, ok := c.cache[iso]; ok {
		c.mu.Unlock()
		return bundle
	}
	if failedAt, ok := c.failures[iso]; ok && time.Since(failedAt) < failureBackoff {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	pageHTML, err := c.loadPage(ctx, date)
	if err != nil {
		c.logger.Warn("failed to load forebet page", "date", iso, "error", err)
		c.mu.Lock()
		c.failures[iso] = time.Now()
		c.mu.Unlock()
		return nil
	}

	bundle := parsePredictions(pageHTML)
	c.logger.Info("forebet predictions parsed", "date", iso, "matches", len(bundle))

	c.mu.Lock()
	c.cache[iso] = bundle
	delete(c.failures, iso)
	c.mu.Unlock()
	return bundle
}

// loadPage renders the predictions page in headless Chrome. The page builds
// its table with JavaScript, so a plain GET is not enough.
func (c *Client) loadPage(ctx context.Context, date time.Time) (string, error) {
	chromeMu.Lock()
	defer chromeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	url := fmt.Sprintf(urlTemplate, c.cfg.BaseURL, pageSlug(date))

	var pageHTML string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(pageSettle),
		chromedp.OuterHTML("html", &pageHTML),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}
	return pageHTML, nil
}

// pageSlug picks the URL slug: the site serves today's page under "today".
func pageSlug(date time.Time) string {
	today := time.Now().UTC().Format("2006-01-02")
	iso := date.UTC().Format("2006-01-02")
	if iso == today {
		return "today"
	}
	return iso
}
