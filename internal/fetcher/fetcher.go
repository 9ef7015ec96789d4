package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Batch is one day of fetched fixtures plus the counts the run report needs.
type Batch struct {
	Date              time.Time
	TotalFixtures     int
	SupportedFixtures int
	Fixtures          []models.Fixture
}

// FetchMatches pulls the day's fixtures, keeps only supported competitions and
// enriches each fixture with odds, recent form and head-to-head history.
// Individual enrichment failures degrade the fixture, never the batch.
func (c *Client) FetchMatches(ctx context.Context, date time.Time, status string) (*Batch, error) {
	if status == "" {
		status = "NS"
	}
	isoDate := date.UTC().Format("2006-01-02")

	params := url.Values{}
	params.Set("date", isoDate)
	params.Set("status", status)
	c.logger.Info("fetching fixtures", "date", isoDate, "status", status)

	body, statusCode, err := c.get(ctx, "/fixtures", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("fixtures request returned status %d", statusCode)
	}

	var envelope fixturesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures payload: %w", err)
	}

	supported := make([]fixtureItem, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		if c.index.IsSupported(item.League) {
			supported = append(supported, item)
		}
	}
	sort.SliceStable(supported, func(i, j int) bool {
		return supported[i].Fixture.Timestamp < supported[j].Fixture.Timestamp
	})

	batch := &Batch{
		Date:              date,
		TotalFixtures:     len(envelope.Response),
		SupportedFixtures: len(supported),
	}
	c.logger.Info("processing fixtures",
		"total", batch.TotalFixtures,
		"supported", batch.SupportedFixtures)

	for i := range supported {
		item := &supported[i]
		if item.Fixture.ID == 0 {
			continue
		}
		fixture := c.buildFixture(ctx, item)
		batch.Fixtures = append(batch.Fixtures, fixture)
	}

	return batch, nil
}

func (c *Client) buildFixture(ctx context.Context, item *fixtureItem) models.Fixture {
	fixture := models.Fixture{
		ID:       item.Fixture.ID,
		Kickoff:  kickoffTime(item.Fixture.Date),
		League:   item.League,
		HomeTeam: item.Teams.Home.Name,
		AwayTeam: item.Teams.Away.Name,
		Venue:    item.Fixture.Venue.Name,
	}
	if parsed, err := time.Parse(time.RFC3339, item.Fixture.Date); err == nil {
		fixture.Date = parsed
	}
	if fixture.Venue == "" {
		fixture.Venue = "TBD"
	}

	fixture.Quotes = c.FetchOdds(ctx, item.Fixture.ID)
	fixture.HomeForm = c.TeamForm(ctx, item.Teams.Home.ID)
	fixture.AwayForm = c.TeamForm(ctx, item.Teams.Away.ID)
	fixture.H2H = c.HeadToHead(ctx, item.Teams.Home.ID, item.Teams.Away.ID)

	return fixture
}

// FetchOdds returns the flattened market quotes for a fixture, trying the
// preferred bookmaker first and falling back to the full list. Failures are
// memoized so the batch does not retry a dead endpoint per fixture.
func (c *Client) FetchOdds(ctx context.Context, fixtureID int64) []models.RawMarketQuote {
	if quotes, ok := c.oddsCache.get(fixtureID); ok {
		return quotes
	}

	attempts := []url.Values{}
	if c.cfg.BookmakerID > 0 {
		withBookmaker := url.Values{}
		withBookmaker.Set("fixture", strconv.FormatInt(fixtureID, 10))
		withBookmaker.Set("bookmaker", strconv.Itoa(c.cfg.BookmakerID))
		attempts = append(attempts, withBookmaker)
	}
	plain := url.Values{}
	plain.Set("fixture", strconv.FormatInt(fixtureID, 10))
	attempts = append(attempts, plain)

	for _, params := range attempts {
		quotes, err := c.fetchOddsOnce(ctx, params)
		if err != nil {
			c.logger.Warn("failed to fetch odds", "fixtureId", fixtureID, "error", err)
			c.oddsCache.set(fixtureID, nil, failureDuration(err))
			return nil
		}
		if len(quotes) > 0 {
			c.oddsCache.set(fixtureID, quotes, oddsTTL)
			return quotes
		}
	}

	c.oddsCache.set(fixtureID, nil, oddsTTL)
	return nil
}

func (c *Client) fetchOddsOnce(ctx context.Context, params url.Values) ([]models.RawMarketQuote, error) {
	body, statusCode, err := c.get(ctx, "/odds", params)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusNotFound {
		return nil, nil
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("odds request returned status %d", statusCode)
	}

	var envelope oddsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode odds payload: %w", err)
	}
	return flattenOdds(envelope), nil
}

// TeamForm returns the cached recent-form summary for a team, or nil when the
// data is unavailable.
func (c *Client) TeamForm(ctx context.Context, teamID int) *models.TeamFormSummary {
	if teamID == 0 {
		return nil
	}
	if summary, ok := c.teamFormCache.get(teamID); ok {
		return summary
	}

	items, err := c.fetchFixtureList(ctx, "/fixtures", url.Values{
		"team": []string{strconv.Itoa(teamID)},
		"last": []string{"5"},
	})
	if err != nil {
		c.logger.Warn("failed to fetch team form", "teamId", teamID, "error", err)
		c.teamFormCache.set(teamID, nil, failureDuration(err))
		return nil
	}

	summary := summarizeTeamForm(teamID, items)
	c.teamFormCache.set(teamID, summary, teamFormTTL)
	return summary
}

// HeadToHead returns the cached head-to-head summary for a team pair, or nil.
func (c *Client) HeadToHead(ctx context.Context, homeID, awayID int) *models.HeadToHeadSummary {
	if homeID == 0 || awayID == 0 {
		return nil
	}
	key := [2]int{homeID, awayID}
	if summary, ok := c.h2hCache.get(key); ok {
		return summary
	}

	items, err := c.fetchFixtureList(ctx, "/fixtures/headtohead", url.Values{
		"h2h":  []string{fmt.Sprintf("%d-%d", homeID, awayID)},
		"last": []string{"5"},
	})
	if err != nil {
		c.logger.Warn("failed to fetch head-to-head",
			"homeId", homeID,
			"awayId", awayID,
			"error", err)
		c.h2hCache.set(key, nil, failureDuration(err))
		return nil
	}

	summary := summarizeHeadToHead(homeID, awayID, items)
	c.h2hCache.set(key, summary, h2hTTL)
	return summary
}

func (c *Client) fetchFixtureList(ctx context.Context, endpoint string, params url.Values) ([]fixtureItem, error) {
	body, statusCode, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusNotFound {
		return nil, nil
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%s request returned status %d", endpoint, statusCode)
	}

	var envelope fixturesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures payload: %w", err)
	}
	return envelope.Response, nil
}

// failureDuration picks the memoization TTL for a failed call: quota errors
// stay out of the way longer.
func failureDuration(err error) time.Duration {
	if errors.Is(err, ErrRateLimited) {
		return rateLimitFailureTTL
	}
	return failureTTL
}

// kickoffTime formats the fixture's start as "HH:MM" in the provider's
// delivered timezone.
func kickoffTime(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return parsed.Format("15:04")
}
