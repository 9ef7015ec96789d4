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
	"strings"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// ErrTeamNotFound reports that the search query matched no team.
var ErrTeamNotFound = errors.New("team not found")

// finished or abandoned fixture states the lookup must skip
var terminalStatuses = map[string]struct{}{
	"FT": {}, "AET": {}, "PEN": {}, "POST": {}, "CAN": {},
}

// LocateFixture resolves a free-text query ("benfica", "city-psg") to the next
// upcoming fixture for that team or pairing, fully enriched for analysis.
func (c *Client) LocateFixture(ctx context.Context, query string) (*models.Fixture, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, errors.New("empty query")
	}

	teamQuery, opponentQuery := splitMatchQuery(trimmed)

	team, err := c.SearchTeam(ctx, teamQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamQuery)
	}

	var item *fixtureItem
	if opponentQuery != "" {
		opponent, err := c.SearchTeam(ctx, opponentQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, opponentQuery)
		}
		item, err = c.fixtureBetween(ctx, team.ID, opponent.ID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("no upcoming fixture between %s and %s", team.Name, opponent.Name)
		}
	} else {
		item, err = c.nextFixtureForTeam(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("no upcoming fixture for %s", team.Name)
		}
	}

	fixture := c.buildFixture(ctx, item)
	return &fixture, nil
}

// splitMatchQuery splits "home-away" style queries on the separators users
// actually type. A query without a separator is a single-team lookup.
func splitMatchQuery(query string) (team, opponent string) {
	for _, sep := range []string{"-", " x ", " vs ", " v "} {
		if !strings.Contains(strings.ToLower(query), sep) {
			continue
		}
		parts := splitNonEmpty(query, sep)
		if len(parts) >= 2 {
			return parts[0], parts[1]
		}
	}
	return query, ""
}

func splitNonEmpty(query, sep string) []string {
	var parts []string
	for _, part := range strings.Split(strings.ToLower(query), sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// SearchTeam finds the best-matching team for a free-text query. Exact
// normalized name matches rank highest, then prefix and substring matches;
// country matches and national sides get a boost so "portugal" finds the
// national team rather than a club.
func (c *Client) SearchTeam(ctx context.Context, query string) (*teamRef, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrTeamNotFound
	}

	params := url.Values{}
	params.Set("search", query)
	body, statusCode, err := c.get(ctx, "/teams", params)
	if err != nil {
		return nil, fmt.Errorf("team search failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("team search returned status %d", statusCode)
	}

	var envelope teamsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode team search payload: %w", err)
	}
	if len(envelope.Response) == 0 {
		return nil, ErrTeamNotFound
	}

	normalizedQuery := models.NormalizeName(query)
	var best *teamRef
	bestScore := -1

	for i := range envelope.Response {
		team := &envelope.Response[i].Team
		score := scoreTeamCandidate(team, normalizedQuery)
		if score > bestScore {
			best = team
			bestScore = score
		}
	}
	return best, nil
}

func scoreTeamCandidate(team *teamRef, normalizedQuery string) int {
	name := models.NormalizeName(team.Name)
	score := 0

	switch {
	case normalizedQuery != "" && name == normalizedQuery:
		score += 200
	case normalizedQuery != "" && strings.HasPrefix(name, normalizedQuery):
		score += 140
	case normalizedQuery != "" && strings.Contains(name, normalizedQuery):
		score += 100
	}

	if normalizedQuery != "" && models.NormalizeName(team.Country) == normalizedQuery {
		score += 160
	}
	if team.National {
		score += 60
	}
	if team.Code != "" && normalizedQuery != "" &&
		strings.HasPrefix(normalizedQuery, strings.ToLower(team.Code)) {
		score += 40
	}
	return score
}

// nextFixtureForTeam returns the team's earliest not-yet-finished fixture.
func (c *Client) nextFixtureForTeam(ctx context.Context, teamID int) (*fixtureItem, error) {
	items, err := c.fetchFixtureList(ctx, "/fixtures", url.Values{
		"team": []string{strconv.Itoa(teamID)},
		"next": []string{"5"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming fixtures: %w", err)
	}
	return pickUpcoming(items), nil
}

// fixtureBetween finds the next meeting of two teams, first via the
// head-to-head endpoint, then by scanning the first team's upcoming fixtures.
func (c *Client) fixtureBetween(ctx context.Context, teamA, teamB int) (*fixtureItem, error) {
	items, err := c.fetchFixtureList(ctx, "/fixtures/headtohead", url.Values{
		"h2h":  []string{fmt.Sprintf("%d-%d", teamA, teamB)},
		"next": []string{"1"},
	})
	if err != nil {
		c.logger.Warn("head-to-head lookup failed, scanning upcoming fixtures",
			"teamA", teamA,
			"teamB", teamB,
			"error", err)
	}
	if fixture := pickUpcoming(items); fixture != nil {
		return fixture, nil
	}

	candidates, err := c.fetchFixtureList(ctx, "/fixtures", url.Values{
		"team": []string{strconv.Itoa(teamA)},
		"next": []string{"10"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming fixtures: %w", err)
	}
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Teams.Home.ID != teamB && candidate.Teams.Away.ID != teamB {
			continue
		}
		if _, done := terminalStatuses[strings.ToUpper(candidate.Fixture.Status.Short)]; done {
			continue
		}
		return candidate, nil
	}
	return nil, nil
}

// pickUpcoming returns the earliest fixture that has not finished.
func pickUpcoming(items []fixtureItem) *fixtureItem {
	var upcoming []fixtureItem
	for _, item := range items {
		if _, done := terminalStatuses[strings.ToUpper(item.Fixture.Status.Short)]; done {
			continue
		}
		upcoming = append(upcoming, item)
	}
	if len(upcoming) == 0 {
		return nil
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Fixture.Timestamp < upcoming[j].Fixture.Timestamp
	})
	return &upcoming[0]
}
