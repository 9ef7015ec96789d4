package fetcher

import (
	"math"
	"sort"
	"strings"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// API-Football response shapes, limited to the fields this service reads.

type teamRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Code     string `json:"code"`
	National bool   `json:"national"`
	Winner   *bool  `json:"winner"`
}

type goalPair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Status    struct {
			Short string `json:"short"`
		} `json:"status"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
	} `json:"fixture"`
	League models.LeagueRef `json:"league"`
	Teams  struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals goalPair `json:"goals"`
	Score struct {
		Fulltime  goalPair `json:"fulltime"`
		Extratime goalPair `json:"extratime"`
		Penalty   goalPair `json:"penalty"`
	} `json:"score"`
}

type fixturesEnvelope struct {
	Response []fixtureItem `json:"response"`
}

type oddsEnvelope struct {
	Response []struct {
		Bookmakers []struct {
			Bets []struct {
				Name   string              `json:"name"`
				Values []models.QuoteValue `json:"values"`
			} `json:"bets"`
		} `json:"bookmakers"`
	} `json:"response"`
}

type teamsEnvelope struct {
	Response []struct {
		Team teamRef `json:"team"`
	} `json:"response"`
}

// flattenOdds merges the per-bookmaker markets into one quote list. For each
// market name the first bookmaker with a non-empty value list wins, so the
// quote order follows bookmaker preference.
func flattenOdds(envelope oddsEnvelope) []models.RawMarketQuote {
	if len(envelope.Response) == 0 {
		return nil
	}

	seen := make(map[string][]models.QuoteValue)
	var order []string
	for _, bookmaker := range envelope.Response[0].Bookmakers {
		for _, bet := range bookmaker.Bets {
			if bet.Name == "" {
				continue
			}
			if existing, ok := seen[bet.Name]; ok && len(existing) > 0 {
				continue
			}
			if _, ok := seen[bet.Name]; !ok {
				order = append(order, bet.Name)
			}
			seen[bet.Name] = bet.Values
		}
	}

	quotes := make([]models.RawMarketQuote, 0, len(order))
	for _, name := range order {
		quotes = append(quotes, models.RawMarketQuote{Name: name, Values: seen[name]})
	}
	return quotes
}

// extractScore resolves a finished fixture's score, falling back through
// full-time, extra-time and penalty figures when the goals block is empty.
func extractScore(item fixtureItem) (home, away int) {
	pick := func(direct *int, fallbacks ...*int) int {
		if direct != nil {
			return *direct
		}
		for _, f := range fallbacks {
			if f != nil && *f != 0 {
				return *f
			}
		}
		return 0
	}
	home = pick(item.Goals.Home, item.Score.Fulltime.Home, item.Score.Extratime.Home, item.Score.Penalty.Home)
	away = pick(item.Goals.Away, item.Score.Fulltime.Away, item.Score.Extratime.Away, item.Score.Penalty.Away)
	return home, away
}

// summarizeTeamForm condenses a team's recent fixtures, most recent first,
// into the form summary the analysis core reads. Returns nil when there is
// nothing to summarize.
func summarizeTeamForm(teamID int, items []fixtureItem) *models.TeamFormSummary {
	if teamID == 0 || len(items) == 0 {
		return nil
	}

	ordered := make([]fixtureItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Fixture.Timestamp > ordered[j].Fixture.Timestamp
	})

	summary := &models.TeamFormSummary{SampleSize: len(ordered)}
	var record strings.Builder
	var goalsFor, goalsAgainst int

	for _, item := range ordered {
		homeGoals, awayGoals := extractScore(item)
		isHome := item.Teams.Home.ID == teamID

		winner := resultWinner(item, homeGoals, awayGoals)
		var code string
		switch {
		case winner == "draw":
			code = "E"
			summary.Draws++
		case (winner == "home") == isHome:
			code = "V"
			summary.Wins++
		default:
			code = "D"
			summary.Losses++
		}
		record.WriteString(code)

		if isHome {
			goalsFor += homeGoals
			goalsAgainst += awayGoals
		} else {
			goalsFor += awayGoals
			goalsAgainst += homeGoals
		}
	}

	total := float64(summary.SampleSize)
	summary.WinRate = float64(summary.Wins) / total
	summary.DrawRate = float64(summary.Draws) / total
	summary.LossRate = float64(summary.Losses) / total
	summary.AvgGoalsFor = round2(float64(goalsFor) / total)
	summary.AvgGoalsAgainst = round2(float64(goalsAgainst) / total)
	summary.GoalDiffAvg = round2(summary.AvgGoalsFor - summary.AvgGoalsAgainst)
	summary.RecentRecord = record.String()
	summary.CurrentStreak = currentStreak(summary.RecentRecord)

	return summary
}

// summarizeHeadToHead condenses previous meetings; win counts are relative to
// the upcoming fixture's home team regardless of who hosted historically.
func summarizeHeadToHead(homeID, awayID int, items []fixtureItem) *models.HeadToHeadSummary {
	if homeID == 0 || awayID == 0 || len(items) == 0 {
		return nil
	}

	ordered := make([]fixtureItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Fixture.Timestamp > ordered[j].Fixture.Timestamp
	})

	summary := &models.HeadToHeadSummary{SampleSize: len(ordered)}
	var totalGoals int

	for _, item := range ordered {
		homeGoals, awayGoals := extractScore(item)
		totalGoals += homeGoals + awayGoals
		upcomingHomeWasHome := item.Teams.Home.ID == homeID

		switch resultWinner(item, homeGoals, awayGoals) {
		case "draw":
			summary.Draws++
		case "home":
			if upcomingHomeWasHome {
				summary.HomeWins++
			} else {
				summary.AwayWins++
			}
		case "away":
			if upcomingHomeWasHome {
				summary.AwayWins++
			} else {
				summary.HomeWins++
			}
		}
	}

	summary.AvgGoalsTotal = round2(float64(totalGoals) / float64(summary.SampleSize))
	return summary
}

// resultWinner prefers the API's winner flags over the score: cup ties decided
// on penalties carry a level score with explicit winner markers.
func resultWinner(item fixtureItem, homeGoals, awayGoals int) string {
	homeWinner := item.Teams.Home.Winner
	awayWinner := item.Teams.Away.Winner
	switch {
	case homeWinner != nil && *homeWinner && awayWinner != nil && !*awayWinner:
		return "home"
	case homeWinner != nil && !*homeWinner && awayWinner != nil && *awayWinner:
		return "away"
	case homeGoals > awayGoals:
		return "home"
	case awayGoals > homeGoals:
		return "away"
	default:
		return "draw"
	}
}

// currentStreak counts the leading run of identical results in a "VED" record.
func currentStreak(record string) models.Streak {
	if record == "" {
		return models.Streak{}
	}
	first := record[0]
	count := 0
	for i := 0; i < len(record); i++ {
		if record[i] != first {
			break
		}
		count++
	}

	streakType := models.StreakDraw
	switch first {
	case 'V':
		streakType = models.StreakWin
	case 'D':
		streakType = models.StreakLoss
	}
	return models.Streak{Type: streakType, Count: count}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
