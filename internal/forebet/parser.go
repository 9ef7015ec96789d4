package forebet

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// The predictions page is a plain table per competition: one row per match,
// team names in dedicated cells, percentage columns for 1X2 and optionally
// over/under and BTTS. The markup is not stable enough for a DOM selector
// approach; row/cell regexes survive its layout shuffles better.
var (
	rowPattern  = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	cellPattern = regexp.MustCompile(`(?is)<td[^>]*>(.*?)</td>`)
	homePattern = regexp.MustCompile(`(?is)class="[^"]*(?:home|tnms|team1)[^"]*"[^>]*>(.*?)</td>`)
	awayPattern = regexp.MustCompile(`(?is)class="[^"]*(?:away|tnms2|team2)[^"]*"[^>]*>(.*?)</td>`)

	percentPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*%`)
	brPattern      = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// parsePredictions extracts per-match probabilities from the raw page HTML.
// Rows without a full 1X2 percentage triple are skipped; the first row per
// team pair wins.
func parsePredictions(pageHTML string) models.SecondaryBundle {
	bundle := make(models.SecondaryBundle)

	for _, rowMatch := range rowPattern.FindAllStringSubmatch(pageHTML, -1) {
		rowHTML := rowMatch[1]
		cells := cellPattern.FindAllStringSubmatch(rowHTML, -1)
		if len(cells) < 3 {
			continue
		}

		homeTeam, awayTeam := extractTeams(rowHTML, cells)
		if homeTeam == "" || awayTeam == "" {
			continue
		}

		// Percentage cells in row order: 1X2 first, then over/under and
		// BTTS when the table carries them.
		var percentages []int
		for _, cell := range cells {
			if value, ok := parsePercentage(decodeFragment(cell[1])); ok {
				percentages = append(percentages, value)
			}
		}
		if len(percentages) < 3 {
			continue
		}

		if models.NormalizeName(homeTeam) == "" || models.NormalizeName(awayTeam) == "" {
			continue
		}
		key := models.TeamPairKey(homeTeam, awayTeam)
		if _, exists := bundle[key]; exists {
			continue
		}

		probs := models.SecondaryProbabilities{
			Home: percentages[0],
			Draw: percentages[1],
			Away: percentages[2],
		}
		if len(percentages) >= 5 {
			probs.Over25 = percentages[3]
			probs.Under25 = percentages[4]
		}
		if len(percentages) >= 7 {
			probs.BttsYes = percentages[5]
			probs.BttsNo = percentages[6]
		}
		bundle[key] = probs
	}

	return bundle
}

// extractTeams pulls the team names out of a row, preferring the dedicated
// team cells and falling back to positional cells.
func extractTeams(rowHTML string, cells [][]string) (home, away string) {
	if m := homePattern.FindStringSubmatch(rowHTML); m != nil {
		home = decodeFragment(m[1])
	}
	if m := awayPattern.FindStringSubmatch(rowHTML); m != nil {
		away = decodeFragment(m[1])
	}

	if (home == "" || away == "") && len(cells) >= 3 {
		if home == "" {
			home = decodeFragment(cells[1][1])
		}
		if away == "" {
			away = decodeFragment(cells[2][1])
		}
	}
	return home, away
}

// parsePercentage finds the first "NN%" figure in a cell, clamped to [0,100].
func parsePercentage(text string) (int, bool) {
	m := percentPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	rounded := int(math.Round(value))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}
	return rounded, true
}

// decodeFragment strips tags from an HTML fragment and collapses whitespace.
func decodeFragment(fragment string) string {
	text := brPattern.ReplaceAllString(fragment, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
