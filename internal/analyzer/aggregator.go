package analyzer

import (
	"sort"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

const (
	globalTopSize = 10
	regionTopSize = 5
)

// Result is the full outcome of one analysis run. Matches keeps analysis
// order; BestMatches and the region views are ranked.
type Result struct {
	TotalAnalyzed         int                      `json:"totalAnalyzed"`
	HighConfidenceCount   int                      `json:"highConfidenceCount"`
	MediumConfidenceCount int                      `json:"mediumConfidenceCount"`
	Matches               []*models.AnalyzedMatch  `json:"matches"`
	BestMatches           []*models.AnalyzedMatch  `json:"bestMatches"`
	BreakdownByRegion     []models.RegionBreakdown `json:"breakdownByRegion"`
	BestByRegion          []models.RegionTop       `json:"bestMatchesByRegion"`
}

// Score ranks a match for the global and per-region top lists. Confidence
// dominates, recommendation count breaks confidence ties, and the strongest
// 1X2 probability breaks the rest.
func Score(m *models.AnalyzedMatch) int {
	return m.Confidence.Weight()*1000 + len(m.Recommendations)*10 + m.Probabilities.MaxOutcome()
}

// aggregate ranks the analyzed matches globally and per region. Matches whose
// competition did not resolve stay in the global views but join no region
// bucket. Sorting is stable: equal scores keep analysis order.
func aggregate(matches []*models.AnalyzedMatch) *Result {
	result := &Result{
		TotalAnalyzed: len(matches),
		Matches:       matches,
	}

	ranked := make([]*models.AnalyzedMatch, len(matches))
	copy(ranked, matches)
	sortByScore(ranked)

	result.BestMatches = topN(ranked, globalTopSize)
	for _, m := range matches {
		switch m.Confidence {
		case models.ConfidenceHigh:
			result.HighConfidenceCount++
		case models.ConfidenceMedium:
			result.MediumConfidenceCount++
		}
	}

	buckets := make(map[models.Region][]*models.AnalyzedMatch)
	for _, m := range matches {
		region := m.Region()
		if region == "" {
			continue
		}
		buckets[region] = append(buckets[region], m)
	}

	for _, region := range models.RegionOrder {
		regional := buckets[region]

		row := models.RegionBreakdown{
			Region: region,
			Label:  models.RegionLabel(region),
			Total:  len(regional),
		}
		for _, m := range regional {
			switch m.Confidence {
			case models.ConfidenceHigh:
				row.HighConfidence++
			case models.ConfidenceMedium:
				row.MediumConfidence++
			}
		}
		result.BreakdownByRegion = append(result.BreakdownByRegion, row)

		ordered := make([]*models.AnalyzedMatch, len(regional))
		copy(ordered, regional)
		sortByScore(ordered)
		result.BestByRegion = append(result.BestByRegion, models.RegionTop{
			Region:  region,
			Label:   models.RegionLabel(region),
			Matches: topN(ordered, regionTopSize),
		})
	}

	return result
}

func sortByScore(matches []*models.AnalyzedMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return Score(matches[i]) > Score(matches[j])
	})
}

func topN(matches []*models.AnalyzedMatch, n int) []*models.AnalyzedMatch {
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
