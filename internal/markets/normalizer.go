// Package markets canonicalizes the market and outcome vocabulary of quote
// providers. Providers disagree on market names ("Match Winner", "1X2",
// "Resultado Final") and outcome labels ("Home", "1", "Casa"); everything
// downstream works on the three canonical kinds produced here.
package markets

import (
	"math"
	"strconv"
	"strings"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Kind is one of the three canonical market kinds.
type Kind string

const (
	KindMatchWinner    Kind = "match_winner"
	KindGoalsOverUnder Kind = "goals_over_under_2_5"
	KindBothTeamsScore Kind = "both_teams_score"
)

// OutcomeKind is a canonical outcome within a market.
type OutcomeKind string

const (
	OutcomeHome    OutcomeKind = "home"
	OutcomeDraw    OutcomeKind = "draw"
	OutcomeAway    OutcomeKind = "away"
	OutcomeOver25  OutcomeKind = "over_2_5"
	OutcomeUnder25 OutcomeKind = "under_2_5"
	OutcomeYes     OutcomeKind = "yes"
	OutcomeNo      OutcomeKind = "no"
)

// Outcome is a canonicalized outcome with a validated positive price.
type Outcome struct {
	Kind  OutcomeKind
	Price float64
}

// marketAliases maps normalized market names to canonical kinds.
var marketAliases = map[string]Kind{
	"match winner":        KindMatchWinner,
	"match result":        KindMatchWinner,
	"full time result":    KindMatchWinner,
	"1x2":                 KindMatchWinner,
	"resultado final":     KindMatchWinner,
	"vencedor da partida": KindMatchWinner,

	"goals over under": KindGoalsOverUnder,
	"over under":       KindGoalsOverUnder,
	"over under 2 5":   KindGoalsOverUnder,
	"total goals":      KindGoalsOverUnder,
	"mais menos golos": KindGoalsOverUnder,

	"both teams score":     KindBothTeamsScore,
	"both teams to score":  KindBothTeamsScore,
	"btts":                 KindBothTeamsScore,
	"ambas marcam":         KindBothTeamsScore,
	"ambas equipas marcam": KindBothTeamsScore,
}

// Fixed outcome label sets, matched after normalization.
var (
	homeLabels = map[string]struct{}{"home": {}, "1": {}, "team 1": {}, "casa": {}}
	drawLabels = map[string]struct{}{"draw": {}, "x": {}, "empate": {}}
	awayLabels = map[string]struct{}{"away": {}, "2": {}, "team 2": {}, "fora": {}}
	yesLabels  = map[string]struct{}{"yes": {}, "sim": {}}
	noLabels   = map[string]struct{}{"no": {}, "nao": {}}
)

// Normalize canonicalizes raw market quotes into outcome lists per kind.
// Quotes must be ordered by source preference: the first non-empty outcome
// list per kind wins and later sources cannot replace it.
func Normalize(quotes []models.RawMarketQuote) map[Kind][]Outcome {
	result := make(map[Kind][]Outcome, 3)

	for _, quote := range quotes {
		kind, ok := identifyMarket(quote.Name)
		if !ok {
			continue
		}
		if existing := result[kind]; len(existing) > 0 {
			continue
		}
		outcomes := normalizeOutcomes(kind, quote.Values)
		if len(outcomes) > 0 {
			result[kind] = outcomes
		}
	}

	return result
}

// identifyMarket matches a raw market name against the canonical alias sets.
func identifyMarket(name string) (Kind, bool) {
	kind, ok := marketAliases[models.NormalizeName(name)]
	return kind, ok
}

func normalizeOutcomes(kind Kind, values []models.QuoteValue) []Outcome {
	outcomes := make([]Outcome, 0, len(values))
	for _, value := range values {
		outcomeKind, ok := identifyOutcome(kind, value.Label)
		if !ok {
			continue
		}
		price, ok := parsePrice(value.Odd)
		if !ok {
			continue // malformed price, dropped silently
		}
		outcomes = append(outcomes, Outcome{Kind: outcomeKind, Price: price})
	}
	return outcomes
}

func identifyOutcome(kind Kind, label string) (OutcomeKind, bool) {
	normalized := models.NormalizeName(label)
	if normalized == "" {
		return "", false
	}

	switch kind {
	case KindMatchWinner:
		if _, ok := homeLabels[normalized]; ok {
			return OutcomeHome, true
		}
		if _, ok := drawLabels[normalized]; ok {
			return OutcomeDraw, true
		}
		if _, ok := awayLabels[normalized]; ok {
			return OutcomeAway, true
		}
	case KindGoalsOverUnder:
		if !hasLine25(normalized) {
			return "", false
		}
		if strings.Contains(normalized, "over") || strings.Contains(normalized, "mais") {
			return OutcomeOver25, true
		}
		if strings.Contains(normalized, "under") || strings.Contains(normalized, "menos") {
			return OutcomeUnder25, true
		}
	case KindBothTeamsScore:
		if _, ok := yesLabels[normalized]; ok {
			return OutcomeYes, true
		}
		if _, ok := noLabels[normalized]; ok {
			return OutcomeNo, true
		}
	}

	return "", false
}

// hasLine25 reports whether a normalized label carries the 2.5 goal line.
// Normalization turns "2.5" into "2 5"; some providers write "25".
func hasLine25(normalized string) bool {
	return strings.Contains(normalized, "2 5") || strings.Contains(normalized, "25")
}

// parsePrice parses a decimal price, rejecting anything non-positive or
// non-finite. Rejected prices are not errors; the outcome is skipped.
func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	if price <= 0 || math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, false
	}
	return price, true
}

// Price returns the price of the given outcome kind within a canonical market
// map, or 0 when the market or outcome is absent.
func Price(markets map[Kind][]Outcome, kind Kind, outcome OutcomeKind) float64 {
	for _, o := range markets[kind] {
		if o.Kind == outcome {
			return o.Price
		}
	}
	return 0
}
