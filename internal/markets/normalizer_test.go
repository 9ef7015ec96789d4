package markets

import (
	"testing"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

func TestNormalizeMatchWinner(t *testing.T) {
	quotes := []models.RawMarketQuote{
		{
			Name: "Match Winner",
			Values: []models.QuoteValue{
				{Label: "Home", Odd: "1.80"},
				{Label: "Draw", Odd: "3.60"},
				{Label: "Away", Odd: "4.20"},
			},
		},
	}

	result := Normalize(quotes)
	outcomes := result[KindMatchWinner]
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Kind != OutcomeHome || outcomes[0].Price != 1.80 {
		t.Errorf("unexpected first outcome: %+v", outcomes[0])
	}
	if Price(result, KindMatchWinner, OutcomeDraw) != 3.60 {
		t.Errorf("draw price lookup failed")
	}
}

func TestNormalizeMarketNameAliases(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"Match Winner", KindMatchWinner},
		{"1X2", KindMatchWinner},
		{"Resultado Final", KindMatchWinner},
		{"Goals Over/Under", KindGoalsOverUnder},
		{"Over/Under", KindGoalsOverUnder},
		{"Both Teams Score", KindBothTeamsScore},
		{"Both Teams To Score", KindBothTeamsScore},
		{"BTTS", KindBothTeamsScore},
		{"Ambas Marcam", KindBothTeamsScore},
	}

	for _, tt := range tests {
		kind, ok := identifyMarket(tt.name)
		if !ok {
			t.Errorf("identifyMarket(%q) did not match", tt.name)
			continue
		}
		if kind != tt.want {
			t.Errorf("identifyMarket(%q) = %s, want %s", tt.name, kind, tt.want)
		}
	}

	if _, ok := identifyMarket("Asian Handicap"); ok {
		t.Error("unsupported market should not match")
	}
}

func TestNormalizeOverUnderDetection(t *testing.T) {
	tests := []struct {
		label string
		want  OutcomeKind
		ok    bool
	}{
		{"Over 2.5", OutcomeOver25, true},
		{"Under 2.5", OutcomeUnder25, true},
		{"over 25", OutcomeOver25, true},
		{"Mais de 2.5", OutcomeOver25, true},
		{"Menos de 2.5", OutcomeUnder25, true},
		{"Over 1.5", "", false},
		{"Over 3.5", "", false},
		{"Exactly 2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			kind, ok := identifyOutcome(KindGoalsOverUnder, tt.label)
			if ok != tt.ok {
				t.Fatalf("identifyOutcome(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			}
			if ok && kind != tt.want {
				t.Errorf("identifyOutcome(%q) = %s, want %s", tt.label, kind, tt.want)
			}
		})
	}
}

func TestNormalizeOutcomeLabels(t *testing.T) {
	tests := []struct {
		kind  Kind
		label string
		want  OutcomeKind
	}{
		{KindMatchWinner, "1", OutcomeHome},
		{KindMatchWinner, "Team 1", OutcomeHome},
		{KindMatchWinner, "Casa", OutcomeHome},
		{KindMatchWinner, "X", OutcomeDraw},
		{KindMatchWinner, "Empate", OutcomeDraw},
		{KindMatchWinner, "2", OutcomeAway},
		{KindMatchWinner, "Fora", OutcomeAway},
		{KindBothTeamsScore, "Yes", OutcomeYes},
		{KindBothTeamsScore, "Sim", OutcomeYes},
		{KindBothTeamsScore, "Não", OutcomeNo},
	}

	for _, tt := range tests {
		kind, ok := identifyOutcome(tt.kind, tt.label)
		if !ok || kind != tt.want {
			t.Errorf("identifyOutcome(%s, %q) = (%s, %v), want %s", tt.kind, tt.label, kind, ok, tt.want)
		}
	}
}

func TestNormalizeDropsMalformedPrices(t *testing.T) {
	quotes := []models.RawMarketQuote{
		{
			Name: "Match Winner",
			Values: []models.QuoteValue{
				{Label: "Home", Odd: "not-a-number"},
				{Label: "Draw", Odd: "-1.5"},
				{Label: "Away", Odd: "0"},
			},
		},
	}

	result := Normalize(quotes)
	if len(result[KindMatchWinner]) != 0 {
		t.Errorf("malformed prices must be dropped, got %+v", result[KindMatchWinner])
	}
}

func TestNormalizeFirstNonEmptySourceWins(t *testing.T) {
	quotes := []models.RawMarketQuote{
		{Name: "Match Winner", Values: nil}, // preferred source had no outcomes
		{
			Name: "1X2",
			Values: []models.QuoteValue{
				{Label: "Home", Odd: "2.10"},
			},
		},
		{
			Name: "Match Winner",
			Values: []models.QuoteValue{
				{Label: "Home", Odd: "2.50"},
			},
		},
	}

	result := Normalize(quotes)
	outcomes := result[KindMatchWinner]
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	// The first source with a non-empty list wins; the later 2.50 must not overwrite it.
	if outcomes[0].Price != 2.10 {
		t.Errorf("expected first non-empty source to win, got price %.2f", outcomes[0].Price)
	}
}
