package competitions

import (
	"testing"

	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

func TestIdentifyByExternalID(t *testing.T) {
	idx := NewDefaultIndex()

	comp := idx.Identify(models.LeagueRef{ID: 39})
	if comp == nil {
		t.Fatal("expected external id 39 to resolve")
	}
	if comp.Key != "premier-league" {
		t.Errorf("expected premier-league, got %s", comp.Key)
	}
}

func TestIdentifyByNameAndCountry(t *testing.T) {
	idx := NewDefaultIndex()

	tests := []struct {
		name    string
		league  models.LeagueRef
		wantKey string
	}{
		{"name only", models.LeagueRef{Name: "La Liga"}, "la-liga"},
		{"name with country", models.LeagueRef{Name: "La Liga", Country: "Spain"}, "la-liga"},
		{"accented alias", models.LeagueRef{Name: "Liga dos Campeões"}, "champions-league"},
		{"case and punctuation", models.LeagueRef{Name: "laliga ea sports"}, "la-liga"},
		{"country prefix inside name", models.LeagueRef{Name: "England Premier League"}, "premier-league"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := idx.Identify(tt.league)
			if comp == nil {
				t.Fatalf("Identify(%+v) returned nil", tt.league)
			}
			if comp.Key != tt.wantKey {
				t.Errorf("Identify(%+v) = %s, want %s", tt.league, comp.Key, tt.wantKey)
			}
		})
	}
}

func TestIdentifyMissIsNil(t *testing.T) {
	idx := NewDefaultIndex()

	if comp := idx.Identify(models.LeagueRef{Name: "Sunday Pub League", Country: "Narnia"}); comp != nil {
		t.Errorf("unsupported league should resolve to nil, got %s", comp.Key)
	}
	if comp := idx.Identify(models.LeagueRef{}); comp != nil {
		t.Errorf("empty descriptor should resolve to nil, got %s", comp.Key)
	}
}

func TestIdentifyWithAlternateCatalog(t *testing.T) {
	catalog := []models.Competition{
		{
			Key:         "test-liga",
			DisplayName: "Test Liga",
			Region:      models.RegionEurope,
			Type:        models.CompetitionLeague,
			Country:     "Testland",
			Aliases:     []string{"TL One"},
			ExternalIDs: []int{9999},
		},
	}
	idx := NewIndex(catalog)

	if comp := idx.Identify(models.LeagueRef{Name: "tl one"}); comp == nil || comp.Key != "test-liga" {
		t.Errorf("alias from alternate catalog should resolve")
	}
	if comp := idx.Identify(models.LeagueRef{ID: 9999}); comp == nil || comp.Key != "test-liga" {
		t.Errorf("external id from alternate catalog should resolve")
	}
	// No direct alias hit for "Liga"; the "{country} {name}" combination resolves it.
	if comp := idx.Identify(models.LeagueRef{Name: "Liga", Country: "Test"}); comp == nil || comp.Key != "test-liga" {
		t.Errorf("country+name combination should resolve")
	}
}
