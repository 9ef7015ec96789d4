package competitions

import (
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// Index resolves raw league descriptors to canonical competition metadata.
// Built once from a catalog; safe for concurrent reads, never mutated.
type Index struct {
	competitions []models.Competition
	aliases      []aliasEntry
	byExternalID map[int]*models.Competition
}

type aliasEntry struct {
	names       map[string]struct{}
	competition *models.Competition
}

// NewIndex builds an identification index from a competition catalog.
// The alias set of each competition contains its display name, country,
// "{country} {displayName}" and every declared alias plus its
// country-qualified form, all normalized.
func NewIndex(catalog []models.Competition) *Index {
	idx := &Index{
		competitions: make([]models.Competition, len(catalog)),
		aliases:      make([]aliasEntry, 0, len(catalog)),
		byExternalID: make(map[int]*models.Competition),
	}
	copy(idx.competitions, catalog)

	for i := range idx.competitions {
		comp := &idx.competitions[i]

		names := []string{
			comp.DisplayName,
			comp.Country,
			comp.Country + " " + comp.DisplayName,
		}
		for _, alias := range comp.Aliases {
			names = append(names, alias, comp.Country+" "+alias)
		}

		normalized := make(map[string]struct{}, len(names))
		for _, name := range names {
			if n := models.NormalizeName(name); n != "" {
				normalized[n] = struct{}{}
			}
		}
		idx.aliases = append(idx.aliases, aliasEntry{names: normalized, competition: comp})

		for _, id := range comp.ExternalIDs {
			idx.byExternalID[id] = comp
		}
	}

	return idx
}

// NewDefaultIndex builds the index over the static catalog.
func NewDefaultIndex() *Index {
	return NewIndex(Catalog)
}

// Identify resolves a raw league descriptor to its competition, or nil when
// the league is not supported. A nil result is not an error: the fixture is
// simply excluded from downstream region views.
func (idx *Index) Identify(league models.LeagueRef) *models.Competition {
	if comp, ok := idx.byExternalID[league.ID]; ok {
		return comp
	}

	name := models.NormalizeName(league.Name)
	if name == "" {
		return nil
	}

	for _, entry := range idx.aliases {
		if _, ok := entry.names[name]; ok {
			return entry.competition
		}
	}

	// No direct alias hit; a country-qualified name can still disambiguate
	// cups and leagues that share a bare name.
	if country := models.NormalizeName(league.Country); country != "" {
		combined := country + " " + name
		for _, entry := range idx.aliases {
			if _, ok := entry.names[combined]; ok {
				return entry.competition
			}
		}
	}

	return nil
}

// IsSupported reports whether the league resolves to a known competition.
func (idx *Index) IsSupported(league models.LeagueRef) bool {
	return idx.Identify(league) != nil
}

// Competitions returns the indexed competitions (for listings and tests).
func (idx *Index) Competitions() []models.Competition {
	return idx.competitions
}
