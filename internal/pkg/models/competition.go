package models

// Region is the geographic/organizational grouping used for aggregation.
type Region string

const (
	RegionEurope           Region = "europe"
	RegionSouthAmerica     Region = "south-america"
	RegionNorthAmerica     Region = "north-america"
	RegionAsia             Region = "asia"
	RegionAfrica           Region = "africa"
	RegionInternational    Region = "international"
	RegionIntercontinental Region = "intercontinental"
)

// RegionOrder is the canonical presentation order for region breakdowns.
var RegionOrder = []Region{
	RegionEurope,
	RegionSouthAmerica,
	RegionNorthAmerica,
	RegionAsia,
	RegionAfrica,
	RegionInternational,
	RegionIntercontinental,
}

// RegionLabels maps regions to the labels used in outgoing messages.
var RegionLabels = map[Region]string{
	RegionEurope:           "🇪🇺 Europa",
	RegionSouthAmerica:     "🌎 América do Sul",
	RegionNorthAmerica:     "🌎 América do Norte",
	RegionAsia:             "🌏 Ásia",
	RegionAfrica:           "🌍 África",
	RegionInternational:    "🌐 Seleções",
	RegionIntercontinental: "🏆 Intercontinental",
}

// RegionLabel returns the display label for a region, falling back to the raw value.
func RegionLabel(region Region) string {
	if label, ok := RegionLabels[region]; ok {
		return label
	}
	return string(region)
}

// CompetitionType classifies a competition.
type CompetitionType string

const (
	CompetitionLeague   CompetitionType = "league"
	CompetitionCup      CompetitionType = "cup"
	CompetitionSupercup CompetitionType = "supercup"
)

// Competition is canonical competition metadata. Values are built once from the
// static catalog at process start and never mutated.
type Competition struct {
	Key         string
	DisplayName string
	Region      Region
	Type        CompetitionType
	Country     string
	Aliases     []string
	ExternalIDs []int
}

// LeagueRef is the raw league descriptor attached to a fixture by a provider.
// Any of the fields may be missing or inconsistent across providers.
type LeagueRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
