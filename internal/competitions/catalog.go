package competitions

import "github.com/palpitebot/palpitebot/internal/pkg/models"

// Catalog is the static list of supported competitions. It is data, not state:
// build an Index from it once at startup and pass the index around.
//
// External IDs are API-Football league ids. Aliases cover the spellings the
// providers actually send, including translated names.
var Catalog = []models.Competition{
	{
		Key:         "premier-league",
		DisplayName: "Premier League",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "England",
		Aliases:     []string{"EPL", "English Premier League"},
		ExternalIDs: []int{39},
	},
	{
		Key:         "la-liga",
		DisplayName: "La Liga",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "Spain",
		Aliases:     []string{"LaLiga", "Primera Division", "La Liga Santander", "LaLiga EA Sports"},
		ExternalIDs: []int{140},
	},
	{
		Key:         "serie-a",
		DisplayName: "Serie A",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "Italy",
		Aliases:     []string{"Serie A TIM", "Calcio Serie A"},
		ExternalIDs: []int{135},
	},
	{
		Key:         "bundesliga",
		DisplayName: "Bundesliga",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "Germany",
		Aliases:     []string{"1. Bundesliga", "Bundesliga 1"},
		ExternalIDs: []int{78},
	},
	{
		Key:         "ligue-1",
		DisplayName: "Ligue 1",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "France",
		Aliases:     []string{"Ligue 1 Uber Eats", "Ligue 1 McDonald's"},
		ExternalIDs: []int{61},
	},
	{
		Key:         "primeira-liga",
		DisplayName: "Primeira Liga",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "Portugal",
		Aliases:     []string{"Liga Portugal", "Liga Portugal Betclic", "Liga NOS"},
		ExternalIDs: []int{94},
	},
	{
		Key:         "eredivisie",
		DisplayName: "Eredivisie",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "Netherlands",
		ExternalIDs: []int{88},
	},
	{
		Key:         "championship",
		DisplayName: "Championship",
		Region:      models.RegionEurope,
		Type:        models.CompetitionLeague,
		Country:     "England",
		Aliases:     []string{"EFL Championship", "Sky Bet Championship"},
		ExternalIDs: []int{40},
	},
	{
		Key:         "champions-league",
		DisplayName: "Champions League",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "Europe",
		Aliases:     []string{"UEFA Champions League", "Liga dos Campeões", "UCL"},
		ExternalIDs: []int{2},
	},
	{
		Key:         "europa-league",
		DisplayName: "Europa League",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "Europe",
		Aliases:     []string{"UEFA Europa League", "Liga Europa", "UEL"},
		ExternalIDs: []int{3},
	},
	{
		Key:         "conference-league",
		DisplayName: "Conference League",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "Europe",
		Aliases:     []string{"UEFA Europa Conference League", "UEFA Conference League"},
		ExternalIDs: []int{848},
	},
	{
		Key:         "fa-cup",
		DisplayName: "FA Cup",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "England",
		Aliases:     []string{"Emirates FA Cup"},
		ExternalIDs: []int{45},
	},
	{
		Key:         "copa-del-rey",
		DisplayName: "Copa del Rey",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "Spain",
		ExternalIDs: []int{143},
	},
	{
		Key:         "taca-de-portugal",
		DisplayName: "Taça de Portugal",
		Region:      models.RegionEurope,
		Type:        models.CompetitionCup,
		Country:     "Portugal",
		Aliases:     []string{"Taca de Portugal Placard"},
		ExternalIDs: []int{96},
	},
	{
		Key:         "uefa-super-cup",
		DisplayName: "UEFA Super Cup",
		Region:      models.RegionEurope,
		Type:        models.CompetitionSupercup,
		Country:     "Europe",
		Aliases:     []string{"Supertaça Europeia"},
		ExternalIDs: []int{531},
	},
	{
		Key:         "brasileirao",
		DisplayName: "Brasileirão",
		Region:      models.RegionSouthAmerica,
		Type:        models.CompetitionLeague,
		Country:     "Brazil",
		Aliases:     []string{"Serie A", "Campeonato Brasileiro", "Brasileirao Serie A"},
		ExternalIDs: []int{71},
	},
	{
		Key:         "primera-division-argentina",
		DisplayName: "Primera División",
		Region:      models.RegionSouthAmerica,
		Type:        models.CompetitionLeague,
		Country:     "Argentina",
		Aliases:     []string{"Liga Profesional Argentina", "Torneo Betano"},
		ExternalIDs: []int{128},
	},
	{
		Key:         "copa-libertadores",
		DisplayName: "Copa Libertadores",
		Region:      models.RegionSouthAmerica,
		Type:        models.CompetitionCup,
		Country:     "South America",
		Aliases:     []string{"CONMEBOL Libertadores"},
		ExternalIDs: []int{13},
	},
	{
		Key:         "copa-sudamericana",
		DisplayName: "Copa Sudamericana",
		Region:      models.RegionSouthAmerica,
		Type:        models.CompetitionCup,
		Country:     "South America",
		Aliases:     []string{"CONMEBOL Sudamericana"},
		ExternalIDs: []int{11},
	},
	{
		Key:         "mls",
		DisplayName: "MLS",
		Region:      models.RegionNorthAmerica,
		Type:        models.CompetitionLeague,
		Country:     "USA",
		Aliases:     []string{"Major League Soccer"},
		ExternalIDs: []int{253},
	},
	{
		Key:         "liga-mx",
		DisplayName: "Liga MX",
		Region:      models.RegionNorthAmerica,
		Type:        models.CompetitionLeague,
		Country:     "Mexico",
		Aliases:     []string{"Liga BBVA MX"},
		ExternalIDs: []int{262},
	},
	{
		Key:         "saudi-pro-league",
		DisplayName: "Saudi Pro League",
		Region:      models.RegionAsia,
		Type:        models.CompetitionLeague,
		Country:     "Saudi Arabia",
		Aliases:     []string{"Saudi Professional League", "Roshn Saudi League"},
		ExternalIDs: []int{307},
	},
	{
		Key:         "j1-league",
		DisplayName: "J1 League",
		Region:      models.RegionAsia,
		Type:        models.CompetitionLeague,
		Country:     "Japan",
		Aliases:     []string{"J League", "J. League Division 1"},
		ExternalIDs: []int{98},
	},
	{
		Key:         "afc-champions-league",
		DisplayName: "AFC Champions League",
		Region:      models.RegionAsia,
		Type:        models.CompetitionCup,
		Country:     "Asia",
		Aliases:     []string{"AFC Champions League Elite"},
		ExternalIDs: []int{17},
	},
	{
		Key:         "caf-champions-league",
		DisplayName: "CAF Champions League",
		Region:      models.RegionAfrica,
		Type:        models.CompetitionCup,
		Country:     "Africa",
		ExternalIDs: []int{12},
	},
	{
		Key:         "egyptian-premier-league",
		DisplayName: "Premier League",
		Region:      models.RegionAfrica,
		Type:        models.CompetitionLeague,
		Country:     "Egypt",
		Aliases:     []string{"Egyptian Premier League"},
		ExternalIDs: []int{233},
	},
	{
		Key:         "world-cup",
		DisplayName: "World Cup",
		Region:      models.RegionInternational,
		Type:        models.CompetitionCup,
		Country:     "World",
		Aliases:     []string{"FIFA World Cup", "Copa do Mundo"},
		ExternalIDs: []int{1},
	},
	{
		Key:         "euro",
		DisplayName: "Euro Championship",
		Region:      models.RegionInternational,
		Type:        models.CompetitionCup,
		Country:     "Europe",
		Aliases:     []string{"UEFA Euro", "European Championship", "Eurocopa"},
		ExternalIDs: []int{4},
	},
	{
		Key:         "copa-america",
		DisplayName: "Copa América",
		Region:      models.RegionInternational,
		Type:        models.CompetitionCup,
		Country:     "South America",
		Aliases:     []string{"CONMEBOL Copa America"},
		ExternalIDs: []int{9},
	},
	{
		Key:         "nations-league",
		DisplayName: "Nations League",
		Region:      models.RegionInternational,
		Type:        models.CompetitionCup,
		Country:     "Europe",
		Aliases:     []string{"UEFA Nations League", "Liga das Nações"},
		ExternalIDs: []int{5},
	},
	{
		Key:         "club-world-cup",
		DisplayName: "Club World Cup",
		Region:      models.RegionIntercontinental,
		Type:        models.CompetitionCup,
		Country:     "World",
		Aliases:     []string{"FIFA Club World Cup", "Mundial de Clubes"},
		ExternalIDs: []int{15},
	},
}
