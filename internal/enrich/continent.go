package enrich

import "github.com/pfrederiksen/golf-catalog/internal/course"

// Continent labels.
const (
	NorthAmerica = "North America"
	Europe       = "Europe"
	Asia         = "Asia"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
	Africa       = "Africa"
	MiddleEast   = "Middle East"
)

// DefaultContinents maps location words to continents. US states come first
// so "Georgia" and "New Mexico" resolve to North America, and Australian
// states come before Europe so "New South Wales" is not read as Wales.
// Central America and the Caribbean are grouped with North America.
var DefaultContinents = Table{
	{Value: NorthAmerica, Triggers: []string{
		"united states", "usa", "california", "new york", "florida", "texas", "nevada", "arizona",
		"oregon", "washington", "north carolina", "georgia", "pennsylvania", "new jersey", "illinois",
		"colorado", "south carolina", "hawaii", "wisconsin", "minnesota", "michigan", "massachusetts",
		"vermont", "kansas", "missouri", "louisiana", "mississippi", "alabama", "tennessee", "kentucky",
		"virginia", "maryland", "delaware", "connecticut", "rhode island", "new hampshire", "maine",
		"utah", "idaho", "montana", "wyoming", "north dakota", "south dakota", "nebraska", "iowa",
		"oklahoma", "arkansas", "west virginia", "ohio", "indiana", "new mexico", "alaska",
	}},
	{Value: NorthAmerica, Triggers: []string{
		"canada", "ontario", "quebec", "british columbia", "alberta", "manitoba", "saskatchewan",
		"nova scotia", "new brunswick", "newfoundland", "prince edward island",
	}},
	{Value: Oceania, Triggers: []string{
		"new south wales", "queensland", "victoria, australia", "western australia",
		"south australia", "northern territory", "australian capital territory",
	}},
	{Value: Europe, Triggers: []string{
		"scotland", "england", "ireland", "northern ireland", "wales", "uk", "united kingdom", "spain",
		"france", "italy", "germany", "portugal", "sweden", "norway", "denmark", "netherlands", "belgium",
		"switzerland", "austria", "greece", "poland", "czech", "hungary", "romania", "bulgaria", "croatia",
		"serbia", "slovenia", "slovakia", "finland", "iceland", "estonia", "latvia", "lithuania",
		"luxembourg", "malta", "cyprus",
	}},
	{Value: Asia, Triggers: []string{
		"china", "japan", "south korea", "korea", "india", "thailand", "singapore", "malaysia",
		"indonesia", "philippines", "vietnam", "cambodia", "myanmar", "laos", "bangladesh", "sri lanka",
		"pakistan", "nepal", "bhutan", "maldives", "mongolia", "taiwan", "hong kong", "macau",
	}},
	{Value: Oceania, Triggers: []string{
		"australia", "tasmania", "new zealand", "fiji", "papua new guinea", "samoa", "tonga", "vanuatu",
		"solomon islands", "new caledonia", "french polynesia", "cook islands",
	}},
	{Value: SouthAmerica, Triggers: []string{
		"brazil", "argentina", "chile", "colombia", "peru", "venezuela", "ecuador", "bolivia",
		"paraguay", "uruguay", "guyana", "suriname", "french guiana",
	}},
	{Value: Africa, Triggers: []string{
		"south africa", "kenya", "egypt", "morocco", "tunisia", "zimbabwe", "botswana", "namibia",
		"mozambique", "madagascar", "mauritius", "seychelles", "ghana", "nigeria", "senegal",
		"ivory coast", "cameroon", "uganda", "tanzania", "ethiopia", "algeria", "libya", "sudan",
		"angola", "zambia", "malawi", "rwanda", "burundi",
	}},
	{Value: MiddleEast, Triggers: []string{
		"uae", "united arab emirates", "dubai", "abu dhabi", "saudi arabia", "qatar", "bahrain",
		"kuwait", "oman", "jordan", "lebanon", "israel", "turkey", "iran", "iraq", "syria", "yemen",
	}},
	{Value: NorthAmerica, Triggers: []string{
		"mexico", "dominican republic", "puerto rico", "jamaica", "bahamas", "barbados", "trinidad",
		"cuba", "costa rica", "panama", "belize", "guatemala", "honduras", "nicaragua", "el salvador",
		"haiti", "cayman islands", "bermuda", "aruba", "curaçao", "curacao", "bonaire",
	}},
}

// Continent derives the continent from the location text.
type Continent struct {
	Table Table
}

func (e *Continent) Name() string     { return "continent" }
func (e *Continent) Fields() []string { return []string{course.FieldContinent} }

func (e *Continent) Derive(c *course.Course) []Value {
	if continent, ok := e.Table.Lookup(c.Location()); ok {
		return []Value{{Field: course.FieldContinent, Value: continent}}
	}
	return nil
}
