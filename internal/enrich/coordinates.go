package enrich

import (
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// Place is a known "City, Region" location.
type Place struct {
	Location string  `yaml:"location"`
	Lat      float64 `yaml:"lat"`
	Lng      float64 `yaml:"lng"`
}

// RegionPoint is an approximate position for a state or country.
type RegionPoint struct {
	Triggers []string `yaml:"triggers"`
	Lat      float64  `yaml:"lat"`
	Lng      float64  `yaml:"lng"`
}

// Coordinates geocodes a record from its location. It tries an exact place,
// then the same city in the place table, then a regional approximation. A
// location matching none of them is left without coordinates.
type Coordinates struct {
	Places  []Place
	Regions []RegionPoint
}

func (e *Coordinates) Name() string     { return "coordinates" }
func (e *Coordinates) Fields() []string { return []string{course.FieldLatitude, course.FieldLongitude} }

func (e *Coordinates) Derive(c *course.Course) []Value {
	lat, lng, ok := e.Lookup(c.Location())
	if !ok {
		return nil
	}
	return []Value{
		{Field: course.FieldLatitude, Value: lat},
		{Field: course.FieldLongitude, Value: lng},
	}
}

// Lookup resolves a free-text location to a position.
func (e *Coordinates) Lookup(location string) (lat, lng float64, ok bool) {
	location = strings.TrimSpace(location)
	if location == "" {
		return 0, 0, false
	}

	for _, p := range e.Places {
		if strings.EqualFold(p.Location, location) {
			return p.Lat, p.Lng, true
		}
	}

	city, region := splitPlace(location)
	for _, p := range e.Places {
		pCity, pRegion := splitPlace(p.Location)
		if strings.EqualFold(pCity, city) && compatibleRegion(region, pRegion) {
			return p.Lat, p.Lng, true
		}
	}

	lower := strings.ToLower(location)
	for _, r := range e.Regions {
		if containsAny(lower, r.Triggers) {
			return r.Lat, r.Lng, true
		}
	}

	return 0, 0, false
}

func splitPlace(location string) (city, region string) {
	parts := strings.Split(location, ",")
	city = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		region = strings.TrimSpace(parts[len(parts)-1])
	}
	return city, region
}

// compatibleRegion accepts a same-city match unless both regions are spelled
// out and differ, so "Springfield, Illinois" never borrows New Jersey's
// position. Abbreviations ("CA") are accepted.
func compatibleRegion(a, b string) bool {
	if a == "" || b == "" || len(a) <= 3 || len(b) <= 3 {
		return true
	}
	return strings.EqualFold(a, b)
}

// DefaultPlaces holds positions for the catalog's common locations.
var DefaultPlaces = []Place{
	{Location: "Pebble Beach, California", Lat: 36.5681, Lng: -121.9494},
	{Location: "Augusta, Georgia", Lat: 33.5030, Lng: -82.0199},
	{Location: "Pinehurst, North Carolina", Lat: 35.1954, Lng: -79.4695},
	{Location: "Southampton, New York", Lat: 40.8843, Lng: -72.3895},
	{Location: "Oakmont, Pennsylvania", Lat: 40.4367, Lng: -79.8303},
	{Location: "Bandon, Oregon", Lat: 43.1187, Lng: -124.4085},
	{Location: "Newcastle, Northern Ireland", Lat: 54.2180, Lng: -5.8898},
	{Location: "Fishers Island, New York", Lat: 41.2647, Lng: -72.0294},
	{Location: "Mullen, Nebraska", Lat: 41.9167, Lng: -101.0500},
	{Location: "Dornoch, Scotland", Lat: 57.8800, Lng: -4.0278},
	{Location: "Kiawah Island, South Carolina", Lat: 32.6083, Lng: -80.0806},
	{Location: "Ardmore, Pennsylvania", Lat: 40.0076, Lng: -75.2852},
	{Location: "Mamaroneck, New York", Lat: 40.9487, Lng: -73.7326},
	{Location: "Carnoustie, Scotland", Lat: 56.5000, Lng: -2.7000},
	{Location: "Farmingdale, New York", Lat: 40.7326, Lng: -73.4454},
	{Location: "Troon, Scotland", Lat: 55.5417, Lng: -4.6583},
	{Location: "Frankfort, Michigan", Lat: 44.6336, Lng: -86.2342},
	{Location: "Southport, England", Lat: 53.6474, Lng: -3.0061},
	{Location: "East Hampton, New York", Lat: 40.9634, Lng: -72.1848},
	{Location: "Hutchinson, Kansas", Lat: 38.0608, Lng: -97.9298},
	{Location: "Portrush, Northern Ireland", Lat: 55.2000, Lng: -6.6500},
	{Location: "Bernardsville, New Jersey", Lat: 40.7182, Lng: -74.5693},
	{Location: "Gullane, Scotland", Lat: 56.0333, Lng: -2.8333},
	{Location: "Kohler, Wisconsin", Lat: 43.7389, Lng: -87.7817},
	{Location: "Springfield, New Jersey", Lat: 40.7045, Lng: -74.3171},
	{Location: "Wheaton, Illinois", Lat: 41.8661, Lng: -88.1070},
	{Location: "Lytham St. Annes, England", Lat: 53.7425, Lng: -3.0069},
	{Location: "Ridgewood, New Jersey", Lat: 40.9793, Lng: -74.1165},
	{Location: "Turnberry, Scotland", Lat: 55.3167, Lng: -4.8333},
	{Location: "Los Angeles, California", Lat: 34.0522, Lng: -118.2437},
	{Location: "Garden City, New York", Lat: 40.7268, Lng: -73.6343},
	{Location: "Sandwich, England", Lat: 51.2787, Lng: 1.3385},
	{Location: "Bethesda, Maryland", Lat: 38.9847, Lng: -77.0947},
	{Location: "Pacific Palisades, California", Lat: 34.0475, Lng: -118.5265},
	{Location: "Juno Beach, Florida", Lat: 26.8798, Lng: -80.0534},
	{Location: "Hanahan, South Carolina", Lat: 32.9185, Lng: -80.0220},
	{Location: "Orlando, Florida", Lat: 28.5383, Lng: -81.3792},
	{Location: "Chaska, Minnesota", Lat: 44.7894, Lng: -93.6022},
	{Location: "San Francisco, California", Lat: 37.7749, Lng: -122.4194},
	{Location: "Scarsdale, New York", Lat: 41.0051, Lng: -73.7846},
	{Location: "Lake Bluff, Illinois", Lat: 42.2792, Lng: -87.8348},
	{Location: "Chatham, Massachusetts", Lat: 41.6812, Lng: -69.9597},
	{Location: "Erin, Wisconsin", Lat: 43.2511, Lng: -88.2901},
	{Location: "French Lick, Indiana", Lat: 38.5489, Lng: -86.6200},
	{Location: "Hilton Head, South Carolina", Lat: 32.2163, Lng: -80.7526},
	{Location: "Hot Springs, Virginia", Lat: 37.9996, Lng: -79.8317},
	{Location: "Isle of Palms, South Carolina", Lat: 32.7868, Lng: -79.7940},
	{Location: "Kamuela, Hawaii", Lat: 20.0200, Lng: -155.6694},
	{Location: "La Jolla, California", Lat: 32.8328, Lng: -117.2713},
	{Location: "La Quinta, California", Lat: 33.6634, Lng: -116.3100},
	{Location: "Lahaina, Hawaii", Lat: 20.8783, Lng: -156.6825},
	{Location: "Miami, Florida", Lat: 25.7617, Lng: -80.1918},
	{Location: "Myrtle Beach, South Carolina", Lat: 33.6891, Lng: -78.8867},
	{Location: "North Myrtle Beach, South Carolina", Lat: 33.8160, Lng: -78.6800},
	{Location: "Pawleys Island, South Carolina", Lat: 33.4352, Lng: -79.1278},
	{Location: "Ponte Vedra Beach, Florida", Lat: 30.2394, Lng: -81.3856},
	{Location: "Sanford, North Carolina", Lat: 35.4799, Lng: -79.1803},
	{Location: "Scottsdale, Arizona", Lat: 33.4942, Lng: -111.9261},
	{Location: "University Place, Washington", Lat: 47.2357, Lng: -122.5504},
	{Location: "Wailea, Hawaii", Lat: 20.6900, Lng: -156.4400},
	{Location: "Wilmington, North Carolina", Lat: 34.2257, Lng: -77.9447},
	{Location: "Williamsburg, Virginia", Lat: 37.2707, Lng: -76.7075},
	{Location: "White Sulphur Springs, West Virginia", Lat: 37.7962, Lng: -80.2976},
	{Location: "Bridgeport, West Virginia", Lat: 39.2865, Lng: -80.2562},
	{Location: "Boulder City, Nevada", Lat: 35.9786, Lng: -114.8325},
	{Location: "Bowling Green, Florida", Lat: 30.6280, Lng: -86.7144},
	{Location: "Castle Rock, Colorado", Lat: 39.3722, Lng: -104.8561},
	{Location: "Half Moon Bay, California", Lat: 37.4636, Lng: -122.4286},
	{Location: "Indian Wells, California", Lat: 33.7175, Lng: -116.3400},
	{Location: "Mesquite, Nevada", Lat: 36.8055, Lng: -114.0672},
	{Location: "North Las Vegas, Nevada", Lat: 36.1989, Lng: -115.1175},
	{Location: "St. Andrews, Scotland", Lat: 56.3398, Lng: -2.7967},
	{Location: "Aberdeen, Scotland", Lat: 57.1497, Lng: -2.0943},
	{Location: "Melbourne, Australia", Lat: -37.8136, Lng: 144.9631},
	{Location: "Adelaide, Australia", Lat: -34.9285, Lng: 138.6007},
	{Location: "La Perouse, Australia", Lat: -33.9894, Lng: 151.2306},
	{Location: "Hawke's Bay, New Zealand", Lat: -39.4928, Lng: 176.9120},
	{Location: "Mangawhai, New Zealand", Lat: -36.1333, Lng: 174.5833},
	{Location: "Matauri Bay, New Zealand", Lat: -35.0333, Lng: 173.9000},
	{Location: "Sotogrande, Spain", Lat: 36.2833, Lng: -5.2833},
	{Location: "Casares, Spain", Lat: 36.4447, Lng: -5.2739},
	{Location: "Cascais, Portugal", Lat: 38.6979, Lng: -9.4215},
	{Location: "Óbidos, Portugal", Lat: 39.3611, Lng: -9.1572},
	{Location: "Paris, France", Lat: 48.8566, Lng: 2.3522},
	{Location: "Chantilly, France", Lat: 49.1944, Lng: 2.4714},
	{Location: "Mortefontaine, France", Lat: 49.1167, Lng: 2.6000},
	{Location: "Kobe, Japan", Lat: 34.6901, Lng: 135.1956},
	{Location: "Osaka, Japan", Lat: 34.6937, Lng: 135.5023},
	{Location: "Saitama, Japan", Lat: 35.8617, Lng: 139.6455},
	{Location: "Jeju Island, South Korea", Lat: 33.4996, Lng: 126.5312},
	{Location: "Shenzhen, China", Lat: 22.5431, Lng: 114.0579},
	{Location: "Pattaya, Thailand", Lat: 12.9236, Lng: 100.8825},
	{Location: "Pathum Thani, Thailand", Lat: 14.0208, Lng: 100.5253},
	{Location: "George, South Africa", Lat: -33.9581, Lng: 22.4614},
	{Location: "Kleinmond, South Africa", Lat: -34.3333, Lng: 19.0167},
	{Location: "Mpumalanga, South Africa", Lat: -25.5653, Lng: 30.5279},
	{Location: "Sun City, South Africa", Lat: -25.3307, Lng: 27.0967},
	{Location: "Toronto, Canada", Lat: 43.6532, Lng: -79.3832},
	{Location: "Ancaster, Canada", Lat: 43.2181, Lng: -79.9828},
	{Location: "Inverness, Nova Scotia, Canada", Lat: 46.2287, Lng: -61.3086},
	{Location: "Playa del Carmen, Mexico", Lat: 20.6296, Lng: -87.0731},
	{Location: "Punta Cana, Dominican Republic", Lat: 18.5819, Lng: -68.3686},
	{Location: "Cap Cana, Dominican Republic", Lat: 18.5667, Lng: -68.3667},
	{Location: "La Romana, Dominican Republic", Lat: 18.4273, Lng: -68.9728},
	{Location: "Bridport, Tasmania", Lat: -41.0000, Lng: 147.4000},
	{Location: "King Island, Tasmania", Lat: -39.8333, Lng: 143.8333},
	{Location: "Princeville, Hawaii", Lat: 22.2167, Lng: -159.4833},
}

// DefaultRegions is a coarse fallback keyed by state or country words.
var DefaultRegions = []RegionPoint{
	{Triggers: []string{"california"}, Lat: 36.7783, Lng: -119.4179},            // Central California
	{Triggers: []string{"new york"}, Lat: 40.7128, Lng: -74.0060},               // New York City
	{Triggers: []string{"florida"}, Lat: 27.7663, Lng: -82.6404},                // Central Florida
	{Triggers: []string{"scotland"}, Lat: 56.4907, Lng: -4.2026},                // Central Scotland
	{Triggers: []string{"england", "uk"}, Lat: 51.5074, Lng: -0.1278},           // London
	{Triggers: []string{"australia"}, Lat: -25.2744, Lng: 133.7751},             // Central Australia
	{Triggers: []string{"new zealand"}, Lat: -40.9006, Lng: 174.8860},           // Central New Zealand
	{Triggers: []string{"spain"}, Lat: 40.4168, Lng: -3.7038},                   // Madrid
	{Triggers: []string{"portugal"}, Lat: 38.7223, Lng: -9.1393},                // Lisbon
	{Triggers: []string{"france"}, Lat: 48.8566, Lng: 2.3522},                   // Paris
	{Triggers: []string{"japan"}, Lat: 35.6762, Lng: 139.6503},                  // Tokyo
	{Triggers: []string{"south korea", "korea"}, Lat: 37.5665, Lng: 126.9780},   // Seoul
	{Triggers: []string{"china"}, Lat: 39.9042, Lng: 116.4074},                  // Beijing
	{Triggers: []string{"thailand"}, Lat: 13.7563, Lng: 100.5018},               // Bangkok
	{Triggers: []string{"south africa", "africa"}, Lat: -25.7479, Lng: 28.2293}, // Johannesburg
	{Triggers: []string{"canada"}, Lat: 45.5017, Lng: -73.5673},                 // Montreal
	{Triggers: []string{"new mexico"}, Lat: 35.0844, Lng: -106.6504},            // Albuquerque
	{Triggers: []string{"mexico"}, Lat: 19.4326, Lng: -99.1332},                 // Mexico City
	{Triggers: []string{"dominican"}, Lat: 18.4861, Lng: -69.9312},              // Santo Domingo
	{Triggers: []string{"hawaii"}, Lat: 21.3099, Lng: -157.8581},                // Honolulu
	{Triggers: []string{"nevada"}, Lat: 36.1699, Lng: -115.1398},                // Las Vegas
	{Triggers: []string{"arizona"}, Lat: 33.4484, Lng: -112.0740},               // Phoenix
	{Triggers: []string{"colorado"}, Lat: 39.7392, Lng: -104.9903},              // Denver
	{Triggers: []string{"north carolina"}, Lat: 35.2271, Lng: -80.8431},         // Charlotte
	{Triggers: []string{"south carolina"}, Lat: 34.0007, Lng: -81.0348},         // Columbia
	{Triggers: []string{"georgia"}, Lat: 33.7490, Lng: -84.3880},                // Atlanta
	{Triggers: []string{"pennsylvania"}, Lat: 39.9526, Lng: -75.1652},           // Philadelphia
	{Triggers: []string{"new jersey"}, Lat: 40.7178, Lng: -74.0431},             // Newark
	{Triggers: []string{"massachusetts"}, Lat: 42.3601, Lng: -71.0589},          // Boston
	{Triggers: []string{"west virginia"}, Lat: 38.3498, Lng: -81.6326},          // Charleston
	{Triggers: []string{"virginia"}, Lat: 37.5407, Lng: -77.4360},               // Richmond
	{Triggers: []string{"wisconsin"}, Lat: 43.0731, Lng: -89.4012},              // Madison
	{Triggers: []string{"illinois"}, Lat: 41.8781, Lng: -87.6298},               // Chicago
	{Triggers: []string{"minnesota"}, Lat: 44.9778, Lng: -93.2650},              // Minneapolis
	{Triggers: []string{"kansas"}, Lat: 39.0473, Lng: -95.6752},                 // Topeka
	{Triggers: []string{"nebraska"}, Lat: 40.8136, Lng: -96.7026},               // Lincoln
	{Triggers: []string{"indiana"}, Lat: 39.7684, Lng: -86.1581},                // Indianapolis
	{Triggers: []string{"oregon"}, Lat: 45.5152, Lng: -122.6784},                // Portland
	{Triggers: []string{"washington"}, Lat: 47.6062, Lng: -122.3321},            // Seattle
	{Triggers: []string{"michigan"}, Lat: 42.3314, Lng: -83.0458},               // Detroit
	{Triggers: []string{"maryland"}, Lat: 39.2904, Lng: -76.6122},               // Baltimore
	{Triggers: []string{"texas"}, Lat: 30.2672, Lng: -97.7431},                  // Austin
}
