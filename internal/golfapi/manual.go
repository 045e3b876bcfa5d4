package golfapi

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// KnownCourse is an offline fact sheet for a course the API often misses.
type KnownCourse struct {
	Key      string // lowercase name, normalized again at lookup
	Name     string
	Location string
	Yardage  int
	Par      int
}

// knownCourses is used when no API key is configured or the API has no
// match. Yardages are championship tees.
var knownCourses = []KnownCourse{
	// California
	{Key: "pebble beach", Name: "Pebble Beach Golf Links", Location: "Pebble Beach, CA", Yardage: 6828, Par: 72},
	{Key: "spyglass hill", Name: "Spyglass Hill Golf Course", Location: "Pebble Beach, CA", Yardage: 6953, Par: 72},
	{Key: "torrey pines", Name: "Torrey Pines Golf Course (South)", Location: "La Jolla, CA", Yardage: 7698, Par: 72},
	{Key: "riviera", Name: "Riviera Country Club", Location: "Pacific Palisades, CA", Yardage: 7322, Par: 71},
	{Key: "olympic club", Name: "Olympic Club (Lake Course)", Location: "San Francisco, CA", Yardage: 7169, Par: 71},

	// Nevada
	{Key: "shadow creek", Name: "Shadow Creek Golf Course", Location: "Las Vegas, NV", Yardage: 7560, Par: 72},
	{Key: "cascata", Name: "Cascata Golf Club", Location: "Boulder City, NV", Yardage: 7137, Par: 72},
	{Key: "wolf creek", Name: "Wolf Creek Golf Club", Location: "Mesquite, NV", Yardage: 6939, Par: 72},

	// Arizona
	{Key: "we-ko-pa", Name: "We-Ko-Pa Golf Club (Saguaro)", Location: "Fort McDowell, AZ", Yardage: 7225, Par: 72},
	{Key: "troon north", Name: "Troon North Golf Club (Monument)", Location: "Scottsdale, AZ", Yardage: 7070, Par: 72},
	{Key: "grayhawk", Name: "Grayhawk Golf Club (Raptor)", Location: "Scottsdale, AZ", Yardage: 7135, Par: 72},

	// Texas
	{Key: "colonial", Name: "Colonial Country Club", Location: "Fort Worth, TX", Yardage: 7209, Par: 70},
	{Key: "trinity forest", Name: "Trinity Forest Golf Club", Location: "Dallas, TX", Yardage: 7350, Par: 71},

	// Florida
	{Key: "tpc sawgrass", Name: "TPC Sawgrass (Stadium Course)", Location: "Ponte Vedra Beach, FL", Yardage: 7256, Par: 72},
	{Key: "bay hill", Name: "Bay Hill Club & Lodge", Location: "Orlando, FL", Yardage: 7419, Par: 72},
	{Key: "seminole", Name: "Seminole Golf Club", Location: "Juno Beach, FL", Yardage: 6903, Par: 72},

	// Georgia
	{Key: "augusta national", Name: "Augusta National Golf Club", Location: "Augusta, GA", Yardage: 7510, Par: 72},
	{Key: "east lake", Name: "East Lake Golf Club", Location: "Atlanta, GA", Yardage: 7346, Par: 70},

	// North Carolina
	{Key: "pinehurst no. 2", Name: "Pinehurst No. 2", Location: "Pinehurst, NC", Yardage: 7588, Par: 72},
	{Key: "pinehurst no. 4", Name: "Pinehurst No. 4", Location: "Pinehurst, NC", Yardage: 7135, Par: 72},

	// South Carolina
	{Key: "kiawah island", Name: "Kiawah Island Golf Resort (Ocean Course)", Location: "Kiawah Island, SC", Yardage: 7876, Par: 72},
	{Key: "harbour town", Name: "Harbour Town Golf Links", Location: "Hilton Head Island, SC", Yardage: 7188, Par: 71},

	// New York
	{Key: "bethpage black", Name: "Bethpage State Park (Black Course)", Location: "Farmingdale, NY", Yardage: 7468, Par: 71},
	{Key: "shinnecock hills", Name: "Shinnecock Hills Golf Club", Location: "Southampton, NY", Yardage: 7445, Par: 70},

	// Pennsylvania
	{Key: "oakmont", Name: "Oakmont Country Club", Location: "Oakmont, PA", Yardage: 7255, Par: 71},
	{Key: "merion", Name: "Merion Golf Club (East Course)", Location: "Ardmore, PA", Yardage: 6996, Par: 70},

	// New Jersey
	{Key: "pine valley", Name: "Pine Valley Golf Club", Location: "Pine Valley, NJ", Yardage: 7057, Par: 70},
	{Key: "baltusrol", Name: "Baltusrol Golf Club (Lower Course)", Location: "Springfield, NJ", Yardage: 7428, Par: 72},

	// Michigan
	{Key: "oakland hills", Name: "Oakland Hills Country Club (South Course)", Location: "Bloomfield Hills, MI", Yardage: 7395, Par: 70},

	// Wisconsin
	{Key: "whistling straits", Name: "Whistling Straits (Straits Course)", Location: "Sheboygan, WI", Yardage: 7790, Par: 72},
	{Key: "erin hills", Name: "Erin Hills Golf Course", Location: "Erin, WI", Yardage: 7842, Par: 72},

	// Oregon
	{Key: "bandon dunes", Name: "Bandon Dunes Golf Resort (Bandon Dunes)", Location: "Bandon, OR", Yardage: 6732, Par: 72},
	{Key: "pacific dunes", Name: "Bandon Dunes Golf Resort (Pacific Dunes)", Location: "Bandon, OR", Yardage: 6633, Par: 71},

	// Washington
	{Key: "chambers bay", Name: "Chambers Bay Golf Course", Location: "University Place, WA", Yardage: 7585, Par: 72},

	// Colorado
	{Key: "castle pines", Name: "Castle Pines Golf Club", Location: "Castle Rock, CO", Yardage: 7559, Par: 72},

	// Utah
	{Key: "sand hollow", Name: "Sand Hollow Resort (Championship)", Location: "Hurricane, UT", Yardage: 7321, Par: 73},

	// Hawaii
	{Key: "kapalua", Name: "Kapalua Resort (Plantation Course)", Location: "Lahaina, HI", Yardage: 7596, Par: 73},
	{Key: "mauna kea", Name: "Mauna Kea Golf Course", Location: "Kamuela, HI", Yardage: 7370, Par: 72},

	// Illinois
	{Key: "cog hill", Name: "Cog Hill Golf & Country Club (Dubsdread)", Location: "Lemont, IL", Yardage: 7366, Par: 72},

	// Minnesota
	{Key: "hazeltine", Name: "Hazeltine National Golf Club", Location: "Chaska, MN", Yardage: 7674, Par: 72},
}

// LookupKnown finds an offline fact sheet by course name. An exact
// normalized key wins; otherwise the longest key contained in (or
// containing) the name is used.
func LookupKnown(name string) *KnownCourse {
	normalized := course.Normalize(name)
	if normalized == "" {
		return nil
	}

	var partial []*KnownCourse
	for i := range knownCourses {
		kc := &knownCourses[i]
		key := course.Normalize(kc.Key)
		if key == normalized {
			return kc
		}
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			partial = append(partial, kc)
		}
	}
	if len(partial) == 0 {
		return nil
	}

	sort.SliceStable(partial, func(i, j int) bool {
		return len(partial[i].Key) > len(partial[j].Key)
	})
	return partial[0]
}
