package staticdata

import "strings"

// DefaultAffinity is used when a city has no profile or an interest is
// not listed for it.
const DefaultAffinity = 5.0

// cityAffinities maps a city to interest-tag affinities on a 0-10 scale.
var cityAffinities = map[string]map[string]float64{
	"tokyo": {
		"food": 9, "culture": 7, "shopping": 10, "nightlife": 10,
		"anime": 10, "technology": 10, "art": 8, "history": 6,
		"nature": 4, "relax": 5, "photography": 8, "fashion": 10,
		"sightseeing": 9, "market": 8,
	},
	"kyoto": {
		"food": 8, "culture": 10, "shopping": 6, "nightlife": 4,
		"anime": 4, "technology": 2, "art": 8, "history": 10,
		"nature": 8, "relax": 8, "photography": 10, "fashion": 4,
		"sightseeing": 9, "market": 7,
	},
	"osaka": {
		"food": 10, "culture": 6, "shopping": 8, "nightlife": 9,
		"anime": 6, "technology": 5, "art": 5, "history": 6,
		"nature": 4, "relax": 5, "photography": 7, "fashion": 7,
		"sightseeing": 7, "market": 9,
	},
	"nara": {
		"food": 5, "culture": 9, "shopping": 3, "nightlife": 1,
		"history": 10, "nature": 9, "relax": 8, "photography": 9,
		"sightseeing": 8,
	},
	"hiroshima": {
		"food": 7, "culture": 8, "history": 10, "nature": 7,
		"relax": 6, "photography": 7, "sightseeing": 8,
	},
	"hakone": {
		"food": 5, "culture": 6, "nature": 10, "relax": 10,
		"photography": 9, "sightseeing": 8, "nightlife": 1,
	},
}

// CityAffinity returns the average affinity of a city over the given
// interests, falling back to DefaultAffinity for unknown cities or tags.
func CityAffinity(city string, interests []string) float64 {
	profile, ok := cityAffinities[strings.ToLower(city)]
	if !ok || len(interests) == 0 {
		return DefaultAffinity
	}

	total := 0.0
	for _, interest := range interests {
		if v, found := profile[normalizeInterest(interest)]; found {
			total += v
		} else {
			total += DefaultAffinity
		}
	}
	return total / float64(len(interests))
}

// normalizeInterest folds catalog tag spellings onto the table keys.
func normalizeInterest(interest string) string {
	tag := strings.ToLower(interest)
	if tag == "cultural" {
		return "culture"
	}
	return tag
}
