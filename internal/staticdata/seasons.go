package staticdata

import (
	"strings"
	"time"
)

// Season is a recognized seasonal window with activity recommendations.
type Season struct {
	Name       string
	StartMonth time.Month
	EndMonth   time.Month
	// Keywords matched against activity names/interests for the bonus.
	RecommendedKeywords []string
	ScoreBonus          float64
}

var seasons = []Season{
	{
		Name:                "cherry_blossom",
		StartMonth:          time.March,
		EndMonth:            time.April,
		RecommendedKeywords: []string{"park", "garden", "river", "nature", "shrine", "temple"},
		ScoreBonus:          10,
	},
	{
		Name:                "summer_festivals",
		StartMonth:          time.July,
		EndMonth:            time.August,
		RecommendedKeywords: []string{"festival", "fireworks", "river", "market", "nightlife"},
		ScoreBonus:          8,
	},
	{
		Name:                "autumn_foliage",
		StartMonth:          time.October,
		EndMonth:            time.November,
		RecommendedKeywords: []string{"garden", "temple", "mountain", "park", "nature"},
		ScoreBonus:          10,
	},
	{
		Name:                "winter_illuminations",
		StartMonth:          time.December,
		EndMonth:            time.February,
		RecommendedKeywords: []string{"illumination", "observatory", "onsen", "museum", "shopping"},
		ScoreBonus:          6,
	},
}

// SeasonFor returns the seasonal window covering the date, if any.
func SeasonFor(date time.Time) (Season, bool) {
	if date.IsZero() {
		return Season{}, false
	}
	month := date.Month()
	for _, s := range seasons {
		if s.StartMonth <= s.EndMonth {
			if month >= s.StartMonth && month <= s.EndMonth {
				return s, true
			}
		} else { // window wraps the new year
			if month >= s.StartMonth || month <= s.EndMonth {
				return s, true
			}
		}
	}
	return Season{}, false
}

// MatchesSeason reports whether an activity name or interest list hits
// one of the season's recommended keywords.
func (s Season) MatchesSeason(name string, interests []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range s.RecommendedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
		for _, interest := range interests {
			if strings.EqualFold(interest, kw) {
				return true
			}
		}
	}
	return false
}
