package staticdata

import "strings"

// IntensityBand bounds a day's activity count and active hours.
type IntensityBand struct {
	Name      string
	Min, Max  int
	StartHour int
	EndHour   int
}

var intensityBands = map[string]IntensityBand{
	"light":    {Name: "light", Min: 2, Max: 3, StartHour: 10, EndHour: 19},
	"moderate": {Name: "moderate", Min: 4, Max: 5, StartHour: 9, EndHour: 21},
	"packed":   {Name: "packed", Min: 6, Max: 8, StartHour: 8, EndHour: 22},
	"extreme":  {Name: "extreme", Min: 9, Max: 11, StartHour: 7, EndHour: 23},
	"maximum":  {Name: "maximum", Min: 12, Max: 15, StartHour: 6, EndHour: 23},
}

// BandFor resolves an intensity name; unknown names get moderate.
func BandFor(intensity string) IntensityBand {
	if band, ok := intensityBands[strings.ToLower(intensity)]; ok {
		return band
	}
	return intensityBands["moderate"]
}

// EnergyPercent maps a day's position in the trip onto expected traveler
// stamina: arrival 30, day 2 ramp-up 60, days 3-4 peak 100, the final
// two days wind-down 70, everything else 90.
func EnergyPercent(dayNumber, totalDays int) int {
	switch {
	case dayNumber == 1:
		return 30
	case dayNumber == 2:
		return 60
	case dayNumber == 3 || dayNumber == 4:
		return 100
	case dayNumber > totalDays-2:
		return 70
	default:
		return 90
	}
}

// CompanionRule scales the activity target and biases categories.
type CompanionRule struct {
	Multiplier float64
	Preferred  []string
	Avoided    []string
}

var companionRules = map[string]CompanionRule{
	"family":  {Multiplier: 0.7, Preferred: []string{"nature", "attraction", "theme_park", "museum"}, Avoided: []string{"nightlife", "bar"}},
	"friends": {Multiplier: 1.2, Preferred: []string{"nightlife", "food", "shopping"}, Avoided: nil},
	"couple":  {Multiplier: 1.0, Preferred: []string{"food", "relax", "attraction"}, Avoided: nil},
	"solo":    {Multiplier: 1.1, Preferred: []string{"cultural", "museum", "food"}, Avoided: nil},
	"elderly": {Multiplier: 0.6, Preferred: []string{"cultural", "nature", "relax"}, Avoided: []string{"nightlife", "hiking", "theme_park"}},
}

// CompanionFor resolves a companion type; unknown or empty means no rule.
func CompanionFor(companion string) (CompanionRule, bool) {
	rule, ok := companionRules[strings.ToLower(companion)]
	return rule, ok
}

// HighExertionCategories are filtered out on arrival days regardless of
// score; a jet-lagged first day should not propose them.
var HighExertionCategories = map[string]bool{
	"hiking":     true,
	"onsen":      true,
	"nightlife":  true,
	"theme_park": true,
}
