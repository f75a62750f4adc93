package staticdata

import "strings"

// Theme restricts and boosts a day's candidate pool.
type Theme struct {
	Name              string
	BonusInterests    []string
	AllowedCategories []string
	AvoidedCategories []string
}

var themes = map[string]Theme{
	"culture": {
		Name:              "culture",
		BonusInterests:    []string{"cultural", "history", "art"},
		AllowedCategories: []string{"cultural", "museum", "attraction", "nature", "food"},
		AvoidedCategories: []string{"nightlife"},
	},
	"food": {
		Name:              "food",
		BonusInterests:    []string{"food", "market"},
		AllowedCategories: []string{"food", "market", "shopping", "attraction", "cultural"},
	},
	"shopping": {
		Name:              "shopping",
		BonusInterests:    []string{"shopping", "fashion", "anime"},
		AllowedCategories: []string{"shopping", "food", "attraction"},
	},
	"nature": {
		Name:              "nature",
		BonusInterests:    []string{"nature", "relax", "photography"},
		AllowedCategories: []string{"nature", "attraction", "cultural", "food"},
		AvoidedCategories: []string{"nightlife", "shopping"},
	},
	"nightlife": {
		Name:              "nightlife",
		BonusInterests:    []string{"nightlife", "food"},
		AllowedCategories: []string{"nightlife", "food", "attraction", "shopping"},
	},
}

// ThemeFor resolves a theme tag; unknown names return false.
func ThemeFor(name string) (Theme, bool) {
	theme, ok := themes[strings.ToLower(name)]
	return theme, ok
}
