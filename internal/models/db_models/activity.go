package db_models

import (
	"strings"

	"github.com/lib/pq"
	"tripsmith/pkg/utils"
)

// Crowd levels reported by the catalog.
const (
	CrowdLow      = "low"
	CrowdMedium   = "medium"
	CrowdHigh     = "high"
	CrowdVeryHigh = "very_high"
)

// Preferred time-of-day slots. "any" (or empty) means no preference.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
	TimeAny       = "any"
)

// Activity is one catalog entry. The planner treats rows as immutable;
// only the seeding/import path ever writes them.
type Activity struct {
	BaseModel
	Name     string `gorm:"index"`
	City     string `gorm:"index"`
	Category string
	Area     string
	Station  string

	// Coordinates are optional; both nil means the catalog has no fix.
	Latitude  *float64
	Longitude *float64

	DurationMinutes int
	Cost            float64
	QualityRating   float64 // 0-5
	Popularity      int     // 0-100
	CrowdLevel      string

	// Opening hours as hours-of-day; nil means unknown/always open.
	OpenHour  *int
	CloseHour *int

	PreferredTime        string
	WheelchairAccessible bool
	MealType             string // "", "breakfast", "lunch", "dinner"

	Interests pq.StringArray `gorm:"type:text[]"`
	Tags      pq.StringArray `gorm:"type:text[]"`
}

// Coordinates returns the activity location when the catalog has one.
func (a *Activity) Coordinates() (utils.Coordinate, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return utils.Coordinate{}, false
	}
	return utils.Coordinate{Lat: *a.Latitude, Lng: *a.Longitude}, true
}

// HasTag reports whether the free-form tag list contains tag.
func (a *Activity) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// HasInterest reports whether the activity carries the interest tag.
func (a *Activity) HasInterest(interest string) bool {
	for _, t := range a.Interests {
		if strings.EqualFold(t, interest) {
			return true
		}
	}
	return false
}
