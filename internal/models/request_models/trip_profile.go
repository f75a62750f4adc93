package request_models

import (
	"strings"
	"time"
)

// Intensity presets accepted on a profile.
const (
	IntensityLight    = "light"
	IntensityModerate = "moderate"
	IntensityPacked   = "packed"
	IntensityExtreme  = "extreme"
	IntensityMaximum  = "maximum"
)

// Companion types accepted on a profile.
const (
	CompanionSolo    = "solo"
	CompanionCouple  = "couple"
	CompanionFamily  = "family"
	CompanionFriends = "friends"
	CompanionElderly = "elderly"
)

type Hotel struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type MustSeeItem struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city"`
}

// TripProfile is the caller-owned input to itinerary generation. The
// engine only reads it; all mutable working state lives elsewhere.
type TripProfile struct {
	Cities      []string `json:"cities" binding:"required,min=1"`
	TotalDays   int      `json:"total_days" binding:"required,min=1"`
	DailyBudget float64  `json:"daily_budget"`
	Interests   []string `json:"interests"`
	Intensity   string   `json:"intensity"`
	StartHour   int      `json:"start_hour"`

	CompanionType string           `json:"companion_type"`
	ThemedDays    map[int]string   `json:"themed_days"`
	MustSee       []MustSeeItem    `json:"must_see"`
	Avoid         []string         `json:"avoid"`
	HotelsByCity  map[string]Hotel `json:"hotels_by_city"`

	TripStartDate       string   `json:"trip_start_date"` // "2006-01-02"
	GroupSize           int      `json:"group_size"`
	TravelerAges        []int    `json:"traveler_ages"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MobilityNeeds       []string `json:"mobility_needs"`
}

// StartDate parses the trip start date; the zero time means unknown and
// disables season-aware scoring.
func (p *TripProfile) StartDate() time.Time {
	if p.TripStartDate == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", p.TripStartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// InterestSet returns the profile interests as a lowercase lookup set.
func (p *TripProfile) InterestSet() map[string]bool {
	set := make(map[string]bool, len(p.Interests))
	for _, interest := range p.Interests {
		set[strings.ToLower(interest)] = true
	}
	return set
}
