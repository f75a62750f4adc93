package response_models

import "tripsmith/internal/models/request_models"

// Budget statuses for a single day.
const (
	BudgetUnder   = "under_budget"
	BudgetHealthy = "healthy"
	BudgetAtLimit = "at_limit"
	BudgetOver    = "over_budget"
)

type ScheduledActivity struct {
	ActivityID      string   `json:"activity_id,omitempty"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Zone            string   `json:"zone,omitempty"`
	Time            string   `json:"time"` // "HH:MM"
	DurationMinutes int      `json:"duration_minutes"`
	Cost            float64  `json:"cost"`
	IsMeal          bool     `json:"is_meal"`
	TransitMinutes  int      `json:"transit_minutes,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
}

type BudgetBreakdown struct {
	Activities float64 `json:"activities"`
	Meals      float64 `json:"meals"`
	Transport  float64 `json:"transport"`
	Total      float64 `json:"total"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

type DayPlan struct {
	DayNumber   int    `json:"day_number"`
	City        string `json:"city"`
	Title       string `json:"title"`
	Theme       string `json:"theme,omitempty"`
	EnergyLevel int    `json:"energy_level"` // 0-100

	Activities []ScheduledActivity `json:"activities"`
	Budget     BudgetBreakdown     `json:"budget"`

	// Shortfall counts how far the day fell below the intensity-band
	// minimum because the candidate pool ran out.
	Shortfall int `json:"shortfall,omitempty"`
	// DuplicatesAllowed marks a day where the global de-duplication
	// rule had to be relaxed to reach the band minimum.
	DuplicatesAllowed bool `json:"duplicates_allowed,omitempty"`
}

type TripBudget struct {
	Total        float64 `json:"total"`
	DailyAverage float64 `json:"daily_average"`
	Ceiling      float64 `json:"ceiling"`
	Status       string  `json:"status"`
}

type Itinerary struct {
	ID      string                      `json:"id"`
	Title   string                      `json:"title"`
	Days    []DayPlan                   `json:"days"`
	Budget  TripBudget                  `json:"budget"`
	Profile *request_models.TripProfile `json:"profile"`
}

type ItineraryVariation struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Itinerary   *Itinerary `json:"itinerary"`
}
