package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"tripsmith/internal/models/db_models"
)

type mealWindow struct {
	MealType        string
	Label           string
	OpenMinutes     int
	CloseMinutes    int
	DurationMinutes int
	// fraction of the daily budget a typical meal of this kind costs
	BudgetFraction float64
}

var mealWindows = []mealWindow{
	{MealType: "breakfast", Label: "Breakfast", OpenMinutes: 7 * 60, CloseMinutes: 10 * 60, DurationMinutes: 45, BudgetFraction: 0.08},
	{MealType: "lunch", Label: "Lunch", OpenMinutes: 12 * 60, CloseMinutes: 14 * 60, DurationMinutes: 60, BudgetFraction: 0.12},
	{MealType: "dinner", Label: "Dinner", OpenMinutes: 18 * 60, CloseMinutes: 21 * 60, DurationMinutes: 75, BudgetFraction: 0.20},
}

const mealGapBufferMinutes = 15

type MealInserterInterface interface {
	InsertMeals(ctx context.Context, stops []ScheduledStop, dailyBudget float64) []ScheduledStop
}

type MealInserter struct {
	placeSearch PlaceSearcher // nil when enrichment is disabled
}

func NewMealInserter(placeSearch PlaceSearcher) MealInserterInterface {
	return &MealInserter{placeSearch: placeSearch}
}

// InsertMeals adds breakfast, lunch and dinner entries into the routed
// day wherever a scheduled activity does not already cover the meal.
func (m *MealInserter) InsertMeals(ctx context.Context, stops []ScheduledStop, dailyBudget float64) []ScheduledStop {
	out := append([]ScheduledStop(nil), stops...)

	for _, window := range mealWindows {
		if coversMeal(out, window.MealType) {
			continue
		}
		start, ok := findMealStart(out, window)
		if !ok {
			continue
		}

		meal := m.buildMeal(ctx, window, out, start, dailyBudget)
		out = append(out, meal)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartMinutes < out[j].StartMinutes
		})
	}
	return out
}

func coversMeal(stops []ScheduledStop, mealType string) bool {
	for _, stop := range stops {
		if strings.EqualFold(stop.Activity.MealType, mealType) {
			return true
		}
	}
	return false
}

// findMealStart picks the first gap that opens inside the meal window
// and fits the meal plus a travel buffer. Days that start after the
// window or end before it get the meal pinned to the edge instead.
func findMealStart(stops []ScheduledStop, window mealWindow) (int, bool) {
	need := window.DurationMinutes + mealGapBufferMinutes

	if len(stops) == 0 {
		return window.OpenMinutes, true
	}
	if stops[0].StartMinutes >= window.CloseMinutes {
		if stops[0].StartMinutes-window.OpenMinutes >= need {
			return window.OpenMinutes, true
		}
		return 0, false
	}

	for i := 0; i < len(stops)-1; i++ {
		gapStart := stops[i].EndMinutes()
		gapEnd := stops[i+1].StartMinutes
		if gapStart >= window.OpenMinutes && gapStart < window.CloseMinutes && gapEnd-gapStart >= need {
			return gapStart, true
		}
	}

	lastEnd := stops[len(stops)-1].EndMinutes()
	if lastEnd < window.CloseMinutes {
		if lastEnd > window.OpenMinutes {
			return lastEnd, true
		}
		return window.OpenMinutes, true
	}
	return 0, false
}

func (m *MealInserter) buildMeal(ctx context.Context, window mealWindow, stops []ScheduledStop, startMinutes int, dailyBudget float64) ScheduledStop {
	name := window.Label
	cost := dailyBudget * window.BudgetFraction
	zone := nearestZone(stops, startMinutes)

	if m.placeSearch != nil {
		if suggestion, err := m.placeSearch.Search(ctx, window.MealType, zone); err != nil {
			log.Printf("place search failed for %s: %v", window.MealType, err)
		} else if suggestion != nil {
			name = window.Label + " at " + suggestion.Name
			if suggestion.PriceLevel > 0 {
				cost = cost * float64(suggestion.PriceLevel) / 2
			}
		}
	}

	return ScheduledStop{
		Activity: db_models.Activity{
			Name:            name,
			Category:        "food",
			MealType:        window.MealType,
			DurationMinutes: window.DurationMinutes,
		},
		ZoneName:     zone,
		StartMinutes: startMinutes,
		IsMeal:       true,
		MealCost:     cost,
		MealName:     name,
	}
}

// nearestZone borrows the zone of the stop adjacent to the meal slot so
// the meal reads as happening where the traveler already is.
func nearestZone(stops []ScheduledStop, startMinutes int) string {
	zone := ""
	for _, stop := range stops {
		if stop.StartMinutes <= startMinutes && stop.ZoneName != "" {
			zone = stop.ZoneName
		}
	}
	if zone == "" && len(stops) > 0 {
		zone = stops[0].ZoneName
	}
	return zone
}
