package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/models/db_models"
)

func mealsOf(stops []ScheduledStop) map[string]ScheduledStop {
	meals := make(map[string]ScheduledStop)
	for _, stop := range stops {
		if stop.IsMeal {
			meals[stop.Activity.MealType] = stop
		}
	}
	return meals
}

func TestInsertMealsIntoEmptyDay(t *testing.T) {
	inserter := NewMealInserter(nil)

	stops := inserter.InsertMeals(context.Background(), nil, 10000)
	require.Len(t, stops, 3)

	meals := mealsOf(stops)
	assert.Equal(t, 7*60, meals["breakfast"].StartMinutes)
	assert.Equal(t, 12*60, meals["lunch"].StartMinutes)
	assert.Equal(t, 18*60, meals["dinner"].StartMinutes)

	assert.Equal(t, 45, meals["breakfast"].Activity.DurationMinutes)
	assert.Equal(t, 60, meals["lunch"].Activity.DurationMinutes)
	assert.Equal(t, 75, meals["dinner"].Activity.DurationMinutes)
}

func TestInsertMealsUsesGapInsideWindow(t *testing.T) {
	inserter := NewMealInserter(nil)

	day := []ScheduledStop{
		{Activity: db_models.Activity{Name: "Museum", DurationMinutes: 180}, StartMinutes: 9 * 60},
		{Activity: db_models.Activity{Name: "Market", DurationMinutes: 60}, StartMinutes: 14*60 + 30},
	}

	stops := inserter.InsertMeals(context.Background(), day, 10000)
	meals := mealsOf(stops)

	require.Contains(t, meals, "lunch")
	// the museum ends at 12:00, inside the lunch window, and the gap
	// before the market fits the meal plus buffer
	assert.Equal(t, 12*60, meals["lunch"].StartMinutes)

	require.Contains(t, meals, "dinner")
	assert.Equal(t, 18*60, meals["dinner"].StartMinutes)

	// the 09:00 start leaves no usable breakfast slot
	assert.NotContains(t, meals, "breakfast")
}

func TestInsertMealsSkipsCoveredMealType(t *testing.T) {
	inserter := NewMealInserter(nil)

	day := []ScheduledStop{
		{Activity: db_models.Activity{Name: "Tsukiji Outer Market", MealType: "breakfast", DurationMinutes: 120}, StartMinutes: 8 * 60},
	}

	stops := inserter.InsertMeals(context.Background(), day, 10000)
	count := 0
	for _, stop := range stops {
		if stop.IsMeal && stop.Activity.MealType == "breakfast" {
			count++
		}
	}
	assert.Zero(t, count)
}

func TestInsertMealsCostsScaleWithBudget(t *testing.T) {
	inserter := NewMealInserter(nil)

	stops := inserter.InsertMeals(context.Background(), nil, 10000)
	meals := mealsOf(stops)

	assert.InDelta(t, 800, meals["breakfast"].MealCost, 0.01)
	assert.InDelta(t, 1200, meals["lunch"].MealCost, 0.01)
	assert.InDelta(t, 2000, meals["dinner"].MealCost, 0.01)
}

func TestInsertMealsKeepsChronologicalOrder(t *testing.T) {
	inserter := NewMealInserter(nil)

	day := []ScheduledStop{
		{Activity: db_models.Activity{Name: "Garden", DurationMinutes: 120}, StartMinutes: 10 * 60},
	}

	stops := inserter.InsertMeals(context.Background(), day, 10000)
	for i := 1; i < len(stops); i++ {
		assert.GreaterOrEqual(t, stops[i].StartMinutes, stops[i-1].StartMinutes)
	}
}

type stubPlaceSearcher struct {
	suggestion *PlaceSuggestion
}

func (s *stubPlaceSearcher) Search(_ context.Context, _, _ string) (*PlaceSuggestion, error) {
	return s.suggestion, nil
}

func TestInsertMealsEnrichesFromPlaceSearch(t *testing.T) {
	inserter := NewMealInserter(&stubPlaceSearcher{
		suggestion: &PlaceSuggestion{Name: "Ichiran", PriceLevel: 2},
	})

	stops := inserter.InsertMeals(context.Background(), nil, 10000)
	meals := mealsOf(stops)

	assert.Equal(t, "Lunch at Ichiran", meals["lunch"].Activity.Name)
	assert.InDelta(t, 1200, meals["lunch"].MealCost, 0.01)
}
