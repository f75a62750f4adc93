package services

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/internal/staticdata"
)

func newTestDayGenerator() DayGeneratorInterface {
	return NewDayGenerator(
		NewActivityScorer(),
		NewGeographicClusterer(),
		NewRouteOptimizer(),
		NewMealInserter(nil),
		NewBudgetPredictor(),
	)
}

func cityCandidates(city string) []db_models.Activity {
	var out []db_models.Activity
	for _, activity := range staticdata.SampleActivities() {
		if strings.EqualFold(activity.City, city) {
			out = append(out, activity)
		}
	}
	return out
}

func testDayProfile() *request_models.TripProfile {
	return &request_models.TripProfile{
		Cities:      []string{"tokyo"},
		TotalDays:   5,
		DailyBudget: 20000,
		Interests:   []string{"cultural", "food"},
		Intensity:   request_models.IntensityModerate,
	}
}

func TestGenerateDayHitsIntensityBand(t *testing.T) {
	generator := newTestDayGenerator()

	day := generator.GenerateDay(context.Background(), DayInput{
		Profile:    testDayProfile(),
		DayNumber:  3,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	band := staticdata.BandFor(request_models.IntensityModerate)
	count := 0
	for _, entry := range day.Activities {
		if !entry.IsMeal {
			count++
		}
	}
	assert.GreaterOrEqual(t, count, band.Min)
	assert.LessOrEqual(t, count, band.Max)
	assert.Equal(t, 100, day.EnergyLevel)
	assert.Zero(t, day.Shortfall)
}

func TestGenerateDayArrivalDampening(t *testing.T) {
	generator := newTestDayGenerator()

	day := generator.GenerateDay(context.Background(), DayInput{
		Profile:    testDayProfile(),
		DayNumber:  1,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	count := 0
	for _, entry := range day.Activities {
		if entry.IsMeal {
			continue
		}
		count++
		assert.False(t, staticdata.HighExertionCategories[entry.Category],
			"arrival day scheduled high-exertion activity %q", entry.Name)
	}
	assert.LessOrEqual(t, count, 3)
	assert.Equal(t, 30, day.EnergyLevel)
}

func TestGenerateDayThemeFilter(t *testing.T) {
	generator := newTestDayGenerator()
	profile := testDayProfile()
	profile.ThemedDays = map[int]string{2: "culture"}

	day := generator.GenerateDay(context.Background(), DayInput{
		Profile:    profile,
		DayNumber:  2,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	assert.Equal(t, "culture", day.Theme)
	for _, entry := range day.Activities {
		assert.NotEqual(t, "nightlife", entry.Category)
	}
}

func TestGenerateDayMustSeeIncluded(t *testing.T) {
	generator := newTestDayGenerator()
	profile := testDayProfile()
	profile.MustSee = []request_models.MustSeeItem{{Name: "teamLab Borderless", City: "tokyo"}}

	day := generator.GenerateDay(context.Background(), DayInput{
		Profile:    profile,
		DayNumber:  3,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	found := false
	for _, entry := range day.Activities {
		if entry.Name == "teamLab Borderless" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateDayRespectsUsedSet(t *testing.T) {
	generator := newTestDayGenerator()
	used := map[string]bool{}

	first := generator.GenerateDay(context.Background(), DayInput{
		Profile:    testDayProfile(),
		DayNumber:  2,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       used,
		Weights:    WeightSnapshot{},
	})
	second := generator.GenerateDay(context.Background(), DayInput{
		Profile:    testDayProfile(),
		DayNumber:  3,
		City:       "tokyo",
		Candidates: cityCandidates("tokyo"),
		Used:       used,
		Weights:    WeightSnapshot{},
	})

	seen := map[string]bool{}
	for _, entry := range first.Activities {
		if entry.ActivityID != "" {
			seen[entry.ActivityID] = true
		}
	}
	for _, entry := range second.Activities {
		if entry.ActivityID != "" {
			assert.False(t, seen[entry.ActivityID], "activity %s repeated across days", entry.Name)
		}
	}
}

// hourRecordingScorer captures the estimated visit hour of every
// scoring call so tests can watch the selection clock move.
type hourRecordingScorer struct {
	hours []int
}

func (s *hourRecordingScorer) Score(activity db_models.Activity, in ScoreInput) float64 {
	s.hours = append(s.hours, in.EstimatedHour)
	return 50
}

func TestGenerateDayShortActivitiesAdvanceClock(t *testing.T) {
	scorer := &hourRecordingScorer{}
	generator := NewDayGenerator(
		scorer,
		NewGeographicClusterer(),
		NewRouteOptimizer(),
		NewMealInserter(nil),
		NewBudgetPredictor(),
	)

	categories := []string{"cultural", "food", "nature", "shopping", "art", "viewpoint"}
	candidates := make([]db_models.Activity, 0, len(categories))
	for i, category := range categories {
		candidates = append(candidates, db_models.Activity{
			BaseModel:       db_models.BaseModel{ID: uuid.New()},
			Name:            "Stop " + strconv.Itoa(i+1),
			City:            "tokyo",
			Category:        category,
			DurationMinutes: 20,
		})
	}

	generator.GenerateDay(context.Background(), DayInput{
		Profile:    testDayProfile(),
		DayNumber:  3,
		City:       "tokyo",
		Candidates: candidates,
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	require.NotEmpty(t, scorer.hours)
	// a string of twenty-minute stops still pushes the estimated hour
	// forward between picks
	assert.Greater(t, scorer.hours[len(scorer.hours)-1], scorer.hours[0])
}

func TestGenerateDayTinyPoolFlagsShortfall(t *testing.T) {
	generator := newTestDayGenerator()
	profile := testDayProfile()
	profile.Intensity = request_models.IntensityPacked

	tiny := cityCandidates("tokyo")[:2]
	day := generator.GenerateDay(context.Background(), DayInput{
		Profile:    profile,
		DayNumber:  3,
		City:       "tokyo",
		Candidates: tiny,
		Used:       map[string]bool{},
		Weights:    WeightSnapshot{},
	})

	require.NotEmpty(t, day.Activities)
	assert.Positive(t, day.Shortfall)
}
