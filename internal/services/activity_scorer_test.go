package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/pkg/utils"
)

func floatPtr(v float64) *float64 { return &v }

func testActivity() db_models.Activity {
	return db_models.Activity{
		Name:            "Shinjuku Gyoen National Garden",
		City:            "tokyo",
		Category:        "nature",
		Latitude:        floatPtr(35.6852),
		Longitude:       floatPtr(139.7100),
		DurationMinutes: 120,
		Cost:            0,
		QualityRating:   5,
		Popularity:      90,
		CrowdLevel:      db_models.CrowdLow,
		Interests:       []string{"nature", "relax"},
	}
}

func testScoreInput() ScoreInput {
	return ScoreInput{
		Profile: &request_models.TripProfile{
			Cities:      []string{"tokyo"},
			TotalDays:   3,
			DailyBudget: 20000,
			Interests:   []string{"nature", "relax"},
		},
		Hotel:         &utils.Coordinate{Lat: 35.6850, Lng: 139.7110},
		EstimatedHour: 10,
	}
}

func TestScoreNearPerfectCandidate(t *testing.T) {
	scorer := NewActivityScorer()
	score := scorer.Score(testActivity(), testScoreInput())

	assert.GreaterOrEqual(t, score, 90.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestScoreAvoidListedActivityIsZero(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Profile.Avoid = []string{"Shinjuku Gyoen National Garden"}

	assert.Equal(t, 0.0, scorer.Score(testActivity(), in))
}

func TestScoreAvoidMatchesNameSubstring(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Profile.Avoid = []string{"temple"}

	activity := testActivity()
	activity.Name = "Senso-ji Temple"
	activity.Category = "cultural"
	assert.Equal(t, 0.0, scorer.Score(activity, in))

	// no substring match and no category match leaves the score intact
	assert.Greater(t, scorer.Score(testActivity(), in), 0.0)
}

func TestScoreAvoidByCategoryIsZero(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Profile.Avoid = []string{"nature"}

	assert.Equal(t, 0.0, scorer.Score(testActivity(), in))
}

func TestScoreWheelchairExclusion(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Profile.MobilityNeeds = []string{"wheelchair"}

	activity := testActivity()
	activity.WheelchairAccessible = false
	assert.Equal(t, 0.0, scorer.Score(activity, in))

	activity.WheelchairAccessible = true
	assert.Greater(t, scorer.Score(activity, in), 0.0)
}

func TestScoreChildrenExcludeNightlife(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Profile.TravelerAges = []int{35, 8}

	activity := testActivity()
	activity.Category = "nightlife"
	assert.Equal(t, 0.0, scorer.Score(activity, in))
}

func TestScoreZeroOutsideOpeningHours(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.EstimatedHour = 20

	activity := testActivity()
	activity.OpenHour = intPtr(9)
	activity.CloseHour = intPtr(17)

	// closed venue loses the whole timing factor but not everything else
	closedScore := scorer.Score(activity, in)
	in.EstimatedHour = 11
	openScore := scorer.Score(activity, in)
	assert.Greater(t, openScore, closedScore)
}

func TestScoreAlwaysBounded(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()
	in.Weights = WeightSnapshot{
		Category: map[string]float64{"nature": 15},
		Interest: map[string]float64{"nature": 15, "relax": 15},
	}

	score := scorer.Score(testActivity(), in)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	expensive := testActivity()
	expensive.Cost = 50000
	expensive.QualityRating = 0
	expensive.Popularity = 0
	expensive.CrowdLevel = db_models.CrowdVeryHigh
	in.Weights = WeightSnapshot{Category: map[string]float64{"nature": -15}}

	score = scorer.Score(expensive, in)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestScoreLearnedWeightsShiftRanking(t *testing.T) {
	scorer := NewActivityScorer()
	in := testScoreInput()

	base := scorer.Score(testActivity(), in)

	in.Weights = WeightSnapshot{Category: map[string]float64{"nature": -10}}
	penalized := scorer.Score(testActivity(), in)
	assert.Less(t, penalized, base)
}

func intPtr(v int) *int { return &v }
