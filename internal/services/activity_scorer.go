package services

import (
	"strings"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/internal/staticdata"
	"tripsmith/pkg/utils"
)

// ScoreInput carries the day-level context a candidate is scored
// against. EstimatedHour advances as the selection loop fills the day,
// so later picks are judged against a later clock.
type ScoreInput struct {
	Profile       *request_models.TripProfile
	Hotel         *utils.Coordinate
	Theme         *staticdata.Theme
	Companion     *staticdata.CompanionRule
	Season        *staticdata.Season
	Weights       WeightSnapshot
	EstimatedHour int
}

type ActivityScorerInterface interface {
	Score(activity db_models.Activity, in ScoreInput) float64
}

// Factor weights sum to 1. Tunable; the relative order matters more
// than the exact values.
const (
	weightInterest   = 0.25
	weightQuality    = 0.20
	weightProximity  = 0.18
	weightBudget     = 0.12
	weightPopularity = 0.10
	weightTiming     = 0.10
	weightSeason     = 0.05

	categoryOnlyMatchScore = 70.0
	neutralFactorScore     = 50.0

	themeBonus       = 15.0
	themePenalty     = -10.0
	companionBonus   = 10.0
	companionPenalty = -15.0
	childBonus       = 5.0
	groupBonus       = 8.0

	preferredTimeBonus   = 15.0
	preferredTimePenalty = -10.0
)

type ActivityScorer struct{}

func NewActivityScorer() ActivityScorerInterface {
	return &ActivityScorer{}
}

func (s *ActivityScorer) Score(activity db_models.Activity, in ScoreInput) float64 {
	if excluded(activity, in.Profile) {
		return 0
	}

	score := weightInterest*s.interestFactor(activity, in.Profile) +
		weightQuality*s.qualityFactor(activity) +
		weightProximity*s.proximityFactor(activity, in.Hotel) +
		weightBudget*s.budgetFactor(activity, in.Profile.DailyBudget) +
		weightPopularity*s.popularityFactor(activity) +
		weightTiming*s.timingFactor(activity, in.EstimatedHour) +
		weightSeason*s.seasonFactor(activity, in.Season)

	score += themeAdjustment(activity, in.Theme)
	score += companionAdjustment(activity, in.Companion)
	score += groupAdjustment(activity, in.Profile)
	if in.Season != nil && in.Season.MatchesSeason(activity.Name, activity.Interests) {
		score += in.Season.ScoreBonus
	}
	score += in.Weights.CategoryWeight(activity.Category)
	score += in.Weights.InterestWeight(activity.Interests)

	return clampScore(score)
}

// excluded applies the hard rules: avoid list, accessibility, dietary
// conflicts and age gates all zero the score outright.
func excluded(activity db_models.Activity, profile *request_models.TripProfile) bool {
	name := strings.ToLower(activity.Name)
	for _, avoid := range profile.Avoid {
		if avoid == "" {
			continue
		}
		// avoid entries are substrings, so "temple" blocks every temple
		if strings.Contains(name, strings.ToLower(avoid)) || strings.EqualFold(avoid, activity.Category) {
			return true
		}
	}
	for _, need := range profile.MobilityNeeds {
		if strings.EqualFold(need, "wheelchair") && !activity.WheelchairAccessible {
			return true
		}
	}
	for _, restriction := range profile.DietaryRestrictions {
		if activity.HasTag("no_" + strings.ToLower(restriction)) {
			return true
		}
	}
	if hasChildTravelers(profile) {
		if activity.HasTag("adults_only") || strings.EqualFold(activity.Category, "nightlife") {
			return true
		}
	}
	return false
}

func (s *ActivityScorer) interestFactor(activity db_models.Activity, profile *request_models.TripProfile) float64 {
	interests := profile.InterestSet()
	if len(interests) == 0 || len(activity.Interests) == 0 {
		return neutralFactorScore
	}
	matched := 0
	for _, tag := range activity.Interests {
		if interests[strings.ToLower(tag)] {
			matched++
		}
	}
	if matched > 0 {
		return float64(matched) / float64(len(activity.Interests)) * 100
	}
	if interests[strings.ToLower(activity.Category)] {
		return categoryOnlyMatchScore
	}
	return 0
}

func (s *ActivityScorer) qualityFactor(activity db_models.Activity) float64 {
	return activity.QualityRating / 5 * 100
}

func (s *ActivityScorer) proximityFactor(activity db_models.Activity, hotel *utils.Coordinate) float64 {
	coord, ok := activity.Coordinates()
	if !ok || hotel == nil {
		return neutralFactorScore
	}
	switch km := utils.DistanceKm(*hotel, coord); {
	case km < 1:
		return 100
	case km < 2:
		return 85
	case km < 3:
		return 70
	case km < 5:
		return 55
	case km < 8:
		return 40
	default:
		return 25
	}
}

func (s *ActivityScorer) budgetFactor(activity db_models.Activity, dailyBudget float64) float64 {
	if activity.Cost <= 0 {
		return 100
	}
	if dailyBudget <= 0 {
		return 10
	}
	switch share := activity.Cost / dailyBudget; {
	case share <= 0.15:
		return 85
	case share <= 0.30:
		return 60
	case share <= 0.50:
		return 35
	case share <= 0.70:
		return 20
	default:
		return 10
	}
}

func (s *ActivityScorer) popularityFactor(activity db_models.Activity) float64 {
	score := float64(activity.Popularity)
	switch activity.CrowdLevel {
	case db_models.CrowdVeryHigh:
		score -= 15
	case db_models.CrowdHigh:
		score -= 5
	case db_models.CrowdLow:
		score += 10
	}
	return clampScore(score)
}

// timingFactor judges the activity against the estimated clock hour at
// which it would be visited. Closed venues score zero; the sweet spot
// is 2-3 hours past opening with at least 1.5 hours before closing.
func (s *ActivityScorer) timingFactor(activity db_models.Activity, hour int) float64 {
	score := 70.0

	if activity.OpenHour != nil && activity.CloseHour != nil {
		openHour, closeHour := *activity.OpenHour, *activity.CloseHour
		if hour < openHour || hour >= closeHour {
			return 0
		}
		sinceOpen := float64(hour - openHour)
		untilClose := float64(closeHour - hour)
		if sinceOpen >= 2 && sinceOpen <= 3 && untilClose >= 1.5 {
			score = 100
		} else if untilClose < 1.5 {
			score = 40
		}
	}

	if slot := activity.PreferredTime; slot != "" && slot != db_models.TimeAny {
		if slotMatchesHour(slot, hour) {
			score += preferredTimeBonus
		} else {
			score += preferredTimePenalty
		}
	}
	return clampScore(score)
}

func slotMatchesHour(slot string, hour int) bool {
	switch slot {
	case db_models.TimeMorning:
		return hour >= 6 && hour < 12
	case db_models.TimeAfternoon:
		return hour >= 12 && hour < 17
	case db_models.TimeEvening:
		return hour >= 17 && hour < 21
	case db_models.TimeNight:
		return hour >= 21 || hour < 2
	default:
		return true
	}
}

func (s *ActivityScorer) seasonFactor(activity db_models.Activity, season *staticdata.Season) float64 {
	if season != nil && season.MatchesSeason(activity.Name, activity.Interests) {
		return 90
	}
	return neutralFactorScore
}

func themeAdjustment(activity db_models.Activity, theme *staticdata.Theme) float64 {
	if theme == nil {
		return 0
	}
	for _, avoided := range theme.AvoidedCategories {
		if strings.EqualFold(avoided, activity.Category) {
			return themePenalty
		}
	}
	for _, interest := range theme.BonusInterests {
		if activity.HasInterest(interest) || strings.EqualFold(interest, activity.Category) {
			return themeBonus
		}
	}
	return 0
}

func companionAdjustment(activity db_models.Activity, rule *staticdata.CompanionRule) float64 {
	if rule == nil {
		return 0
	}
	for _, avoided := range rule.Avoided {
		if strings.EqualFold(avoided, activity.Category) {
			return companionPenalty
		}
	}
	for _, preferred := range rule.Preferred {
		if strings.EqualFold(preferred, activity.Category) || activity.HasInterest(preferred) {
			return companionBonus
		}
	}
	return 0
}

func groupAdjustment(activity db_models.Activity, profile *request_models.TripProfile) float64 {
	var adj float64
	if profile.GroupSize >= 4 && activity.HasTag("group_friendly") {
		adj += groupBonus
	}
	if hasChildTravelers(profile) && activity.HasTag("group_friendly") {
		adj += childBonus
	}
	return adj
}

func hasChildTravelers(profile *request_models.TripProfile) bool {
	for _, age := range profile.TravelerAges {
		if age < 13 {
			return true
		}
	}
	return false
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
