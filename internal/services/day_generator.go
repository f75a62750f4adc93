package services

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/internal/staticdata"
	"tripsmith/pkg/utils"
)

// DayInput is everything one day's generation needs. Used is the
// trip-wide set of already-selected activity ids; the generator adds to
// it so later days do not repeat earlier picks.
type DayInput struct {
	Profile    *request_models.TripProfile
	DayNumber  int
	City       string
	Candidates []db_models.Activity
	Used       map[string]bool
	Weights    WeightSnapshot
	// FirstDayInCity is set when the traveler switches cities partway
	// through the trip.
	FirstDayInCity bool
}

type DayGeneratorInterface interface {
	GenerateDay(ctx context.Context, in DayInput) response_models.DayPlan
}

const (
	arrivalDayCap = 3
	categoryCap   = 2
	// rough per-pick clock advance used while estimating visit hours
	// during selection, before real routing assigns times
	avgTransitEstimateMinutes = 30
)

type DayGenerator struct {
	scorer    ActivityScorerInterface
	clusterer GeographicClustererInterface
	router    RouteOptimizerInterface
	meals     MealInserterInterface
	budget    BudgetPredictorInterface
}

func NewDayGenerator(
	scorer ActivityScorerInterface,
	clusterer GeographicClustererInterface,
	router RouteOptimizerInterface,
	meals MealInserterInterface,
	budget BudgetPredictorInterface,
) DayGeneratorInterface {
	return &DayGenerator{
		scorer:    scorer,
		clusterer: clusterer,
		router:    router,
		meals:     meals,
		budget:    budget,
	}
}

func (g *DayGenerator) GenerateDay(ctx context.Context, in DayInput) response_models.DayPlan {
	profile := in.Profile
	band := staticdata.BandFor(profile.Intensity)
	energy := staticdata.EnergyPercent(in.DayNumber, profile.TotalDays)

	theme := dayTheme(profile, in.DayNumber)
	companion := dayCompanion(profile)
	season := daySeason(profile, in.DayNumber)
	hotel := dayHotel(profile, in.City)

	target := activityTarget(band, energy, companion)
	arrival := in.DayNumber == 1
	if arrival && target > arrivalDayCap {
		target = arrivalDayCap
	}

	candidates := filterCandidates(in.Candidates, theme, arrival)

	scoreIn := ScoreInput{
		Profile:   profile,
		Hotel:     hotel,
		Theme:     theme,
		Companion: companion,
		Season:    season,
		Weights:   in.Weights,
	}

	selected, shortfall, duplicates := g.selectActivities(candidates, in, scoreIn, band, target)

	clusters := g.clusterer.Cluster(selected, in.City, hotel)
	stops := g.router.Route(clusters, hotel, dayStartHour(profile, band))
	stops = g.meals.InsertMeals(ctx, stops, profile.DailyBudget)
	breakdown := g.budget.Predict(stops, profile.DailyBudget)

	return response_models.DayPlan{
		DayNumber:         in.DayNumber,
		City:              in.City,
		Title:             dayTitle(in, theme, clusters),
		Theme:             themeName(theme),
		EnergyLevel:       energy,
		Activities:        toScheduled(stops),
		Budget:            breakdown,
		Shortfall:         shortfall,
		DuplicatesAllowed: duplicates,
	}
}

// activityTarget interpolates within the intensity band by available
// energy, then scales for the travel party.
func activityTarget(band staticdata.IntensityBand, energy int, companion *staticdata.CompanionRule) int {
	span := float64(band.Max - band.Min)
	target := float64(band.Min) + math.Round(span*float64(energy)/100)
	if companion != nil {
		target = math.Round(target * companion.Multiplier)
	}
	if target < 1 {
		target = 1
	}
	if target > float64(band.Max) {
		target = float64(band.Max)
	}
	return int(target)
}

func filterCandidates(candidates []db_models.Activity, theme *staticdata.Theme, arrival bool) []db_models.Activity {
	out := make([]db_models.Activity, 0, len(candidates))
	for _, candidate := range candidates {
		if arrival && staticdata.HighExertionCategories[strings.ToLower(candidate.Category)] {
			continue
		}
		if theme != nil && !themeAllows(theme, candidate.Category) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func themeAllows(theme *staticdata.Theme, category string) bool {
	if len(theme.AllowedCategories) == 0 {
		return true
	}
	for _, allowed := range theme.AllowedCategories {
		if strings.EqualFold(allowed, category) {
			return true
		}
	}
	return false
}

// selectActivities runs the selection loop: must-see first, then best
// remaining score at the estimated visit hour, honoring the global used
// set and a per-category diversity cap. The cap is relaxed when the day
// would otherwise come up more than one activity short; reuse of
// already-used activities is a last resort to reach the band minimum.
func (g *DayGenerator) selectActivities(
	candidates []db_models.Activity,
	in DayInput,
	scoreIn ScoreInput,
	band staticdata.IntensityBand,
	target int,
) (selected []db_models.Activity, shortfall int, duplicates bool) {
	clockMinutes := dayStartHour(in.Profile, band) * 60
	perCategory := make(map[string]int)

	take := func(activity db_models.Activity) {
		selected = append(selected, activity)
		in.Used[activity.ID.String()] = true
		perCategory[strings.ToLower(activity.Category)]++
		clockMinutes += activity.DurationMinutes + avgTransitEstimateMinutes
	}

	for _, must := range in.Profile.MustSee {
		if len(selected) >= target {
			break
		}
		if must.City != "" && !strings.EqualFold(must.City, in.City) {
			continue
		}
		for _, candidate := range candidates {
			if strings.EqualFold(candidate.Name, must.Name) && !in.Used[candidate.ID.String()] {
				take(candidate)
				break
			}
		}
	}

	pickBest := func(capPerCategory int, allowUsed bool) bool {
		scoreIn.EstimatedHour = clockMinutes / 60
		best := -1
		bestScore := 0.0
		for i, candidate := range candidates {
			if !allowUsed && in.Used[candidate.ID.String()] {
				continue
			}
			if allowUsed && alreadySelected(selected, candidate.ID) {
				continue
			}
			if capPerCategory > 0 && perCategory[strings.ToLower(candidate.Category)] >= capPerCategory {
				continue
			}
			score := g.scorer.Score(candidate, scoreIn)
			if score <= 0 {
				continue
			}
			if score > bestScore {
				bestScore, best = score, i
			}
		}
		if best < 0 {
			return false
		}
		take(candidates[best])
		return true
	}

	for len(selected) < target {
		if !pickBest(categoryCap, false) {
			break
		}
	}

	// relax the diversity cap when more than one slot is still open
	if target-len(selected) > 1 {
		for len(selected) < target {
			if !pickBest(0, false) {
				break
			}
		}
	}

	if len(selected) < band.Min {
		log.Printf("day %d in %s below intensity minimum (%d/%d), allowing repeats", in.DayNumber, in.City, len(selected), band.Min)
		duplicates = true
		for len(selected) < band.Min {
			if !pickBest(0, true) {
				break
			}
		}
	}

	if len(selected) < band.Min {
		shortfall = band.Min - len(selected)
		log.Printf("day %d in %s short by %d activities", in.DayNumber, in.City, shortfall)
	}
	return selected, shortfall, duplicates
}

func alreadySelected(selected []db_models.Activity, id uuid.UUID) bool {
	for _, activity := range selected {
		if activity.ID == id {
			return true
		}
	}
	return false
}

func dayStartHour(profile *request_models.TripProfile, band staticdata.IntensityBand) int {
	if profile.StartHour > 0 {
		return profile.StartHour
	}
	return band.StartHour
}

func dayTheme(profile *request_models.TripProfile, dayNumber int) *staticdata.Theme {
	tag, ok := profile.ThemedDays[dayNumber]
	if !ok {
		return nil
	}
	theme, ok := staticdata.ThemeFor(tag)
	if !ok {
		return nil
	}
	return &theme
}

func dayCompanion(profile *request_models.TripProfile) *staticdata.CompanionRule {
	rule, ok := staticdata.CompanionFor(profile.CompanionType)
	if !ok {
		return nil
	}
	return &rule
}

func daySeason(profile *request_models.TripProfile, dayNumber int) *staticdata.Season {
	start := profile.StartDate()
	if start.IsZero() {
		return nil
	}
	season, ok := staticdata.SeasonFor(start.AddDate(0, 0, dayNumber-1))
	if !ok {
		return nil
	}
	return &season
}

func dayHotel(profile *request_models.TripProfile, city string) *utils.Coordinate {
	for name, hotel := range profile.HotelsByCity {
		if strings.EqualFold(name, city) && (hotel.Lat != 0 || hotel.Lng != 0) {
			return &utils.Coordinate{Lat: hotel.Lat, Lng: hotel.Lng}
		}
	}
	return nil
}

func themeName(theme *staticdata.Theme) string {
	if theme == nil {
		return ""
	}
	return theme.Name
}

// dayTitle names the day after its place in the trip, its theme, or the
// zones it visits.
func dayTitle(in DayInput, theme *staticdata.Theme, clusters []ActivityCluster) string {
	titleCity := titleCase(in.City)
	switch {
	case in.DayNumber == 1:
		return "Arrival in " + titleCity
	case in.DayNumber == in.Profile.TotalDays:
		return "Last Day in " + titleCity
	case theme != nil:
		return titleCity + ": " + titleCase(theme.Name) + " Day"
	case in.FirstDayInCity:
		return "First Day in " + titleCity
	}

	names := make([]string, 0, 2)
	for _, cluster := range clusters {
		if cluster.ZoneName == fallbackZoneName {
			continue
		}
		names = append(names, cluster.ZoneName)
		if len(names) == 2 {
			break
		}
	}
	if len(names) == 0 {
		return "Exploring " + titleCity
	}
	return titleCity + ": " + strings.Join(names, " & ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toScheduled(stops []ScheduledStop) []response_models.ScheduledActivity {
	out := make([]response_models.ScheduledActivity, 0, len(stops))
	for _, stop := range stops {
		entry := response_models.ScheduledActivity{
			Name:            stop.Activity.Name,
			Category:        stop.Activity.Category,
			Zone:            stop.ZoneName,
			Time:            utils.FormatClock(stop.StartMinutes),
			DurationMinutes: stop.Activity.DurationMinutes,
			Cost:            stop.Activity.Cost,
			IsMeal:          stop.IsMeal,
			TransitMinutes:  stop.TransitMinutes,
			Lat:             stop.Activity.Latitude,
			Lng:             stop.Activity.Longitude,
		}
		if stop.IsMeal {
			entry.Cost = stop.MealCost
		} else {
			entry.ActivityID = stop.Activity.ID.String()
		}
		out = append(out, entry)
	}
	return out
}
