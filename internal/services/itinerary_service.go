package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, profile *request_models.TripProfile) (*response_models.Itinerary, error)
	GenerateVariations(ctx context.Context, profile *request_models.TripProfile) ([]response_models.ItineraryVariation, error)
}

type ItineraryService struct {
	catalog   CatalogServiceInterface
	learning  LearningServiceInterface
	allocator CityAllocatorInterface
	dayGen    DayGeneratorInterface
}

func NewItineraryService(
	catalog CatalogServiceInterface,
	learning LearningServiceInterface,
	allocator CityAllocatorInterface,
	dayGen DayGeneratorInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		catalog:   catalog,
		learning:  learning,
		allocator: allocator,
		dayGen:    dayGen,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, profile *request_models.TripProfile) (*response_models.Itinerary, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	// one snapshot per generate call; an unavailable store degrades to
	// empty weights instead of failing the trip
	weights, err := s.learning.Snapshot(ctx)
	if err != nil {
		log.Printf("weight snapshot unavailable, scoring without adjustments: %v", err)
		weights = WeightSnapshot{}
	}

	allocations := s.allocator.Allocate(profile.Cities, profile.TotalDays, profile.Interests)
	if allocations == nil {
		return nil, utils.ErrInvalidProfile
	}

	used := make(map[string]bool)
	days := make([]response_models.DayPlan, 0, profile.TotalDays)
	dayNumber := 1

	for _, allocation := range allocations {
		candidates, err := s.catalog.ListByCity(ctx, allocation.City)
		if err != nil {
			return nil, err
		}

		for i := 0; i < allocation.Days; i++ {
			day := s.dayGen.GenerateDay(ctx, DayInput{
				Profile:        profile,
				DayNumber:      dayNumber,
				City:           allocation.City,
				Candidates:     candidates,
				Used:           used,
				Weights:        weights,
				FirstDayInCity: i == 0,
			})
			days = append(days, day)
			dayNumber++
		}
	}

	return &response_models.Itinerary{
		ID:      uuid.New().String(),
		Title:   tripTitle(profile),
		Days:    days,
		Budget:  tripBudget(days, profile),
		Profile: profile,
	}, nil
}

// GenerateVariations produces alternative takes on the same trip. Each
// variation runs a full generate pass with its own used-activities set,
// so variations never leak picks into each other.
func (s *ItineraryService) GenerateVariations(ctx context.Context, profile *request_models.TripProfile) ([]response_models.ItineraryVariation, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	variants := []struct {
		id          string
		name        string
		description string
		interests   []string
	}{
		{"cultural", "Cultural Immersion", "Temples, museums and history first.", []string{"cultural", "history", "art"}},
		{"food_shopping", "Food & Shopping", "Markets, street food and the best shopping streets.", []string{"food", "market", "shopping"}},
		{"balanced", "Balanced Mix", "The original preference mix.", nil},
	}

	variations := make([]response_models.ItineraryVariation, 0, len(variants))
	for _, variant := range variants {
		adjusted := *profile
		if variant.interests != nil {
			adjusted.Interests = mergeInterests(variant.interests, profile.Interests)
		}

		itinerary, err := s.Generate(ctx, &adjusted)
		if err != nil {
			return nil, err
		}
		variations = append(variations, response_models.ItineraryVariation{
			ID:          variant.id,
			Name:        variant.name,
			Description: variant.description,
			Tags:        variant.interests,
			Itinerary:   itinerary,
		})
	}
	return variations, nil
}

func validateProfile(profile *request_models.TripProfile) error {
	if profile == nil || len(profile.Cities) == 0 || profile.TotalDays < 1 {
		return utils.ErrInvalidProfile
	}
	if profile.TotalDays < len(profile.Cities) {
		return utils.ErrInvalidProfile
	}
	return nil
}

func mergeInterests(primary, extra []string) []string {
	seen := make(map[string]bool, len(primary)+len(extra))
	merged := make([]string, 0, len(primary)+len(extra))
	for _, interest := range append(append([]string{}, primary...), extra...) {
		key := strings.ToLower(interest)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, interest)
	}
	return merged
}

func tripTitle(profile *request_models.TripProfile) string {
	cities := make([]string, len(profile.Cities))
	for i, city := range profile.Cities {
		cities[i] = titleCase(city)
	}
	return fmt.Sprintf("%d-Day Trip: %s", profile.TotalDays, strings.Join(cities, " & "))
}

func tripBudget(days []response_models.DayPlan, profile *request_models.TripProfile) response_models.TripBudget {
	var total float64
	for _, day := range days {
		total += day.Budget.Total
	}

	budget := response_models.TripBudget{
		Total:   round2(total),
		Ceiling: round2(profile.DailyBudget * float64(profile.TotalDays)),
	}
	if profile.TotalDays > 0 {
		budget.DailyAverage = round2(total / float64(profile.TotalDays))
	}
	percentage := 0.0
	if budget.Ceiling > 0 {
		percentage = total / budget.Ceiling * 100
	}
	budget.Status = budgetStatus(percentage)
	return budget
}
