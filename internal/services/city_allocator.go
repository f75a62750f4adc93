package services

import (
	"math"

	"tripsmith/internal/staticdata"
)

// CityAllocation is the number of itinerary days a city receives.
type CityAllocation struct {
	City     string
	Days     int
	Affinity float64
}

type CityAllocatorInterface interface {
	Allocate(cities []string, totalDays int, interests []string) []CityAllocation
}

type CityAllocator struct{}

func NewCityAllocator() CityAllocatorInterface {
	return &CityAllocator{}
}

// Allocate splits the trip days across cities proportionally to how
// well each city matches the traveler's interests. Every city gets at
// least one day; rounding drift is settled deterministically by giving
// spare days to the highest-affinity city and reclaiming overshoot from
// the lowest-affinity city that still has more than one day.
func (a *CityAllocator) Allocate(cities []string, totalDays int, interests []string) []CityAllocation {
	if len(cities) == 0 || totalDays < len(cities) {
		return nil
	}

	allocations := make([]CityAllocation, len(cities))
	var totalAffinity float64
	for i, city := range cities {
		affinity := staticdata.CityAffinity(city, interests)
		allocations[i] = CityAllocation{City: city, Affinity: affinity}
		totalAffinity += affinity
	}

	assigned := 0
	for i := range allocations {
		share := allocations[i].Affinity / totalAffinity
		days := int(math.Round(share * float64(totalDays)))
		if days < 1 {
			days = 1
		}
		allocations[i].Days = days
		assigned += days
	}

	for assigned < totalDays {
		allocations[bestIndex(allocations)].Days++
		assigned++
	}
	for assigned > totalDays {
		idx := worstShrinkableIndex(allocations)
		if idx < 0 {
			break
		}
		allocations[idx].Days--
		assigned--
	}
	return allocations
}

func bestIndex(allocations []CityAllocation) int {
	best := 0
	for i, alloc := range allocations {
		if alloc.Affinity > allocations[best].Affinity {
			best = i
		}
	}
	return best
}

func worstShrinkableIndex(allocations []CityAllocation) int {
	worst := -1
	for i, alloc := range allocations {
		if alloc.Days <= 1 {
			continue
		}
		if worst < 0 || alloc.Affinity < allocations[worst].Affinity {
			worst = i
		}
	}
	return worst
}
