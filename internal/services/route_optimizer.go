package services

import (
	"sort"

	"tripsmith/internal/models/db_models"
	"tripsmith/pkg/utils"
)

// ScheduledStop is one routed, clock-assigned entry of a day.
type ScheduledStop struct {
	Activity       db_models.Activity
	ZoneName       string
	StartMinutes   int
	TransitMinutes int
	DistanceKm     float64
	IsMeal         bool
	MealCost       float64
	MealName       string
}

func (s ScheduledStop) EndMinutes() int {
	return s.StartMinutes + s.Activity.DurationMinutes
}

// Transit estimates by distance. Missing coordinates get the default.
const (
	transitSameZoneMinutes = 15
	transitNearZoneMinutes = 30
	transitFarZoneMinutes  = 45
	transitDefaultMinutes  = 30
	nearZoneThresholdKm    = 3.0
)

type RouteOptimizerInterface interface {
	Route(clusters []ActivityCluster, hotel *utils.Coordinate, startHour int) []ScheduledStop
}

type RouteOptimizer struct{}

func NewRouteOptimizer() RouteOptimizerInterface {
	return &RouteOptimizer{}
}

// Route orders each zone with a nearest-neighbor walk anchored at the
// hotel, nudges morning-slotted stops earlier within their zone, then
// assigns wall-clock times from the day's start hour. Every zone walks
// from its hotel-nearest stop outward.
func (r *RouteOptimizer) Route(clusters []ActivityCluster, hotel *utils.Coordinate, startHour int) []ScheduledStop {
	var ordered []ScheduledStop

	for _, cluster := range clusters {
		zoneOrder := nearestNeighborOrder(cluster.Items, hotel)
		zoneOrder = timeOfDayPass(zoneOrder)

		for _, activity := range zoneOrder {
			ordered = append(ordered, ScheduledStop{Activity: activity, ZoneName: cluster.ZoneName})
		}
	}

	assignClock(ordered, startHour)
	return ordered
}

// nearestNeighborOrder greedily visits the closest unvisited activity,
// starting from the one nearest the anchor. O(n^2), fine for a day's
// worth of stops.
func nearestNeighborOrder(activities []db_models.Activity, anchor *utils.Coordinate) []db_models.Activity {
	if len(activities) <= 1 {
		return append([]db_models.Activity(nil), activities...)
	}

	remaining := append([]db_models.Activity(nil), activities...)
	ordered := make([]db_models.Activity, 0, len(remaining))

	var current *utils.Coordinate
	if anchor != nil {
		current = anchor
	}

	for len(remaining) > 0 {
		best := 0
		if current != nil {
			bestDist := 1e18
			for i, candidate := range remaining {
				coord, ok := candidate.Coordinates()
				if !ok {
					continue
				}
				if d := utils.DistanceKm(*current, coord); d < bestDist {
					bestDist, best = d, i
				}
			}
		}

		next := remaining[best]
		ordered = append(ordered, next)
		remaining = append(remaining[:best], remaining[best+1:]...)
		if coord, ok := next.Coordinates(); ok {
			current = &coord
		}
	}
	return ordered
}

// timeOfDayPass stably reorders a zone's stops so morning-slotted ones
// come first and evening/night ones last. Zone contiguity is preserved
// because the pass never crosses zone boundaries.
func timeOfDayPass(activities []db_models.Activity) []db_models.Activity {
	out := append([]db_models.Activity(nil), activities...)
	sort.SliceStable(out, func(i, j int) bool {
		return slotRank(out[i].PreferredTime) < slotRank(out[j].PreferredTime)
	})
	return out
}

func slotRank(slot string) int {
	switch slot {
	case db_models.TimeMorning:
		return 0
	case db_models.TimeEvening:
		return 2
	case db_models.TimeNight:
		return 3
	default: // afternoon, any, unset
		return 1
	}
}

func assignClock(stops []ScheduledStop, startHour int) {
	clock := startHour * 60
	for i := range stops {
		if i > 0 {
			transit, km := transitFromPrev(stops[i-1], stops[i])
			stops[i].TransitMinutes = transit
			stops[i].DistanceKm = km
			clock += transit
		}
		stops[i].StartMinutes = clock
		clock += stops[i].Activity.DurationMinutes
	}
}

func transitFromPrev(prev, next ScheduledStop) (minutes int, km float64) {
	from, okFrom := prev.Activity.Coordinates()
	to, okTo := next.Activity.Coordinates()

	if prev.ZoneName == next.ZoneName && prev.ZoneName != "" {
		if okFrom && okTo {
			return transitSameZoneMinutes, utils.DistanceKm(from, to)
		}
		return transitSameZoneMinutes, 0
	}
	if !okFrom || !okTo {
		return transitDefaultMinutes, 0
	}
	km = utils.DistanceKm(from, to)
	if km < nearZoneThresholdKm {
		return transitNearZoneMinutes, km
	}
	return transitFarZoneMinutes, km
}
