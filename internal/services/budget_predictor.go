package services

import (
	"math"

	"tripsmith/internal/models/response_models"
)

// Transport fares per inter-stop hop, bucketed by distance. Short hops
// are walkable, long ones priced like an express ride.
func transportFare(km float64) float64 {
	switch {
	case km < 0.8:
		return 0
	case km < 2:
		return 210
	case km < 10:
		return 280
	case km < 30:
		return 570
	case km < 50:
		return 1500
	default:
		return 3000
	}
}

type BudgetPredictorInterface interface {
	Predict(stops []ScheduledStop, dailyBudget float64) response_models.BudgetBreakdown
}

type BudgetPredictor struct{}

func NewBudgetPredictor() BudgetPredictorInterface {
	return &BudgetPredictor{}
}

func (p *BudgetPredictor) Predict(stops []ScheduledStop, dailyBudget float64) response_models.BudgetBreakdown {
	var activities, meals, transport float64

	for i, stop := range stops {
		if stop.IsMeal {
			meals += stop.MealCost
		} else {
			activities += stop.Activity.Cost
		}
		if i > 0 && stop.TransitMinutes > 0 {
			transport += transportFare(stop.DistanceKm)
		}
	}

	total := activities + meals + transport
	breakdown := response_models.BudgetBreakdown{
		Activities: round2(activities),
		Meals:      round2(meals),
		Transport:  round2(transport),
		Total:      round2(total),
		Remaining:  round2(dailyBudget - total),
	}
	if dailyBudget > 0 {
		breakdown.Percentage = round2(total / dailyBudget * 100)
	}
	breakdown.Status = budgetStatus(breakdown.Percentage)
	return breakdown
}

func budgetStatus(percentage float64) string {
	switch {
	case percentage < 70:
		return response_models.BudgetUnder
	case percentage <= 90:
		return response_models.BudgetHealthy
	case percentage <= 110:
		return response_models.BudgetAtLimit
	default:
		return response_models.BudgetOver
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
