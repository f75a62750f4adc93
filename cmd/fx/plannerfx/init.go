package plannerfx

import (
	"go.uber.org/fx"

	"tripsmith/internal/services"
)

var Module = fx.Provide(
	providePlaceSearcher,
	provideScorer,
	provideClusterer,
	provideRouter,
	provideMealInserter,
	provideBudgetPredictor,
	provideAllocator,
	provideDayGenerator,
	provideItineraryService)

func providePlaceSearcher() services.PlaceSearcher {
	return services.NewPlaceSearcherFromEnv()
}

func provideScorer() services.ActivityScorerInterface {
	return services.NewActivityScorer()
}

func provideClusterer() services.GeographicClustererInterface {
	return services.NewGeographicClusterer()
}

func provideRouter() services.RouteOptimizerInterface {
	return services.NewRouteOptimizer()
}

func provideMealInserter(placeSearch services.PlaceSearcher) services.MealInserterInterface {
	return services.NewMealInserter(placeSearch)
}

func provideBudgetPredictor() services.BudgetPredictorInterface {
	return services.NewBudgetPredictor()
}

func provideAllocator() services.CityAllocatorInterface {
	return services.NewCityAllocator()
}

func provideDayGenerator(
	scorer services.ActivityScorerInterface,
	clusterer services.GeographicClustererInterface,
	router services.RouteOptimizerInterface,
	meals services.MealInserterInterface,
	budget services.BudgetPredictorInterface,
) services.DayGeneratorInterface {
	return services.NewDayGenerator(scorer, clusterer, router, meals, budget)
}

func provideItineraryService(
	catalog services.CatalogServiceInterface,
	learning services.LearningServiceInterface,
	allocator services.CityAllocatorInterface,
	dayGen services.DayGeneratorInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(catalog, learning, allocator, dayGen)
}
