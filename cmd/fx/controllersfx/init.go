package controllersfx

import (
	"go.uber.org/fx"

	"tripsmith/internal/api/controllers"
	"tripsmith/internal/services"
)

var Module = fx.Provide(
	provideItineraryController, provideCatalogController, provideFeedbackController)

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}

func provideFeedbackController(learningService services.LearningServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(learningService)
}
