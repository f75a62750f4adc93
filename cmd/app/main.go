package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripsmith/cmd/fx/catalogfx"
	"tripsmith/cmd/fx/controllersfx"
	"tripsmith/cmd/fx/dbfx"
	"tripsmith/cmd/fx/learningfx"
	"tripsmith/cmd/fx/plannerfx"
	"tripsmith/internal/api/controllers"
	"tripsmith/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		learningfx.Module,
		plannerfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, catalogController, feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	feedbackController *controllers.FeedbackController) {

	itineraries := r.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/variations", itineraryController.GenerateVariations)

	activities := r.Group("/activities")
	activities.GET("", catalogController.ListActivities)
	activities.GET("/:id", catalogController.GetActivityById)

	cities := r.Group("/cities")
	cities.GET("/:city/activities", catalogController.GetActivitiesByCity)

	r.POST("/feedback", feedbackController.RecordFeedback)
}
