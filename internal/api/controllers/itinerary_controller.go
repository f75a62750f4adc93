package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var profile request_models.TripProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip profile: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.Generate(c.Request.Context(), &profile)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (ic *ItineraryController) GenerateVariations(c *gin.Context) {
	var profile request_models.TripProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip profile: "+err.Error())
		return
	}

	variations, err := ic.itineraryService.GenerateVariations(c.Request.Context(), &profile)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, variations, "Itinerary variations generated successfully")
}
