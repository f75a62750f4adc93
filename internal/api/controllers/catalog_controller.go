package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) GetActivityById(c *gin.Context) {
	activityId := c.Param("id")
	if activityId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	activity, err := cc.catalogService.GetByID(c.Request.Context(), activityId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

func (cc *CatalogController) GetActivitiesByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	activities, err := cc.catalogService.ListByCity(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (cc *CatalogController) ListActivities(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 200 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-200)")
		return
	}

	activities, err := cc.catalogService.ListPaged(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
