package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type FeedbackController struct {
	learningService services.LearningServiceInterface
}

func NewFeedbackController(learningService services.LearningServiceInterface) *FeedbackController {
	return &FeedbackController{
		learningService: learningService,
	}
}

// RecordFeedback applies a like/remove/complete action to the learned
// preference weights of the acted-on activity.
func (fc *FeedbackController) RecordFeedback(c *gin.Context) {
	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feedback payload: "+err.Error())
		return
	}

	if err := fc.learningService.RecordFeedback(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback recorded successfully")
}
