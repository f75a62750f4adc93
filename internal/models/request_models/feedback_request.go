package request_models

// Feedback actions that adjust learned weights.
const (
	FeedbackLike     = "like"
	FeedbackRemove   = "remove"
	FeedbackComplete = "complete"
)

type FeedbackRequest struct {
	Action     string `json:"action" binding:"required"`
	ActivityID string `json:"activity_id" binding:"required"`
}
