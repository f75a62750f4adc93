package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/internal/repositories"
	mem "tripsmith/pkg/memcache"
	"tripsmith/pkg/utils"
)

func newTestLearningService(t *testing.T) (LearningServiceInterface, string) {
	t.Helper()

	activity := db_models.Activity{
		Name:      "Nishiki Market",
		City:      "kyoto",
		Category:  "food",
		Interests: []string{"food", "market"},
	}
	activityRepo := repositories.NewInMemoryActivityRepository([]db_models.Activity{activity})

	listed, err := activityRepo.ListActivitiesByCity(context.Background(), "kyoto")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	service := NewLearningService(
		repositories.NewInMemoryWeightRepository(),
		activityRepo,
		mem.NewWeightSnapshotCache(),
	)
	return service, listed[0].ID.String()
}

func TestRecordFeedbackLike(t *testing.T) {
	service, activityID := newTestLearningService(t)
	ctx := context.Background()

	err := service.RecordFeedback(ctx, request_models.FeedbackRequest{
		Action:     request_models.FeedbackLike,
		ActivityID: activityID,
	})
	require.NoError(t, err)

	snapshot, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, snapshot.CategoryWeight("food"))
	assert.Equal(t, 1.0, snapshot.Interest["food"])
	assert.Equal(t, 1.0, snapshot.Interest["market"])
}

func TestRecordFeedbackRemove(t *testing.T) {
	service, activityID := newTestLearningService(t)
	ctx := context.Background()

	err := service.RecordFeedback(ctx, request_models.FeedbackRequest{
		Action:     request_models.FeedbackRemove,
		ActivityID: activityID,
	})
	require.NoError(t, err)

	snapshot, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, -3.0, snapshot.CategoryWeight("food"))
	assert.Equal(t, -1.5, snapshot.Interest["food"])
}

func TestRecordFeedbackClampsWeights(t *testing.T) {
	service, activityID := newTestLearningService(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		require.NoError(t, service.RecordFeedback(ctx, request_models.FeedbackRequest{
			Action:     request_models.FeedbackLike,
			ActivityID: activityID,
		}))
	}

	snapshot, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, repositories.WeightCeiling, snapshot.CategoryWeight("food"))
}

func TestRecordFeedbackInvalidatesSnapshotCache(t *testing.T) {
	service, activityID := newTestLearningService(t)
	ctx := context.Background()

	before, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, before.CategoryWeight("food"))

	require.NoError(t, service.RecordFeedback(ctx, request_models.FeedbackRequest{
		Action:     request_models.FeedbackComplete,
		ActivityID: activityID,
	}))

	after, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, after.CategoryWeight("food"))
}

func TestRecordFeedbackRejectsUnknownAction(t *testing.T) {
	service, activityID := newTestLearningService(t)

	err := service.RecordFeedback(context.Background(), request_models.FeedbackRequest{
		Action:     "shrug",
		ActivityID: activityID,
	})
	assert.ErrorIs(t, err, utils.ErrUnknownFeedbackAction)
}

func TestRecordFeedbackUnknownActivity(t *testing.T) {
	service, _ := newTestLearningService(t)

	err := service.RecordFeedback(context.Background(), request_models.FeedbackRequest{
		Action:     request_models.FeedbackLike,
		ActivityID: "00000000-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}
