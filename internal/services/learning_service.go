package services

import (
	"context"
	"log"
	"strings"
	"time"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/request_models"
	"tripsmith/internal/repositories"
	mem "tripsmith/pkg/memcache"
	"tripsmith/pkg/utils"
)

// WeightSnapshot is a point-in-time read of the learned preference
// weights. A generate call takes one snapshot up front so every day of
// the trip is scored against the same weights.
type WeightSnapshot struct {
	Category map[string]float64
	Interest map[string]float64
}

func (w WeightSnapshot) CategoryWeight(category string) float64 {
	return w.Category[strings.ToLower(category)]
}

func (w WeightSnapshot) InterestWeight(interests []string) float64 {
	var total float64
	for _, interest := range interests {
		total += w.Interest[strings.ToLower(interest)]
	}
	return total
}

type LearningServiceInterface interface {
	Snapshot(ctx context.Context) (WeightSnapshot, error)
	RecordFeedback(ctx context.Context, req request_models.FeedbackRequest) error
}

// Feedback deltas per action. Category keys move faster than interest
// keys so a disliked category drops out of rotation sooner.
const (
	likeCategoryDelta     = 2.0
	likeInterestDelta     = 1.0
	removeCategoryDelta   = -3.0
	removeInterestDelta   = -1.5
	completeCategoryDelta = 1.0
	completeInterestDelta = 0.5

	snapshotTTL = 5 * time.Minute
)

type LearningService struct {
	weightRepo   repositories.WeightRepository
	activityRepo repositories.ActivityRepository
	cache        *mem.WeightSnapshotCache
}

func NewLearningService(
	weightRepo repositories.WeightRepository,
	activityRepo repositories.ActivityRepository,
	cache *mem.WeightSnapshotCache,
) LearningServiceInterface {
	return &LearningService{
		weightRepo:   weightRepo,
		activityRepo: activityRepo,
		cache:        cache,
	}
}

func (s *LearningService) Snapshot(ctx context.Context) (WeightSnapshot, error) {
	if category, interest, ok := s.cache.Get(); ok {
		return WeightSnapshot{Category: category, Interest: interest}, nil
	}

	adjustments, err := s.weightRepo.ListAdjustments(ctx)
	if err != nil {
		return WeightSnapshot{}, utils.ErrDatabaseError
	}

	snapshot := WeightSnapshot{
		Category: make(map[string]float64),
		Interest: make(map[string]float64),
	}
	for _, adj := range adjustments {
		switch adj.Kind {
		case db_models.WeightKindCategory:
			snapshot.Category[adj.Key] = adj.Value
		case db_models.WeightKindInterest:
			snapshot.Interest[adj.Key] = adj.Value
		}
	}

	s.cache.Set(snapshot.Category, snapshot.Interest, snapshotTTL)
	return snapshot, nil
}

func (s *LearningService) RecordFeedback(ctx context.Context, req request_models.FeedbackRequest) error {
	var categoryDelta, interestDelta float64
	switch strings.ToLower(req.Action) {
	case request_models.FeedbackLike:
		categoryDelta, interestDelta = likeCategoryDelta, likeInterestDelta
	case request_models.FeedbackRemove:
		categoryDelta, interestDelta = removeCategoryDelta, removeInterestDelta
	case request_models.FeedbackComplete:
		categoryDelta, interestDelta = completeCategoryDelta, completeInterestDelta
	default:
		return utils.ErrUnknownFeedbackAction
	}

	activity, err := s.activityRepo.GetActivityByID(ctx, req.ActivityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	if _, err := s.weightRepo.ApplyDelta(ctx, db_models.WeightKindCategory, activity.Category, categoryDelta); err != nil {
		return utils.ErrDatabaseError
	}
	for _, interest := range activity.Interests {
		if _, err := s.weightRepo.ApplyDelta(ctx, db_models.WeightKindInterest, interest, interestDelta); err != nil {
			return utils.ErrDatabaseError
		}
	}

	s.cache.Invalidate()
	log.Printf("feedback recorded: action=%s activity=%s category=%s", req.Action, activity.Name, activity.Category)
	return nil
}
