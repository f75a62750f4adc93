package services

import (
	"context"
	"strings"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/repositories"
	"tripsmith/pkg/utils"
)

type CatalogServiceInterface interface {
	ListByCity(ctx context.Context, city string) ([]db_models.Activity, error)
	GetByID(ctx context.Context, id string) (*db_models.Activity, error)
	ListPaged(ctx context.Context, page, pageSize int) ([]db_models.Activity, error)
}

type CatalogService struct {
	activityRepo repositories.ActivityRepository
}

func NewCatalogService(activityRepo repositories.ActivityRepository) CatalogServiceInterface {
	return &CatalogService{activityRepo: activityRepo}
}

func (s *CatalogService) ListByCity(ctx context.Context, city string) ([]db_models.Activity, error) {
	if strings.TrimSpace(city) == "" {
		return nil, utils.ErrInvalidInput
	}
	activities, err := s.activityRepo.ListActivitiesByCity(ctx, city)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*db_models.Activity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, utils.ErrInvalidInput
	}
	activity, err := s.activityRepo.GetActivityByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *CatalogService) ListPaged(ctx context.Context, page, pageSize int) ([]db_models.Activity, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 200 {
		return nil, utils.ErrInvalidPageSize
	}
	activities, err := s.activityRepo.ListActivities(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}
