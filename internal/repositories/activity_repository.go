package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripsmith/internal/models/db_models"
)

type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *db_models.Activity) (uuid.UUID, error)
	GetActivityByID(ctx context.Context, id string) (*db_models.Activity, error)
	ListActivitiesByCity(ctx context.Context, city string) ([]db_models.Activity, error)
	ListActivities(ctx context.Context, page, pageSize int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *db_models.Activity) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return uuid.Nil, err
	}
	return activity.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *activityRepository) GetActivityByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListActivitiesByCity(ctx context.Context, city string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = ?", strings.ToLower(city)).
		Order("popularity DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListActivities(ctx context.Context, page, pageSize int) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("city, popularity DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// inMemoryActivityRepository serves the built-in catalog when no
// database is configured. Seed data is copied on construction and never
// mutated afterwards, so reads need only the lock for the id index.
type inMemoryActivityRepository struct {
	mu     sync.RWMutex
	byCity map[string][]db_models.Activity
	byID   map[string]db_models.Activity
	order  []db_models.Activity
}

func NewInMemoryActivityRepository(seed []db_models.Activity) ActivityRepository {
	repo := &inMemoryActivityRepository{
		byCity: make(map[string][]db_models.Activity),
		byID:   make(map[string]db_models.Activity),
	}
	for _, activity := range seed {
		if activity.ID == uuid.Nil {
			activity.ID = uuid.New()
		}
		city := strings.ToLower(activity.City)
		repo.byCity[city] = append(repo.byCity[city], activity)
		repo.byID[activity.ID.String()] = activity
		repo.order = append(repo.order, activity)
	}
	return repo
}

func (r *inMemoryActivityRepository) CreateActivity(_ context.Context, activity *db_models.Activity) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	city := strings.ToLower(activity.City)
	r.byCity[city] = append(r.byCity[city], *activity)
	r.byID[activity.ID.String()] = *activity
	r.order = append(r.order, *activity)
	return activity.ID, nil
}

func (r *inMemoryActivityRepository) GetActivityByID(_ context.Context, id string) (*db_models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &activity, nil
}

func (r *inMemoryActivityRepository) ListActivitiesByCity(_ context.Context, city string) ([]db_models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := r.byCity[strings.ToLower(city)]
	out := make([]db_models.Activity, len(activities))
	copy(out, activities)
	return out, nil
}

func (r *inMemoryActivityRepository) ListActivities(_ context.Context, page, pageSize int) ([]db_models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset := (page - 1) * pageSize
	if offset >= len(r.order) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(r.order) {
		end = len(r.order)
	}
	out := make([]db_models.Activity, end-offset)
	copy(out, r.order[offset:end])
	return out, nil
}
