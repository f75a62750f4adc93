package repositories

import (
	"context"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripsmith/internal/models/db_models"
)

// Learned weights are clamped so a run of repeated feedback cannot
// drown out the base score factors.
const (
	WeightFloor   = -15.0
	WeightCeiling = 15.0
)

type WeightRepository interface {
	ListAdjustments(ctx context.Context) ([]db_models.WeightAdjustment, error)
	ApplyDelta(ctx context.Context, kind, key string, delta float64) (float64, error)
}

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) ListAdjustments(ctx context.Context) ([]db_models.WeightAdjustment, error) {
	var adjustments []db_models.WeightAdjustment
	if err := r.db.WithContext(ctx).Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}

// ApplyDelta adds delta to the stored value for (kind, key), inserting
// the row on first sight, and returns the clamped result.
func (r *weightRepository) ApplyDelta(ctx context.Context, kind, key string, delta float64) (float64, error) {
	key = strings.ToLower(key)
	var value float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		adjustment := db_models.WeightAdjustment{Kind: kind, Key: key}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("kind = ? AND key = ?", kind, key).
			FirstOrCreate(&adjustment).Error; err != nil {
			return err
		}

		adjustment.Value = clampWeight(adjustment.Value + delta)
		if err := tx.Model(&adjustment).Update("value", adjustment.Value).Error; err != nil {
			return err
		}
		value = adjustment.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

func clampWeight(v float64) float64 {
	if v < WeightFloor {
		return WeightFloor
	}
	if v > WeightCeiling {
		return WeightCeiling
	}
	return v
}

// inMemoryWeightRepository backs the learning loop when no database is
// configured. Values live for the process lifetime only.
type inMemoryWeightRepository struct {
	mu     sync.RWMutex
	values map[string]float64
}

func NewInMemoryWeightRepository() WeightRepository {
	return &inMemoryWeightRepository{values: make(map[string]float64)}
}

func weightKey(kind, key string) string {
	return kind + "/" + strings.ToLower(key)
}

func (r *inMemoryWeightRepository) ListAdjustments(_ context.Context) ([]db_models.WeightAdjustment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adjustments := make([]db_models.WeightAdjustment, 0, len(r.values))
	for composite, value := range r.values {
		kind, key, _ := strings.Cut(composite, "/")
		adjustments = append(adjustments, db_models.WeightAdjustment{Kind: kind, Key: key, Value: value})
	}
	return adjustments, nil
}

func (r *inMemoryWeightRepository) ApplyDelta(_ context.Context, kind, key string, delta float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	composite := weightKey(kind, key)
	value := clampWeight(r.values[composite] + delta)
	r.values[composite] = value
	return value, nil
}
