package db_models

// Adjustment kinds for learned weights.
const (
	WeightKindCategory = "category"
	WeightKindInterest = "interest"
)

// WeightAdjustment is one learned scoring nudge, keyed by category or
// interest tag. Values are clamped by the weight repository, not here.
type WeightAdjustment struct {
	BaseModel
	Kind  string  `gorm:"uniqueIndex:idx_weight_kind_key"`
	Key   string  `gorm:"uniqueIndex:idx_weight_kind_key"`
	Value float64
}
