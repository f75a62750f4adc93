package learningfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
	mem "tripsmith/pkg/memcache"
)

var Module = fx.Provide(
	provideWeightRepo, provideSnapshotCache, provideLearningService)

func provideWeightRepo(db *gorm.DB) repositories.WeightRepository {
	if db == nil {
		return repositories.NewInMemoryWeightRepository()
	}
	return repositories.NewWeightRepository(db)
}

func provideSnapshotCache() *mem.WeightSnapshotCache {
	return mem.NewWeightSnapshotCache()
}

func provideLearningService(
	weightRepo repositories.WeightRepository,
	activityRepo repositories.ActivityRepository,
	cache *mem.WeightSnapshotCache,
) services.LearningServiceInterface {
	return services.NewLearningService(weightRepo, activityRepo, cache)
}
