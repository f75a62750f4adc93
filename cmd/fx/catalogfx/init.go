package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
	"tripsmith/internal/staticdata"
)

var Module = fx.Provide(
	provideActivityRepo, provideCatalogService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	if db == nil {
		return repositories.NewInMemoryActivityRepository(staticdata.SampleActivities())
	}
	return repositories.NewActivityRepository(db)
}

func provideCatalogService(activityRepo repositories.ActivityRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(activityRepo)
}
