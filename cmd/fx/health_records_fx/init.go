package health_records_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideHealthRecordService, provideHealthRecordRepo)

func provideHealthRecordRepo(db *gorm.DB) repositories.HealthRecordRepository {
	return repositories.NewHealthRecordRepository(db)
}

func provideHealthRecordService(
	healthRepo repositories.HealthRecordRepository,
	userRepo repositories.UserRepository,
) services.HealthRecordService {
	return services.NewHealthRecordService(healthRepo, userRepo)
}
