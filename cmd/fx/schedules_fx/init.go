package schedules_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideScheduleService, provideScheduleRepo)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	workoutTypeRepo repositories.WorkoutTypeRepository,
	mailService services.MailService,
) services.ScheduleService {
	return services.NewScheduleService(scheduleRepo, userRepo, workoutTypeRepo, mailService)
}
