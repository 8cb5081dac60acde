package workout_types_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideWorkoutTypeService, provideWorkoutTypeRepo)

func provideWorkoutTypeRepo(db *gorm.DB) repositories.WorkoutTypeRepository {
	return repositories.NewWorkoutTypeRepository(db)
}

func provideWorkoutTypeService(
	workoutTypeRepo repositories.WorkoutTypeRepository,
	scheduleRepo repositories.ScheduleRepository,
) services.WorkoutTypeService {
	return services.NewWorkoutTypeService(workoutTypeRepo, scheduleRepo)
}
