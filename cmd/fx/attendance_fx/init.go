package attendance_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAttendanceService, provideAttendanceRepo)

func provideAttendanceRepo(db *gorm.DB) repositories.AttendanceRepository {
	return repositories.NewAttendanceRepository(db)
}

func provideAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	scheduleRepo repositories.ScheduleRepository,
) services.AttendanceService {
	return services.NewAttendanceService(attendanceRepo, scheduleRepo)
}
