package controllers_fx

import (
	"gympoint/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewWorkoutTypeController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewAttendanceController),
	fx.Provide(controllers.NewHealthRecordController))
