package main

import (
	"context"
	"log"
	"os"

	"gympoint/cmd/fx/attendance_fx"
	"gympoint/cmd/fx/controllers_fx"
	"gympoint/cmd/fx/db_fx"
	"gympoint/cmd/fx/health_records_fx"
	"gympoint/cmd/fx/mail_fx"
	"gympoint/cmd/fx/payments_fx"
	"gympoint/cmd/fx/schedules_fx"
	"gympoint/cmd/fx/users_fx"
	"gympoint/cmd/fx/workout_types_fx"
	"gympoint/internal/api/controllers"
	"gympoint/internal/repositories"
	"gympoint/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		users_fx.Module,
		workout_types_fx.Module,
		schedules_fx.Module,
		payments_fx.Module,
		attendance_fx.Module,
		health_records_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userRepo repositories.UserRepository,
	userController *controllers.UserController,
	workoutTypeController *controllers.WorkoutTypeController,
	scheduleController *controllers.ScheduleController,
	paymentController *controllers.PaymentController,
	attendanceController *controllers.AttendanceController,
	healthRecordController *controllers.HealthRecordController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userRepo,
		userController, workoutTypeController, scheduleController,
		paymentController, attendanceController, healthRecordController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userRepo repositories.UserRepository,
	userController *controllers.UserController,
	workoutTypeController *controllers.WorkoutTypeController,
	scheduleController *controllers.ScheduleController,
	paymentController *controllers.PaymentController,
	attendanceController *controllers.AttendanceController,
	healthRecordController *controllers.HealthRecordController) {

	auth := middleware.JWTAuthMiddleware(userRepo)
	adminOnly := middleware.RequireAdmin()
	instructorOnly := middleware.RequireInstructor()
	clientOnly := middleware.RequireClient()

	users := r.Group("/users")
	users.POST("/register", userController.Register)
	users.POST("/login", userController.Login)
	users.POST("/forgot-password", userController.ForgotPassword)
	users.POST("/change-password", userController.ChangePassword)
	users.GET("/me", auth, userController.Me)
	users.PATCH("/me", auth, userController.EditInfo)
	users.GET("", auth, userController.ListAll)
	users.GET("/:id", auth, userController.GetByID)

	r.GET("/clients", auth, userController.ListClients)
	r.GET("/instructors", auth, userController.ListInstructors)
	r.GET("/admins", auth, adminOnly, userController.ListAdmins)

	admin := r.Group("/admin", auth, adminOnly)
	admin.PUT("/users/:id/roles", userController.SetRoles)
	admin.POST("/payments", paymentController.SubmitPayment)

	workoutTypes := r.Group("/workout-types", auth)
	workoutTypes.GET("", workoutTypeController.ListAll)
	workoutTypes.POST("", adminOnly, workoutTypeController.Create)
	workoutTypes.PATCH("/:name", adminOnly, workoutTypeController.Edit)
	workoutTypes.DELETE("/:name", adminOnly, workoutTypeController.Delete)

	schedules := r.Group("/schedules", auth)
	schedules.GET("", scheduleController.ListAll)
	schedules.GET("/:id", scheduleController.GetByID)
	schedules.POST("", adminOnly, scheduleController.Create)
	schedules.PATCH("/:id", adminOnly, scheduleController.Edit)
	schedules.PUT("/:id/instructor", adminOnly, scheduleController.ChangeInstructor)
	schedules.DELETE("/:id", adminOnly, scheduleController.Remove)
	schedules.POST("/:id/students", adminOnly, scheduleController.AddStudent)
	schedules.DELETE("/:id/reservation", clientOnly, scheduleController.RemoveReservation)
	schedules.POST("/:id/announcements", instructorOnly, scheduleController.SendAnnouncement)

	schedules.POST("/:id/attendance", instructorOnly, attendanceController.CreateRecord)
	schedules.PUT("/:id/attendance/assisted", instructorOnly, attendanceController.SetAssisted)
	schedules.PUT("/:id/attendance/not-assisted", instructorOnly, attendanceController.SetNotAssisted)
	r.GET("/attendance", auth, instructorOnly, attendanceController.List)

	r.GET("/payments/has-paid", auth, paymentController.HasPaid)
	r.GET("/receipts", auth, adminOnly, paymentController.ListReceipts)

	healthRecords := r.Group("/health-records", auth)
	healthRecords.POST("", instructorOnly, healthRecordController.Create)
	healthRecords.GET("", healthRecordController.ListByClient)
}
