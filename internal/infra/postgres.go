package infra

import (
	"log"
	"os"

	"gympoint/internal/models/db_models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError is required so unique-index violations surface as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Client{},
		&db_models.Instructor{},
		&db_models.Admin{},
		&db_models.WorkoutType{},
		&db_models.WeekSchedule{},
		&db_models.Enrollment{},
		&db_models.Receipt{},
		&db_models.AttendanceRecord{},
		&db_models.HealthRecord{},
		&db_models.ForgotPasswordToken{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
