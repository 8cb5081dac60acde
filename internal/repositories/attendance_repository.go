package repositories

import (
	"context"
	"errors"
	"time"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Insert(ctx context.Context, rec *db_models.AttendanceRecord) error
	Save(ctx context.Context, rec *db_models.AttendanceRecord) error
	FindByScheduleAndDate(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*db_models.AttendanceRecord, error)
	ListAll(ctx context.Context) ([]db_models.AttendanceRecord, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]db_models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Insert(ctx context.Context, rec *db_models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *attendanceRepository) Save(ctx context.Context, rec *db_models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *attendanceRepository) FindByScheduleAndDate(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*db_models.AttendanceRecord, error) {
	var rec db_models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("week_schedule_id = ? AND date = ?", scheduleID, date).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) ListAll(ctx context.Context) ([]db_models.AttendanceRecord, error) {
	var records []db_models.AttendanceRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]db_models.AttendanceRecord, error) {
	var records []db_models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("week_schedule_id = ?", scheduleID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
