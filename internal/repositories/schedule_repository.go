package repositories

import (
	"context"
	"errors"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, ws *db_models.WeekSchedule) error
	// UpdateFields persists only the given columns, leaving everything else
	// (notably a concurrently moving quota) untouched. When "quota" is among
	// the changes its new value is re-checked against the live enrollment
	// count inside the transaction; on violation nothing is written and
	// false is returned.
	UpdateFields(ctx context.Context, scheduleID uuid.UUID, changes map[string]interface{}) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.WeekSchedule, error)
	ListAll(ctx context.Context) ([]db_models.WeekSchedule, error)
	Delete(ctx context.Context, ws *db_models.WeekSchedule) error

	CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int64, error)
	CountByWorkoutType(ctx context.Context, name string) (int64, error)
	CountEnrollments(ctx context.Context, scheduleID uuid.UUID) (int64, error)
	IsEnrolled(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error)

	// Enroll takes one seat atomically. Returns false without error when the
	// quota is exhausted.
	Enroll(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error)
	// RemoveReservation releases one occurrence of the client's enrollment.
	// Returns false without error when the client isn't enrolled.
	RemoveReservation(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Insert(ctx context.Context, ws *db_models.WeekSchedule) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *scheduleRepository) UpdateFields(ctx context.Context, scheduleID uuid.UUID, changes map[string]interface{}) (bool, error) {
	ok := true

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if quota, has := changes["quota"]; has {
			var enrolled int64
			err := tx.Model(&db_models.Enrollment{}).
				Where("week_schedule_id = ?", scheduleID).
				Count(&enrolled).Error
			if err != nil {
				return err
			}
			if int64(quota.(int)) < enrolled {
				ok = false
				return nil
			}
		}

		return tx.Model(&db_models.WeekSchedule{}).
			Where("id = ?", scheduleID).
			Updates(changes).Error
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.WeekSchedule, error) {
	var ws db_models.WeekSchedule
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		First(&ws, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ws, nil
}

func (r *scheduleRepository) ListAll(ctx context.Context) ([]db_models.WeekSchedule, error) {
	var schedules []db_models.WeekSchedule
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, ws *db_models.WeekSchedule) error {
	return r.db.WithContext(ctx).Delete(ws).Error
}

func (r *scheduleRepository) CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WeekSchedule{}).
		Where("instructor_id = ?", instructorID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) CountByWorkoutType(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WeekSchedule{}).
		Where("workout_type_name = ?", name).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) CountEnrollments(ctx context.Context, scheduleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Enrollment{}).
		Where("week_schedule_id = ?", scheduleID).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepository) IsEnrolled(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Enrollment{}).
		Where("week_schedule_id = ? AND client_id = ?", scheduleID, clientID).
		Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) Enroll(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	enrolled := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarded decrement doubles as the full-class check; a concurrent
		// enrollment can never push the quota below zero.
		res := tx.Model(&db_models.WeekSchedule{}).
			Where("id = ? AND quota > 0", scheduleID).
			UpdateColumn("quota", gorm.Expr("quota - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		enrollment := db_models.Enrollment{
			WeekScheduleID: scheduleID,
			ClientID:       clientID,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		enrolled = true
		return nil
	})

	return enrolled, err
}

func (r *scheduleRepository) RemoveReservation(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	removed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment db_models.Enrollment
		err := tx.
			Where("week_schedule_id = ? AND client_id = ?", scheduleID, clientID).
			Order("created_at").
			First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Unscoped().Delete(&enrollment).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.WeekSchedule{}).
			Where("id = ?", scheduleID).
			UpdateColumn("quota", gorm.Expr("quota + 1"))
		if res.Error != nil {
			return res.Error
		}

		removed = true
		return nil
	})

	return removed, err
}
