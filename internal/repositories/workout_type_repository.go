package repositories

import (
	"context"
	"errors"

	"gympoint/internal/models/db_models"

	"gorm.io/gorm"
)

type WorkoutTypeRepository interface {
	Insert(ctx context.Context, wt *db_models.WorkoutType) error
	FindByName(ctx context.Context, name string) (*db_models.WorkoutType, error)
	FindByEmoji(ctx context.Context, emoji string) (*db_models.WorkoutType, error)
	ListAll(ctx context.Context) ([]db_models.WorkoutType, error)
	// Update renames and/or re-icons a type; renames follow through to the
	// schedules referencing the old name.
	Update(ctx context.Context, originalName string, newName, newEmoji *string) (*db_models.WorkoutType, error)
	Delete(ctx context.Context, name string) error
}

type workoutTypeRepository struct {
	db *gorm.DB
}

func NewWorkoutTypeRepository(db *gorm.DB) WorkoutTypeRepository {
	return &workoutTypeRepository{db: db}
}

func (r *workoutTypeRepository) Insert(ctx context.Context, wt *db_models.WorkoutType) error {
	return r.db.WithContext(ctx).Create(wt).Error
}

func (r *workoutTypeRepository) FindByName(ctx context.Context, name string) (*db_models.WorkoutType, error) {
	var wt db_models.WorkoutType
	err := r.db.WithContext(ctx).First(&wt, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wt, nil
}

func (r *workoutTypeRepository) FindByEmoji(ctx context.Context, emoji string) (*db_models.WorkoutType, error) {
	var wt db_models.WorkoutType
	err := r.db.WithContext(ctx).First(&wt, "emoji = ?", emoji).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wt, nil
}

func (r *workoutTypeRepository) ListAll(ctx context.Context) ([]db_models.WorkoutType, error) {
	var types []db_models.WorkoutType
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *workoutTypeRepository) Update(ctx context.Context, originalName string, newName, newEmoji *string) (*db_models.WorkoutType, error) {
	updates := map[string]interface{}{}
	if newName != nil {
		updates["name"] = *newName
	}
	if newEmoji != nil {
		updates["emoji"] = *newEmoji
	}

	finalName := originalName
	if newName != nil {
		finalName = *newName
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&db_models.WorkoutType{}).
				Where("name = ?", originalName).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if newName != nil {
			return tx.Model(&db_models.WeekSchedule{}).
				Where("workout_type_name = ?", originalName).
				UpdateColumn("workout_type_name", *newName).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByName(ctx, finalName)
}

func (r *workoutTypeRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&db_models.WorkoutType{}).Error
}
