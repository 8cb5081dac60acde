package services

import (
	"context"

	"gympoint/internal/models/db_models"
	"gympoint/internal/models/request_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"
)

type WorkoutTypeService interface {
	Create(ctx context.Context, req request_models.CreateWorkoutTypeRequest) (*db_models.WorkoutType, error)
	Edit(ctx context.Context, originalName string, req request_models.EditWorkoutTypeRequest) (*db_models.WorkoutType, error)
	Delete(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]db_models.WorkoutType, error)
}

type workoutTypeService struct {
	workoutTypeRepo repositories.WorkoutTypeRepository
	scheduleRepo    repositories.ScheduleRepository
}

func NewWorkoutTypeService(
	workoutTypeRepo repositories.WorkoutTypeRepository,
	scheduleRepo repositories.ScheduleRepository,
) WorkoutTypeService {
	return &workoutTypeService{
		workoutTypeRepo: workoutTypeRepo,
		scheduleRepo:    scheduleRepo,
	}
}

func (s *workoutTypeService) Create(ctx context.Context, req request_models.CreateWorkoutTypeRequest) (*db_models.WorkoutType, error) {
	existing, err := s.workoutTypeRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("A workout type with that name already exists.")
	}

	if !utils.IsEmoji(req.Emoji) {
		return nil, utils.ValidationError("Enter a valid emoji.")
	}

	sameEmoji, err := s.workoutTypeRepo.FindByEmoji(ctx, req.Emoji)
	if err != nil {
		return nil, err
	}
	if sameEmoji != nil {
		return nil, utils.ConflictError("A workout type with the same emoji already exists.")
	}

	wt := &db_models.WorkoutType{Name: req.Name, Emoji: req.Emoji}
	if err := s.workoutTypeRepo.Insert(ctx, wt); err != nil {
		return nil, err
	}

	return wt, nil
}

func (s *workoutTypeService) Edit(ctx context.Context, originalName string, req request_models.EditWorkoutTypeRequest) (*db_models.WorkoutType, error) {
	wt, err := s.workoutTypeRepo.FindByName(ctx, originalName)
	if err != nil {
		return nil, err
	}
	if wt == nil {
		return nil, utils.NotFoundError("Workout type not found.")
	}

	newName := req.NewName
	if newName != nil && *newName != wt.Name {
		taken, err := s.workoutTypeRepo.FindByName(ctx, *newName)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, utils.ConflictError("A workout type with that name already exists.")
		}
	} else {
		newName = nil
	}

	newEmoji := req.NewEmoji
	if newEmoji != nil && *newEmoji != wt.Emoji {
		if !utils.IsEmoji(*newEmoji) {
			return nil, utils.ValidationError("Enter a valid emoji.")
		}
		taken, err := s.workoutTypeRepo.FindByEmoji(ctx, *newEmoji)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, utils.ConflictError("A workout type with the same emoji already exists.")
		}
	} else {
		newEmoji = nil
	}

	if newName == nil && newEmoji == nil {
		return wt, nil
	}

	return s.workoutTypeRepo.Update(ctx, originalName, newName, newEmoji)
}

func (s *workoutTypeService) Delete(ctx context.Context, name string) error {
	wt, err := s.workoutTypeRepo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if wt == nil {
		return utils.NotFoundError("Workout type not found.")
	}

	referenced, err := s.scheduleRepo.CountByWorkoutType(ctx, name)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return utils.ConflictError("Workout type is referenced by existing classes. Remove those classes first.")
	}

	return s.workoutTypeRepo.Delete(ctx, name)
}

func (s *workoutTypeService) ListAll(ctx context.Context) ([]db_models.WorkoutType, error) {
	return s.workoutTypeRepo.ListAll(ctx)
}
