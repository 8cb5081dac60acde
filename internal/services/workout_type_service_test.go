package services

import (
	"context"
	"testing"

	"gympoint/internal/models/db_models"
	"gympoint/internal/models/request_models"
	"gympoint/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutTypeServiceForTest() (WorkoutTypeService, *fakeWorkoutTypeRepo, *fakeScheduleRepo) {
	workoutTypeRepo := newFakeWorkoutTypeRepo()
	scheduleRepo := newFakeScheduleRepo()
	return NewWorkoutTypeService(workoutTypeRepo, scheduleRepo), workoutTypeRepo, scheduleRepo
}

func TestCreateWorkoutType(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()

	wt, err := svc.Create(context.Background(), request_models.CreateWorkoutTypeRequest{
		Name: "Yoga", Emoji: "🧘",
	})

	require.NoError(t, err)
	assert.Equal(t, "Yoga", wt.Name)
	assert.Equal(t, "🧘", wt.Emoji)
	assert.NotNil(t, repo.types["Yoga"])
}

func TestCreateWorkoutTypeRejectsNonEmoji(t *testing.T) {
	svc, _, _ := newWorkoutTypeServiceForTest()

	_, err := svc.Create(context.Background(), request_models.CreateWorkoutTypeRequest{
		Name: "Yoga", Emoji: "yoga",
	})

	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestCreateWorkoutTypeDuplicateName(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}

	_, err := svc.Create(context.Background(), request_models.CreateWorkoutTypeRequest{
		Name: "Yoga", Emoji: "🤸",
	})

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestCreateWorkoutTypeDuplicateEmoji(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}

	_, err := svc.Create(context.Background(), request_models.CreateWorkoutTypeRequest{
		Name: "Meditation", Emoji: "🧘",
	})

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestEditWorkoutTypeRename(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}

	wt, err := svc.Edit(context.Background(), "Yoga", request_models.EditWorkoutTypeRequest{
		NewName: ptr("Pilates"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Pilates", wt.Name)
	assert.Equal(t, "🧘", wt.Emoji)
	assert.Nil(t, repo.types["Yoga"])
	assert.NotNil(t, repo.types["Pilates"])
}

func TestEditWorkoutTypeNoopFields(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}

	// Re-submitting the current values is not a conflict.
	wt, err := svc.Edit(context.Background(), "Yoga", request_models.EditWorkoutTypeRequest{
		NewName:  ptr("Yoga"),
		NewEmoji: ptr("🧘"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Yoga", wt.Name)
}

func TestDeleteWorkoutTypeReferencedBySchedules(t *testing.T) {
	svc, repo, scheduleRepo := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}
	scheduleRepo.add(&db_models.WeekSchedule{WorkoutTypeName: "Yoga"})

	err := svc.Delete(context.Background(), "Yoga")

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.NotNil(t, repo.types["Yoga"])
}

func TestDeleteWorkoutType(t *testing.T) {
	svc, repo, _ := newWorkoutTypeServiceForTest()
	repo.types["Yoga"] = &db_models.WorkoutType{Name: "Yoga", Emoji: "🧘"}

	require.NoError(t, svc.Delete(context.Background(), "Yoga"))
	assert.Nil(t, repo.types["Yoga"])
}
