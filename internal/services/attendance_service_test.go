package services

import (
	"context"
	"testing"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceFixture struct {
	svc            *attendanceService
	scheduleRepo   *fakeScheduleRepo
	attendanceRepo *fakeAttendanceRepo
	schedule       *db_models.WeekSchedule
	students       []uuid.UUID
}

// newAttendanceFixture pins the clock to Saturday 2026-08-15 and builds a
// Saturday schedule with two enrolled students.
func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()

	scheduleRepo := newFakeScheduleRepo()
	attendanceRepo := newFakeAttendanceRepo()

	svc := NewAttendanceService(attendanceRepo, scheduleRepo).(*attendanceService)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC) }

	schedule := scheduleRepo.add(&db_models.WeekSchedule{
		Days:      []string{"Saturday"},
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Quota:     5,
	})
	students := []uuid.UUID{uuid.New(), uuid.New()}
	for _, id := range students {
		_, err := scheduleRepo.Enroll(context.Background(), schedule.ID, id)
		require.NoError(t, err)
	}

	return &attendanceFixture{
		svc:            svc,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		schedule:       schedule,
		students:       students,
	}
}

func TestCreateRecordSnapshotsRoster(t *testing.T) {
	f := newAttendanceFixture(t)

	rec, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)

	require.NoError(t, err)
	units, err := rec.Units()
	require.NoError(t, err)
	require.Len(t, units, 2)
	for i, unit := range units {
		assert.Equal(t, f.students[i], unit.StudentID)
		assert.True(t, unit.Attended)
	}
}

func TestCreateRecordBeforeStartDate(t *testing.T) {
	f := newAttendanceFixture(t)
	f.schedule.StartDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestCreateRecordOnWrongWeekday(t *testing.T) {
	f := newAttendanceFixture(t)
	f.schedule.Days = []string{"Monday"}

	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestCreateRecordTwiceSameDay(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)
	require.NoError(t, err)
	_, err = f.svc.CreateRecord(context.Background(), f.schedule.ID)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Len(t, f.attendanceRepo.records, 1)
}

func TestSetAttendanceMarksAbsent(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)
	require.NoError(t, err)

	rec, err := f.svc.SetAttendance(context.Background(), f.schedule.ID, []uuid.UUID{f.students[0]}, false)

	require.NoError(t, err)
	units, err := rec.Units()
	require.NoError(t, err)
	assert.False(t, units[0].Attended)
	assert.True(t, units[1].Attended)
}

func TestSetAttendanceUnknownStudentChangesNothing(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)
	require.NoError(t, err)

	_, err = f.svc.SetAttendance(context.Background(), f.schedule.ID, []uuid.UUID{f.students[0], uuid.New()}, false)

	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	// The known student was listed first but must remain untouched.
	units, err := f.attendanceRepo.records[0].Units()
	require.NoError(t, err)
	assert.True(t, units[0].Attended)
	assert.True(t, units[1].Attended)
}

func TestSetAttendanceWithoutRecord(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.SetAttendance(context.Background(), f.schedule.ID, f.students, false)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestListFiltersBySchedule(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.CreateRecord(context.Background(), f.schedule.ID)
	require.NoError(t, err)

	other := f.scheduleRepo.add(&db_models.WeekSchedule{
		Days:      []string{"Saturday"},
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	_, err = f.svc.CreateRecord(context.Background(), other.ID)
	require.NoError(t, err)

	all, err := f.svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := f.svc.List(context.Background(), &f.schedule.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, f.schedule.ID, filtered[0].WeekScheduleID)
}
