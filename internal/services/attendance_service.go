package services

import (
	"context"
	"errors"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceService interface {
	// CreateRecord snapshots today's roster for the schedule, every student
	// marked attended. At most one record exists per schedule per day.
	CreateRecord(ctx context.Context, scheduleID uuid.UUID) (*db_models.AttendanceRecord, error)
	// SetAttendance flips the attended flag for the given students in
	// today's record. All ids are validated before anything is written.
	SetAttendance(ctx context.Context, scheduleID uuid.UUID, studentIDs []uuid.UUID, attended bool) (*db_models.AttendanceRecord, error)
	List(ctx context.Context, scheduleID *uuid.UUID) ([]db_models.AttendanceRecord, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	scheduleRepo   repositories.ScheduleRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	scheduleRepo repositories.ScheduleRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		now:            time.Now,
	}
}

func (s *attendanceService) CreateRecord(ctx context.Context, scheduleID uuid.UUID) (*db_models.AttendanceRecord, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}

	today := utils.DateOnly(s.now())

	if today.Before(utils.DateOnly(ws.StartDate)) {
		return nil, utils.ConflictError("WeekSchedule hasn't started yet.")
	}
	if !ws.HasDay(db_models.WeekdayOf(today)) {
		return nil, utils.ConflictError("AttendanceRecords can only be created on one of the WeekSchedule's days.")
	}

	existing, err := s.attendanceRepo.FindByScheduleAndDate(ctx, ws.ID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("AttendanceRecord has already been created for today.")
	}

	units := make([]db_models.AttendanceUnit, 0, len(ws.Enrollments))
	for _, enrollment := range ws.Enrollments {
		units = append(units, db_models.AttendanceUnit{
			StudentID: enrollment.ClientID,
			Attended:  true,
		})
	}

	record := &db_models.AttendanceRecord{
		WeekScheduleID: ws.ID,
		Date:           today,
	}
	if err := record.SetUnits(units); err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.Insert(ctx, record); err != nil {
		// The unique (schedule, date) index backstops a concurrent create.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ConflictError("AttendanceRecord has already been created for today.")
		}
		return nil, err
	}

	return record, nil
}

func (s *attendanceService) SetAttendance(ctx context.Context, scheduleID uuid.UUID, studentIDs []uuid.UUID, attended bool) (*db_models.AttendanceRecord, error) {
	today := utils.DateOnly(s.now())

	record, err := s.attendanceRepo.FindByScheduleAndDate(ctx, scheduleID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, utils.ConflictError("No AttendanceRecord has been created for today. Create an AttendanceRecord first.")
	}

	units, err := record.Units()
	if err != nil {
		return nil, err
	}

	index := make(map[uuid.UUID]int, len(units))
	for i, unit := range units {
		index[unit.StudentID] = i
	}

	// Validate every id before mutating anything.
	for _, id := range studentIDs {
		if _, ok := index[id]; !ok {
			return nil, utils.NotFoundError("Student %s is not part of today's AttendanceRecord.", id)
		}
	}

	for _, id := range studentIDs {
		units[index[id]].Attended = attended
	}

	if err := record.SetUnits(units); err != nil {
		return nil, err
	}
	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *attendanceService) List(ctx context.Context, scheduleID *uuid.UUID) ([]db_models.AttendanceRecord, error) {
	if scheduleID != nil {
		return s.attendanceRepo.ListBySchedule(ctx, *scheduleID)
	}
	return s.attendanceRepo.ListAll(ctx)
}
