package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/internal/models/request_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ScheduleService interface {
	Create(ctx context.Context, req request_models.CreateScheduleRequest) (*db_models.WeekSchedule, error)
	Edit(ctx context.Context, id uuid.UUID, req request_models.EditScheduleRequest) (*db_models.WeekSchedule, error)
	ChangeInstructor(ctx context.Context, id, instructorUserID uuid.UUID) (*db_models.WeekSchedule, error)
	Remove(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.WeekSchedule, error)
	ListAll(ctx context.Context) ([]db_models.WeekSchedule, error)

	AddStudent(ctx context.Context, scheduleID, clientUserID uuid.UUID) (*db_models.WeekSchedule, error)
	RemoveReservation(ctx context.Context, scheduleID uuid.UUID, actor *db_models.User) (bool, error)

	SendAnnouncement(ctx context.Context, actor *db_models.User, scheduleID uuid.UUID, subject, message string) error
}

type scheduleService struct {
	scheduleRepo    repositories.ScheduleRepository
	userRepo        repositories.UserRepository
	workoutTypeRepo repositories.WorkoutTypeRepository
	mail            MailService
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	workoutTypeRepo repositories.WorkoutTypeRepository,
	mail MailService,
) ScheduleService {
	return &scheduleService{
		scheduleRepo:    scheduleRepo,
		userRepo:        userRepo,
		workoutTypeRepo: workoutTypeRepo,
		mail:            mail,
	}
}

func parseWeekdays(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, utils.ValidationError("At least one weekday is required.")
	}
	days := make([]string, 0, len(names))
	for _, name := range names {
		day, ok := db_models.ParseWeekday(name)
		if !ok {
			return nil, utils.ValidationError("%q is not a weekday.", name)
		}
		days = append(days, string(day))
	}
	return days, nil
}

func parseStartDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, utils.ValidationError("startDate is not a valid ISO-8601 datetime.")
	}
	return t, nil
}

// resolveInstructor maps an instructor's user id to the instructor
// sub-identity schedules are keyed by.
func (s *scheduleService) resolveInstructor(ctx context.Context, userID uuid.UUID) (*db_models.Instructor, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}
	if !user.IsInstructor() {
		return nil, utils.ValidationError("User is not an instructor.")
	}
	return user.Instructor, nil
}

func (s *scheduleService) Create(ctx context.Context, req request_models.CreateScheduleRequest) (*db_models.WeekSchedule, error) {
	days, err := parseWeekdays(req.Days)
	if err != nil {
		return nil, err
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		return nil, utils.ValidationError("instructorId is not a valid id.")
	}
	instructor, err := s.resolveInstructor(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	workoutType, err := s.workoutTypeRepo.FindByName(ctx, req.WorkoutType)
	if err != nil {
		return nil, err
	}
	if workoutType == nil {
		return nil, utils.NotFoundError("Workout type not found.")
	}

	ws := &db_models.WeekSchedule{
		InstructorID:    instructor.ID,
		WorkoutTypeName: workoutType.Name,
		Days:            days,
		StartDate:       startDate,
		Quota:           *req.Quota,
		Price:           req.Price,
	}

	if err := s.scheduleRepo.Insert(ctx, ws); err != nil {
		return nil, err
	}

	return ws, nil
}

// Edit validates every provided field before applying any of them; a single
// invalid field fails the whole mutation with nothing persisted. Only the
// edited columns are written so a concurrent enrollment's quota decrement
// can never be overwritten by a stale read.
func (s *scheduleService) Edit(ctx context.Context, id uuid.UUID, req request_models.EditScheduleRequest) (*db_models.WeekSchedule, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}

	changes := map[string]interface{}{}

	if req.Days != nil {
		days, err := parseWeekdays(*req.Days)
		if err != nil {
			return nil, err
		}
		changes["days"] = pq.StringArray(days)
	}

	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		changes["start_date"] = startDate
	}

	if req.InstructorID != nil {
		instructorID, err := uuid.Parse(*req.InstructorID)
		if err != nil {
			return nil, utils.ValidationError("instructorId is not a valid id.")
		}
		instructor, err := s.resolveInstructor(ctx, instructorID)
		if err != nil {
			return nil, err
		}
		changes["instructor_id"] = instructor.ID
	}

	if req.WorkoutType != nil {
		workoutType, err := s.workoutTypeRepo.FindByName(ctx, *req.WorkoutType)
		if err != nil {
			return nil, err
		}
		if workoutType == nil {
			return nil, utils.NotFoundError("Workout type not found.")
		}
		changes["workout_type_name"] = workoutType.Name
	}

	if req.Quota != nil {
		if *req.Quota < 0 {
			return nil, utils.ValidationError("Quota cannot be negative.")
		}
		changes["quota"] = *req.Quota
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, utils.ValidationError("Price cannot be negative.")
		}
		changes["price"] = *req.Price
	}

	if len(changes) == 0 {
		return ws, nil
	}

	// The quota floor is enforced against the live enrollment count inside
	// the update transaction.
	ok, err := s.scheduleRepo.UpdateFields(ctx, ws.ID, changes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.ConflictError("Quota cannot be lower than the number of enrolled students.")
	}

	return s.scheduleRepo.FindByID(ctx, id)
}

func (s *scheduleService) ChangeInstructor(ctx context.Context, id, instructorUserID uuid.UUID) (*db_models.WeekSchedule, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}

	instructor, err := s.resolveInstructor(ctx, instructorUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.scheduleRepo.UpdateFields(ctx, ws.ID, map[string]interface{}{
		"instructor_id": instructor.ID,
	}); err != nil {
		return nil, err
	}

	return s.scheduleRepo.FindByID(ctx, id)
}

func (s *scheduleService) Remove(ctx context.Context, id uuid.UUID) error {
	ws, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ws == nil {
		return utils.NotFoundError("WeekSchedule not found.")
	}

	enrolled, err := s.scheduleRepo.CountEnrollments(ctx, ws.ID)
	if err != nil {
		return err
	}
	if enrolled > 0 {
		return utils.ConflictError("WeekSchedule still has enrolled students.")
	}

	return s.scheduleRepo.Delete(ctx, ws)
}

func (s *scheduleService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.WeekSchedule, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}
	return ws, nil
}

func (s *scheduleService) ListAll(ctx context.Context) ([]db_models.WeekSchedule, error) {
	return s.scheduleRepo.ListAll(ctx)
}

func (s *scheduleService) AddStudent(ctx context.Context, scheduleID, clientUserID uuid.UUID) (*db_models.WeekSchedule, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}
	if ws.Quota == 0 {
		return nil, utils.ConflictError("WeekSchedule is already full.")
	}

	clientUser, err := s.userRepo.FindByID(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if clientUser == nil {
		return nil, utils.NotFoundError("Client not found.")
	}
	if !clientUser.IsClient() {
		return nil, utils.ValidationError("User is not a client.")
	}

	enrolled, err := s.scheduleRepo.Enroll(ctx, ws.ID, clientUser.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		// Lost the seat to a concurrent enrollment.
		return nil, utils.ConflictError("WeekSchedule is already full.")
	}

	return s.scheduleRepo.FindByID(ctx, scheduleID)
}

// RemoveReservation releases the actor's own seat. Not being enrolled is a
// silent no-success, not an error.
func (s *scheduleService) RemoveReservation(ctx context.Context, scheduleID uuid.UUID, actor *db_models.User) (bool, error) {
	ws, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return false, err
	}
	if ws == nil {
		return false, utils.NotFoundError("WeekSchedule does not exist.")
	}

	return s.scheduleRepo.RemoveReservation(ctx, ws.ID, actor.ID)
}

func (s *scheduleService) SendAnnouncement(ctx context.Context, actor *db_models.User, scheduleID uuid.UUID, subject, message string) error {
	ws, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if ws == nil {
		return utils.NotFoundError("WeekSchedule does not exist.")
	}
	if actor.Instructor == nil || ws.InstructorID != actor.Instructor.ID {
		return utils.NotAuthorizedError("WeekSchedule not taught by instructor.")
	}

	if subject == "" {
		subject = fmt.Sprintf("Announcement from %s %s", actor.FirstName, actor.LastName)
	}

	for _, enrollment := range ws.Enrollments {
		student, err := s.userRepo.FindByID(ctx, enrollment.ClientID)
		if err != nil {
			return err
		}
		if student == nil {
			log.Printf("Enrollment %s points at missing user %s", enrollment.ID, enrollment.ClientID)
			continue
		}
		if err := s.mail.SendNotification(student.Email, subject, message); err != nil {
			return err
		}
	}

	return nil
}
