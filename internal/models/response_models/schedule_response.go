package response_models

import (
	"time"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
)

type WeekScheduleResponse struct {
	ID              uuid.UUID   `json:"id"`
	InstructorID    uuid.UUID   `json:"instructorId"`
	WorkoutTypeName string      `json:"workoutType"`
	Days            []string    `json:"days"`
	StartDate       time.Time   `json:"startDate"`
	Quota           int         `json:"quota"`
	Price           float64     `json:"price"`
	StudentIDs      []uuid.UUID `json:"studentIds"`
}

func NewWeekScheduleResponse(ws *db_models.WeekSchedule) WeekScheduleResponse {
	students := make([]uuid.UUID, 0, len(ws.Enrollments))
	for _, e := range ws.Enrollments {
		students = append(students, e.ClientID)
	}
	return WeekScheduleResponse{
		ID:              ws.ID,
		InstructorID:    ws.InstructorID,
		WorkoutTypeName: ws.WorkoutTypeName,
		Days:            ws.Days,
		StartDate:       ws.StartDate,
		Quota:           ws.Quota,
		Price:           ws.Price,
		StudentIDs:      students,
	}
}

func NewWeekScheduleResponses(schedules []db_models.WeekSchedule) []WeekScheduleResponse {
	out := make([]WeekScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, NewWeekScheduleResponse(&schedules[i]))
	}
	return out
}

// RemoveReservationResponse distinguishes "removed" from the documented
// silent no-success case where the client simply wasn't enrolled.
type RemoveReservationResponse struct {
	Removed bool `json:"removed"`
}
