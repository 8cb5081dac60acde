package response_models

import (
	"time"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
)

type AttendanceRecordResponse struct {
	ID             uuid.UUID                  `json:"id"`
	WeekScheduleID uuid.UUID                  `json:"weekScheduleId"`
	Date           time.Time                  `json:"date"`
	Attendance     []db_models.AttendanceUnit `json:"attendance"`
}

func NewAttendanceRecordResponse(rec *db_models.AttendanceRecord) AttendanceRecordResponse {
	units, _ := rec.Units()
	return AttendanceRecordResponse{
		ID:             rec.ID,
		WeekScheduleID: rec.WeekScheduleID,
		Date:           rec.Date,
		Attendance:     units,
	}
}

func NewAttendanceRecordResponses(records []db_models.AttendanceRecord) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, NewAttendanceRecordResponse(&records[i]))
	}
	return out
}
