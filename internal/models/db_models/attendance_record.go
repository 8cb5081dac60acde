package db_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceUnit struct {
	StudentID uuid.UUID `json:"studentId"`
	Attended  bool      `json:"attended"`
}

// AttendanceRecord is the per-day snapshot of a schedule's roster. Units are
// fixed at creation time; only the attended flags change afterwards.
type AttendanceRecord struct {
	BaseModel
	WeekScheduleID uuid.UUID      `gorm:"type:uuid;index:idx_attendance_schedule_date,unique" json:"weekScheduleId"`
	Date           time.Time      `gorm:"index:idx_attendance_schedule_date,unique" json:"date"`
	Attendance     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"attendance"`
}

func (a *AttendanceRecord) Units() ([]AttendanceUnit, error) {
	var units []AttendanceUnit
	if len(a.Attendance) == 0 {
		return units, nil
	}
	if err := json.Unmarshal(a.Attendance, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (a *AttendanceRecord) SetUnits(units []AttendanceUnit) error {
	raw, err := json.Marshal(units)
	if err != nil {
		return err
	}
	a.Attendance = raw
	return nil
}
