package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var allWeekdays = map[Weekday]bool{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}

func ParseWeekday(s string) (Weekday, bool) {
	w := Weekday(s)
	return w, allWeekdays[w]
}

func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// WeekSchedule is a recurring weekly class. Quota counts the remaining open
// seats, so it moves opposite to the enrollment count.
type WeekSchedule struct {
	BaseModel
	InstructorID    uuid.UUID      `gorm:"type:uuid;index" json:"instructorId"`
	WorkoutTypeName string         `gorm:"index" json:"workoutTypeName"`
	Days            pq.StringArray `gorm:"type:text[]" json:"days"`
	StartDate       time.Time      `json:"startDate"`
	Quota           int            `json:"quota"`
	Price           float64        `json:"price"`

	Instructor  *Instructor  `gorm:"foreignKey:InstructorID" json:"-"`
	WorkoutType *WorkoutType `gorm:"foreignKey:WorkoutTypeName;references:Name" json:"-"`
	Enrollments []Enrollment `gorm:"foreignKey:WeekScheduleID" json:"enrollments,omitempty"`
}

func (ws *WeekSchedule) HasDay(day Weekday) bool {
	for _, d := range ws.Days {
		if Weekday(d) == day {
			return true
		}
	}
	return false
}

// Enrollment is one seat taken by a client. Each row is an independent
// occurrence; nothing prevents the same client from holding two.
type Enrollment struct {
	BaseModel
	WeekScheduleID uuid.UUID `gorm:"type:uuid;index" json:"weekScheduleId"`
	ClientID       uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
}
