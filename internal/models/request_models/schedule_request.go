package request_models

type CreateScheduleRequest struct {
	// Weekday names ("Monday".."Sunday").
	Days []string `json:"days" binding:"required,min=1"`
	// ISO-8601 datetime string.
	StartDate    string  `json:"startDate" binding:"required"`
	InstructorID string  `json:"instructorId" binding:"required,uuid"`
	WorkoutType  string  `json:"workoutType" binding:"required"`
	Quota        *int    `json:"quota" binding:"required,min=0"`
	Price        float64 `json:"price" binding:"min=0"`
}

// EditScheduleRequest is a partial update; nil fields stay untouched. The
// whole edit is validated before anything is applied.
type EditScheduleRequest struct {
	Days         *[]string `json:"days"`
	StartDate    *string   `json:"startDate"`
	InstructorID *string   `json:"instructorId" binding:"omitempty,uuid"`
	WorkoutType  *string   `json:"workoutType"`
	Quota        *int      `json:"quota"`
	Price        *float64  `json:"price"`
}

type ChangeInstructorRequest struct {
	InstructorID string `json:"instructorId" binding:"required,uuid"`
}

type AddStudentRequest struct {
	ClientID string `json:"clientId" binding:"required,uuid"`
}

type AnnouncementRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
