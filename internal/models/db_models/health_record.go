package db_models

import "github.com/google/uuid"

// HealthRecord is a set of measurements an instructor takes for a client.
// ClientID holds the client's user id and TakenByID the instructor
// sub-identity id. Both are plain columns without associations so the
// history survives role demotions in either direction.
type HealthRecord struct {
	BaseModel
	ClientID  uuid.UUID  `gorm:"type:uuid;index" json:"clientId"`
	TakenByID *uuid.UUID `gorm:"type:uuid" json:"takenById,omitempty"`

	// Weight in kilograms, height in meters.
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	// Pulse in bpm; pressures in mmHg (120/80 -> systolic 120, diastolic 80).
	Pulse             int `json:"pulse"`
	SystolicPressure  int `json:"systolicPressure"`
	DiastolicPressure int `json:"diastolicPressure"`
}
