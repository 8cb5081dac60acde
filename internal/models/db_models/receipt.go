package db_models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaidMonth is a (month, year) pair a receipt covers.
type PaidMonth struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

func PaidMonthOf(t time.Time) PaidMonth {
	return PaidMonth{Month: t.Month(), Year: t.Year()}
}

// Receipt is an immutable payment record. Client email and workout type name
// are snapshots taken at transaction time; later edits to the user or the
// schedule never touch a receipt. CreatedAt is the transaction date.
type Receipt struct {
	BaseModel
	ClientID        uuid.UUID      `gorm:"type:uuid;index" json:"clientId"`
	ClientEmail     string         `json:"clientEmail"`
	WeekScheduleID  uuid.UUID      `gorm:"type:uuid;index" json:"weekScheduleId"`
	WorkoutTypeName string         `json:"workoutTypeName"`
	PaidForMonths   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"paidForMonths"`
	TotalAmount     float64        `json:"totalAmount"`
}

func (r *Receipt) Months() ([]PaidMonth, error) {
	var months []PaidMonth
	if len(r.PaidForMonths) == 0 {
		return months, nil
	}
	if err := json.Unmarshal(r.PaidForMonths, &months); err != nil {
		return nil, err
	}
	return months, nil
}

func (r *Receipt) SetMonths(months []PaidMonth) error {
	raw, err := json.Marshal(months)
	if err != nil {
		return err
	}
	r.PaidForMonths = raw
	return nil
}

// Covers reports whether the receipt includes the given month.
func (r *Receipt) Covers(target PaidMonth) bool {
	months, err := r.Months()
	if err != nil {
		return false
	}
	for _, m := range months {
		if m.Month == target.Month && m.Year == target.Year {
			return true
		}
	}
	return false
}
