package response_models

import (
	"time"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
)

type ReceiptResponse struct {
	ID              uuid.UUID              `json:"id"`
	TransactionDate time.Time              `json:"transactionDate"`
	ClientID        uuid.UUID              `json:"clientId"`
	ClientEmail     string                 `json:"clientEmail"`
	WeekScheduleID  uuid.UUID              `json:"weekScheduleId"`
	WorkoutTypeName string                 `json:"workoutTypeName"`
	PaidForMonths   []db_models.PaidMonth  `json:"paidForMonths"`
	TotalAmount     float64                `json:"totalAmount"`
}

func NewReceiptResponse(r *db_models.Receipt) ReceiptResponse {
	months, _ := r.Months()
	return ReceiptResponse{
		ID:              r.ID,
		TransactionDate: time.Unix(r.CreatedAt, 0),
		ClientID:        r.ClientID,
		ClientEmail:     r.ClientEmail,
		WeekScheduleID:  r.WeekScheduleID,
		WorkoutTypeName: r.WorkoutTypeName,
		PaidForMonths:   months,
		TotalAmount:     r.TotalAmount,
	}
}

func NewReceiptResponses(receipts []db_models.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, NewReceiptResponse(&receipts[i]))
	}
	return out
}

type HasPaidResponse struct {
	HasPaid bool `json:"hasPaid"`
}
