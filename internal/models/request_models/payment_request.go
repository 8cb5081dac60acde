package request_models

type SubmitPaymentRequest struct {
	WeekScheduleID string `json:"weekScheduleId" binding:"required,uuid"`
	ClientID       string `json:"clientId" binding:"required,uuid"`
	// Number of consecutive months to pay for, starting with the current one.
	// Defaults to 1.
	Months *int `json:"months" binding:"omitempty,min=1"`
}
