package request_models

type CreateHealthRecordRequest struct {
	ClientID          string  `json:"clientId" binding:"required,uuid"`
	Weight            float64 `json:"weight" binding:"required,gt=0"`
	Height            float64 `json:"height" binding:"required,gt=0"`
	Pulse             int     `json:"pulse" binding:"required,gt=0"`
	SystolicPressure  int     `json:"systolicPressure" binding:"required,gt=0"`
	DiastolicPressure int     `json:"diastolicPressure" binding:"required,gt=0"`
}
