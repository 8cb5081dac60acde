package request_models

type SetAttendanceRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1,dive,uuid"`
}
