package controllers

import (
	"net/http"

	"gympoint/internal/models/request_models"
	"gympoint/internal/models/response_models"
	"gympoint/internal/services"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttendanceController struct {
	attendanceService services.AttendanceService
}

func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// CreateRecord godoc
// @Summary Open today's attendance record for a schedule
// @Description Snapshots the current roster, everyone marked attended
// @Tags Attendance
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules/{id}/attendance [post]
func (a *AttendanceController) CreateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	rec, err := a.attendanceService.CreateRecord(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewAttendanceRecordResponse(rec), "Attendance record created successfully")
}

// SetAssisted godoc
// @Summary Mark students as present in today's record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.SetAttendanceRequest true "Student ids"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id}/attendance/assisted [put]
func (a *AttendanceController) SetAssisted(c *gin.Context) {
	a.setAttendance(c, true)
}

// SetNotAssisted godoc
// @Summary Mark students as absent in today's record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.SetAttendanceRequest true "Student ids"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id}/attendance/not-assisted [put]
func (a *AttendanceController) SetNotAssisted(c *gin.Context) {
	a.setAttendance(c, false)
}

func (a *AttendanceController) setAttendance(c *gin.Context, attended bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	studentIDs := make([]uuid.UUID, 0, len(req.StudentIDs))
	for _, raw := range req.StudentIDs {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid student id")
			return
		}
		studentIDs = append(studentIDs, parsed)
	}

	rec, err := a.attendanceService.SetAttendance(c.Request.Context(), id, studentIDs, attended)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAttendanceRecordResponse(rec), "Attendance updated successfully")
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param weekScheduleID query string false "Filter by schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /attendance [get]
func (a *AttendanceController) List(c *gin.Context) {
	var scheduleID *uuid.UUID
	if raw := c.Query("weekScheduleID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
			return
		}
		scheduleID = &parsed
	}

	records, err := a.attendanceService.List(c.Request.Context(), scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAttendanceRecordResponses(records), "OK")
}
