package controllers

import (
	"net/http"

	"gympoint/internal/models/request_models"
	"gympoint/internal/models/response_models"
	"gympoint/internal/services"
	"gympoint/pkg/middleware"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleController struct {
	scheduleService services.ScheduleService
}

func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// Create godoc
// @Summary Create a weekly class schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.CreateScheduleRequest true "Schedule payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /schedules [post]
func (s *ScheduleController) Create(c *gin.Context) {
	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ws, err := s.scheduleService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewWeekScheduleResponse(ws), "Schedule created successfully")
}

// Edit godoc
// @Summary Edit a schedule
// @Description Partial update; the whole edit is validated before anything is applied
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.EditScheduleRequest true "Edit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules/{id} [patch]
func (s *ScheduleController) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.EditScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ws, err := s.scheduleService.Edit(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewWeekScheduleResponse(ws), "Schedule updated successfully")
}

// ChangeInstructor godoc
// @Summary Reassign the instructor of a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.ChangeInstructorRequest true "Instructor payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id}/instructor [put]
func (s *ScheduleController) ChangeInstructor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.ChangeInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid instructor id")
		return
	}

	ws, err := s.scheduleService.ChangeInstructor(c.Request.Context(), id, instructorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewWeekScheduleResponse(ws), "Instructor changed successfully")
}

// Remove godoc
// @Summary Delete a schedule
// @Description Fails while any student is still enrolled
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules/{id} [delete]
func (s *ScheduleController) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	if err := s.scheduleService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}

func (s *ScheduleController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	ws, err := s.scheduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewWeekScheduleResponse(ws), "OK")
}

func (s *ScheduleController) ListAll(c *gin.Context) {
	schedules, err := s.scheduleService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewWeekScheduleResponses(schedules), "OK")
}

// AddStudent godoc
// @Summary Enroll a client in a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.AddStudentRequest true "Enrollment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules/{id}/students [post]
func (s *ScheduleController) AddStudent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client id")
		return
	}

	ws, err := s.scheduleService.AddStudent(c.Request.Context(), id, clientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewWeekScheduleResponse(ws), "Student enrolled successfully")
}

// RemoveReservation godoc
// @Summary Remove the caller's reservation from a schedule
// @Description Removes one enrollment occurrence; succeeds quietly if none exists
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id}/reservation [delete]
func (s *ScheduleController) RemoveReservation(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	removed, err := s.scheduleService.RemoveReservation(c.Request.Context(), id, actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.RemoveReservationResponse{Removed: removed}, "OK")
}

// SendAnnouncement godoc
// @Summary Mail an announcement to every enrolled student
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.AnnouncementRequest true "Announcement payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /schedules/{id}/announcements [post]
func (s *ScheduleController) SendAnnouncement(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.scheduleService.SendAnnouncement(c.Request.Context(), actor, id, req.Subject, req.Message); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Announcement sent successfully")
}
