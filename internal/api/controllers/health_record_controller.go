package controllers

import (
	"net/http"

	"gympoint/internal/models/request_models"
	"gympoint/internal/services"
	"gympoint/pkg/middleware"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HealthRecordController struct {
	healthRecordService services.HealthRecordService
}

func NewHealthRecordController(healthRecordService services.HealthRecordService) *HealthRecordController {
	return &HealthRecordController{
		healthRecordService: healthRecordService,
	}
}

// Create godoc
// @Summary Record a health measurement for a client
// @Tags HealthRecords
// @Accept json
// @Produce json
// @Param request body request_models.CreateHealthRecordRequest true "Health record payload"
// @Success 201 {object} utils.APIResponse
// @Router /health-records [post]
func (h *HealthRecordController) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	var req request_models.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.healthRecordService.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, rec, "Health record created successfully")
}

// ListByClient godoc
// @Summary List a client's health records, newest first
// @Tags HealthRecords
// @Produce json
// @Param clientID query string true "Client ID"
// @Success 200 {object} utils.APIResponse
// @Router /health-records [get]
func (h *HealthRecordController) ListByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Query("clientID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client id")
		return
	}

	records, err := h.healthRecordService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "OK")
}
