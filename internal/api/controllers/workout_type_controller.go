package controllers

import (
	"net/http"

	"gympoint/internal/models/request_models"
	"gympoint/internal/services"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutTypeController struct {
	workoutTypeService services.WorkoutTypeService
}

func NewWorkoutTypeController(workoutTypeService services.WorkoutTypeService) *WorkoutTypeController {
	return &WorkoutTypeController{
		workoutTypeService: workoutTypeService,
	}
}

// Create godoc
// @Summary Create a workout type
// @Tags WorkoutTypes
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutTypeRequest true "Workout type payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /workout-types [post]
func (w *WorkoutTypeController) Create(c *gin.Context) {
	var req request_models.CreateWorkoutTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	wt, err := w.workoutTypeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, wt, "Workout type created successfully")
}

// Edit godoc
// @Summary Edit a workout type
// @Tags WorkoutTypes
// @Accept json
// @Produce json
// @Param name path string true "Workout type name"
// @Param request body request_models.EditWorkoutTypeRequest true "Edit payload"
// @Success 200 {object} utils.APIResponse
// @Router /workout-types/{name} [patch]
func (w *WorkoutTypeController) Edit(c *gin.Context) {
	var req request_models.EditWorkoutTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	wt, err := w.workoutTypeService.Edit(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wt, "Workout type updated successfully")
}

// Delete godoc
// @Summary Delete a workout type
// @Tags WorkoutTypes
// @Produce json
// @Param name path string true "Workout type name"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /workout-types/{name} [delete]
func (w *WorkoutTypeController) Delete(c *gin.Context) {
	if err := w.workoutTypeService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Workout type deleted successfully")
}

func (w *WorkoutTypeController) ListAll(c *gin.Context) {
	types, err := w.workoutTypeService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, types, "OK")
}
