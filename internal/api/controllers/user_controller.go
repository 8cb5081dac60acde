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

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account, optionally with initial roles
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/register [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewUserResponse(user), "User registered successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, user, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{
		Token: token,
		User:  response_models.NewUserResponse(user),
	}, "Login successful")
}

// Me returns the authenticated user.
func (u *UserController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "OK")
}

func (u *UserController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := u.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "OK")
}

func (u *UserController) ListAll(c *gin.Context) {
	users, err := u.userService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponses(users), "OK")
}

func (u *UserController) ListClients(c *gin.Context) {
	users, err := u.userService.ListClients(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponses(users), "OK")
}

func (u *UserController) ListInstructors(c *gin.Context) {
	users, err := u.userService.ListInstructors(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponses(users), "OK")
}

func (u *UserController) ListAdmins(c *gin.Context) {
	users, err := u.userService.ListAdmins(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponses(users), "OK")
}

// EditInfo godoc
// @Summary Edit own profile
// @Description Update first/last name or email of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.EditUserInfoRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Router /users/me [patch]
func (u *UserController) EditInfo(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
		return
	}

	var req request_models.EditUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.EditInfo(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User updated successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a password reset token to the given email if it exists
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /users/forgot-password [post]
func (u *UserController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset message has been sent")
}

// ChangePassword godoc
// @Summary Change password with a reset token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Change password payload"
// @Success 200 {object} utils.APIResponse
// @Router /users/change-password [post]
func (u *UserController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.ChangePassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}

// SetRoles godoc
// @Summary Set a user's roles
// @Description Grant or revoke client/instructor/admin roles for a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.SetRolesRequest true "Roles payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/users/{id}/roles [put]
func (u *UserController) SetRoles(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.SetRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.SetRoles(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "Roles updated successfully")
}
