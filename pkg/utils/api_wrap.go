package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates a service error into the HTTP envelope.
// Expected conditions keep their message; everything else becomes a 500.
func HandleServiceError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch appErr.Kind {
	case KindNotAuthenticated:
		RespondError(c, http.StatusUnauthorized, appErr.Message)
	case KindNotAuthorized:
		RespondError(c, http.StatusForbidden, appErr.Message)
	case KindNotFound:
		RespondError(c, http.StatusNotFound, appErr.Message)
	case KindConflict:
		RespondError(c, http.StatusConflict, appErr.Message)
	case KindValidation:
		RespondError(c, http.StatusBadRequest, appErr.Message)
	default:
		log.Printf("Internal error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
