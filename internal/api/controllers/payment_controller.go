package controllers

import (
	"net/http"
	"time"

	"gympoint/internal/models/request_models"
	"gympoint/internal/models/response_models"
	"gympoint/internal/services"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// SubmitPayment godoc
// @Summary Record a payment for a client's enrollment
// @Description Creates one receipt per paid month, all-or-nothing
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPaymentRequest true "Payment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/payments [post]
func (p *PaymentController) SubmitPayment(c *gin.Context) {
	var req request_models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	scheduleID, err := uuid.Parse(req.WeekScheduleID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client id")
		return
	}

	months := 1
	if req.Months != nil {
		months = *req.Months
	}

	receipts, err := p.paymentService.SubmitPayment(c.Request.Context(), scheduleID, clientID, months)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewReceiptResponses(receipts), "Payment recorded successfully")
}

// HasPaid godoc
// @Summary Check whether a client has paid for a month
// @Description Defaults to the current month when monthDate is omitted
// @Tags Payments
// @Produce json
// @Param weekScheduleID query string true "Schedule ID"
// @Param clientID query string true "Client ID"
// @Param monthDate query string false "RFC 3339 datetime inside the target month"
// @Success 200 {object} utils.APIResponse
// @Router /payments/has-paid [get]
func (p *PaymentController) HasPaid(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Query("weekScheduleID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}
	clientID, err := uuid.Parse(c.Query("clientID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client id")
		return
	}

	var monthDate *time.Time
	if raw := c.Query("monthDate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "monthDate is not a valid ISO-8601 datetime")
			return
		}
		monthDate = &parsed
	}

	hasPaid, err := p.paymentService.HasPaidFor(c.Request.Context(), clientID, scheduleID, monthDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.HasPaidResponse{HasPaid: hasPaid}, "OK")
}

// ListReceipts godoc
// @Summary List receipts
// @Tags Payments
// @Produce json
// @Param clientID query string false "Filter by client ID"
// @Success 200 {object} utils.APIResponse
// @Router /receipts [get]
func (p *PaymentController) ListReceipts(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("clientID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid client id")
			return
		}
		clientID = &parsed
	}

	receipts, err := p.paymentService.ListReceipts(c.Request.Context(), clientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewReceiptResponses(receipts), "OK")
}
