package handlers

import (
	"net/http"

	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.LTAPaymentSvcFacade
}

// registerPaymentRoutes nests the payment routes under an LTA group.
func registerPaymentRoutes(ltas *gin.RouterGroup, paymentService portssvc.LTAPaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	ltas.POST("/:ltaID/payments", h.RecordPayment)
	ltas.GET("/:ltaID/payments", h.ListPayments)
}

// RecordPayment godoc
// @Summary Record a payment against an air waybill
// @Description Records a payment after validating it against the LTA's
// @Description remaining balance. The treasury accounting entry is posted
// @Description best effort; a failure is reported in postingWarning without
// @Description rolling back the payment.
// @Tags payments
// @Accept json
// @Produce json
// @Param ltaID path string true "LTA ID"
// @Param payment body dto.RecordPaymentRequest true "Payment info"
// @Success 201 {object} dto.PaymentSummary
// @Failure 400 {object} ErrorResponse "Amount exceeds remaining balance"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "LTA not payable"
// @Security BearerAuth
// @Router /ltas/{ltaID}/payments [post]
func (h *paymentHandler) RecordPayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	summary, err := h.paymentService.RecordPayment(c.Request.Context(), c.Param("ltaID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// ListPayments godoc
// @Summary List payments for an air waybill
// @Tags payments
// @Produce json
// @Param ltaID path string true "LTA ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ltas/{ltaID}/payments [get]
func (h *paymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByLTA(c.Request.Context(), c.Param("ltaID"))
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: responses})
}
