package dto

import (
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the payload for recording a payment against an LTA.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
	Method    domain.PaymentMethod `json:"method" binding:"required"`
	CashBoxID *string              `json:"cashBoxID,omitempty"`
}

// PaymentSummary is returned after a successful payment. PostingWarning is set
// when the treasury journal entry could not be posted; the payment itself is
// never rolled back for a posting failure.
type PaymentSummary struct {
	PaymentID       string               `json:"paymentID"`
	LTAID           string               `json:"ltaID"`
	Amount          decimal.Decimal      `json:"amount"`
	Method          domain.PaymentMethod `json:"method"`
	Reference       string               `json:"reference"`
	RemainingAmount decimal.Decimal      `json:"remainingAmount"`
	PostingWarning  string               `json:"postingWarning,omitempty"`
}

// PaymentResponse defines the data returned for a stored payment.
type PaymentResponse struct {
	PaymentID   string               `json:"paymentID"`
	LTAID       string               `json:"ltaID"`
	Amount      decimal.Decimal      `json:"amount"`
	PaymentDate time.Time            `json:"paymentDate"`
	Method      domain.PaymentMethod `json:"method"`
	Reference   string               `json:"reference"`
	CashBoxID   *string              `json:"cashBoxID,omitempty"`
}

// ListPaymentsResponse wraps the payments recorded against one LTA.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.LTAPayment to PaymentResponse.
func ToPaymentResponse(p *domain.LTAPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		LTAID:       p.LTAID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Reference:   p.Reference,
		CashBoxID:   p.CashBoxID,
	}
}
