package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// LTAPaymentSvcFacade records and reads payments against air waybills.
type LTAPaymentSvcFacade interface {
	// RecordPayment validates the amount against the LTA's remaining
	// balance, persists the payment (crediting the cash box in the same
	// transaction when one is given) and best-effort posts the treasury
	// journal entry.
	RecordPayment(ctx context.Context, ltaID string, req dto.RecordPaymentRequest, userID string) (*dto.PaymentSummary, error)

	ListPaymentsByLTA(ctx context.Context, ltaID string) ([]domain.LTAPayment, error)
}
