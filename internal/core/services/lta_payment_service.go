package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/FretAfrique/fret_backoffice_app/internal/utils"
	"github.com/google/uuid"
)

// ltaPaymentService implements portssvc.LTAPaymentSvcFacade.
type ltaPaymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	ltaRepo      portsrepo.LTAReader
	cashBoxRepo  portsrepo.CashBoxRepository
	ledgerPoster portssvc.LedgerPosterSvc
}

var _ portssvc.LTAPaymentSvcFacade = (*ltaPaymentService)(nil)

// NewLTAPaymentService creates a new payment service.
func NewLTAPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	ltaRepo portsrepo.LTAReader,
	cashBoxRepo portsrepo.CashBoxRepository,
	ledgerPoster portssvc.LedgerPosterSvc,
) portssvc.LTAPaymentSvcFacade {
	return &ltaPaymentService{
		paymentRepo:  paymentRepo,
		ltaRepo:      ltaRepo,
		cashBoxRepo:  cashBoxRepo,
		ledgerPoster: ledgerPoster,
	}
}

// RecordPayment validates and persists a payment against an LTA. The amount
// may never exceed the remaining balance, where remaining balance is the
// calculated cost minus the sum of payments already recorded. The treasury
// journal entry is posted best-effort afterwards: posting problems surface as
// a warning on the summary, never as a failure of the payment itself.
func (s *ltaPaymentService) RecordPayment(ctx context.Context, ltaID string, req dto.RecordPaymentRequest, userID string) (*dto.PaymentSummary, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	lta, err := s.ltaRepo.FindLTAByID(ctx, ltaID)
	if err != nil {
		return nil, err
	}

	if !lta.IsPayable() {
		return nil, fmt.Errorf("%w: LTA %s does not accept payments (status %s, payment mode %s)",
			apperrors.ErrConflict, lta.LTANumber, lta.Status, lta.PaymentMode)
	}

	alreadyPaid, err := s.paymentRepo.SumPaymentsByLTAID(ctx, ltaID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum existing payments: %w", err)
	}
	remaining := lta.CalculatedCost.Sub(alreadyPaid)
	if req.Amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: amount %s exceeds remaining balance %s",
			apperrors.ErrValidation, utils.FormatAmount(req.Amount, costPrecision), utils.FormatAmount(remaining, costPrecision))
	}

	if req.CashBoxID != nil && *req.CashBoxID != "" {
		cashBox, err := s.cashBoxRepo.FindCashBoxByID(ctx, *req.CashBoxID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: cash box %s does not exist", apperrors.ErrValidation, *req.CashBoxID)
			}
			return nil, fmt.Errorf("failed to verify cash box: %w", err)
		}
		if !cashBox.IsActive {
			return nil, fmt.Errorf("%w: cash box %s is inactive", apperrors.ErrValidation, *req.CashBoxID)
		}
	}

	now := time.Now()
	daySequence, err := s.paymentRepo.CountPaymentsOnDate(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment reference: %w", err)
	}
	reference := utils.GeneratePaymentReference(now, daySequence+1, ltaID)

	payment := domain.LTAPayment{
		PaymentID:   uuid.NewString(),
		LTAID:       ltaID,
		Amount:      req.Amount,
		PaymentDate: now,
		Method:      req.Method,
		Reference:   reference,
		CashBoxID:   req.CashBoxID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", "lta_id", ltaID, "reference", reference)
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded", "payment_id", payment.PaymentID,
		"lta_id", ltaID, "amount", req.Amount.String(), "reference", reference)

	warning := ""
	_, postingWarning, postErr := s.ledgerPoster.PostPayment(ctx, payment, lta.LTANumber, userID)
	switch {
	case postErr != nil:
		s.LogError(ctx, postErr, "Accounting entry for payment failed", "payment_id", payment.PaymentID)
		warning = "accounting entry could not be posted: " + postErr.Error()
	case postingWarning != "":
		s.LogWarn(ctx, "Accounting entry for payment skipped",
			"payment_id", payment.PaymentID, "reason", postingWarning)
		warning = postingWarning
	}

	return &dto.PaymentSummary{
		PaymentID:       payment.PaymentID,
		LTAID:           ltaID,
		Amount:          req.Amount,
		Method:          req.Method,
		Reference:       reference,
		RemainingAmount: remaining.Sub(req.Amount),
		PostingWarning:  warning,
	}, nil
}

func (s *ltaPaymentService) ListPaymentsByLTA(ctx context.Context, ltaID string) ([]domain.LTAPayment, error) {
	if _, err := s.ltaRepo.FindLTAByID(ctx, ltaID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByLTAID(ctx, ltaID)
}
