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

// maxNumberAttempts bounds the generate-and-check loop for document numbers.
const maxNumberAttempts = 5

// ltaService implements portssvc.LTASvcFacade.
type ltaService struct {
	BaseService
	ltaRepo         portsrepo.LTARepositoryFacade
	cityRepo        portsrepo.CityReader
	clientRepo      portsrepo.ClientReader
	costCalculator  portssvc.CostCalculatorSvc
	ledgerPoster    portssvc.LedgerPosterSvc
	trackingBaseURL string
}

var _ portssvc.LTASvcFacade = (*ltaService)(nil)

// NewLTAService creates a new LTA service. trackingBaseURL is the public base
// URL embedded into QR payloads.
func NewLTAService(
	ltaRepo portsrepo.LTARepositoryFacade,
	cityRepo portsrepo.CityReader,
	clientRepo portsrepo.ClientReader,
	costCalculator portssvc.CostCalculatorSvc,
	ledgerPoster portssvc.LedgerPosterSvc,
	trackingBaseURL string,
) portssvc.LTASvcFacade {
	return &ltaService{
		ltaRepo:         ltaRepo,
		cityRepo:        cityRepo,
		clientRepo:      clientRepo,
		costCalculator:  costCalculator,
		ledgerPoster:    ledgerPoster,
		trackingBaseURL: trackingBaseURL,
	}
}

// CreateLTA validates the request, computes the shipment cost, allocates
// unique document numbers and persists the LTA with its initial status
// history record. The revenue journal entry is posted best-effort afterwards:
// a posting problem surfaces as a warning on the result, never as a failure
// of the creation itself.
func (s *ltaService) CreateLTA(ctx context.Context, req dto.CreateLTARequest, creatorUserID string) (*portssvc.CreateLTAResult, error) {
	if !req.PaymentMode.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment mode %q", apperrors.ErrValidation, req.PaymentMode)
	}
	if req.PaymentMode.RequiresClient() && (req.ClientID == nil || *req.ClientID == "") {
		return nil, fmt.Errorf("%w: clientID is required when payment mode is %s", apperrors.ErrValidation, domain.PaymentModeToInvoice)
	}
	if !req.WeightKg.IsPositive() {
		return nil, fmt.Errorf("%w: weight must be positive", apperrors.ErrValidation)
	}
	if req.OriginCityID == req.DestinationCityID {
		return nil, fmt.Errorf("%w: origin and destination must differ", apperrors.ErrValidation)
	}

	initialStatus := domain.StatusDraft
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		initialStatus = *req.Status
	}

	for _, cityID := range []string{req.OriginCityID, req.DestinationCityID} {
		if _, err := s.cityRepo.FindCityByID(ctx, cityID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: city %s does not exist", apperrors.ErrValidation, cityID)
			}
			return nil, fmt.Errorf("failed to verify city %s: %w", cityID, err)
		}
	}
	if req.ClientID != nil && *req.ClientID != "" {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, *req.ClientID)
			}
			return nil, fmt.Errorf("failed to verify client %s: %w", *req.ClientID, err)
		}
	}

	cost, tariffApplied, err := s.costCalculator.CalculateCost(ctx, req.OriginCityID, req.DestinationCityID, req.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate cost: %w", err)
	}

	now := time.Now()

	ltaNumber, err := s.allocateLTANumber(ctx, now)
	if err != nil {
		return nil, err
	}
	trackingNumber, err := s.allocateTrackingNumber(ctx)
	if err != nil {
		return nil, err
	}

	packageCount := req.PackageCount
	if packageCount == 0 {
		packageCount = 1
	}

	lta := domain.LTA{
		LTAID:             uuid.NewString(),
		LTANumber:         ltaNumber,
		TrackingNumber:    trackingNumber,
		QRPayload:         utils.BuildTrackingURL(s.trackingBaseURL, trackingNumber),
		OriginCityID:      req.OriginCityID,
		DestinationCityID: req.DestinationCityID,
		PaymentMode:       req.PaymentMode,
		ClientID:          req.ClientID,
		WeightKg:          req.WeightKg,
		PackageNature:     req.PackageNature,
		PackageCount:      packageCount,
		CalculatedCost:    cost,
		Status:            initialStatus,
		ShipperName:       req.ShipperName,
		ConsigneeName:     req.ConsigneeName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	history := domain.LTAStatusHistory{
		HistoryID: uuid.NewString(),
		LTAID:     lta.LTAID,
		NewStatus: initialStatus,
		ChangedBy: creatorUserID,
		Reason:    "LTA created",
		ChangedAt: now,
	}

	if err := s.ltaRepo.SaveLTA(ctx, lta, history); err != nil {
		s.LogError(ctx, err, "Failed to save LTA", "lta_number", ltaNumber)
		return nil, fmt.Errorf("failed to save LTA: %w", err)
	}

	s.LogInfo(ctx, "LTA created", "lta_id", lta.LTAID, "lta_number", ltaNumber,
		"cost", cost.String(), "tariff_applied", tariffApplied)

	warning := ""
	if cost.IsPositive() {
		_, postingWarning, postErr := s.ledgerPoster.PostLTACreation(ctx, lta, creatorUserID)
		switch {
		case postErr != nil:
			s.LogError(ctx, postErr, "Accounting entry for LTA creation failed", "lta_id", lta.LTAID)
			warning = "accounting entry could not be posted: " + postErr.Error()
		case postingWarning != "":
			s.LogWarn(ctx, "Accounting entry for LTA creation skipped",
				"lta_id", lta.LTAID, "reason", postingWarning)
			warning = postingWarning
		}
	}

	return &portssvc.CreateLTAResult{LTA: lta, PostingWarning: warning}, nil
}

func (s *ltaService) allocateLTANumber(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate, err := utils.GenerateLTANumber(now)
		if err != nil {
			return "", fmt.Errorf("failed to generate LTA number: %w", err)
		}
		exists, err := s.ltaRepo.LTANumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check LTA number uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique LTA number", apperrors.ErrInternal)
}

func (s *ltaService) allocateTrackingNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate, err := utils.GenerateTrackingNumber()
		if err != nil {
			return "", fmt.Errorf("failed to generate tracking number: %w", err)
		}
		exists, err := s.ltaRepo.TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking number uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique tracking number", apperrors.ErrInternal)
}

// UpdateStatus applies a status transition, appending an immutable history
// record in the same transaction. Transitions outside the lifecycle order are
// rejected with a conflict.
func (s *ltaService) UpdateStatus(ctx context.Context, ltaID string, req dto.UpdateLTAStatusRequest, userID string) (*domain.LTA, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.Status)
	}

	lta, err := s.ltaRepo.FindLTAByID(ctx, ltaID)
	if err != nil {
		return nil, err
	}

	if !lta.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: cannot transition LTA from %s to %s",
			apperrors.ErrConflict, lta.Status, req.Status)
	}

	now := time.Now()
	previousStatus := lta.Status
	lta.Status = req.Status
	lta.LastUpdatedAt = now
	lta.LastUpdatedBy = userID

	// The tracking URL only becomes public once the shipment is confirmed,
	// so the QR payload is refreshed on forward movement.
	if req.Status == domain.StatusConfirmed || req.Status == domain.StatusInTransit {
		lta.QRPayload = utils.BuildTrackingURL(s.trackingBaseURL, lta.TrackingNumber)
	}

	history := domain.LTAStatusHistory{
		HistoryID:      uuid.NewString(),
		LTAID:          lta.LTAID,
		PreviousStatus: previousStatus,
		NewStatus:      req.Status,
		ChangedBy:      userID,
		Reason:         req.Reason,
		ChangedAt:      now,
	}

	if err := s.ltaRepo.UpdateLTAStatus(ctx, *lta, history); err != nil {
		s.LogError(ctx, err, "Failed to update LTA status", "lta_id", ltaID)
		return nil, fmt.Errorf("failed to update LTA status: %w", err)
	}

	s.LogInfo(ctx, "LTA status updated", "lta_id", ltaID,
		"from", previousStatus, "to", req.Status)
	return lta, nil
}

func (s *ltaService) GetLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error) {
	return s.ltaRepo.FindLTAByID(ctx, ltaID)
}

func (s *ltaService) GetLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error) {
	return s.ltaRepo.FindLTAByTrackingNumber(ctx, trackingNumber)
}

func (s *ltaService) ListLTAs(ctx context.Context, params dto.ListLTAsParams) ([]domain.LTA, error) {
	var status *domain.LTAStatus
	if params.Status != nil && *params.Status != "" {
		candidate := domain.LTAStatus(*params.Status)
		if !candidate.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, candidate)
		}
		status = &candidate
	}
	return s.ltaRepo.ListLTAs(ctx, params.Limit, params.Offset, status)
}

// GetStatusHistory returns the ordered status changes for the shipment behind
// a public tracking number.
func (s *ltaService) GetStatusHistory(ctx context.Context, trackingNumber string) ([]domain.LTAStatusHistory, error) {
	lta, err := s.ltaRepo.FindLTAByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return s.ltaRepo.FindStatusHistoryByLTAID(ctx, lta.LTAID)
}
