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
	"github.com/shopspring/decimal"
)

// costPrecision is the number of decimal places kept on calculated costs.
const costPrecision = 2

// tariffService implements portssvc.TariffSvcFacade.
type tariffService struct {
	BaseService
	tariffRepo portsrepo.TariffRepositoryFacade
	cityRepo   portsrepo.CityReader
}

var _ portssvc.TariffSvcFacade = (*tariffService)(nil)

// NewTariffService creates a new tariff service.
func NewTariffService(tariffRepo portsrepo.TariffRepositoryFacade, cityRepo portsrepo.CityReader) portssvc.TariffSvcFacade {
	return &tariffService{
		tariffRepo: tariffRepo,
		cityRepo:   cityRepo,
	}
}

func (s *tariffService) CreateTariff(ctx context.Context, req dto.CreateTariffRequest, creatorUserID string) (*domain.Tariff, error) {
	if !req.KgRate.IsPositive() {
		return nil, fmt.Errorf("%w: kgRate must be positive", apperrors.ErrValidation)
	}
	if req.OriginCityID == req.DestinationCityID {
		return nil, fmt.Errorf("%w: origin and destination must differ", apperrors.ErrValidation)
	}
	if !req.EffectiveUntil.After(req.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effectiveUntil must be after effectiveFrom", apperrors.ErrValidation)
	}

	for _, cityID := range []string{req.OriginCityID, req.DestinationCityID} {
		if _, err := s.cityRepo.FindCityByID(ctx, cityID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: city %s does not exist", apperrors.ErrValidation, cityID)
			}
			return nil, fmt.Errorf("failed to verify city %s: %w", cityID, err)
		}
	}

	now := time.Now()
	tariff := domain.Tariff{
		TariffID:          uuid.NewString(),
		OriginCityID:      req.OriginCityID,
		DestinationCityID: req.DestinationCityID,
		KgRate:            req.KgRate,
		MinWeightKg:       req.MinWeightKg,
		VolumeCoefficient: req.VolumeCoefficient,
		EffectiveFrom:     req.EffectiveFrom,
		EffectiveUntil:    req.EffectiveUntil,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tariffRepo.SaveTariff(ctx, tariff); err != nil {
		s.LogError(ctx, err, "Failed to save tariff")
		return nil, fmt.Errorf("failed to save tariff: %w", err)
	}

	s.LogInfo(ctx, "Tariff created", "tariff_id", tariff.TariffID,
		"origin", tariff.OriginCityID, "destination", tariff.DestinationCityID)
	return &tariff, nil
}

func (s *tariffService) UpdateTariff(ctx context.Context, tariffID string, req dto.UpdateTariffRequest, userID string) (*domain.Tariff, error) {
	tariff, err := s.tariffRepo.FindTariffByID(ctx, tariffID)
	if err != nil {
		return nil, err
	}

	if req.KgRate != nil {
		if !req.KgRate.IsPositive() {
			return nil, fmt.Errorf("%w: kgRate must be positive", apperrors.ErrValidation)
		}
		tariff.KgRate = *req.KgRate
	}
	if req.EffectiveUntil != nil {
		if !req.EffectiveUntil.After(tariff.EffectiveFrom) {
			return nil, fmt.Errorf("%w: effectiveUntil must be after effectiveFrom", apperrors.ErrValidation)
		}
		tariff.EffectiveUntil = *req.EffectiveUntil
	}
	if req.IsActive != nil {
		tariff.IsActive = *req.IsActive
	}
	tariff.LastUpdatedAt = time.Now()
	tariff.LastUpdatedBy = userID

	if err := s.tariffRepo.UpdateTariff(ctx, *tariff); err != nil {
		s.LogError(ctx, err, "Failed to update tariff", "tariff_id", tariffID)
		return nil, fmt.Errorf("failed to update tariff: %w", err)
	}
	return tariff, nil
}

func (s *tariffService) GetTariffByID(ctx context.Context, tariffID string) (*domain.Tariff, error) {
	return s.tariffRepo.FindTariffByID(ctx, tariffID)
}

func (s *tariffService) ListTariffs(ctx context.Context, params dto.ListTariffsParams) ([]domain.Tariff, error) {
	return s.tariffRepo.ListTariffs(ctx, params.Limit, params.Offset)
}

func (s *tariffService) LookupTariff(ctx context.Context, originCityID, destinationCityID string, asOf time.Time) (*domain.Tariff, error) {
	return s.tariffRepo.FindActiveTariffForRoute(ctx, originCityID, destinationCityID, asOf)
}

// CalculateCost computes weight x kgRate from the active tariff for the route.
// When no tariff covers the route the flat default rate applies; that is a
// normal outcome, reported through the boolean, not an error.
func (s *tariffService) CalculateCost(ctx context.Context, originCityID, destinationCityID string, weightKg decimal.Decimal) (decimal.Decimal, bool, error) {
	if !weightKg.IsPositive() {
		return decimal.Zero, false, fmt.Errorf("%w: weight must be positive", apperrors.ErrValidation)
	}

	tariff, err := s.tariffRepo.FindActiveTariffForRoute(ctx, originCityID, destinationCityID, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No tariff for route, applying default rate",
				"origin", originCityID, "destination", destinationCityID)
			return utils.RoundAmount(weightKg.Mul(domain.DefaultRatePerKg), costPrecision), false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to look up tariff: %w", err)
	}

	return utils.RoundAmount(weightKg.Mul(tariff.KgRate), costPrecision), true, nil
}
