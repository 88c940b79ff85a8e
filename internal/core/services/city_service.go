package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// cityService implements portssvc.CitySvcFacade.
type cityService struct {
	BaseService
	repo portsrepo.CityRepositoryFacade
}

var _ portssvc.CitySvcFacade = (*cityService)(nil)

// NewCityService creates a new city service.
func NewCityService(repo portsrepo.CityRepositoryFacade) portssvc.CitySvcFacade {
	return &cityService{repo: repo}
}

func (s *cityService) CreateCity(ctx context.Context, req dto.CreateCityRequest, userID string) (*domain.City, error) {
	iataCode := strings.ToUpper(req.IATACode)

	if _, err := s.repo.FindCityByIATACode(ctx, iataCode); err == nil {
		return nil, fmt.Errorf("%w: IATA code %s is already registered", apperrors.ErrDuplicate, iataCode)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check IATA code: %w", err)
	}

	now := time.Now()
	city := domain.City{
		CityID:   uuid.NewString(),
		Name:     req.Name,
		IATACode: iataCode,
		Country:  req.Country,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveCity(ctx, city); err != nil {
		s.LogError(ctx, err, "Failed to save city", "iata_code", iataCode)
		return nil, fmt.Errorf("failed to save city: %w", err)
	}
	return &city, nil
}

func (s *cityService) GetCityByID(ctx context.Context, cityID string) (*domain.City, error) {
	return s.repo.FindCityByID(ctx, cityID)
}

func (s *cityService) GetCityByIATACode(ctx context.Context, iataCode string) (*domain.City, error) {
	return s.repo.FindCityByIATACode(ctx, strings.ToUpper(iataCode))
}

func (s *cityService) ListCities(ctx context.Context, params dto.ListCitiesParams) ([]domain.City, error) {
	return s.repo.ListCities(ctx, params.Limit, params.Offset)
}

func (s *cityService) UpdateCity(ctx context.Context, cityID string, req dto.UpdateCityRequest, userID string) (*domain.City, error) {
	city, err := s.repo.FindCityByID(ctx, cityID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.Country != nil {
		city.Country = *req.Country
	}
	if req.IsActive != nil {
		city.IsActive = *req.IsActive
	}
	city.LastUpdatedAt = time.Now()
	city.LastUpdatedBy = userID

	if err := s.repo.UpdateCity(ctx, *city); err != nil {
		s.LogError(ctx, err, "Failed to update city", "city_id", cityID)
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	return city, nil
}
