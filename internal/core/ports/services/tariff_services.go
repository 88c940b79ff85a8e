package services

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TariffReaderSvc defines read operations for tariffs.
type TariffReaderSvc interface {
	GetTariffByID(ctx context.Context, tariffID string) (*domain.Tariff, error)
	ListTariffs(ctx context.Context, params dto.ListTariffsParams) ([]domain.Tariff, error)

	// LookupTariff resolves the active tariff for a route at the given
	// instant, or apperrors.ErrNotFound when no tariff covers it.
	LookupTariff(ctx context.Context, originCityID, destinationCityID string, asOf time.Time) (*domain.Tariff, error)
}

// TariffWriterSvc defines write operations for tariffs.
type TariffWriterSvc interface {
	CreateTariff(ctx context.Context, req dto.CreateTariffRequest, creatorUserID string) (*domain.Tariff, error)
	UpdateTariff(ctx context.Context, tariffID string, req dto.UpdateTariffRequest, userID string) (*domain.Tariff, error)
}

// CostCalculatorSvc computes the shipment cost for a route and weight.
type CostCalculatorSvc interface {
	// CalculateCost returns weight x kgRate when a tariff covers the route
	// now, or weight x the flat default rate otherwise. The boolean reports
	// whether a tariff was applied.
	CalculateCost(ctx context.Context, originCityID, destinationCityID string, weightKg decimal.Decimal) (decimal.Decimal, bool, error)
}

// TariffSvcFacade combines all tariff-related service interfaces.
type TariffSvcFacade interface {
	TariffReaderSvc
	TariffWriterSvc
	CostCalculatorSvc
}
